// Package engine provides the core business logic for deckplan operations.
//
// The engine package acts as the orchestration layer between CLI commands and
// the conversion stages. It coordinates input loading, plan resolution,
// script generation, and artifact validation.
//
// Key components:
//   - Engine: Main orchestrator that coordinates all operations
//   - Plan/Script: The two conversion stages (outline → plan → macro script)
//   - Run: The full pipeline with preflight and artifact checks
//   - Validate/Inspect: Standalone artifact checking and template summaries
package engine

import (
	"deckplan/internal/clock"
	"deckplan/internal/config"
	"deckplan/internal/fsops"
	"deckplan/internal/hash"
	"deckplan/internal/planner"
)

// Engine orchestrates all deckplan operations.
// It is the main API surface called by the CLI.
type Engine struct {
	fs     fsops.FS
	hasher hash.Hasher
	clock  clock.Clock
	cfg    *config.Config
}

// New creates a new Engine with the given dependencies.
func New(fs fsops.FS, hasher hash.Hasher, clk clock.Clock, cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &Engine{
		fs:     fs,
		hasher: hasher,
		clock:  clk,
		cfg:    cfg,
	}
}

// strategy converts config role overrides into the planner's role table.
// An empty override list keeps the built-in table.
func (e *Engine) strategy() []planner.StrategyRole {
	if len(e.cfg.LayoutStrategy) == 0 {
		return nil
	}
	roles := make([]planner.StrategyRole, 0, len(e.cfg.LayoutStrategy))
	for _, role := range e.cfg.LayoutStrategy {
		roles = append(roles, planner.StrategyRole{
			Role:     role.Role,
			Layout:   role.Layout,
			Category: role.Category,
		})
	}
	return roles
}
