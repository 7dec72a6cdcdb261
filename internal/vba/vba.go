// Package vba generates an executable VBA macro script from a slide plan.
//
// The generated script is self-contained: it carries every helper it needs
// (layout cache, placeholder lookup by type and ordinal, text setting with
// TextFrame2 fallback, minimal JSON parsing for chart and table payloads) and
// targets both macOS and Windows PowerPoint. Its only contract with the
// planner is the plan document: content map entries keyed by
// (type_id, ordinal) locate shapes, and selected_layout.index picks the
// layout when instantiating a slide. Content payloads pass through verbatim.
package vba

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"deckplan/internal/clock"
	"deckplan/internal/plan"
)

// Options configures script generation.
type Options struct {
	// DebugSlide, when ≥1, emits placeholder diagnostics for that slide
	// number. Zero disables debugging output.
	DebugSlide int

	// Clock provides the generation timestamp. Defaults to the system
	// clock.
	Clock clock.Clock
}

// Generator renders one plan document into VBA source text.
type Generator struct {
	plan        *plan.Document
	opts        Options
	usedLayouts map[int]bool
}

// NewGenerator creates a Generator for the given plan.
func NewGenerator(doc *plan.Document, opts Options) *Generator {
	if opts.Clock == nil {
		opts.Clock = &clock.RealClock{}
	}
	return &Generator{
		plan:        doc,
		opts:        opts,
		usedLayouts: make(map[int]bool),
	}
}

// Generate renders the complete script: header, helper functions, Main
// subroutine, and the optional ValidateTemplate subroutine.
func (g *Generator) Generate() string {
	for _, slide := range g.plan.Slides {
		g.usedLayouts[slide.SelectedLayout.Index] = true
	}

	sections := []string{
		g.header(),
		helperFunctions,
		g.mainSub(),
		g.validationSub(),
	}
	return strings.Join(sections, "\n")
}

// UsedLayouts returns the layout indices the generated script references,
// ascending.
func (g *Generator) UsedLayouts() []int {
	indices := make([]int, 0, len(g.usedLayouts))
	for index := range g.usedLayouts {
		indices = append(indices, index)
	}
	sort.Ints(indices)
	return indices
}

// Escape escapes a string for embedding in a VBA string literal: quotes are
// doubled and newlines become vbCrLf concatenations.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, `"`, `""`)
	s = strings.ReplaceAll(s, "\n", `" & vbCrLf & "`)
	return s
}

// marshalPayload renders a chart or table payload as compact JSON without
// HTML escaping, so the script's parser sees the payload exactly as
// authored.
func marshalPayload(value any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "{}"
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

func (g *Generator) header() string {
	now := g.opts.Clock.Now().UTC().Format("2006-01-02 15:04:05") + " UTC"

	return fmt.Sprintf(`' ================================================================
' AUTO-GENERATED POWERPOINT VBA SCRIPT
' Generated: %s
' Template: %s
' Platform: macOS and Windows compatible
' ================================================================
'
' USAGE:
'   1. Open your PowerPoint template
'   2. Press Alt+F11 (Windows) or Opt+F11 (Mac) to open VBA editor
'   3. Insert > Module
'   4. Paste this entire script
'   5. Run the "Main" subroutine
'
' ================================================================

Option Explicit

' PowerPoint placeholder type constants
Const msoPlaceholder As Long = 14
Const ppPlaceholderTitle As Long = 1
Const ppPlaceholderBody As Long = 2
Const ppPlaceholderCenterTitle As Long = 3
Const ppPlaceholderSubtitle As Long = 4
Const ppPlaceholderObject As Long = 7
Const ppPlaceholderChart As Long = 8
Const ppPlaceholderTable As Long = 9
Const ppPlaceholderPicture As Long = 18

' Chart type constants (macOS-safe)
Const xlColumnClustered As Long = 51
Const xlBarClustered As Long = 57
Const xlLine As Long = 4
Const xlPie As Long = 5
Const xlArea As Long = 1
Const xlXYScatter As Long = -4169

' Platform detection
#If Mac Then
    Const PLATFORM As String = "macOS"
#Else
    Const PLATFORM As String = "Windows"
#End If
`, now, g.plan.Meta.TemplateName)
}

func (g *Generator) mainSub() string {
	code := []string{
		"",
		"' ================================================================",
		"' MAIN SUBROUTINE",
		"' ================================================================",
		"",
		"Sub Main()",
		"    On Error GoTo ErrorHandler",
		"",
		"    ' Validate environment",
		"    If Application.Presentations.Count = 0 Then",
		`        MsgBox "Please open a PowerPoint presentation first.", vbExclamation`,
		"        Exit Sub",
		"    End If",
		"",
		"    Dim pres As Presentation",
		"    Dim currentSlide As Slide",
		"    Dim shp As Shape",
		"    Dim cl As CustomLayout",
		"",
		"    Set pres = Application.ActivePresentation",
		"",
		"    ' Initialize layout cache (macOS-safe Collection)",
		"    Set layoutCache = New Collection",
		"",
		"    ' Pre-cache layouts for performance",
		"    Dim layoutIndex As Variant",
		"    Dim requiredLayouts As Variant",
	}

	indices := make([]string, 0, len(g.usedLayouts))
	for _, index := range g.UsedLayouts() {
		indices = append(indices, fmt.Sprintf("%d", index))
	}
	code = append(code,
		fmt.Sprintf("    requiredLayouts = Array(%s)", strings.Join(indices, ", ")),
		"",
		"    For Each layoutIndex In requiredLayouts",
		"        If Not CacheHas(CLng(layoutIndex)) Then",
		"            Set cl = GetCustomLayoutByIndexSafe(CLng(layoutIndex))",
		"            If cl Is Nothing Then",
		`                MsgBox "Layout index " & layoutIndex & " not found in template. Check that you have the correct template open.", vbCritical`,
		"                Exit Sub",
		"            End If",
		"            CachePut CLng(layoutIndex), cl",
		"        End If",
		"    Next layoutIndex",
		"",
		"    ' Create slides",
	)

	for _, slide := range g.plan.Slides {
		code = append(code, g.slideCode(slide)...)
	}

	code = append(code,
		"",
		"    ' Success message",
		fmt.Sprintf(`    MsgBox "Successfully created %d slides!", vbInformation`, len(g.plan.Slides)),
		"    Exit Sub",
		"",
		"ErrorHandler:",
		`    MsgBox "Error " & Err.Number & ": " & Err.Description, vbCritical`,
		"End Sub",
	)

	return strings.Join(code, "\n")
}

func (g *Generator) slideCode(slide plan.Slide) []string {
	layoutIndex := slide.SelectedLayout.Index

	code := []string{
		fmt.Sprintf("    ' ---- Slide %d: %s ----", slide.SlideNumber, slide.SlideTitle),
		fmt.Sprintf("    Set currentSlide = AddSlideWithLayout(CacheGet(%d))", layoutIndex),
	}

	if g.opts.DebugSlide > 0 && slide.SlideNumber == g.opts.DebugSlide {
		code = append(code,
			"",
			fmt.Sprintf("    ' Debug: List placeholders on slide %d (layout %d)", slide.SlideNumber, layoutIndex),
			"    DebugListPlaceholders currentSlide",
		)
	}
	code = append(code, "")

	for _, item := range slide.ContentMap {
		if item.ContentType == plan.KindImagePath {
			// Images are placed manually after slide creation; the
			// script only notes where they belong.
			code = append(code,
				"",
				fmt.Sprintf("    ' Image placeholder skipped: %s", Escape(item.ContentData.Text)),
				"    ' User will add image manually after slides are created",
				"",
			)
			continue
		}

		code = append(code,
			fmt.Sprintf("    ' %s placeholder (ordinal %d)", item.PlaceholderType, item.Ordinal),
			fmt.Sprintf("    Set shp = GetPlaceholderByTypeAndOrdinal(currentSlide, %d, %d)", item.TypeID, item.Ordinal),
			"    If shp Is Nothing Then",
			fmt.Sprintf(`        MsgBox "STRICT MATCH ERROR: Missing required placeholder on slide %d:" & vbCrLf & _`, slide.SlideNumber),
			fmt.Sprintf(`               "Type: %s (type_id=%d)" & vbCrLf & _`, item.PlaceholderType, item.TypeID),
			fmt.Sprintf(`               "Ordinal: %d" & vbCrLf & vbCrLf & _`, item.Ordinal),
			`               "This placeholder is required but not found in the layout.", vbCritical, "Missing Placeholder"`,
			"        Exit Sub",
			"    End If",
		)

		switch item.ContentType {
		case plan.KindText:
			code = append(code, fmt.Sprintf(`    SafeSetText shp, "%s"`, Escape(item.ContentData.Text)))
		case plan.KindChart:
			payload := Escape(marshalPayload(item.ContentData.Chart.Raw))
			code = append(code, fmt.Sprintf(`    CreateChartAtPlaceholder currentSlide, shp, "%s"`, payload))
		case plan.KindTable:
			payload := Escape(marshalPayload(item.ContentData.Table.Raw))
			code = append(code, fmt.Sprintf(`    CreateTableAtPlaceholder currentSlide, shp, "%s"`, payload))
		}
		code = append(code, "")
	}

	return code
}

func (g *Generator) validationSub() string {
	indices := make([]string, 0, len(g.usedLayouts))
	for _, index := range g.UsedLayouts() {
		indices = append(indices, fmt.Sprintf("%d", index))
	}

	return fmt.Sprintf(`

' ================================================================
' VALIDATION SUBROUTINE (Optional)
' ================================================================

Sub ValidateTemplate()
    On Error Resume Next
    Dim pres As Presentation
    Dim layout As CustomLayout
    Dim msg As String

    Set pres = Application.ActivePresentation

    msg = "Template Validation Report:" & vbCrLf & vbCrLf
    msg = msg & "Template: " & pres.Name & vbCrLf
    msg = msg & "Layouts: " & pres.SlideMaster.CustomLayouts.Count & vbCrLf
    msg = msg & "Platform: " & PLATFORM & vbCrLf & vbCrLf

    ' Check required layouts
    Dim requiredLayouts As Variant
    Dim layoutIndex As Variant
    Dim found As Boolean

    requiredLayouts = Array(%s)

    msg = msg & "Required Layout Indices:" & vbCrLf
    For Each layoutIndex In requiredLayouts
        Set layout = GetCustomLayoutByIndexSafe(CLng(layoutIndex))
        If Not layout Is Nothing Then
            msg = msg & "  OK Index " & layoutIndex & ": " & layout.Name & vbCrLf
        Else
            msg = msg & "  MISSING Index " & layoutIndex & vbCrLf
        End If
    Next layoutIndex

    MsgBox msg, vbInformation, "Template Validation"
    On Error GoTo 0
End Sub`, strings.Join(indices, ", "))
}
