package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"deckplan/internal/clock"
	"deckplan/internal/config"
	"deckplan/internal/hash"
)

// fakeFS is an in-memory filesystem for engine tests.
type fakeFS struct {
	files  map[string][]byte
	failOn map[string]error
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:  make(map[string][]byte),
		failOn: make(map[string]error),
	}
}

func (f *fakeFS) ReadFile(path string) ([]byte, error) {
	if err, ok := f.failOn[path]; ok {
		return nil, err
	}
	data, ok := f.files[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, os.ErrNotExist)
	}
	return data, nil
}

func (f *fakeFS) AtomicWrite(path string, data []byte, perm os.FileMode) error {
	if err, ok := f.failOn[path]; ok {
		return err
	}
	f.files[path] = append([]byte{}, data...)
	return nil
}

func (f *fakeFS) MkdirAll(path string, perm os.FileMode) error {
	return nil
}

func (f *fakeFS) Exists(path string) (bool, error) {
	_, ok := f.files[path]
	return ok, nil
}

const testTemplate = `{
	"template_info": {
		"name": "corporate.pptx",
		"analysis_date": "2025-01-15",
		"slide_master": "Corporate Master"
	},
	"layouts": [
		{
			"index": 1,
			"name": "Title Slide",
			"category": "title",
			"placeholders": [
				{"type_id": 1, "geometry": {"top": 100, "left": 50}},
				{"type_id": 4, "geometry": {"top": 300, "left": 50}}
			]
		},
		{
			"index": 2,
			"name": "Title and Text",
			"category": "content",
			"placeholders": [
				{"type_id": 1, "geometry": {"top": 40, "left": 50}},
				{"type_id": 2, "geometry": {"top": 150, "left": 50}},
				{"type_id": 2, "geometry": {"top": 150, "left": 400}}
			]
		}
	]
}`

const testOutline = `{
	"meta": {"title": "Q3 Review"},
	"slides": [
		{
			"layout": "Title Slide",
			"placeholders": {"Title": "Q3 Review", "Subtitle": "Finance"}
		},
		{
			"layout": "Title and Text",
			"placeholders": {"Title": "Results", "Body": "Revenue up", "Body[1]": "Costs flat"}
		}
	]
}`

// testEngine wires an Engine against the fake filesystem with deterministic
// clock and hashing.
func testEngine(fs *fakeFS) *Engine {
	return New(
		fs,
		&hash.FakeHasher{Fingerprint: "fakehash"},
		clock.NewFakeClock(time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)),
		&config.Config{},
	)
}

func seedInputs(fs *fakeFS) {
	fs.files["outline.json"] = []byte(testOutline)
	fs.files["template.json"] = []byte(testTemplate)
}

// errIs fails the test unless errors.Is(err, target).
func errIs(err, target error) bool {
	return errors.Is(err, target)
}
