package diag

import "testing"

func TestCollector_ZeroValue(t *testing.T) {
	var c Collector

	if c.HasErrors() {
		t.Error("zero-value collector should have no errors")
	}
	if len(c.Errors()) != 0 || len(c.Warnings()) != 0 {
		t.Error("zero-value collector should return empty slices")
	}
}

func TestCollector_InsertionOrder(t *testing.T) {
	var c Collector

	c.Errorf("Slide %d: first", 1)
	c.Warnf("Slide %d: advisory", 1)
	c.Errorf("Slide %d: second", 2)

	errs := c.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0] != "Slide 1: first" || errs[1] != "Slide 2: second" {
		t.Errorf("errors out of order: %v", errs)
	}

	warns := c.Warnings()
	if len(warns) != 1 || warns[0] != "Slide 1: advisory" {
		t.Errorf("warnings = %v", warns)
	}

	if !c.HasErrors() {
		t.Error("HasErrors() = false after Errorf")
	}
}

func TestCollector_ReturnsCopies(t *testing.T) {
	var c Collector
	c.Errorf("original")

	errs := c.Errors()
	errs[0] = "mutated"

	if c.Errors()[0] != "original" {
		t.Error("Errors() must return a copy, not the backing slice")
	}
}
