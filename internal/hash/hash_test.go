package hash

import "testing"

func TestSHA256Hasher_Sum(t *testing.T) {
	h := NewSHA256Hasher()

	// Known digest for "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	if got := h.Sum([]byte("hello")); got != want {
		t.Errorf("Sum(\"hello\") = %q, want %q", got, want)
	}
}

func TestSHA256Hasher_Deterministic(t *testing.T) {
	h := NewSHA256Hasher()

	a := h.Sum([]byte(`{"slides": []}`))
	b := h.Sum([]byte(`{"slides": []}`))
	if a != b {
		t.Errorf("same input produced different fingerprints: %q vs %q", a, b)
	}

	c := h.Sum([]byte(`{"slides": [{}]}`))
	if a == c {
		t.Error("different inputs produced the same fingerprint")
	}
}

func TestFakeHasher_Sum(t *testing.T) {
	h := &FakeHasher{}
	if got := h.Sum([]byte("anything")); got != "fakehash" {
		t.Errorf("Sum() = %q, want default %q", got, "fakehash")
	}

	h.Fingerprint = "abc123"
	if got := h.Sum([]byte("anything")); got != "abc123" {
		t.Errorf("Sum() = %q, want %q", got, "abc123")
	}
}
