package gtfsrdf

import (
	"errors"
	"testing"
)

// TestRegistry_RegisterResolve tests the basic register/resolve contract
func TestRegistry_RegisterResolve(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(KindStop, "S1", "http://example.org/stop/main_st"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	uri, err := reg.Resolve(KindStop, "S1")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if uri != "http://example.org/stop/main_st" {
		t.Errorf("Resolve returned %q", uri)
	}

	// Resolving again returns the same URI
	again, err := reg.Resolve(KindStop, "S1")
	if err != nil || again != uri {
		t.Errorf("Repeated resolve not idempotent: %q, %v", again, err)
	}

	t.Logf("✓ register/resolve round trip works")
}

// TestRegistry_ReRegister tests re-registration semantics
func TestRegistry_ReRegister(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(KindRoute, "R1", "http://example.org/route/blue"); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Identical URI is a no-op
	if err := reg.Register(KindRoute, "R1", "http://example.org/route/blue"); err != nil {
		t.Errorf("Re-register with identical URI should be a no-op: %v", err)
	}

	// Differing URI is an error
	err := reg.Register(KindRoute, "R1", "http://example.org/route/red")
	var dup *DuplicateEntityError
	if !errors.As(err, &dup) {
		t.Fatalf("Expected DuplicateEntityError, got %v", err)
	}
	if dup.Kind != KindRoute || dup.ID != "R1" {
		t.Errorf("Wrong error detail: %+v", dup)
	}

	t.Logf("✓ duplicate registration rejected: %v", err)
}

// TestRegistry_ResolveUnknown tests the unresolved reference error
func TestRegistry_ResolveUnknown(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.Resolve(KindTrip, "nope")
	var unres *UnresolvedReferenceError
	if !errors.As(err, &unres) {
		t.Fatalf("Expected UnresolvedReferenceError, got %v", err)
	}
	if unres.Kind != KindTrip || unres.ID != "nope" {
		t.Errorf("Wrong error detail: %+v", unres)
	}

	t.Logf("✓ unresolved reference reported: %v", err)
}

// TestNameID tests name normalization for name-derived ids
func TestNameID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Grand Central Terminal", "grand_central_terminal"},
		{"grand central   terminal", "grand_central_terminal"},
		{"  Fulton St  ", "fulton_st"},
		{"A", "a"},
	}
	for _, c := range cases {
		if got := NameID(c.in); got != c.want {
			t.Errorf("NameID(%q) = %q, want %q", c.in, got, c.want)
		}
	}

	t.Logf("✓ case and whitespace collapse to one id")
}

// TestMintURI tests deterministic URI construction with escaping
func TestMintURI(t *testing.T) {
	base := "http://example.org/transit"

	uri := MintURI(base, "stop", NameID("Grand Central Terminal"))
	if uri != "http://example.org/transit/stop/grand_central_terminal" {
		t.Errorf("Unexpected URI: %q", uri)
	}

	// Reserved characters are percent-escaped
	escaped := MintURI(base, "route", "a/b")
	if escaped != "http://example.org/transit/route/a%2Fb" {
		t.Errorf("Unexpected escaped URI: %q", escaped)
	}

	t.Logf("✓ minted %s", uri)
}
