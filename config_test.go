package gtfsrdf

import (
	"strings"
	"testing"
)

// TestConfig_Validate tests resolved-configuration validation
func TestConfig_Validate(t *testing.T) {
	cfg := AppConfig{
		GTFS: GTFSConfig{Path: "feed"},
		RDF:  RDFConfig{BaseURI: "http://example.org/transit"},
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Valid config rejected: %v", err)
	}
	if cfg.RDF.Format != "turtle" {
		t.Errorf("Format should default to turtle, got %q", cfg.RDF.Format)
	}

	t.Logf("✓ valid config accepted, format defaults to %s", cfg.RDF.Format)
}

// TestConfig_MissingBaseURI tests that the base URI is required
func TestConfig_MissingBaseURI(t *testing.T) {
	cfg := AppConfig{GTFS: GTFSConfig{Path: "feed"}}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("Config without baseURI should be rejected")
	}

	t.Logf("✓ missing baseURI rejected: %v", err)
}

// TestConfig_TrailingSlash tests the no-trailing-separator rule
func TestConfig_TrailingSlash(t *testing.T) {
	cfg := AppConfig{
		RDF: RDFConfig{BaseURI: "http://example.org/transit/"},
	}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "must not end") {
		t.Fatalf("Trailing slash should be rejected, got %v", err)
	}

	t.Logf("✓ trailing slash rejected: %v", err)
}

// TestConfig_BadFormat tests the format enumeration
func TestConfig_BadFormat(t *testing.T) {
	cfg := AppConfig{
		RDF: RDFConfig{BaseURI: "http://example.org/transit", Format: "rdfxml"},
	}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Unknown format should be rejected")
	}

	t.Logf("✓ unknown format rejected")
}
