package gtfsrdf

import (
	"bytes"
	"strings"
	"testing"
)

// TestSink_SingleBatch tests unbounded output with one preamble
func TestSink_SingleBatch(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, OutputTurtle, 0)

	for i := 0; i < 10; i++ {
		sink.Statement("<http://example.org/s>", "rdfs:label", lit("x"))
		if err := sink.RowConsumed(); err != nil {
			t.Fatalf("RowConsumed failed: %v", err)
		}
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "@prefix gtfs:"); got != 1 {
		t.Errorf("Expected 1 preamble, got %d", got)
	}
	if strings.Contains(out, BatchBoundary) {
		t.Error("Unbounded output should have no boundary markers")
	}

	t.Logf("✓ one unbounded batch")
}

// TestSink_SplitBatches tests the row-counted split threshold
func TestSink_SplitBatches(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, OutputTurtle, 2)

	// 5 rows with split 2: two full batches and one partial batch
	for i := 0; i < 5; i++ {
		sink.Statement("<http://example.org/s>", "rdfs:label", lit("x"))
		if err := sink.RowConsumed(); err != nil {
			t.Fatalf("RowConsumed failed: %v", err)
		}
	}
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	out := buf.String()
	if got := strings.Count(out, "@prefix gtfs:"); got != 3 {
		t.Errorf("Expected 3 preambles, got %d", got)
	}
	if got := strings.Count(out, BatchBoundary); got != 2 {
		t.Errorf("Expected 2 boundary markers, got %d", got)
	}
	// Every batch starts with the shared preamble
	for i, batch := range strings.Split(out, BatchBoundary) {
		if !strings.HasPrefix(batch, "@prefix rdf:") {
			t.Errorf("Batch %d does not start with the preamble", i)
		}
	}

	t.Logf("✓ 5 rows at split 2 -> 3 self-contained batches")
}

// TestSink_FlushEmpty tests that flushing an empty sink writes nothing
func TestSink_FlushEmpty(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, OutputTurtle, 0)
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Empty sink wrote %d bytes", buf.Len())
	}

	t.Logf("✓ empty flush is a no-op")
}

// TestSink_NTriplesTranscode tests delegation to the RDF transcoder
func TestSink_NTriplesTranscode(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSink(&buf, OutputNTriples, 0)

	sink.Statement("<http://example.org/trip/T1>", "gtfs:stop", "<http://example.org/stop/s1>")
	sink.Statement("<http://example.org/stop/s1>", "foaf:name", lit("Main St"))
	if err := sink.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "<http://vocab.gtfs.org/terms#stop>") {
		t.Errorf("Prefixed predicate not expanded, output:\n%s", out)
	}
	if !strings.Contains(out, "<http://xmlns.com/foaf/0.1/name>") {
		t.Errorf("foaf predicate not expanded, output:\n%s", out)
	}
	if strings.Contains(out, "@prefix") {
		t.Error("N-Triples output should carry no prefix declarations")
	}

	t.Logf("✓ batch transcoded to N-Triples")
}

// TestParseOutputFormat tests format identifier resolution
func TestParseOutputFormat(t *testing.T) {
	if f, err := ParseOutputFormat(""); err != nil || f != OutputTurtle {
		t.Errorf("Default format: %v, %v", f, err)
	}
	if f, err := ParseOutputFormat("ntriples"); err != nil || f != OutputNTriples {
		t.Errorf("ntriples format: %v, %v", f, err)
	}
	if _, err := ParseOutputFormat("rdfxml"); err == nil {
		t.Error("Unknown format should be rejected")
	}

	t.Logf("✓ output formats resolved")
}
