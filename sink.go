package gtfsrdf

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/geoknoesis/rdf-go/rdf"
)

// OutputFormat selects the serialization the sink produces.
type OutputFormat string

const (
	// OutputTurtle emits the Turtle text the emitter and finalizer produce.
	OutputTurtle OutputFormat = "turtle"
	// OutputNTriples transcodes each batch through the RDF library into
	// N-Triples.
	OutputNTriples OutputFormat = "ntriples"
)

// ParseOutputFormat resolves a format identifier from config.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch value {
	case "", string(OutputTurtle):
		return OutputTurtle, nil
	case string(OutputNTriples):
		return OutputNTriples, nil
	}
	return "", fmt.Errorf("unknown output format %q", value)
}

// BatchBoundary separates size-bounded batches in the output stream.
const BatchBoundary = "# --- batch boundary ---\n"

// Sink buffers statements into batches. A positive split size, counted in
// source rows consumed rather than statements, bounds each batch; every batch
// restarts with the shared prefix preamble so it is self-contained.
type Sink struct {
	out       io.Writer
	format    OutputFormat
	splitSize int

	batch       bytes.Buffer
	rowsInBatch int
	flushedAny  bool
}

func NewSink(out io.Writer, format OutputFormat, splitSize int) *Sink {
	return &Sink{out: out, format: format, splitSize: splitSize}
}

// Statement appends one subject/predicate/object line to the current batch.
// The preamble is written lazily when the batch gets its first statement.
func (s *Sink) Statement(subj, pred, obj string) {
	if s.batch.Len() == 0 {
		s.batch.WriteString(Preamble())
	}
	fmt.Fprintf(&s.batch, "%s %s %s .\n", subj, pred, obj)
}

// RowConsumed counts one processed source row and closes the batch when the
// split threshold is reached. With a zero threshold the run is one unbounded
// batch.
func (s *Sink) RowConsumed() error {
	if s.splitSize <= 0 {
		return nil
	}
	s.rowsInBatch++
	if s.rowsInBatch >= s.splitSize {
		s.rowsInBatch = 0
		return s.flushBatch()
	}
	return nil
}

// Flush writes whatever remains in the current batch.
func (s *Sink) Flush() error {
	return s.flushBatch()
}

func (s *Sink) flushBatch() error {
	if s.batch.Len() == 0 {
		return nil
	}
	if s.flushedAny {
		if _, err := io.WriteString(s.out, BatchBoundary); err != nil {
			return err
		}
	}
	var err error
	switch s.format {
	case OutputNTriples:
		err = transcode(s.out, s.batch.Bytes())
	default:
		_, err = s.out.Write(s.batch.Bytes())
	}
	if err != nil {
		return err
	}
	s.flushedAny = true
	s.batch.Reset()
	return nil
}

// transcode parses one batch of Turtle and reserializes it as N-Triples.
func transcode(out io.Writer, turtle []byte) error {
	w, err := rdf.NewWriter(out, rdf.FormatNTriples)
	if err != nil {
		return err
	}
	err = rdf.Parse(context.Background(), bytes.NewReader(turtle), rdf.FormatTurtle, func(st rdf.Statement) error {
		return w.Write(st)
	})
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return w.Close()
}
