package gtfsrdf

import (
	"fmt"

	"github.com/theoremus-urban-solutions/gtfs-to-rdf/gtfs"
)

// Conversion carries the run-wide state of one GTFS-to-RDF run: the entity
// registry, the relationship accumulator and the output sink. It is owned by
// a single goroutine for the run's duration.
type Conversion struct {
	cfg  AppConfig
	reg  *Registry
	acc  *Accumulator
	sink *Sink
	warn *WarningAggregator
	em   *Emitter
}

func NewConversion(cfg AppConfig, sink *Sink) *Conversion {
	reg := NewRegistry()
	acc := NewAccumulator()
	warn := NewWarningAggregator()
	return &Conversion{
		cfg:  cfg,
		reg:  reg,
		acc:  acc,
		sink: sink,
		warn: warn,
		em:   NewEmitter(cfg.RDF.BaseURI, reg, acc, sink, warn),
	}
}

// Run consumes every table in the fixed dependency order, then drains the
// accumulator and flushes the sink. The first validation error aborts the
// run; output already flushed is incomplete and must be discarded by the
// caller.
func (c *Conversion) Run(feed *gtfs.Feed) error {
	for _, name := range feed.UnusedOptional() {
		c.warn.Add(WarningUnusedOptionalTable, name+".txt")
	}

	for _, kind := range gtfs.ProcessOrder {
		rows := feed.Table(kind)
		if rows == nil && !kind.Required() {
			continue
		}
		for _, row := range rows {
			if err := c.emitRow(kind, row); err != nil {
				return fmt.Errorf("%s: %w", kind, err)
			}
			if err := c.sink.RowConsumed(); err != nil {
				return err
			}
		}
	}

	fin := NewFinalizer(c.reg, c.acc, c.sink)
	if err := fin.Run(); err != nil {
		return err
	}
	c.emitDatasetSummary(fin)
	if err := c.sink.Flush(); err != nil {
		return err
	}
	c.warn.LogAll(c.cfg.GTFS.Path)
	return nil
}

// emitRow dispatches a row to the handler for its table kind.
func (c *Conversion) emitRow(kind gtfs.TableKind, row gtfs.Row) error {
	switch kind {
	case gtfs.TableCalendar:
		return c.em.EmitService(row)
	case gtfs.TableAgency:
		return c.em.EmitAgency(row)
	case gtfs.TableRoutes:
		return c.em.EmitRoute(row)
	case gtfs.TableFrequencies:
		return c.em.EmitFrequency(row)
	case gtfs.TableTrips:
		return c.em.EmitTrip(row)
	case gtfs.TableStops:
		return c.em.EmitStop(row)
	case gtfs.TableStopTimes:
		return c.em.EmitStopTime(row)
	}
	return fmt.Errorf("unhandled table kind %d", kind)
}

// emitDatasetSummary writes the singleton dataset descriptor: license and
// source links when configured and, if any stop-time exists, one example
// resource pointer.
func (c *Conversion) emitDatasetSummary(fin *Finalizer) {
	subj := iri(c.cfg.RDF.BaseURI)
	c.sink.Statement(subj, "a", "void:Dataset")
	if c.cfg.RDF.LicenseURI != "" {
		c.sink.Statement(subj, "dct:license", iri(c.cfg.RDF.LicenseURI))
	}
	if c.cfg.RDF.SourceURI != "" {
		c.sink.Statement(subj, "dct:source", iri(c.cfg.RDF.SourceURI))
	}
	if example := fin.ExampleStopTime(); example != "" {
		c.sink.Statement(subj, "void:exampleResource", iri(example))
	}
}
