package gtfsrdf

import "fmt"

// Finalizer emits the statements that need whole-dataset knowledge: which
// routes serve a stop, which trips belong to a route, and each trip's ordered
// stop-time list. It runs once, after every table has been consumed, and
// drains the accumulator in sorted key order so output is deterministic.
type Finalizer struct {
	reg  *Registry
	acc  *Accumulator
	sink *Sink
}

func NewFinalizer(reg *Registry, acc *Accumulator, sink *Sink) *Finalizer {
	return &Finalizer{reg: reg, acc: acc, sink: sink}
}

func (f *Finalizer) Run() error {
	if err := f.emitStopRoutePairs(); err != nil {
		return err
	}
	if err := f.emitRouteTrips(); err != nil {
		return err
	}
	return f.emitStopTimeLists()
}

// emitStopRoutePairs writes the bidirectional stop/route association once per
// unique pair.
func (f *Finalizer) emitStopRoutePairs() error {
	for _, stopID := range f.acc.StopIDs() {
		stopURI, err := f.reg.Resolve(KindStop, stopID)
		if err != nil {
			return err
		}
		routes := f.acc.RoutesForStop(stopID)
		for _, routeID := range sortedInnerKeys(routes) {
			routeURI := routes[routeID]
			f.sink.Statement(iri(stopURI), "gtfs:route", iri(routeURI))
			f.sink.Statement(iri(routeURI), "gtfs:stop", iri(stopURI))
		}
	}
	return nil
}

func (f *Finalizer) emitRouteTrips() error {
	for _, routeID := range f.acc.RouteIDs() {
		routeURI, err := f.reg.Resolve(KindRoute, routeID)
		if err != nil {
			return err
		}
		trips := f.acc.TripsForRoute(routeID)
		for _, tripID := range sortedInnerKeys(trips) {
			f.sink.Statement(iri(routeURI), "gtfs:trip", iri(trips[tripID]))
		}
	}
	return nil
}

// emitStopTimeLists mints one ordered list resource per trip. Positions are
// the 1-based rank of the raw sequence values, not the values themselves:
// raw sequences 1, 5, 20 become positions 1, 2, 3.
func (f *Finalizer) emitStopTimeLists() error {
	for _, tripID := range f.acc.TripIDs() {
		tripURI, err := f.reg.Resolve(KindTrip, tripID)
		if err != nil {
			return err
		}
		listURI := MintURI(tripURI, "times")
		listSubj := iri(listURI)
		f.sink.Statement(listSubj, "a", "rdf:Seq")
		f.sink.Statement(listSubj, "rdfs:label", lit("Stop times for "+f.reg.Label(KindTrip, tripID)))
		f.sink.Statement(iri(tripURI), "gtfs:stopTimes", listSubj)
		for i, stopTimeURI := range f.acc.StopTimesInOrder(tripID) {
			f.sink.Statement(listSubj, fmt.Sprintf("rdf:_%d", i+1), iri(stopTimeURI))
		}
	}
	return nil
}

// ExampleStopTime picks the deterministic example resource for the dataset
// descriptor: the lexicographically smallest trip id, and within it the
// numerically smallest sequence. Empty when no stop-time exists.
func (f *Finalizer) ExampleStopTime() string {
	tripIDs := f.acc.TripIDs()
	if len(tripIDs) == 0 {
		return ""
	}
	times := f.acc.StopTimesInOrder(tripIDs[0])
	if len(times) == 0 {
		return ""
	}
	return times[0]
}
