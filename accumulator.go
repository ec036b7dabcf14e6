package gtfsrdf

import "sort"

// Accumulator indexes the cross-table associations that cannot be emitted from
// a single row in isolation. It is populated during the stop_times pass and
// drained exactly once by the finalizer.
type Accumulator struct {
	stopRoutes map[string]map[string]string // stop id -> route id -> route URI
	routeTrips map[string]map[string]string // route id -> trip id -> trip URI
	tripTimes  map[string]map[int]string    // trip id -> stop_sequence -> stop-time URI
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		stopRoutes: make(map[string]map[string]string),
		routeTrips: make(map[string]map[string]string),
		tripTimes:  make(map[string]map[int]string),
	}
}

// RecordStopRoute notes that a route serves a stop. Recording the same pair
// again is a no-op.
func (a *Accumulator) RecordStopRoute(stopID, routeID, routeURI string) {
	routes, ok := a.stopRoutes[stopID]
	if !ok {
		routes = make(map[string]string)
		a.stopRoutes[stopID] = routes
	}
	routes[routeID] = routeURI
}

// RecordRouteTrip notes that a trip belongs to a route.
func (a *Accumulator) RecordRouteTrip(routeID, tripID, tripURI string) {
	trips, ok := a.routeTrips[routeID]
	if !ok {
		trips = make(map[string]string)
		a.routeTrips[routeID] = trips
	}
	trips[tripID] = tripURI
}

// RecordTripStopTime notes one stop-time of a trip under its raw sequence
// value. A sequence seen twice within one trip is a DuplicateSequenceError.
func (a *Accumulator) RecordTripStopTime(tripID string, sequence int, stopTimeURI string) error {
	times, ok := a.tripTimes[tripID]
	if !ok {
		times = make(map[int]string)
		a.tripTimes[tripID] = times
	}
	if _, dup := times[sequence]; dup {
		return &DuplicateSequenceError{TripID: tripID, Sequence: sequence}
	}
	times[sequence] = stopTimeURI
	return nil
}

// StopIDs returns the recorded stop ids in sorted order.
func (a *Accumulator) StopIDs() []string {
	return sortedKeys(a.stopRoutes)
}

// RoutesForStop returns route id -> route URI for one stop.
func (a *Accumulator) RoutesForStop(stopID string) map[string]string {
	return a.stopRoutes[stopID]
}

// RouteIDs returns the recorded route ids in sorted order.
func (a *Accumulator) RouteIDs() []string {
	return sortedKeys(a.routeTrips)
}

// TripsForRoute returns trip id -> trip URI for one route.
func (a *Accumulator) TripsForRoute(routeID string) map[string]string {
	return a.routeTrips[routeID]
}

// TripIDs returns the trip ids with recorded stop-times in sorted order.
func (a *Accumulator) TripIDs() []string {
	keys := make([]string, 0, len(a.tripTimes))
	for k := range a.tripTimes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// StopTimesInOrder returns one trip's stop-time URIs ordered by ascending
// numeric sequence value.
func (a *Accumulator) StopTimesInOrder(tripID string) []string {
	times := a.tripTimes[tripID]
	seqs := make([]int, 0, len(times))
	for seq := range times {
		seqs = append(seqs, seq)
	}
	sort.Ints(seqs)
	uris := make([]string, len(seqs))
	for i, seq := range seqs {
		uris[i] = times[seq]
	}
	return uris
}

// Sequences returns one trip's raw sequence values in ascending order.
func (a *Accumulator) Sequences(tripID string) []int {
	times := a.tripTimes[tripID]
	seqs := make([]int, 0, len(times))
	for seq := range times {
		seqs = append(seqs, seq)
	}
	sort.Ints(seqs)
	return seqs
}

func sortedKeys(m map[string]map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedInnerKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
