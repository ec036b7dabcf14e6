package gtfsrdf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/gtfs-to-rdf/gtfs"
)

// frequency is one frequencies.txt record buffered until its trip is minted.
type frequency struct {
	StartTime   string
	EndTime     string
	HeadwaySecs int
}

// Emitter produces the statements that are locally resolvable from one row.
// Statements needing whole-dataset knowledge are recorded in the Accumulator
// and emitted later by the Finalizer.
type Emitter struct {
	base string
	reg  *Registry
	acc  *Accumulator
	sink *Sink
	warn *WarningAggregator

	// Populated during the frequencies pass; consulted when trips and
	// stop_times are processed.
	freqs map[string][]frequency

	// trip id -> route id, needed when stop_times rows feed the accumulator.
	tripRoutes map[string]string
}

func NewEmitter(baseURI string, reg *Registry, acc *Accumulator, sink *Sink, warn *WarningAggregator) *Emitter {
	return &Emitter{
		base:       baseURI,
		reg:        reg,
		acc:        acc,
		sink:       sink,
		warn:       warn,
		freqs:      make(map[string][]frequency),
		tripRoutes: make(map[string]string),
	}
}

var datePattern = regexp.MustCompile(`^\d{8}$`)

// convertDate rewrites an 8-digit YYYYMMDD value to YYYY-MM-DD.
func convertDate(value string) (string, error) {
	if !datePattern.MatchString(value) {
		return "", &InvalidDateFormatError{Value: value}
	}
	return value[0:4] + "-" + value[4:6] + "-" + value[6:8], nil
}

// truthy coerces a calendar day flag: empty and zero are false, anything
// else is true.
func truthy(value string) bool {
	return value != "" && value != "0"
}

func requireFields(table string, row gtfs.Row, fields ...string) error {
	for _, f := range fields {
		if row[f] == "" {
			return &MissingFieldError{Table: table, Field: f}
		}
	}
	return nil
}

// EmitAgency handles one agency.txt row.
func (e *Emitter) EmitAgency(row gtfs.Row) error {
	if err := requireFields("agency", row, "agency_name", "agency_url", "agency_timezone"); err != nil {
		return err
	}
	name := row["agency_name"]
	id := row["agency_id"]
	if id == "" {
		id = name
		e.warn.Add(WarningAgencyNoID, name)
	}
	uri := MintURI(e.base, "agency", NameID(name))
	if err := e.reg.Register(KindAgency, id, uri); err != nil {
		return err
	}
	e.reg.SetLabel(KindAgency, id, name)

	subj := iri(uri)
	e.sink.Statement(subj, "a", "gtfs:Agency")
	e.sink.Statement(subj, "foaf:name", lit(name))
	e.sink.Statement(subj, "foaf:homepage", iri(row["agency_url"]))
	e.sink.Statement(subj, "gtfs:timeZone", lit(row["agency_timezone"]))
	if v := row["agency_lang"]; v != "" {
		e.sink.Statement(subj, "dct:language", lit(v))
	}
	if v := row["agency_phone"]; v != "" {
		e.sink.Statement(subj, "foaf:phone", lit(v))
	}
	return nil
}

// EmitService handles one calendar.txt row.
func (e *Emitter) EmitService(row gtfs.Row) error {
	if err := requireFields("calendar", row, "service_id", "start_date", "end_date"); err != nil {
		return err
	}
	id := row["service_id"]
	uri := MintURI(e.base, "service", id)
	if err := e.reg.Register(KindService, id, uri); err != nil {
		return err
	}

	subj := iri(uri)
	e.sink.Statement(subj, "a", "gtfs:Service")
	for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"} {
		e.sink.Statement(subj, "gtfs:"+day, boolLit(truthy(row[day])))
	}
	start, err := convertDate(row["start_date"])
	if err != nil {
		return err
	}
	end, err := convertDate(row["end_date"])
	if err != nil {
		return err
	}
	e.sink.Statement(subj, "gtfs:startDate", typedLit(start, "xsd:date"))
	e.sink.Statement(subj, "gtfs:endDate", typedLit(end, "xsd:date"))
	return nil
}

// EmitRoute handles one routes.txt row.
func (e *Emitter) EmitRoute(row gtfs.Row) error {
	if err := requireFields("routes", row, "route_id", "route_type"); err != nil {
		return err
	}
	id := row["route_id"]
	label := row["route_short_name"]
	if label == "" {
		label = row["route_long_name"]
	}
	if label == "" {
		label = id
		e.warn.Add(WarningRouteNoName, id)
	}
	rawType := row["route_type"]
	code, err := strconv.Atoi(rawType)
	if err != nil {
		return &UnknownRouteTypeError{Code: rawType}
	}
	term, ok := routeTypeTerms[code]
	if !ok {
		return &UnknownRouteTypeError{Code: rawType}
	}

	uri := MintURI(e.base, "route", NameID(label))
	if err := e.reg.Register(KindRoute, id, uri); err != nil {
		return err
	}
	e.reg.SetLabel(KindRoute, id, label)

	subj := iri(uri)
	e.sink.Statement(subj, "a", "gtfs:Route")
	e.sink.Statement(subj, "rdfs:label", lit(label))
	e.sink.Statement(subj, "gtfs:routeType", "gtfs:"+term)
	if v := row["route_short_name"]; v != "" {
		e.sink.Statement(subj, "gtfs:shortName", lit(v))
	}
	if v := row["route_long_name"]; v != "" {
		e.sink.Statement(subj, "gtfs:longName", lit(v))
	}
	if v := row["route_desc"]; v != "" {
		e.sink.Statement(subj, "dct:description", lit(v))
	}
	if v := row["agency_id"]; v != "" {
		agencyURI, err := e.reg.Resolve(KindAgency, v)
		if err != nil {
			return err
		}
		e.sink.Statement(subj, "gtfs:agency", iri(agencyURI))
	}
	return nil
}

// EmitFrequency handles one frequencies.txt row. Nothing is emitted yet: the
// trip it attaches to is minted later, during the trips pass.
func (e *Emitter) EmitFrequency(row gtfs.Row) error {
	if err := requireFields("frequencies", row, "trip_id", "start_time", "end_time", "headway_secs"); err != nil {
		return err
	}
	headway, err := strconv.Atoi(row["headway_secs"])
	if err != nil {
		return fmt.Errorf("frequencies: headway_secs %q is not an integer (trip %s)", row["headway_secs"], row["trip_id"])
	}
	e.freqs[row["trip_id"]] = append(e.freqs[row["trip_id"]], frequency{
		StartTime:   row["start_time"],
		EndTime:     row["end_time"],
		HeadwaySecs: headway,
	})
	return nil
}

// tripNumber prefixes purely numeric trip ids with '#'.
func tripNumber(tripID string) string {
	for _, r := range tripID {
		if r < '0' || r > '9' {
			return tripID
		}
	}
	return "#" + tripID
}

// EmitTrip handles one trips.txt row. The parent route and service must have
// been minted already.
func (e *Emitter) EmitTrip(row gtfs.Row) error {
	if err := requireFields("trips", row, "trip_id", "route_id", "service_id"); err != nil {
		return err
	}
	id := row["trip_id"]
	routeID := row["route_id"]
	serviceID := row["service_id"]

	routeURI, err := e.reg.Resolve(KindRoute, routeID)
	if err != nil {
		return err
	}
	serviceURI, err := e.reg.Resolve(KindService, serviceID)
	if err != nil {
		return err
	}

	uri := MintURI(routeURI, id)
	if err := e.reg.Register(KindTrip, id, uri); err != nil {
		return err
	}
	label := fmt.Sprintf("Route %s, %s service, %s", routeID, serviceID, tripNumber(id))
	e.reg.SetLabel(KindTrip, id, label)
	e.tripRoutes[id] = routeID

	subj := iri(uri)
	e.sink.Statement(subj, "a", "gtfs:Trip")
	e.sink.Statement(subj, "rdfs:label", lit(label))
	e.sink.Statement(subj, "gtfs:route", iri(routeURI))
	e.sink.Statement(subj, "gtfs:service", iri(serviceURI))
	if v := row["trip_headsign"]; v != "" {
		e.sink.Statement(subj, "gtfs:headsign", lit(v))
	}
	if v := row["block_id"]; v != "" {
		e.sink.Statement(subj, "gtfs:block", lit(v))
	}
	// A frequency-based trip carries the window and headway itself; its
	// stop-times then omit explicit arrival/departure times.
	for _, f := range e.freqs[id] {
		e.sink.Statement(subj, "gtfs:startTime", lit(f.StartTime))
		e.sink.Statement(subj, "gtfs:endTime", lit(f.EndTime))
		e.sink.Statement(subj, "gtfs:headwaySeconds", typedLit(strconv.Itoa(f.HeadwaySecs), "xsd:integer"))
	}
	return nil
}

// EmitStop handles one stops.txt row.
func (e *Emitter) EmitStop(row gtfs.Row) error {
	if err := requireFields("stops", row, "stop_id", "stop_name"); err != nil {
		return err
	}
	id := row["stop_id"]
	name := row["stop_name"]
	uri := MintURI(e.base, "stop", NameID(name))
	if err := e.reg.Register(KindStop, id, uri); err != nil {
		return err
	}
	e.reg.SetLabel(KindStop, id, name)

	subj := iri(uri)
	e.sink.Statement(subj, "a", "gtfs:Stop")
	e.sink.Statement(subj, "foaf:name", lit(name))
	lat, lon := row["stop_lat"], row["stop_lon"]
	if _, errLat := strconv.ParseFloat(lat, 64); errLat == nil {
		if _, errLon := strconv.ParseFloat(lon, 64); errLon == nil {
			e.sink.Statement(subj, "geo:lat", typedLit(lat, "xsd:decimal"))
			e.sink.Statement(subj, "geo:long", typedLit(lon, "xsd:decimal"))
		} else {
			e.warn.Add(WarningStopNoCoordinates, id)
		}
	} else {
		e.warn.Add(WarningStopNoCoordinates, id)
	}
	if v := row["stop_desc"]; v != "" {
		e.sink.Statement(subj, "dct:description", lit(v))
	}
	return nil
}

// EmitStopTime handles one stop_times.txt row. This is the only pass that
// feeds the accumulator: by now every trip, route and stop is minted.
func (e *Emitter) EmitStopTime(row gtfs.Row) error {
	if err := requireFields("stop_times", row, "trip_id", "stop_id", "stop_sequence"); err != nil {
		return err
	}
	tripID := row["trip_id"]
	stopID := row["stop_id"]
	rawSeq := row["stop_sequence"]

	tripURI, err := e.reg.Resolve(KindTrip, tripID)
	if err != nil {
		return err
	}
	stopURI, err := e.reg.Resolve(KindStop, stopID)
	if err != nil {
		return err
	}
	seq, err := strconv.Atoi(rawSeq)
	if err != nil {
		return fmt.Errorf("stop_times: stop_sequence %q is not an integer (trip %s)", rawSeq, tripID)
	}

	uri := MintURI(tripURI, rawSeq)
	if err := e.acc.RecordTripStopTime(tripID, seq, uri); err != nil {
		return err
	}
	routeID := e.tripRoutes[tripID]
	routeURI, err := e.reg.Resolve(KindRoute, routeID)
	if err != nil {
		return err
	}
	e.acc.RecordStopRoute(stopID, routeID, routeURI)
	e.acc.RecordRouteTrip(routeID, tripID, tripURI)

	subj := iri(uri)
	e.sink.Statement(subj, "a", "gtfs:StopTime")
	e.sink.Statement(subj, "gtfs:trip", iri(tripURI))
	e.sink.Statement(subj, "gtfs:stop", iri(stopURI))
	e.sink.Statement(subj, "gtfs:sequence", typedLit(strconv.Itoa(seq), "xsd:integer"))

	if len(e.freqs[tripID]) == 0 {
		if err := requireFields("stop_times", row, "arrival_time", "departure_time"); err != nil {
			return err
		}
		e.sink.Statement(subj, "gtfs:arrivalTime", lit(row["arrival_time"]))
		e.sink.Statement(subj, "gtfs:departureTime", lit(row["departure_time"]))
	}
	return nil
}

// HasFrequency reports whether a trip is frequency-based.
func (e *Emitter) HasFrequency(tripID string) bool {
	return len(e.freqs[tripID]) > 0
}

// Term formatting helpers for the Turtle the sink receives.

func iri(uri string) string { return "<" + uri + ">" }

func lit(s string) string { return `"` + escapeLiteral(s) + `"` }

func typedLit(s, datatype string) string { return lit(s) + "^^" + datatype }

func boolLit(b bool) string {
	if b {
		return typedLit("true", "xsd:boolean")
	}
	return typedLit("false", "xsd:boolean")
}

// escapeLiteral escapes quotes, backslashes and control characters per the
// Turtle string-literal rules.
func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
