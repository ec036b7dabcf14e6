package gtfs

// TableKind enumerates the GTFS tables the converter processes, in their
// fixed consumption order. The order matters: later tables reference ids
// minted from earlier ones, and frequencies must precede trips so the
// frequency/stop-time exclusivity decision can be made per trip.
type TableKind int

const (
	TableCalendar TableKind = iota
	TableAgency
	TableRoutes
	TableFrequencies
	TableTrips
	TableStops
	TableStopTimes
)

// ProcessOrder is the fixed order in which tables are consumed.
var ProcessOrder = [...]TableKind{
	TableCalendar,
	TableAgency,
	TableRoutes,
	TableFrequencies,
	TableTrips,
	TableStops,
	TableStopTimes,
}

// Name returns the table's file base name (without .txt).
func (k TableKind) Name() string {
	switch k {
	case TableCalendar:
		return "calendar"
	case TableAgency:
		return "agency"
	case TableRoutes:
		return "routes"
	case TableFrequencies:
		return "frequencies"
	case TableTrips:
		return "trips"
	case TableStops:
		return "stops"
	case TableStopTimes:
		return "stop_times"
	}
	return "unknown"
}

func (k TableKind) String() string { return k.Name() }

// Required reports whether the table must be present in every feed.
func (k TableKind) Required() bool {
	return k != TableFrequencies
}

// requiredTables are the files every feed must carry.
var requiredTables = []string{"agency", "stops", "routes", "trips", "stop_times", "calendar"}

// optionalTables are recognized when present. Of these only frequencies is
// consumed; the rest are acknowledged and passed over.
var optionalTables = []string{"calendar_dates", "fare_attributes", "fare_rules", "shapes", "frequencies", "transfers"}

// Row is one record of a table, keyed by header name.
type Row map[string]string
