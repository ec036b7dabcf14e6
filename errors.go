package gtfsrdf

import "fmt"

// MissingFieldError reports a required column absent or empty in a table row.
type MissingFieldError struct {
	Table string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %q", e.Table, e.Field)
}

// UnknownRouteTypeError reports a route_type code outside the GTFS enumeration.
type UnknownRouteTypeError struct {
	Code string
}

func (e *UnknownRouteTypeError) Error() string {
	return fmt.Sprintf("unknown route_type %q", e.Code)
}

// InvalidDateFormatError reports a calendar date that is not 8-digit YYYYMMDD.
type InvalidDateFormatError struct {
	Value string
}

func (e *InvalidDateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q: expected YYYYMMDD", e.Value)
}

// DuplicateEntityError reports a natural id registered twice with differing URIs.
type DuplicateEntityError struct {
	Kind EntityKind
	ID   string
}

func (e *DuplicateEntityError) Error() string {
	return fmt.Sprintf("duplicate %s %q registered with a different URI", e.Kind, e.ID)
}

// DuplicateSequenceError reports two stop_times rows sharing a stop_sequence
// within one trip.
type DuplicateSequenceError struct {
	TripID   string
	Sequence int
}

func (e *DuplicateSequenceError) Error() string {
	return fmt.Sprintf("trip %q: duplicate stop_sequence %d", e.TripID, e.Sequence)
}

// UnresolvedReferenceError reports a row referencing an id never registered.
type UnresolvedReferenceError struct {
	Kind EntityKind
	ID   string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("unresolved %s reference %q", e.Kind, e.ID)
}
