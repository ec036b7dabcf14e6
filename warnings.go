package gtfsrdf

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Warning type constants
const (
	WarningUnusedOptionalTable = "unused_optional_table"
	WarningRouteNoName         = "route_no_name"
	WarningStopNoCoordinates   = "stop_no_coordinates"
	WarningAgencyNoID          = "agency_no_id"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects non-fatal observations during conversion and
// outputs consolidated summaries at the end of a run.
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(feedPath string) {
	if len(w.warnings) == 0 {
		return
	}

	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, warningType := range types {
		message := w.formatWarningMessage(warningType, feedPath, w.warnings[warningType])
		log.Printf("%s", message)
	}
}

// formatWarningMessage creates a human-readable warning message
func (w *WarningAggregator) formatWarningMessage(warningType, feedPath string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningUnusedOptionalTable:
		description = "optional tables not consumed by the converter"
		action = "Accepting the files without emitting statements for them"
	case WarningRouteNoName:
		description = "routes with neither route_short_name nor route_long_name"
		action = "Using route_id as the display label"
	case WarningStopNoCoordinates:
		description = "stops without usable stop_lat/stop_lon"
		action = "Emitting the stop without geo coordinates"
	case WarningAgencyNoID:
		description = "agencies without an agency_id"
		action = "Registering the agency under its name instead"
	default:
		description = "unknown issue"
		action = "Continuing with fallback behavior"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Feed %s has %s (%d occurrences). %s. Examples: %s",
		feedPath, description, info.count, action, examplesStr)
}
