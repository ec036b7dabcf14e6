package gtfsrdf

import "strings"

// Namespace IRIs used in the emitted graph.
const (
	NSRDF  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	NSRDFS = "http://www.w3.org/2000/01/rdf-schema#"
	NSXSD  = "http://www.w3.org/2001/XMLSchema#"
	NSDCT  = "http://purl.org/dc/terms/"
	NSFOAF = "http://xmlns.com/foaf/0.1/"
	NSGeo  = "http://www.w3.org/2003/01/geo/wgs84_pos#"
	NSVoID = "http://rdfs.org/ns/void#"
	NSGTFS = "http://vocab.gtfs.org/terms#"
)

// prefixTable maps prefix labels to their namespaces, in preamble order.
var prefixTable = []struct {
	Label string
	NS    string
}{
	{"rdf", NSRDF},
	{"rdfs", NSRDFS},
	{"xsd", NSXSD},
	{"dct", NSDCT},
	{"foaf", NSFOAF},
	{"geo", NSGeo},
	{"void", NSVoID},
	{"gtfs", NSGTFS},
}

// Preamble returns the shared @prefix block emitted at the head of every batch.
func Preamble() string {
	var b strings.Builder
	for _, p := range prefixTable {
		b.WriteString("@prefix ")
		b.WriteString(p.Label)
		b.WriteString(": <")
		b.WriteString(p.NS)
		b.WriteString("> .\n")
	}
	b.WriteString("\n")
	return b.String()
}

// routeTypeTerms maps GTFS route_type codes to vocabulary class names.
var routeTypeTerms = map[int]string{
	0: "LightRail",
	1: "Subway",
	2: "Rail",
	3: "Bus",
	4: "Ferry",
	5: "CableCar",
	6: "Gondola",
	7: "Funicular",
}
