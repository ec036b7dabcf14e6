/*
Package gtfs reads static GTFS tables into ordered field-name keyed records.

This package is the table-reading collaborator of the converter: it opens a
directory of .txt tables or a GTFS zip archive, matches columns by header name
(order-independent), and hands each table over as a slice of rows. It does not
interpret any field beyond the header; validation and URI minting happen in
the converter.

# Basic Usage

	feed, err := gtfs.OpenFeed("path/to/gtfs")
	if err != nil {
	    log.Fatal(err)
	}
	rows := feed.Table(gtfs.TableStops)
	for _, row := range rows {
	    name := row["stop_name"]
	    _ = name
	}

Required tables are {agency, stops, routes, trips, stop_times, calendar}; a
missing one is a MissingRequiredFileError. Optional tables are kept when
present and listed via feed.UnusedOptional() when the converter does not
consume them.
*/
package gtfs
