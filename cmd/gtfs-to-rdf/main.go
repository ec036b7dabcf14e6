package main

import (
	"flag"
	"log"
	"os"

	gtfsrdf "github.com/theoremus-urban-solutions/gtfs-to-rdf"
	"github.com/theoremus-urban-solutions/gtfs-to-rdf/gtfs"
)

func main() {
	gtfsPath := flag.String("gtfs", "", "GTFS directory or zip archive")
	base := flag.String("base", "", "base URI for minted identifiers (no trailing slash)")
	license := flag.String("license", "", "license URI for the dataset descriptor")
	source := flag.String("source", "", "source URI for the dataset descriptor")
	split := flag.Int("split", -1, "rows per output batch; 0 = one unbounded batch")
	format := flag.String("format", "", "output format: turtle|ntriples")
	out := flag.String("out", "", "output file; default stdout")
	flag.Parse()

	gtfsrdf.InitLogging()
	if err := gtfsrdf.LoadAppConfig(); err != nil {
		log.Fatal(err)
	}
	cfg := gtfsrdf.Config
	if *gtfsPath != "" {
		cfg.GTFS.Path = *gtfsPath
	}
	if *base != "" {
		cfg.RDF.BaseURI = *base
	}
	if *license != "" {
		cfg.RDF.LicenseURI = *license
	}
	if *source != "" {
		cfg.RDF.SourceURI = *source
	}
	if *split >= 0 {
		cfg.RDF.SplitSize = *split
	}
	if *format != "" {
		cfg.RDF.Format = *format
	}
	if *out != "" {
		cfg.RDF.OutPath = *out
	}

	if cfg.GTFS.Path == "" {
		log.Fatal("GTFS input path required (-gtfs or config gtfs.path)")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	outputFormat, err := gtfsrdf.ParseOutputFormat(cfg.RDF.Format)
	if err != nil {
		log.Fatal(err)
	}

	feed, err := gtfs.OpenFeed(cfg.GTFS.Path)
	if err != nil {
		log.Fatal(err)
	}

	w := os.Stdout
	if cfg.RDF.OutPath != "" {
		f, err := os.Create(cfg.RDF.OutPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	sink := gtfsrdf.NewSink(w, outputFormat, cfg.RDF.SplitSize)
	conv := gtfsrdf.NewConversion(cfg, sink)
	if err := conv.Run(feed); err != nil {
		log.Fatal(err)
	}
}
