package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// MissingRequiredFileError reports a required GTFS table absent from the feed.
type MissingRequiredFileError struct {
	Name string
}

func (e *MissingRequiredFileError) Error() string {
	return fmt.Sprintf("required GTFS file %s.txt not found", e.Name)
}

// Feed holds the parsed tables of one static GTFS dataset.
type Feed struct {
	tables map[string][]Row
}

// NewFeed returns an empty feed. Intended for tests and programmatic feeds;
// file-based callers use OpenFeed.
func NewFeed() *Feed {
	return &Feed{tables: make(map[string][]Row)}
}

// AddTable stores rows under a table name, replacing any previous content.
func (f *Feed) AddTable(name string, rows []Row) {
	f.tables[name] = rows
}

// Has reports whether a table was present in the feed.
func (f *Feed) Has(name string) bool {
	_, ok := f.tables[name]
	return ok
}

// Table returns the rows of a table, nil when absent.
func (f *Feed) Table(kind TableKind) []Row {
	return f.tables[kind.Name()]
}

// UnusedOptional lists optional tables present in the feed that the converter
// does not consume, in sorted order.
func (f *Feed) UnusedOptional() []string {
	var unused []string
	for _, name := range optionalTables {
		if name == "frequencies" {
			continue
		}
		if f.Has(name) {
			unused = append(unused, name)
		}
	}
	sort.Strings(unused)
	return unused
}

// OpenFeed reads a GTFS dataset from a directory of .txt tables or from a
// zip archive, then verifies every required table is present.
func OpenFeed(path string) (*Feed, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	feed := NewFeed()
	if info.IsDir() {
		err = feed.loadFromDir(path)
	} else {
		err = feed.loadFromZip(path)
	}
	if err != nil {
		return nil, err
	}
	for _, name := range requiredTables {
		if !feed.Has(name) {
			return nil, &MissingRequiredFileError{Name: name}
		}
	}
	return feed, nil
}

func (f *Feed) loadFromDir(dir string) error {
	for _, name := range append(append([]string{}, requiredTables...), optionalTables...) {
		p := filepath.Join(dir, name+".txt")
		file, err := os.Open(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}
		rows, err := parseTable(file)
		file.Close()
		if err != nil {
			return fmt.Errorf("%s.txt: %w", name, err)
		}
		f.tables[name] = rows
	}
	return nil
}

func (f *Feed) loadFromZip(path string) error {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return err
	}
	defer zr.Close()
	for _, zf := range zr.File {
		name := strings.ToLower(filepath.Base(zf.Name))
		if !strings.HasSuffix(name, ".txt") {
			continue
		}
		base := strings.TrimSuffix(name, ".txt")
		if !knownTable(base) {
			continue
		}
		r, err := zf.Open()
		if err != nil {
			return err
		}
		rows, err := parseTable(r)
		r.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", zf.Name, err)
		}
		f.tables[base] = rows
	}
	return nil
}

func knownTable(name string) bool {
	for _, t := range requiredTables {
		if t == name {
			return true
		}
	}
	for _, t := range optionalTables {
		if t == name {
			return true
		}
	}
	return false
}

// parseTable reads one delimited table: first record is the header, columns
// are matched by name.
func parseTable(r io.Reader) ([]Row, error) {
	csvr := csv.NewReader(r)
	csvr.TrimLeadingSpace = true
	records, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	header := records[0]
	// Strip a UTF-8 BOM some feeds carry on the first header cell.
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[strings.TrimSpace(col)] = strings.TrimSpace(rec[i])
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
