package catalog

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadCSV reads catalog rows from a CSV file with the layout
//
//	ticker,name,sector,aliases
//
// where aliases is a semicolon-separated list. A header row starting with
// "ticker" is skipped. Rows with fewer than two fields are dropped with a
// debug log rather than failing the whole load.
func LoadCSV(path string) ([]CompanyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(rows) > 0 && strings.EqualFold(rows[0][0], "ticker") {
		rows = rows[1:]
	}

	var records []CompanyRecord
	for i, row := range rows {
		if len(row) < 2 {
			log.Debugf("catalog csv row %d has %d fields, skipping", i+1, len(row))
			continue
		}
		rec := CompanyRecord{
			Ticker: row[0],
			Name:   row[1],
		}
		if len(row) > 2 {
			rec.Sector = row[2]
		}
		if len(row) > 3 && strings.TrimSpace(row[3]) != "" {
			rec.Aliases = strings.Split(row[3], ";")
		}
		records = append(records, rec)
	}

	log.Debugf("loaded %d catalog rows from %s", len(records), path)
	return records, nil
}

// Load builds a Static catalog from the configured CSV path, falling back to
// the builtin reference table when the path is empty or unreadable. Search
// must stay functional with zero external files, so a load failure degrades
// instead of aborting.
func Load(path string) *Static {
	if path == "" {
		return NewStatic(Builtin())
	}
	records, err := LoadCSV(path)
	if err != nil {
		log.Warnf("failed to load catalog from %s: %v. Using builtin reference table...", path, err)
		return NewStatic(Builtin())
	}
	return NewStatic(records)
}
