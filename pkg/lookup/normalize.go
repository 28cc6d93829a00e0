package lookup

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/finboard/symserve/pkg/catalog"
)

// The backend has grown three response shapes over time: a bare array,
// an object with a "results" (or "companies") array, and a ticker-keyed
// object. All of them normalize to []CompanyRecord here, at the boundary.
func normalizeResponse(body []byte) ([]catalog.CompanyRecord, error) {
	var asArray []catalog.CompanyRecord
	if err := json.Unmarshal(body, &asArray); err == nil {
		return normalizeAll(asArray), nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("unrecognized company search payload: %w", err)
	}

	for _, key := range []string{"results", "companies"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var wrapped []catalog.CompanyRecord
		if err := json.Unmarshal(raw, &wrapped); err != nil {
			return nil, fmt.Errorf("malformed %q array: %w", key, err)
		}
		return normalizeAll(wrapped), nil
	}

	// Ticker-keyed object. Map order is random in Go, so key order is
	// restored alphabetically to keep responses deterministic.
	tickers := make([]string, 0, len(obj))
	for t := range obj {
		tickers = append(tickers, t)
	}
	sort.Strings(tickers)

	records := make([]catalog.CompanyRecord, 0, len(obj))
	for _, t := range tickers {
		var rec catalog.CompanyRecord
		if err := json.Unmarshal(obj[t], &rec); err != nil {
			return nil, fmt.Errorf("unrecognized company search payload under key %q", t)
		}
		if rec.Ticker == "" {
			rec.Ticker = t
		}
		records = append(records, rec)
	}
	return normalizeAll(records), nil
}

// normalizeAll uppercases tickers and drops entries without one.
func normalizeAll(records []catalog.CompanyRecord) []catalog.CompanyRecord {
	out := make([]catalog.CompanyRecord, 0, len(records))
	for _, rec := range records {
		rec = rec.Normalize()
		if rec.Ticker == "" {
			continue
		}
		out = append(out, rec)
	}
	return out
}
