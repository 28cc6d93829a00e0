// Package catalog holds the static company reference data and the lookup
// structures built over it. The catalog is loaded once at startup and never
// mutated, so it is shared across search sessions without locking.
package catalog

import "strings"

// CompanyRecord is the canonical company shape used everywhere downstream.
// Ticker is the unique uppercase exchange symbol and acts as the dedup key.
type CompanyRecord struct {
	Ticker  string   `json:"ticker" toml:"ticker"`
	Name    string   `json:"name" toml:"name"`
	Sector  string   `json:"sector,omitempty" toml:"sector"`
	Aliases []string `json:"aliases,omitempty" toml:"aliases"`
}

// Normalize returns a copy with the ticker uppercased and fields trimmed.
// Remote payloads and CSV rows go through this before anything else sees them.
func (r CompanyRecord) Normalize() CompanyRecord {
	out := CompanyRecord{
		Ticker: strings.ToUpper(strings.TrimSpace(r.Ticker)),
		Name:   strings.TrimSpace(r.Name),
		Sector: strings.TrimSpace(r.Sector),
	}
	for _, a := range r.Aliases {
		if a = strings.TrimSpace(a); a != "" {
			out.Aliases = append(out.Aliases, a)
		}
	}
	return out
}
