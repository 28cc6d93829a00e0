package rank

import "github.com/finboard/symserve/pkg/catalog"

// apiScore is fixed for remote results: the backend has already applied
// its own relevance logic, so its ordering is taken as-is.
const apiScore = 100

// Merge combines remote results with ranked catalog candidates.
//
// Remote records come first in their original order, each as a score-100
// API candidate. Catalog candidates follow in their existing descending
// order, skipping any ticker the remote set already covers, and the
// concatenation is cut to maxResults. A catalog entry can never displace
// an API entry for the same ticker, whatever its score.
func Merge(apiResults []catalog.CompanyRecord, catalogRanked []Candidate, maxResults int) []Candidate {
	merged := make([]Candidate, 0, len(apiResults)+len(catalogRanked))
	seen := make(map[string]struct{}, len(apiResults))

	for _, rec := range apiResults {
		rec = rec.Normalize()
		if rec.Ticker == "" {
			continue
		}
		if _, dup := seen[rec.Ticker]; dup {
			continue
		}
		seen[rec.Ticker] = struct{}{}
		merged = append(merged, Candidate{Record: rec, Score: apiScore, Source: SourceAPI})
	}

	for _, c := range catalogRanked {
		if _, dup := seen[c.Record.Ticker]; dup {
			continue
		}
		seen[c.Record.Ticker] = struct{}{}
		merged = append(merged, c)
	}

	if maxResults > 0 && len(merged) > maxResults {
		merged = merged[:maxResults]
	}
	return merged
}
