// Package rank turns catalog records and remote results into one ordered,
// deduplicated candidate list. Ranking is synchronous and pure so local
// results are always available even when the remote lookup is slow or down.
package rank

import (
	"sort"

	"github.com/finboard/symserve/pkg/catalog"
	"github.com/finboard/symserve/pkg/fuzzy"
)

// Source tells where a candidate came from. API results are authoritative
// and structurally outrank catalog results for the same ticker.
type Source string

const (
	SourceAPI     Source = "api"
	SourceCatalog Source = "catalog"
)

// noiseFloor drops candidates whose best score is a coincidental
// subsequence hit (single shared characters and the like).
const noiseFloor = 30

// Candidate is a transient scored record, valid for one merge cycle.
type Candidate struct {
	Record catalog.CompanyRecord
	Score  int
	Source Source
}

// Rank scores every record against the query and returns the survivors in
// descending score order. The sort is stable, so catalog order breaks ties.
func Rank(records []catalog.CompanyRecord, query string) []Candidate {
	if query == "" {
		return nil
	}

	var out []Candidate
	for _, rec := range records {
		if s := best(rec, query); s > noiseFloor {
			out = append(out, Candidate{Record: rec, Score: s, Source: SourceCatalog})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// best is the record's score: the maximum over ticker, name and aliases.
func best(rec catalog.CompanyRecord, query string) int {
	s := fuzzy.Score(rec.Ticker, query)
	if n := fuzzy.Score(rec.Name, query); n > s {
		s = n
	}
	for _, alias := range rec.Aliases {
		if a := fuzzy.Score(alias, query); a > s {
			s = a
		}
	}
	return s
}
