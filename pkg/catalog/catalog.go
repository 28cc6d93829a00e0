package catalog

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Provider is the injected data source the ranker runs against.
// Implementations must return the same ordered slice on every call;
// the ordering is what breaks score ties downstream.
type Provider interface {
	// Records returns every known company in catalog order.
	Records() []CompanyRecord

	// ByTicker resolves a single record by its exact uppercase ticker.
	ByTicker(ticker string) (CompanyRecord, bool)

	// TickerPrefix returns records whose ticker starts with the given
	// prefix, in catalog order.
	TickerPrefix(prefix string) []CompanyRecord
}

// Static is the immutable in-memory Provider. A patricia trie over tickers
// serves exact and prefix lookups; the record slice preserves load order.
type Static struct {
	records []CompanyRecord
	trie    *patricia.Trie
}

// NewStatic builds a catalog from the given records. Records are normalized,
// and later duplicates of a ticker replace earlier ones so curated rows can
// override bulk rows (the last loaded source wins).
func NewStatic(records []CompanyRecord) *Static {
	s := &Static{trie: patricia.NewTrie()}

	seen := make(map[string]int, len(records))
	for _, rec := range records {
		rec = rec.Normalize()
		if rec.Ticker == "" || rec.Name == "" {
			log.Debugf("skipping catalog row with empty ticker or name: %+v", rec)
			continue
		}
		if i, dup := seen[rec.Ticker]; dup {
			s.records[i] = rec
			continue
		}
		seen[rec.Ticker] = len(s.records)
		s.records = append(s.records, rec)
	}

	for i, rec := range s.records {
		s.trie.Insert(patricia.Prefix(rec.Ticker), i)
	}

	log.Debugf("catalog ready: %d companies indexed", len(s.records))
	return s
}

// Records returns the full catalog in load order. Callers must not mutate it.
func (s *Static) Records() []CompanyRecord {
	return s.records
}

// ByTicker resolves an exact ticker, case-insensitively.
func (s *Static) ByTicker(ticker string) (CompanyRecord, bool) {
	item := s.trie.Get(patricia.Prefix(strings.ToUpper(ticker)))
	if item == nil {
		return CompanyRecord{}, false
	}
	return s.records[item.(int)], true
}

// TickerPrefix collects every record under the given ticker prefix.
func (s *Static) TickerPrefix(prefix string) []CompanyRecord {
	prefix = strings.ToUpper(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil
	}

	var idx []int
	err := s.trie.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		idx = append(idx, item.(int))
		return nil
	})
	if err != nil {
		log.Errorf("ticker prefix scan failed for %q: %v", prefix, err)
		return nil
	}

	// VisitSubtree walks in trie order; restore catalog order.
	sort.Ints(idx)
	out := make([]CompanyRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.records[i])
	}
	return out
}

// Len reports the number of indexed companies.
func (s *Static) Len() int {
	return len(s.records)
}
