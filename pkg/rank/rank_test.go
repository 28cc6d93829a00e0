package rank

import (
	"testing"

	"github.com/finboard/symserve/pkg/catalog"
)

func fixtureRecords() []catalog.CompanyRecord {
	return []catalog.CompanyRecord{
		{Ticker: "AAPL", Name: "Apple Inc.", Sector: "Technology", Aliases: []string{"apple", "iphone"}},
		{Ticker: "GOOGL", Name: "Alphabet Inc.", Sector: "Technology", Aliases: []string{"google"}},
		{Ticker: "MSFT", Name: "Microsoft Corporation", Sector: "Technology", Aliases: []string{"microsoft", "windows"}},
		{Ticker: "KO", Name: "Coca-Cola Company", Sector: "Consumer Defensive", Aliases: []string{"coke"}},
	}
}

func TestRankTakesBestFieldScore(t *testing.T) {
	// "appl" hits "Apple Inc." as a prefix substring: the record must
	// carry 100 even though the ticker only matches as a subsequence.
	out := Rank(fixtureRecords(), "appl")
	if len(out) == 0 {
		t.Fatal("expected candidates for 'appl'")
	}
	if out[0].Record.Ticker != "AAPL" || out[0].Score != 100 {
		t.Errorf("top candidate = %s score %d, want AAPL score 100", out[0].Record.Ticker, out[0].Score)
	}
	if out[0].Source != SourceCatalog {
		t.Errorf("rank must tag candidates as catalog, got %s", out[0].Source)
	}
}

func TestRankSubsequenceSurvivesNoiseFloor(t *testing.T) {
	// "gogl" misses a letter: no substring hit anywhere, but the alias
	// "google" matches as a subsequence (60 > noise floor).
	out := Rank(fixtureRecords(), "gogl")

	found := false
	for _, c := range out {
		if c.Record.Ticker == "GOOGL" {
			found = true
			if c.Score != 60 {
				t.Errorf("GOOGL score = %d, want 60", c.Score)
			}
		}
	}
	if !found {
		t.Error("GOOGL dropped despite subsequence match above the noise floor")
	}
}

func TestRankSortedNonIncreasing(t *testing.T) {
	queries := []string{"a", "co", "micro", "oo", "apple"}
	for _, q := range queries {
		out := Rank(fixtureRecords(), q)
		for i := 1; i < len(out); i++ {
			if out[i].Score > out[i-1].Score {
				t.Errorf("query %q: results not sorted at %d: %d > %d", q, i, out[i].Score, out[i-1].Score)
			}
		}
	}
}

func TestRankStableTieBreak(t *testing.T) {
	// Both records prefix-match "te"; catalog order must decide.
	records := []catalog.CompanyRecord{
		{Ticker: "TSLA", Name: "Tesla Inc."},
		{Ticker: "TXN", Name: "Texas Instruments Incorporated"},
	}
	out := Rank(records, "te")
	if len(out) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(out))
	}
	if out[0].Record.Ticker != "TSLA" || out[1].Record.Ticker != "TXN" {
		t.Errorf("tie not broken by catalog order: %s, %s", out[0].Record.Ticker, out[1].Record.Ticker)
	}
}

func TestRankNoiseFloorDropsWeakHits(t *testing.T) {
	// "o" is a subsequence of almost everything; flat 60 clears the
	// floor, so use a pattern that cannot fully match to check the zero
	// path, and an empty query for the guard.
	if out := Rank(fixtureRecords(), "zzz"); len(out) != 0 {
		t.Errorf("expected no candidates for 'zzz', got %d", len(out))
	}
	if out := Rank(fixtureRecords(), ""); out != nil {
		t.Error("empty query must rank nothing")
	}
}

func BenchmarkRank(b *testing.B) {
	records := catalog.Builtin()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Rank(records, "app")
	}
}
