package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "companies.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "ticker,name,sector,aliases\n"+
		"AAPL,Apple Inc.,Technology,apple;iphone\n"+
		"KO,Coca-Cola Company,Consumer Defensive,\n"+
		"V,Visa Inc.\n"+
		"BADROW\n")

	records, err := LoadCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 rows (header and short row skipped), got %d", len(records))
	}
	if records[0].Ticker != "AAPL" || len(records[0].Aliases) != 2 {
		t.Errorf("alias split failed: %+v", records[0])
	}
	if records[1].Aliases != nil {
		t.Errorf("empty alias column must stay nil, got %v", records[1].Aliases)
	}
	if records[2].Sector != "" {
		t.Errorf("missing sector column must stay empty, got %q", records[2].Sector)
	}
}

func TestLoadCSVMissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	s := Load("")
	if s.Len() != len(Builtin()) {
		t.Errorf("empty path must load the builtin table (%d), got %d", len(Builtin()), s.Len())
	}

	s = Load(filepath.Join(t.TempDir(), "missing.csv"))
	if s.Len() != len(Builtin()) {
		t.Error("unreadable path must degrade to the builtin table")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeCSV(t, "NVDA,NVIDIA Corporation,Technology,nvidia;geforce\n")
	s := Load(path)
	if s.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", s.Len())
	}
	if _, ok := s.ByTicker("NVDA"); !ok {
		t.Error("loaded record not indexed")
	}
}
