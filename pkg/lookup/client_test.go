package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSearchBareArrayShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/companies/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "appl" {
			t.Errorf("query param = %q, want appl", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"ticker":"aapl","name":"Apple Inc.","sector":"Technology"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	records, err := c.Search(context.Background(), "appl")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].Ticker != "AAPL" {
		t.Errorf("ticker not normalized to uppercase: %q", records[0].Ticker)
	}
}

func TestSearchWrapperShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[{"ticker":"MSFT","name":"Microsoft Corporation"},{"ticker":"META","name":"Meta Platforms Inc."}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	records, err := c.Search(context.Background(), "m")
	if err == nil && len(records) != 0 {
		t.Fatal("single-character query must skip the network entirely")
	}

	records, err = c.Search(context.Background(), "micro")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 || records[0].Ticker != "MSFT" {
		t.Errorf("wrapper shape not normalized: %+v", records)
	}
}

func TestSearchKeyedObjectShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"GOOGL":{"name":"Alphabet Inc."},"GOOG":{"name":"Alphabet Inc. Class C"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	records, err := c.Search(context.Background(), "goog")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	// alphabetical key order for determinism; tickers filled from the keys
	if records[0].Ticker != "GOOG" || records[1].Ticker != "GOOGL" {
		t.Errorf("keyed shape order wrong: %s, %s", records[0].Ticker, records[1].Ticker)
	}
}

func TestSearchEmptyWrapper(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	records, err := c.Search(context.Background(), "nothing")
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestSearchNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	records, err := c.Search(context.Background(), "appl")
	if err == nil {
		t.Error("non-2xx must surface as an error")
	}
	if len(records) != 0 {
		t.Errorf("error responses must carry no records, got %d", len(records))
	}
}

func TestSearchGarbagePayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, 2)
	if _, err := c.Search(context.Background(), "appl"); err == nil {
		t.Error("undecodable payload must surface as an error")
	}
}

func TestSearchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 20*time.Millisecond, 2)
	if _, err := c.Search(context.Background(), "slow"); err == nil {
		t.Error("timeout must surface as an error")
	}
}

func TestDisabledClient(t *testing.T) {
	c := NewClient("", time.Second, 2)
	if c.Enabled() {
		t.Error("empty base URL must disable the client")
	}
	records, err := c.Search(context.Background(), "anything")
	if err != nil || records != nil {
		t.Error("disabled client must be a silent no-op")
	}
}

func TestSearchContextCancel(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	c := NewClient(srv.URL, time.Second, 2)
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if _, err := c.Search(ctx, "appl"); err == nil {
		t.Error("canceled context must abort the request")
	}
}
