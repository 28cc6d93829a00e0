/*
Package search wires the debouncer, ranker, remote lookup and merger into a
per-surface Session: the state machine behind every company search input in
the dashboard (header search, add-position, comparison picker).

Each surface owns exactly one Session. Raw query edits land synchronously;
the stabilized query fires after the debounce quiet period and triggers one
ranking pass plus at most one remote lookup. Remote responses carry the
sequence number of the query that issued them and are discarded when a
newer query has stabilized since, so a slow response can never overwrite
fresher results.
*/
package search

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/finboard/symserve/internal/utils"
	"github.com/finboard/symserve/pkg/catalog"
	"github.com/finboard/symserve/pkg/lookup"
	"github.com/finboard/symserve/pkg/rank"
)

// Key is a navigation event from the embedding surface.
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
	KeyEscape
)

// Options configures one search surface.
type Options struct {
	Placeholder string
	MaxResults  int
	Debounce    time.Duration
	MinQuery    int
}

// DefaultOptions mirror the dashboard defaults.
func DefaultOptions() Options {
	return Options{
		Placeholder: "Search companies...",
		MaxResults:  8,
		Debounce:    250 * time.Millisecond,
		MinQuery:    2,
	}
}

// Snapshot is a consistent copy of session state for rendering.
type Snapshot struct {
	RawQuery        string
	StabilizedQuery string
	Results         []rank.Candidate
	Open            bool
	Highlighted     int
	Loading         bool
	Degraded        bool
}

// Session owns the search state for one input surface. All mutation goes
// through its methods; the mutex serializes UI events against the debounce
// timer and remote completion goroutines.
type Session struct {
	mu       sync.Mutex
	opts     Options
	provider catalog.Provider
	remote   *lookup.Client
	deb      *Debouncer
	onSelect func(catalog.CompanyRecord)

	raw         string
	stabilized  string
	ranked      []rank.Candidate // catalog candidates for the stabilized query
	results     []rank.Candidate
	open        bool
	highlighted int
	loading     bool
	degraded    bool

	seq          uint64 // sequence of the newest issued lookup
	cancelLookup context.CancelFunc
}

// NewSession builds a closed, empty session. onSelect fires exactly once
// per committed selection and is the session's only externally visible
// side effect.
func NewSession(opts Options, provider catalog.Provider, remote *lookup.Client, onSelect func(catalog.CompanyRecord)) *Session {
	if opts.MaxResults < 1 {
		opts.MaxResults = DefaultOptions().MaxResults
	}
	if opts.MinQuery < 1 {
		opts.MinQuery = DefaultOptions().MinQuery
	}

	s := &Session{
		opts:        opts,
		provider:    provider,
		remote:      remote,
		onSelect:    onSelect,
		highlighted: -1,
	}
	s.deb = NewDebouncer(opts.Debounce, s.stabilize)
	return s
}

// SetQuery records a keystroke. The raw query updates synchronously, the
// dropdown opens once the query is long enough, and the debounce clock
// restarts.
func (s *Session) SetQuery(raw string) {
	s.mu.Lock()
	s.raw = raw
	if len(raw) >= s.opts.MinQuery {
		s.open = true
	} else {
		s.open = false
		s.highlighted = -1
	}
	s.mu.Unlock()

	s.deb.Input(raw)
}

// Focus reopens the dropdown when the input regains focus with a live query.
func (s *Session) Focus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.raw) >= s.opts.MinQuery {
		s.open = true
	}
}

// Blur closes the dropdown without committing (outside click / tab away).
func (s *Session) Blur() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// Key feeds a navigation event into the state machine.
func (s *Session) Key(k Key) {
	s.mu.Lock()

	switch k {
	case KeyEscape:
		s.open = false
		s.highlighted = -1
		s.mu.Unlock()
		return

	case KeyDown, KeyUp:
		if !s.open || len(s.results) == 0 {
			s.mu.Unlock()
			return
		}
		n := len(s.results)
		if k == KeyDown {
			s.highlighted = (s.highlighted + 1) % n
		} else if s.highlighted <= 0 {
			// Covers both the unhighlighted state and wrapping off the top.
			s.highlighted = n - 1
		} else {
			s.highlighted--
		}
		s.mu.Unlock()
		return

	case KeyEnter:
		if !s.open || len(s.results) == 0 {
			s.mu.Unlock()
			return
		}
		idx := s.highlighted
		if idx < 0 || idx >= len(s.results) {
			idx = 0
		}
		chosen := s.results[idx].Record
		s.resetLocked()
		s.mu.Unlock()

		// Callback runs outside the lock; it is the commit's only effect.
		if s.onSelect != nil {
			s.onSelect(chosen)
		}
		return
	}

	s.mu.Unlock()
}

// Close tears the session down when its surface unmounts.
func (s *Session) Close() {
	s.deb.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancelLookup != nil {
		s.cancelLookup()
		s.cancelLookup = nil
	}
	s.open = false
}

// Snapshot returns a render-ready copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := make([]rank.Candidate, len(s.results))
	copy(results, s.results)

	return Snapshot{
		RawQuery:        s.raw,
		StabilizedQuery: s.stabilized,
		Results:         results,
		Open:            s.open,
		Highlighted:     s.highlighted,
		Loading:         s.loading,
		Degraded:        s.degraded,
	}
}

// Placeholder returns the configured input placeholder text.
func (s *Session) Placeholder() string {
	return s.opts.Placeholder
}

// stabilize runs when the quiet period elapses. It ranks the catalog
// synchronously, publishes catalog-only results immediately, then issues
// the remote lookup tagged with a fresh sequence number.
func (s *Session) stabilize(query string) {
	s.mu.Lock()

	s.stabilized = query
	s.seq++
	seq := s.seq

	// A newer stabilized query supersedes any in-flight lookup.
	if s.cancelLookup != nil {
		s.cancelLookup()
		s.cancelLookup = nil
	}

	if len(query) < s.opts.MinQuery || !utils.IsValidQuery(query) {
		s.ranked = nil
		s.replaceResultsLocked(nil)
		s.loading = false
		s.degraded = false
		s.mu.Unlock()
		return
	}

	s.ranked = rank.Rank(s.provider.Records(), query)
	s.replaceResultsLocked(rank.Merge(nil, s.ranked, s.opts.MaxResults))

	if s.remote == nil || !s.remote.Enabled() {
		s.loading = false
		s.mu.Unlock()
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancelLookup = cancel
	s.loading = true
	s.mu.Unlock()

	go func() {
		records, err := s.remote.Search(ctx, query)
		cancel()
		s.applyRemote(seq, query, records, err)
	}()
}

// applyRemote folds a lookup response into the session, unless a newer
// query has stabilized since it was issued.
func (s *Session) applyRemote(seq uint64, query string, records []catalog.CompanyRecord, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq || query != s.stabilized {
		log.Debugf("discarding stale lookup response for %q (seq %d, current %d)", query, seq, s.seq)
		return
	}

	s.loading = false
	if err != nil {
		// Catalog-only results are already on screen; just flag the
		// degraded mode for the UI.
		s.degraded = true
		return
	}

	s.degraded = false
	s.replaceResultsLocked(rank.Merge(records, s.ranked, s.opts.MaxResults))
}

// replaceResultsLocked swaps the result set and resets the highlight,
// keeping the highlight invariant across every shape change.
func (s *Session) replaceResultsLocked(results []rank.Candidate) {
	s.results = results
	s.highlighted = -1
}

// resetLocked clears the session after a commit.
func (s *Session) resetLocked() {
	s.raw = ""
	s.stabilized = ""
	s.ranked = nil
	s.results = nil
	s.open = false
	s.highlighted = -1
	s.loading = false
	s.degraded = false
	s.seq++ // invalidates any in-flight lookup
	if s.cancelLookup != nil {
		s.cancelLookup()
		s.cancelLookup = nil
	}
	s.deb.Cancel()
}
