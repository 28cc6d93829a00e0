package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/finboard/symserve/internal/utils"
	"github.com/finboard/symserve/pkg/catalog"
	"github.com/finboard/symserve/pkg/config"
	"github.com/finboard/symserve/pkg/lookup"
	"github.com/finboard/symserve/pkg/rank"
)

// maxQueryLen caps request queries; anything longer is a paste accident,
// not a search.
const maxQueryLen = 64

// envelope is the superset of incoming message fields; dispatch looks at
// which ones are present.
type envelope struct {
	ID         string  `msgpack:"id"`
	Query      *string `msgpack:"q"`
	Limit      int     `msgpack:"l"`
	Action     *string `msgpack:"action"`
	MaxResults *int    `msgpack:"max_results"`
	DebounceMs *int    `msgpack:"debounce_ms"`
	MinQuery   *int    `msgpack:"min_query"`
	Cmd        string  `msgpack:"cmd"`
}

// Server handles the IPC for company search
type Server struct {
	provider   catalog.Provider
	remote     *lookup.Client
	cfg        *config.Config
	configPath string
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
	requests   int
}

// NewServer creates a search server using stdin/stdout for IPC
func NewServer(provider catalog.Provider, remote *lookup.Client, cfg *config.Config, configPath string) *Server {
	return NewServerWithIO(provider, remote, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a search server over arbitrary streams (tests).
func NewServerWithIO(provider catalog.Provider, remote *lookup.Client, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		provider:   provider,
		remote:     remote,
		cfg:        cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests
func (s *Server) Start() error {
	log.Debug("Starting server.")

	// Signal that the server is ready
	s.send(map[string]string{"status": "ready"})

	for {
		var req envelope
		if err := s.dec.Decode(&req); err != nil {
			if err == io.EOF {
				return nil
			}
			// A malformed frame desyncs the stream; bail instead of
			// spinning on the same bytes.
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "invalid msgpack request", 400)
			return err
		}
		s.handleRequest(req)
	}
}

// handleRequest dispatches on the fields present in the envelope.
func (s *Server) handleRequest(req envelope) {
	s.requests++

	switch {
	case req.Query != nil:
		s.handleSearch(req)
	case req.Action != nil:
		s.handleConfig(req)
	case req.Cmd == "health":
		s.send(HealthResponse{ID: req.ID, Status: "ok"})
	default:
		s.sendError(req.ID, "unknown request", 400)
	}
}

// handleSearch runs one full ranking pass for the query: catalog ranking,
// remote lookup, merge. Remote failure degrades to catalog-only results
// with the deg flag set; it is never an error frame.
func (s *Server) handleSearch(req envelope) {
	query := *req.Query

	if query == "" {
		s.sendError(req.ID, "missing 'q' parameter", 400)
		log.Debug("Query is empty in request")
		return
	}
	if len(query) > maxQueryLen {
		s.sendError(req.ID, fmt.Sprintf("query exceeds maximum length of %d characters", maxQueryLen), 400)
		log.Debug("Query is too long in request")
		return
	}
	if !utils.IsValidQuery(query) {
		s.send(SearchResponse{ID: req.ID, Results: []ResultEntry{}})
		return
	}

	limit := req.Limit
	if limit < 1 {
		limit = s.cfg.Search.MaxResults
	}

	start := time.Now()

	ranked := rank.Rank(s.provider.Records(), query)

	var api []catalog.CompanyRecord
	degraded := false
	if s.remote != nil && s.remote.Enabled() && len(query) >= s.cfg.Search.MinQuery {
		var err error
		api, err = s.remote.Search(context.Background(), query)
		if err != nil {
			degraded = true
		}
	}

	merged := rank.Merge(api, ranked, limit)
	elapsed := time.Since(start)

	results := make([]ResultEntry, len(merged))
	for i, c := range merged {
		results[i] = ResultEntry{
			Ticker: c.Record.Ticker,
			Name:   c.Record.Name,
			Sector: c.Record.Sector,
			Score:  c.Score,
			Source: string(c.Source),
		}
	}

	s.send(SearchResponse{
		ID:        req.ID,
		Results:   results,
		Count:     len(results),
		Degraded:  degraded,
		TimeTaken: elapsed.Milliseconds(),
	})
}

// handleConfig gets or sets the [search] section at runtime.
func (s *Server) handleConfig(req envelope) {
	switch *req.Action {
	case "get":
		// fallthrough to the response below

	case "set":
		if err := s.cfg.Update(s.configPath, req.MaxResults, req.DebounceMs, req.MinQuery); err != nil {
			log.Errorf("Persisting config update: %v", err)
			s.send(ConfigResponse{ID: req.ID, Status: "error", Error: err.Error()})
			return
		}

	default:
		s.send(ConfigResponse{ID: req.ID, Status: "error", Error: fmt.Sprintf("unknown action: %s", *req.Action)})
		return
	}

	s.send(ConfigResponse{
		ID:         req.ID,
		Status:     "ok",
		MaxResults: s.cfg.Search.MaxResults,
		DebounceMs: s.cfg.Search.DebounceMs,
		MinQuery:   s.cfg.Search.MinQuery,
	})
}

// send marshals the response and writes it to the client.
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error frame
func (s *Server) sendError(id, message string, code int) {
	s.send(SearchError{ID: id, Error: message, Code: code})
}
