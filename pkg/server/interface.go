/*
Package server implements msgpack IPC for company search services.

The server provides a minimal interface for incremental company search
using msgpack serialization over stdin/stdout. The dashboard frontend
spawns the process and drives it per stabilized query; debouncing happens
client-side, so every request that arrives here is already quiet-period
filtered.

# IPC

The protocol is request/response. Each message carries an ID the client
uses to pair responses with outstanding requests.

Search requests use this structure:

	{"id": "req_001", "q": "appl", "l": 8}

The server responds with merged, deduplicated candidates:

	{"id": "req_001", "r": [{"t": "AAPL", "n": "Apple Inc.", "sc": 100, "src": "catalog"}], "c": 1, "t": 2}

When the remote lookup degrades (network failure, timeout, non-2xx), the
response still carries catalog candidates and sets the "deg" flag so the
UI can show its transient error indicator:

	{"id": "req_002", "r": [...], "c": 3, "deg": true, "t": 4012}

Config messages adjust search parameters at runtime and persist them:

	{"id": "cfg_001", "action": "set", "max_results": 6, "debounce_ms": 200}
	{"id": "cfg_002", "action": "get"}

Health checks:

	{"id": "hc_001", "cmd": "health"}

Malformed requests produce an error frame with the offending ID when one
could be read:

	{"id": "req_003", "e": "missing 'q' parameter", "c": 400}
*/
package server

// SearchRequest - incremental company search request
type SearchRequest struct {
	ID    string `msgpack:"id"`
	Query string `msgpack:"q"`
	Limit int    `msgpack:"l,omitempty"`
}

// ResultEntry - one merged candidate
type ResultEntry struct {
	Ticker string `msgpack:"t"`
	Name   string `msgpack:"n"`
	Sector string `msgpack:"sec,omitempty"`
	Score  int    `msgpack:"sc"`
	Source string `msgpack:"src"`
}

// SearchResponse - merged search response
type SearchResponse struct {
	ID        string        `msgpack:"id"`
	Results   []ResultEntry `msgpack:"r"`
	Count     int           `msgpack:"c"`
	Degraded  bool          `msgpack:"deg,omitempty"`
	TimeTaken int64         `msgpack:"t"`
}

// ConfigRequest - runtime config request ("get" or "set")
type ConfigRequest struct {
	ID         string `msgpack:"id"`
	Action     string `msgpack:"action"`
	MaxResults *int   `msgpack:"max_results,omitempty"`
	DebounceMs *int   `msgpack:"debounce_ms,omitempty"`
	MinQuery   *int   `msgpack:"min_query,omitempty"`
}

// ConfigResponse - config operation response
type ConfigResponse struct {
	ID         string `msgpack:"id"`
	Status     string `msgpack:"status"`
	Error      string `msgpack:"error,omitempty"`
	MaxResults int    `msgpack:"max_results,omitempty"`
	DebounceMs int    `msgpack:"debounce_ms,omitempty"`
	MinQuery   int    `msgpack:"min_query,omitempty"`
}

// HealthResponse - liveness response
type HealthResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
}

// SearchError holds basic error information for failed requests
type SearchError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
