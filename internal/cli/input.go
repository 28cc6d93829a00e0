// Package cli handles cmd line input and result display for DBG and testing the search pipeline end to end
package cli

import (
	"bufio"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/finboard/symserve/internal/logger"
	"github.com/finboard/symserve/pkg/catalog"
	"github.com/finboard/symserve/pkg/lookup"
	"github.com/finboard/symserve/pkg/rank"
	"github.com/finboard/symserve/pkg/search"
)

var (
	tickerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75"))
	apiStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	catalogStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	degradedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

// InputHandler drives one search session from stdin. Typed lines become
// query edits; colon commands map to the keyboard events a dashboard
// surface would send (:d down, :u up, :c commit, :x escape, :q quit).
type InputHandler struct {
	session    *search.Session
	opts       search.Options
	out        *log.Logger
	showScores bool
	quit       bool
}

// NewInputHandler wires a session over the given catalog and remote client.
func NewInputHandler(provider catalog.Provider, remote *lookup.Client, opts search.Options, showScores bool) *InputHandler {
	h := &InputHandler{opts: opts, showScores: showScores, out: logger.New("picker")}
	h.session = search.NewSession(opts, provider, remote, h.onSelect)
	return h
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin, and feeds it
// into the session. Loop terminates on :q or a stdin error.
func (h *InputHandler) Start() error {
	defer h.session.Close()

	h.out.Print("SymServe picker [DBG]")
	h.out.Print("type a company query and press Enter; :d/:u move, :c commit, :x close, :q quit")
	reader := bufio.NewReader(os.Stdin)

	for !h.quit {
		h.out.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		h.handleLine(strings.TrimSpace(line))
	}
	return nil
}

// handleLine dispatches one line of input.
func (h *InputHandler) handleLine(line string) {
	switch line {
	case "":
		return
	case ":q":
		h.quit = true
		return
	case ":d":
		h.session.Key(search.KeyDown)
	case ":u":
		h.session.Key(search.KeyUp)
	case ":c":
		h.session.Key(search.KeyEnter)
		return
	case ":x":
		h.session.Key(search.KeyEscape)
		h.out.Print("closed")
		return
	default:
		h.session.SetQuery(line)
		h.waitForResults()
	}
	h.render()
}

// waitForResults lets the debounce quiet period elapse and the remote
// lookup settle before rendering. Debug convenience only; a real surface
// re-renders on every snapshot change instead of blocking.
func (h *InputHandler) waitForResults() {
	time.Sleep(h.opts.Debounce + 50*time.Millisecond)

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if snap := h.session.Snapshot(); !snap.Loading {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	h.out.Warn("remote lookup still pending, rendering what we have")
}

// render prints the current result list with highlight and source markers.
func (h *InputHandler) render() {
	snap := h.session.Snapshot()

	if !snap.Open {
		h.out.Printf("closed (query %q)", snap.RawQuery)
		return
	}
	if len(snap.Results) == 0 {
		h.out.Warnf("No results for query: '%s'", snap.StabilizedQuery)
		return
	}

	if snap.Degraded {
		h.out.Print(degradedStyle.Render("remote lookup unavailable - catalog-only results"))
	}

	h.out.Printf("Found %d results for '%s':", len(snap.Results), snap.StabilizedQuery)
	for i, c := range snap.Results {
		marker := "  "
		if i == snap.Highlighted {
			marker = "> "
		}

		src := catalogStyle.Render("catalog")
		if c.Source == rank.SourceAPI {
			src = apiStyle.Render("api    ")
		}

		if h.showScores {
			h.out.Printf("%s%2d. %-8s %-40s %s (score: %3d)", marker, i+1, tickerStyle.Render(c.Record.Ticker), c.Record.Name, src, c.Score)
		} else {
			h.out.Printf("%s%2d. %-8s %-40s %s", marker, i+1, tickerStyle.Render(c.Record.Ticker), c.Record.Name, src)
		}
	}
}

// onSelect is the commit callback: the one externally visible effect.
func (h *InputHandler) onSelect(rec catalog.CompanyRecord) {
	h.out.Printf("selected: %s (%s)", tickerStyle.Render(rec.Ticker), rec.Name)
}
