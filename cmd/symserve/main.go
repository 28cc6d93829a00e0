/*
Package main implements the company search server and CLI [DBG] application.

SymServe powers the incremental company search inputs of the FinBoard
dashboard. It merges authoritative results from the dashboard backend's
search endpoint with fuzzy-ranked matches from a static reference catalog,
deduplicates by ticker, and serves the merged list over a MessagePack IPC
protocol. The catalog-only path keeps working with zero connectivity, so
search never goes fully dark when the backend does.

# Usage

Start the server with default settings:

	symserve

Use a custom catalog file and backend URL, with debug logging:

	symserve -catalog /path/to/companies.csv -api https://api.finboard.dev -d

Run in CLI mode for interactive testing:

	symserve -c -limit 6

The catalog file is CSV with ticker,name,sector,aliases columns where
aliases is a semicolon-separated list. Without a file, a builtin large-cap
reference table is used.

# Configuration

Runtime configuration is managed through a TOML file that supports search
parameters, backend settings, and CLI defaults:

	[search]
	max_results = 8
	debounce_ms = 250
	min_query = 2

	[api]
	base_url = ""
	timeout_ms = 4000

The config file is automatically created with defaults if it doesn't exist.
The server's config command updates the [search] section without restart.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Search requests
are processed synchronously with timing information included in responses.

Send a search request:

	{"id": "req1", "q": "appl", "l": 8}

Receive merged candidates with source and score:

	{"id": "req1", "r": [{"t": "AAPL", "n": "Apple Inc.", "sc": 100, "src": "catalog"}], "c": 1, "t": 3}

Remote lookup failures never fail a request; the response degrades to
catalog-only candidates and sets the "deg" flag for the UI's transient
error indicator.

# CLI Mode

CLI mode drives a full search session interactively: typed lines edit the
query through the real debouncer, and colon commands replay the keyboard
events a dashboard surface would send. This mode is primarily intended for
development and for testing ranking changes before deploying to server
mode.

# Search Engine

The core pipeline is provided by the catalog, fuzzy, rank, lookup and
search packages:

	provider := catalog.Load(path)
	ranked := rank.Rank(provider.Records(), query)
	merged := rank.Merge(apiResults, ranked, maxResults)

Scoring is a fixed 0..100 ladder (prefix 100, substring 80, subsequence
60) with a noise floor that keeps coincidental single-character hits out
of the dropdown.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	ilog "github.com/finboard/symserve/internal/logger"

	"github.com/finboard/symserve/internal/cli"
	"github.com/finboard/symserve/pkg/catalog"
	"github.com/finboard/symserve/pkg/config"
	"github.com/finboard/symserve/pkg/lookup"
	"github.com/finboard/symserve/pkg/server"
)

const (
	Version = "0.4.0"
	AppName = "symserve"
	gh      = "https://github.com/finboard/symserve"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPathFlag := flag.String("config", "", "Path to a config.toml (default: user config dir)")
	catalogPath := flag.String("catalog", "", "CSV catalog file (default: builtin reference table)")
	apiBase := flag.String("api", defaults.API.BaseURL, "Dashboard backend base URL (empty for catalog-only mode)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of results to return")
	noScores := flag.Bool("no-scores", false, "Hide score column in CLI output")

	flag.Parse()

	if *showVersion {
		logger := ilog.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		logger.SetStyles(styles)

		logger.Print("")
		logger.Print("[ SymServe ] Incremental company search for FinBoard")
		logger.Print("", "version", Version)
		logger.Print("")
		logger.Print("use -h or --help to see available options")
		logger.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configPathFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Flags override the config file where given.
	if *catalogPath != "" {
		appConfig.Catalog.Path = *catalogPath
	}
	if *apiBase != "" {
		appConfig.API.BaseURL = *apiBase
	}

	provider := catalog.Load(appConfig.Catalog.Path)
	log.Debugf("catalog loaded: %d companies", provider.Len())

	remote := lookup.NewClient(appConfig.API.BaseURL, appConfig.APITimeout(), appConfig.Search.MinQuery)
	if !remote.Enabled() {
		log.Debug("no backend configured, running catalog-only")
	}

	if *cliMode {
		log.SetReportTimestamp(false)

		opts := appConfig.SearchOptions()
		if *limit > 0 {
			opts.MaxResults = *limit
		}
		log.Debug("Picker info:",
			"minQuery", opts.MinQuery,
			"maxResults", opts.MaxResults,
			"debounce", opts.Debounce)

		inputHandler := cli.NewInputHandler(provider, remote, opts, !*noScores && appConfig.CLI.ShowScores)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(provider.Len(), appConfig.API.BaseURL)

	srv := server.NewServer(provider, remote, appConfig, configPath)
	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(companies int, apiBase string) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	if apiBase == "" {
		apiBase = "(catalog-only)"
	}

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Infof("catalog: %d companies", companies)
	log.Infof("backend: %s", apiBase)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
