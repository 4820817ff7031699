package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/popup-deck/internal/app"
	"github.com/atomicstack/popup-deck/internal/config"
	"github.com/atomicstack/popup-deck/internal/logging"
	"github.com/atomicstack/popup-deck/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	if runtimeCfg.RunID != "" {
		if err := logging.SetRunID(runtimeCfg.RunID); err != nil {
			fmt.Fprintf(os.Stderr, "Ignoring run id: %v\n", err)
		}
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload records what the player starts with: flags, the
// resolved config, the run id and the size of the terminal it will draw on.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"inTmux":   cfg.InTmux,
		"run":      logging.RunID(),
		"terminal": probeTerminal(os.Stdout),
	}
	if cfg.File != "" {
		payload["configFile"] = cfg.File
	}
	return payload
}

// terminalInfo is the size the player sees before Bubble Tea's first resize.
type terminalInfo struct {
	IsTerminal bool   `json:"is_terminal"`
	Columns    int    `json:"columns,omitempty"`
	Rows       int    `json:"rows,omitempty"`
	Error      string `json:"error,omitempty"`
}

func probeTerminal(f *os.File) terminalInfo {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return terminalInfo{}
	}
	cols, rows, err := term.GetSize(fd)
	if err != nil {
		return terminalInfo{IsTerminal: true, Error: err.Error()}
	}
	return terminalInfo{IsTerminal: true, Columns: cols, Rows: rows}
}
