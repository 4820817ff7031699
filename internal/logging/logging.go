package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultLogFile = "popup-deck.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = defaultLogFile
	runID        = uuid.NewString()
)

// RunID identifies the current process in every log line.
func RunID() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return runID
}

// SetRunID adopts an existing run identifier so a relaunched popup logs under
// its parent's run. Values that are not UUIDs are rejected.
func SetRunID(id string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}
	traceMu.Lock()
	runID = parsed.String()
	traceMu.Unlock()
	return nil
}

// Path returns the current log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}

	run := RunID()
	appendTo(Path(), "logging", func(w io.Writer) error {
		log.New(w, "", log.LstdFlags).Printf("[%s] %v", run, err)
		return nil
	})
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	traceMu.Lock()
	enabled := traceEnabled
	path := logPath
	run := runID
	traceMu.Unlock()
	if !enabled {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Run     string      `json:"run"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Run:     run,
		Event:   event,
		Payload: payload,
	}

	appendTo(path, "trace logging", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// appendTo opens path for appending and hands it to write. Failures go to
// stderr since there is nowhere else to report them.
func appendTo(path, what string, write func(io.Writer) error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		logPath = defaultLogFile
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = defaultLogFile
		return
	}
	logPath = path
}
