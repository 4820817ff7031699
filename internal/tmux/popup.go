package tmux

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-deck/internal/logging/events"
)

const (
	minPopupWidth  = 20
	minPopupHeight = 8
)

var ErrNoClient = errors.New("no tmux client size available")

// ClientSize asks tmux for the size of the client showing the current pane.
func ClientSize(socketPath string) (int, int, error) {
	client, err := newTmux(socketPath)
	if err != nil {
		return 0, 0, fmt.Errorf("connect tmux: %w", err)
	}
	defer client.Close()
	target := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	out, err := client.DisplayMessage(target, "#{client_width}x#{client_height}")
	if err != nil {
		return 0, 0, fmt.Errorf("display-message: %w", err)
	}
	width, height, err := parseSize(out)
	if err != nil {
		return 0, 0, err
	}
	events.Popup.ClientSize(width, height)
	return width, height, nil
}

func parseSize(raw string) (int, int, error) {
	w, h, ok := strings.Cut(strings.TrimSpace(raw), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoClient, raw)
	}
	width, werr := strconv.Atoi(w)
	height, herr := strconv.Atoi(h)
	if werr != nil || herr != nil || width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrNoClient, raw)
	}
	return width, height, nil
}

// PopupOptions describes a display-popup launch.
type PopupOptions struct {
	SocketPath    string
	Title         string
	WidthPercent  int
	HeightPercent int
	// ClientWidth and ClientHeight turn the percentages into absolute cells
	// when known.
	ClientWidth  int
	ClientHeight int
	Env          map[string]string
	Command      []string
}

// PopupArgs builds the tmux argument list for opts.
func PopupArgs(opts PopupOptions) []string {
	args := append(baseArgs(opts.SocketPath), "display-popup", "-E")
	if title := strings.TrimSpace(opts.Title); title != "" {
		args = append(args, "-T", title)
	}
	args = append(args,
		"-w", popupDimension(opts.ClientWidth, opts.WidthPercent, minPopupWidth),
		"-h", popupDimension(opts.ClientHeight, opts.HeightPercent, minPopupHeight),
	)
	for _, key := range sortedKeys(opts.Env) {
		args = append(args, "-e", key+"="+opts.Env[key])
	}
	if len(opts.Command) > 0 {
		args = append(args, shellJoin(opts.Command))
	}
	return args
}

// LaunchPopup runs display-popup and blocks until the popup closes.
func LaunchPopup(opts PopupOptions) error {
	args := PopupArgs(opts)
	events.Popup.Launch(args)
	if err := runExecCommand("tmux", args...).Run(); err != nil {
		events.Popup.Error(err)
		return fmt.Errorf("display-popup: %w", err)
	}
	return nil
}

func popupDimension(client, percent, minimum int) string {
	if percent <= 0 || percent > 100 {
		percent = 100
	}
	if client <= 0 {
		return strconv.Itoa(percent) + "%"
	}
	cells := client * percent / 100
	if cells < minimum {
		cells = minimum
	}
	if cells > client {
		cells = client
	}
	return strconv.Itoa(cells)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// shellJoin quotes each word for /bin/sh so display-popup runs it verbatim.
func shellJoin(words []string) string {
	quoted := make([]string, len(words))
	for i, word := range words {
		quoted[i] = "'" + strings.ReplaceAll(word, "'", `'\''`) + "'"
	}
	return strings.Join(quoted, " ")
}
