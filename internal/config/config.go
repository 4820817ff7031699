package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-deck/internal/app"
	"github.com/atomicstack/popup-deck/internal/nav"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	InTmux  bool
	RunID   string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig         = "POPUP_DECK_CONFIG"
	envDeck           = "POPUP_DECK_DECK"
	envSocketPath     = "POPUP_DECK_SOCKET"
	envWidth          = "POPUP_DECK_WIDTH"
	envHeight         = "POPUP_DECK_HEIGHT"
	envShowFooter     = "POPUP_DECK_FOOTER"
	envTrace          = "POPUP_DECK_TRACE"
	envLogFile        = "POPUP_DECK_LOG_FILE"
	envBreakpoint     = "POPUP_DECK_BREAKPOINT"
	envConnectorRatio = "POPUP_DECK_CONNECTOR_RATIO"
	envWatch          = "POPUP_DECK_WATCH"
	envPopupWidth     = "POPUP_DECK_POPUP_WIDTH"
	envPopupHeight    = "POPUP_DECK_POPUP_HEIGHT"
	envRunID          = "POPUP_DECK_RUN_ID"
)

var ErrPopupOutsideTmux = errors.New("--popup requires a tmux server (set --socket or run inside tmux)")

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// flags, then environment, then the config file, then built-in defaults.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := configPathFromArgs(args, envOrDefault(env, envConfig, ""))
	file, err := readConfigFile(configPath)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("popup-deck", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configPath, "path to a TOML or YAML config file")
	deckPath := fs.String("deck", envOrDefault(env, envDeck, file.GetString("deck")), "path to a TOML or YAML deck (empty uses the built-in deck)")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, file.GetString("socket")), "path to the tmux socket (overrides environment detection)")
	width := fs.Int("width", envOrInt(env, envWidth, file.GetInt("width")), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.GetInt("height")), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, file.GetBool("footer")), "show the key help footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, file.GetBool("trace")), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.GetString("log_file")), "path to the log file")
	breakpoint := fs.Int("breakpoint", envOrInt(env, envBreakpoint, file.GetInt("breakpoint")), "width in columns at or below which connectors are hidden (0 uses 96)")
	ratio := fs.Float64("connector-ratio", envOrFloat(env, envConnectorRatio, file.GetFloat64("connector_ratio")), "connector width as a fraction of the viewport")
	watch := fs.Bool("watch", envOrBool(env, envWatch, file.GetBool("watch")), "reload the deck when its file changes")
	outline := fs.Bool("outline", false, "print every step of the deck and exit")
	popup := fs.Bool("popup", false, "relaunch inside a tmux popup")
	popupWidth := fs.Int("popup-width", envOrInt(env, envPopupWidth, file.GetInt("popup_width")), "popup width in percent of the client")
	popupHeight := fs.Int("popup-height", envOrInt(env, envPopupHeight, file.GetInt("popup_height")), "popup height in percent of the client")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *breakpoint < 0 {
		return Config{}, fmt.Errorf("breakpoint must be >= 0 (got %d)", *breakpoint)
	}
	if *ratio <= 0 || *ratio > 1 {
		return Config{}, fmt.Errorf("connector-ratio must be in (0,1] (got %g)", *ratio)
	}
	if *popupWidth <= 0 || *popupWidth > 100 || *popupHeight <= 0 || *popupHeight > 100 {
		return Config{}, fmt.Errorf("popup size must be 1-100%% (got %dx%d)", *popupWidth, *popupHeight)
	}

	_, tmuxSet := env["TMUX"]
	cfg := Config{
		App: app.Config{
			DeckPath:       *deckPath,
			SocketPath:     *socket,
			Width:          *width,
			Height:         *height,
			ShowFooter:     *footer,
			Breakpoint:     *breakpoint,
			ConnectorRatio: *ratio,
			Watch:          *watch,
			Outline:        *outline,
			Popup:          *popup,
			PopupWidth:     *popupWidth,
			PopupHeight:    *popupHeight,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File:   configPath,
		InTmux: tmuxSet && env["TMUX"] != "",
		RunID:  envOrDefault(env, envRunID, ""),
		Flags: map[string]string{
			"config":         configPath,
			"deck":           *deckPath,
			"socket":         *socket,
			"width":          strconv.Itoa(*width),
			"height":         strconv.Itoa(*height),
			"footer":         strconv.FormatBool(*footer),
			"trace":          strconv.FormatBool(*trace),
			"logFile":        *logFile,
			"breakpoint":     strconv.Itoa(*breakpoint),
			"connectorRatio": strconv.FormatFloat(*ratio, 'g', -1, 64),
			"watch":          strconv.FormatBool(*watch),
			"outline":        strconv.FormatBool(*outline),
			"popup":          strconv.FormatBool(*popup),
		},
		Args: append([]string(nil), args...),
	}
	cfg.App.ChildArgs = childArgs(args)

	return cfg, nil
}

// readConfigFile loads the optional config file through viper. Built-in
// defaults are registered on the same instance so callers can read any key.
func readConfigFile(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("connector_ratio", nav.DefaultConnectorRatio)
	v.SetDefault("popup_width", 80)
	v.SetDefault("popup_height", 80)
	if strings.TrimSpace(path) == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// configPathFromArgs finds --config ahead of the real parse so file values
// can seed the flag defaults.
func configPathFromArgs(args []string, fallback string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

// childArgs are the arguments for a relaunch inside a popup. The flag
// package keeps the last value, so appending --popup=false is enough.
func childArgs(args []string) []string {
	out := append([]string(nil), args...)
	return append(out, "--popup=false")
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrFloat(env map[string]string, key string, fallback float64) float64 {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks combinations the flag parser cannot.
func Validate(cfg Config) error {
	if cfg.App.Popup && cfg.App.Outline {
		return errors.New("--popup and --outline are mutually exclusive")
	}
	if cfg.App.Popup && cfg.App.SocketPath == "" && !cfg.InTmux {
		return ErrPopupOutsideTmux
	}
	if cfg.App.Watch && strings.TrimSpace(cfg.App.DeckPath) == "" {
		return errors.New("--watch needs --deck")
	}
	return nil
}
