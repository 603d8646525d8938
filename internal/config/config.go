package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adbpilot/adbpilot/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envADBPath      = "ADBPILOT_ADB"
	envSerial       = "ADBPILOT_SERIAL"
	envKeyMap       = "ADBPILOT_KEYMAP"
	envWidth        = "ADBPILOT_WIDTH"
	envHeight       = "ADBPILOT_HEIGHT"
	envShowFooter   = "ADBPILOT_FOOTER"
	envVerbose      = "ADBPILOT_VERBOSE"
	envTrace        = "ADBPILOT_TRACE"
	envLogFile      = "ADBPILOT_LOG_FILE"
	envPollInterval = "ADBPILOT_POLL_INTERVAL"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("adbpilot", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	adbPath := fs.String("adb", envOrDefault(env, envADBPath, ""), "path to the adb binary (overrides PATH lookup)")
	serial := fs.String("serial", envOrDefault(env, envSerial, ""), "device serial to preselect")
	keyMapPath := fs.String("keymap", envOrDefault(env, envKeyMap, ""), "path to a key map override file")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "enable footer hint row (disabled by default)")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "show info messages for relayed commands")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	pollInterval := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, 0), "interval between device list polls (0 uses the default)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *pollInterval < 0 {
		return Config{}, fmt.Errorf("poll-interval must be >= 0 (got %s)", *pollInterval)
	}

	cfg := Config{
		App: app.Config{
			ADBPath:      *adbPath,
			Serial:       *serial,
			KeyMapPath:   *keyMapPath,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			Verbose:      *verbose,
			PollInterval: *pollInterval,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"adb":          *adbPath,
			"serial":       *serial,
			"keymap":       *keyMapPath,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"verbose":      strconv.FormatBool(*verbose),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
			"pollInterval": pollInterval.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	// Additional validation hooks can be placed here as configuration evolves.
	return nil
}
