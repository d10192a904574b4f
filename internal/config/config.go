package config

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/seawavessolutions/seawaves-site/internal/app"
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
	envContent         = "SEAWAVES_CONTENT"
	envWidth           = "SEAWAVES_WIDTH"
	envHeight          = "SEAWAVES_HEIGHT"
	envShowFooter      = "SEAWAVES_FOOTER"
	envContactEndpoint = "SEAWAVES_CONTACT_ENDPOINT"
	envContactTimeout  = "SEAWAVES_CONTACT_TIMEOUT"
	envSimulateFailure = "SEAWAVES_SIMULATE_FAILURE"
	envNoPopup         = "SEAWAVES_NO_POPUP"
	envTrace           = "SEAWAVES_TRACE"
	envLogFile         = "SEAWAVES_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := pflag.NewFlagSet("seawaves-site", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	content := fs.String("content", envOrDefault(env, envContent, ""), "YAML file overriding the embedded site content")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, false), "show the key help footer")
	endpoint := fs.String("contact-endpoint", envOrDefault(env, envContactEndpoint, ""), "URL receiving contact form submissions (empty simulates delivery)")
	timeout := fs.Duration("contact-timeout", envOrDuration(env, envContactTimeout, 0), "timeout for contact submissions (0 uses the default)")
	simulateFailure := fs.Bool("simulate-failure", envOrBool(env, envSimulateFailure, false), "make simulated submissions fail")
	noPopup := fs.Bool("no-popup", envOrBool(env, envNoPopup, false), "disable the promotional popup")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *timeout < 0 {
		return Config{}, fmt.Errorf("contact-timeout must be >= 0 (got %s)", *timeout)
	}

	cfg := Config{
		App: app.Config{
			ContentPath:     *content,
			Width:           *width,
			Height:          *height,
			ShowFooter:      *footer,
			ContactEndpoint: strings.TrimSpace(*endpoint),
			ContactTimeout:  *timeout,
			SimulateFailure: *simulateFailure,
			DisablePopup:    *noPopup,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"content":         *content,
			"width":           strconv.Itoa(*width),
			"height":          strconv.Itoa(*height),
			"footer":          strconv.FormatBool(*footer),
			"contactEndpoint": strings.TrimSpace(*endpoint),
			"contactTimeout":  timeout.String(),
			"simulateFailure": strconv.FormatBool(*simulateFailure),
			"noPopup":         strconv.FormatBool(*noPopup),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
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
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		values[key] = value
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

// Validate checks values that parse cleanly but cannot be used.
func Validate(cfg Config) error {
	endpoint := cfg.App.ContactEndpoint
	if endpoint == "" {
		return nil
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("contact-endpoint: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("contact-endpoint %q: scheme must be http or https", endpoint)
	}
	if u.Host == "" {
		return errors.New("contact-endpoint: missing host")
	}
	return nil
}
