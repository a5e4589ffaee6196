package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultAPIURL      = "https://jsonplaceholder.typicode.com"
	defaultHTTPTimeout = 10 * time.Second
	defaultServerAddr  = ":8089"
)

// Config holds application-level configuration.
type Config struct {
	APIURL      string        // e.g. "https://jsonplaceholder.typicode.com"
	HTTPTimeout time.Duration // Per-request timeout against the API
	LogFile     string        // Empty discards logs
	LogLevel    slog.Level
	ServerAddr  string // Listen address for placeholderd
}

// Load reads configuration from environment variables, after merging in an
// optional dotenv file. Variables already set in the environment win.
//
//	POSTDECK_ENV_FILE      dotenv file (default: ".env"; missing is fine)
//	POSTDECK_API_URL       API base URL (default: jsonplaceholder)
//	POSTDECK_HTTP_TIMEOUT  request timeout, Go duration (default: 10s)
//	POSTDECK_LOG_FILE      log destination (default: none)
//	POSTDECK_LOG_LEVEL     debug|info|warn|error (default: info)
//	PLACEHOLDERD_ADDR      placeholderd listen address (default: ":8089")
func Load() (Config, error) {
	envFile := os.Getenv("POSTDECK_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
	}

	apiURL, err := parseAPIURL(os.Getenv("POSTDECK_API_URL"))
	if err != nil {
		return Config{}, err
	}

	timeout := defaultHTTPTimeout
	if raw := strings.TrimSpace(os.Getenv("POSTDECK_HTTP_TIMEOUT")); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid POSTDECK_HTTP_TIMEOUT %q: must be a positive duration", raw)
		}
		timeout = d
	}

	level := slog.LevelInfo
	if raw := strings.TrimSpace(os.Getenv("POSTDECK_LOG_LEVEL")); raw != "" {
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			return Config{}, fmt.Errorf("invalid POSTDECK_LOG_LEVEL %q: %w", raw, err)
		}
	}

	addr := os.Getenv("PLACEHOLDERD_ADDR")
	if addr == "" {
		addr = defaultServerAddr
	}

	return Config{
		APIURL:      apiURL,
		HTTPTimeout: timeout,
		LogFile:     strings.TrimSpace(os.Getenv("POSTDECK_LOG_FILE")),
		LogLevel:    level,
		ServerAddr:  addr,
	}, nil
}

func parseAPIURL(raw string) (string, error) {
	if raw == "" {
		raw = defaultAPIURL
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", fmt.Errorf("invalid POSTDECK_API_URL: must be an absolute URL")
	}
	switch parsed.Scheme {
	case "https":
	case "http":
		if !isLoopback(parsed.Hostname()) {
			return "", fmt.Errorf("invalid POSTDECK_API_URL: http is only allowed for loopback hosts")
		}
	default:
		return "", fmt.Errorf("invalid POSTDECK_API_URL: unsupported scheme %q", parsed.Scheme)
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
