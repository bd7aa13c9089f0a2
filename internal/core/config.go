package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Fuabioo/notesmcp/internal/errors"
)

// Transport selects how the MCP server communicates with clients.
type Transport string

const (
	// TransportStdio serves MCP over standard input/output (the default).
	TransportStdio Transport = "stdio"
	// TransportHTTP serves MCP over streamable HTTP.
	TransportHTTP Transport = "http"
)

// Config holds process configuration read once at startup.
type Config struct {
	Transport Transport
	Host      string
	Port      int
	StorePath string
}

// DefaultConfig returns the built-in defaults: stdio transport,
// 0.0.0.0:3000 for HTTP, and ./notes.json for the store.
func DefaultConfig() *Config {
	return &Config{
		Transport: TransportStdio,
		Host:      "0.0.0.0",
		Port:      3000,
		StorePath: "notes.json",
	}
}

// LoadConfig builds the configuration from environment variables:
//   - MCP_TRANSPORT: "http" selects HTTP; any other value means stdio
//   - HOST: HTTP bind host (default "0.0.0.0")
//   - PORT: HTTP bind port (default 3000)
//   - NOTES_PATH: store file location (default ./notes.json)
func LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	if val, ok := os.LookupEnv("MCP_TRANSPORT"); ok {
		if strings.EqualFold(strings.TrimSpace(val), string(TransportHTTP)) {
			cfg.Transport = TransportHTTP
		}
	}

	if val, ok := os.LookupEnv("HOST"); ok && val != "" {
		cfg.Host = val
	}

	if val, ok := os.LookupEnv("PORT"); ok && val != "" {
		port, err := strconv.Atoi(val)
		if err != nil || port < 1 || port > 65535 {
			return nil, errors.InvalidConfig(fmt.Sprintf("invalid PORT: %q", val))
		}
		cfg.Port = port
	}

	if val, ok := os.LookupEnv("NOTES_PATH"); ok && val != "" {
		cfg.StorePath = val
	}

	abs, err := filepath.Abs(cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve store path: %w", err)
	}
	cfg.StorePath = abs

	return cfg, nil
}

// ListenAddr returns the host:port address for the HTTP transport.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
