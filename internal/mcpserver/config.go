package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds the MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Validate tool defaults.
	ValidateDefaultRules bool

	// External loading defaults.
	LoadAllowHTTP    bool
	LoadConcurrency  int
	LoadMaxDocuments int

	// Input limits.
	MaxFileSize     int64
	MaxInlineSize   int64
	ResultLimit     int
	MaxLimit        int
	AllowPrivateIPs bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASKIT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ValidateDefaultRules: envBool("OASKIT_VALIDATE_DEFAULT_RULES", true),
		LoadAllowHTTP:        envBool("OASKIT_LOAD_ALLOW_HTTP", false),
		LoadConcurrency:      envInt("OASKIT_LOAD_CONCURRENCY", 4),
		LoadMaxDocuments:     envInt("OASKIT_LOAD_MAX_DOCUMENTS", 100),
		MaxFileSize:          envInt64("OASKIT_MAX_FILE_SIZE", 10*1024*1024),
		MaxInlineSize:        envInt64("OASKIT_MAX_INLINE_SIZE", 10*1024*1024),
		ResultLimit:          envInt("OASKIT_RESULT_LIMIT", 100),
		MaxLimit:             envInt("OASKIT_MAX_LIMIT", 1000),
		AllowPrivateIPs:      envBool("OASKIT_ALLOW_PRIVATE_IPS", false),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid size env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
