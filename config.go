package slacklet

import (
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/zeebo/blake3"
	"gopkg.in/yaml.v3"
)

var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// Config holds process-wide framework settings. Zero values are filled in
// by defaults at load time; programmatic construction should start from
// DefaultConfig.
type Config struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`

	// PathPrefix is mounted in front of the three payload routes
	// (/events, /command, /interactivity).
	PathPrefix string `yaml:"path_prefix"`

	// BotToken is the Slack bot token (xoxb-...).
	BotToken string `yaml:"bot_token"`

	// AppUserID is the app's own bot user. Events from this user are
	// never dispatched.
	AppUserID string `yaml:"app_user_id"`

	// IgnoreBotEvents skips dispatch for events carrying a bot_id.
	IgnoreBotEvents bool `yaml:"ignore_bot_events"`

	// IgnoreRetryEvents skips dispatch for retried deliveries
	// (X-Slack-Retry-Num header present).
	IgnoreRetryEvents bool `yaml:"ignore_retry_events"`

	LogLevel string `yaml:"log_level"`

	// AuditDB is the SQLite path used by the audit log plugin, if enabled.
	AuditDB string `yaml:"audit_db"`

	// Fingerprint is the BLAKE3 hash of the raw config file, set by
	// LoadConfig. Empty for programmatic configs.
	Fingerprint string `yaml:"-"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		Listen:            ":8080",
		PathPrefix:        "/slack",
		IgnoreBotEvents:   true,
		IgnoreRetryEvents: true,
		LogLevel:          "INFO",
	}
}

// LoadConfig reads a YAML config file, interpolating ${ENV_VAR} references
// from the environment before parsing. Missing environment variables
// interpolate to the empty string.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}

	fingerprint := blake3.Sum256(data)

	cfg := DefaultConfig()
	interpolated := interpolateEnv(string(data))
	if err := yaml.Unmarshal([]byte(interpolated), &cfg); err != nil {
		return nil, fmt.Errorf("parse config %q: %w", path, err)
	}
	cfg.Fingerprint = hex.EncodeToString(fingerprint[:])

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func interpolateEnv(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}

func (c *Config) validate() error {
	if c.Listen == "" {
		return fmt.Errorf("listen address is empty")
	}
	if !strings.HasPrefix(c.PathPrefix, "/") {
		return fmt.Errorf("path_prefix %q must start with /", c.PathPrefix)
	}
	if strings.HasSuffix(c.PathPrefix, "/") && c.PathPrefix != "/" {
		return fmt.Errorf("path_prefix %q must not end with /", c.PathPrefix)
	}
	return nil
}
