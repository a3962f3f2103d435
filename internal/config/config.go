package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds everything svitlo reads from its config file and environment.
type Config struct {
	FeedURL        string        `koanf:"feed_url"`
	PollInterval   int           `koanf:"poll_interval"`   // seconds
	RequestTimeout int           `koanf:"request_timeout"` // seconds
	Groups         []string      `koanf:"groups"`
	FeaturedGroup  string        `koanf:"featured_group"`
	LogFile        string        `koanf:"log_file"`
	Metrics        MetricsConfig `koanf:"metrics"`
	MQTT           MQTTConfig    `koanf:"mqtt"`
}

// MetricsConfig enables the optional metric sinks.
type MetricsConfig struct {
	PrometheusAddr string       `koanf:"prometheus_addr"`
	Influx         InfluxConfig `koanf:"influx"`
}

// InfluxConfig points at an InfluxDB v2 bucket.
type InfluxConfig struct {
	URL    string `koanf:"url"`
	Token  string `koanf:"token"`
	Org    string `koanf:"org"`
	Bucket string `koanf:"bucket"`
}

// Enabled reports whether a URL is configured.
func (c InfluxConfig) Enabled() bool { return strings.TrimSpace(c.URL) != "" }

// MQTTConfig configures status publication.
type MQTTConfig struct {
	Broker      string `koanf:"broker"`
	ClientID    string `koanf:"client_id"`
	Username    string `koanf:"username"`
	Password    string `koanf:"password"`
	TopicPrefix string `koanf:"topic_prefix"`
	QoS         int    `koanf:"qos"`
	Retain      bool   `koanf:"retain"`
}

// Enabled reports whether a broker is configured.
func (c MQTTConfig) Enabled() bool { return strings.TrimSpace(c.Broker) != "" }

const (
	// EnvPrefix marks environment overrides; "__" separates nested keys, so
	// SVITLO_MQTT__BROKER sets mqtt.broker.
	EnvPrefix = "SVITLO_"

	defaultConfigPath     = "~/.config/svitlo/config.toml"
	defaultFeedURL        = "https://raw.githubusercontent.com/Baskerville42/outage-data-ua/refs/heads/main/data/kyiv-region.json"
	defaultPollInterval   = 300
	defaultRequestTimeout = 15
	defaultFeaturedGroup  = "GPV3.2"
	defaultLogFile        = "~/.local/state/svitlo/svitlo.log"
	defaultTopicPrefix    = "svitlo"
)

var defaultGroups = []string{
	"GPV1.1", "GPV1.2",
	"GPV2.1", "GPV2.2",
	"GPV3.1", "GPV3.2",
	"GPV4.1", "GPV4.2",
	"GPV5.1", "GPV5.2",
	"GPV6.1", "GPV6.2",
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns a config with every default applied.
func Default() Config {
	var cfg Config
	cfg.SetDefaults()
	return cfg
}

// Load reads the config file at path (or the default path), applies
// SVITLO_ environment overrides, fills defaults and validates the result.
// A missing file is not an error.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	k := koanf.New(".")
	if _, err := os.Stat(resolved); err == nil {
		parser, err := parserFor(resolved)
		if err != nil {
			return Config{}, err
		}
		if err := k.Load(file.Provider(resolved), parser); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("open config: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("load env overrides: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return TOMLParser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
}

// SetDefaults fills empty fields and normalises list values.
func (c *Config) SetDefaults() {
	c.FeedURL = strings.TrimSpace(c.FeedURL)
	if c.FeedURL == "" {
		c.FeedURL = defaultFeedURL
	}
	if c.PollInterval == 0 {
		c.PollInterval = defaultPollInterval
	}
	if c.RequestTimeout == 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	c.Groups = normalizeGroups(c.Groups)
	if len(c.Groups) == 0 {
		c.Groups = append([]string(nil), defaultGroups...)
	}
	c.FeaturedGroup = strings.TrimSpace(c.FeaturedGroup)
	if c.FeaturedGroup == "" {
		c.FeaturedGroup = defaultFeaturedGroup
	}
	if strings.TrimSpace(c.LogFile) == "" {
		c.LogFile = defaultLogFile
	}
	c.LogFile = mustExpand(c.LogFile)
	if c.MQTT.TopicPrefix == "" {
		c.MQTT.TopicPrefix = defaultTopicPrefix
	}
	c.MQTT.TopicPrefix = strings.Trim(c.MQTT.TopicPrefix, "/")
}

// Validate checks the fields the application cannot run without.
func (c Config) Validate() error {
	if c.FeedURL == "" {
		return fmt.Errorf("feed_url is required")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_interval must be positive, got %d", c.PollInterval)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request_timeout must be positive, got %d", c.RequestTimeout)
	}
	if len(c.Groups) == 0 {
		return fmt.Errorf("groups must not be empty")
	}
	seen := make(map[string]struct{}, len(c.Groups))
	for _, g := range c.Groups {
		if _, dup := seen[g]; dup {
			return fmt.Errorf("duplicate group %s", g)
		}
		seen[g] = struct{}{}
	}
	if _, ok := seen[c.FeaturedGroup]; !ok {
		return fmt.Errorf("featured_group %s is not listed in groups", c.FeaturedGroup)
	}
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return fmt.Errorf("mqtt.qos must be 0, 1 or 2, got %d", c.MQTT.QoS)
	}
	if c.Metrics.Influx.Enabled() && (c.Metrics.Influx.Org == "" || c.Metrics.Influx.Bucket == "") {
		return fmt.Errorf("metrics.influx requires org and bucket")
	}
	return nil
}

// PollEvery returns the poll interval as a duration.
func (c Config) PollEvery() time.Duration {
	return time.Duration(c.PollInterval) * time.Second
}

// Timeout returns the request timeout as a duration.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Second
}

// normalizeGroups trims entries and splits comma-separated values, which is
// how a list arrives from an environment variable.
func normalizeGroups(in []string) []string {
	var out []string
	for _, entry := range in {
		for _, g := range strings.Split(entry, ",") {
			if g = strings.TrimSpace(g); g != "" {
				out = append(out, g)
			}
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
