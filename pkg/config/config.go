// Package config loads the server configuration from an optional YAML
// file with environment variable overrides. A .env file, when present, is
// folded into the environment first.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/mocksmith/mocksmith/pkg/plan"
)

// Storage backends.
const (
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Common configuration errors.
var (
	ErrFileNotFound = errors.New("configuration file not found")
	ErrInvalidYAML  = errors.New("invalid YAML syntax")
)

// Config is the full server configuration.
type Config struct {
	// Listen is the bind address, e.g. ":8080".
	Listen string `yaml:"listen"`

	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`

	// Subscriptions assigns plans per organization for deployments without
	// a billing integration. Organizations not listed get the free plan.
	Subscriptions map[string]SubscriptionConfig `yaml:"subscriptions"`
}

// StorageConfig selects and parameterizes the document store.
type StorageConfig struct {
	Backend string `yaml:"backend"`

	MongoURI      string `yaml:"mongoUri"`
	MongoDatabase string `yaml:"mongoDatabase"`
}

// LogConfig shapes the structured logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SubscriptionConfig is one statically configured subscription.
type SubscriptionConfig struct {
	Plan        string     `yaml:"plan"`
	IsTrialing  bool       `yaml:"isTrialing"`
	TrialEndsAt *time.Time `yaml:"trialEndsAt"`
}

// Default returns the configuration used when nothing is specified.
func Default() *Config {
	return &Config{
		Listen: ":8080",
		Storage: StorageConfig{
			Backend:       BackendMemory,
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "mocksmith",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration: defaults, then the YAML file (when path
// is non-empty), then environment overrides. A .env file next to the
// process is applied before the environment is read.
func Load(path string) (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("MOCKSMITH_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("MOCKSMITH_STORAGE_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("MOCKSMITH_MONGO_URI"); v != "" {
		c.Storage.MongoURI = v
	}
	if v := os.Getenv("MOCKSMITH_MONGO_DATABASE"); v != "" {
		c.Storage.MongoDatabase = v
	}
	if v := os.Getenv("MOCKSMITH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("MOCKSMITH_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
}

// Validate rejects configurations the server could not start with.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendMemory, BackendMongo:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Storage.Backend == BackendMongo {
		if c.Storage.MongoURI == "" {
			return errors.New("mongo backend requires a URI")
		}
		if c.Storage.MongoDatabase == "" {
			return errors.New("mongo backend requires a database name")
		}
	}
	if c.Listen == "" {
		return errors.New("listen address is required")
	}
	return nil
}

// PlanProvider converts the configured subscriptions into a static
// subscription source.
func (c *Config) PlanProvider() plan.StaticProvider {
	p := make(plan.StaticProvider, len(c.Subscriptions))
	for org, sc := range c.Subscriptions {
		p[org] = &plan.Subscription{
			Plan:        plan.Tier(strings.ToLower(sc.Plan)),
			Status:      "active",
			IsTrialing:  sc.IsTrialing,
			TrialEndsAt: sc.TrialEndsAt,
		}
	}
	return p
}
