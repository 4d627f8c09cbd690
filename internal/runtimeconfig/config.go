package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrPreviewBaseURLRequired = errors.New("loopcms config: preview base URL is required when preview is enabled")
var ErrResourcesContentDirRequired = errors.New("loopcms config: resources content directory is required when resources are enabled")
var ErrResourcesFeatureRequired = errors.New("loopcms config: resources feature must be enabled to configure the catalog")
var ErrResourceLimitInvalid = errors.New("loopcms config: resource default limit must be positive")
var ErrResourceMaxLimitInvalid = errors.New("loopcms config: resource max limit must not be below the default limit")
var ErrLoggingProviderRequired = errors.New("loopcms config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("loopcms config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("loopcms config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("loopcms config: logging format is invalid")
var ErrStorageProviderUnknown = errors.New("loopcms config: storage provider is invalid")

// Config aggregates feature flags and adapter bindings for the content service.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled   bool
	Storage   StorageConfig
	Cache     CacheConfig
	Preview   PreviewConfig
	Resources ResourcesConfig
	Slots     SlotsConfig
	Commands  CommandsConfig
	Features  Features
	Logging   LoggingConfig
}

// StorageConfig lists identifiers for storage-related dependencies.
type StorageConfig struct {
	Provider string
}

// CacheConfig captures cache behaviour toggles for the page repository.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// PreviewConfig captures routing for the live preview frame. The preview URL
// convention is /{slug}?preview=true with a cache-busting nonce appended.
type PreviewConfig struct {
	Enabled    bool
	BaseURL    string
	FlagParam  string
	NonceParam string
}

// ResourcesConfig captures filesystem behaviour for the resource catalog.
type ResourcesConfig struct {
	Enabled      bool
	ContentDir   string
	Pattern      string
	Recursive    bool
	DefaultLimit int
	MaxLimit     int
}

// SlotsConfig points at optional JSON slot-configuration documents layered on
// top of the built-in registry.
type SlotsConfig struct {
	ConfigDir string
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
}

// Features toggles module functionality.
type Features struct {
	Resources bool
	Narration bool
	Logger    bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for embedding the module.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Storage: StorageConfig{
			Provider: "memory",
		},
		Cache: CacheConfig{
			Enabled:    true,
			DefaultTTL: time.Minute,
		},
		Preview: PreviewConfig{
			Enabled:    true,
			BaseURL:    "http://localhost:3000",
			FlagParam:  "preview",
			NonceParam: "v",
		},
		Resources: ResourcesConfig{
			ContentDir:   "content/resources",
			Pattern:      "*.md",
			Recursive:    true,
			DefaultLimit: 20,
			MaxLimit:     100,
		},
		Features: Features{
			Resources: true,
			Narration: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	switch normalizeProvider(cfg.Storage.Provider) {
	case "", "memory", "bun":
	default:
		return fmt.Errorf("%w: %s", ErrStorageProviderUnknown, cfg.Storage.Provider)
	}
	if cfg.Preview.Enabled {
		if strings.TrimSpace(cfg.Preview.BaseURL) == "" {
			return ErrPreviewBaseURLRequired
		}
	}
	if cfg.Resources.Enabled {
		if !cfg.Features.Resources {
			return ErrResourcesFeatureRequired
		}
		if strings.TrimSpace(cfg.Resources.ContentDir) == "" {
			return ErrResourcesContentDirRequired
		}
	}
	if cfg.Resources.DefaultLimit < 0 {
		return ErrResourceLimitInvalid
	}
	if cfg.Resources.MaxLimit != 0 && cfg.Resources.MaxLimit < cfg.Resources.DefaultLimit {
		return ErrResourceMaxLimitInvalid
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
