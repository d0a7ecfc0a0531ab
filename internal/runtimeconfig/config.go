package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrContentDirRequired ensures the loader always has a directory to scan.
var ErrContentDirRequired = errors.New("curriculum config: content directory is required when the loader is enabled")

var ErrCommandsRequireLoader = errors.New("curriculum config: catalog commands require the loader to be enabled")
var ErrCommandTimeoutInvalid = errors.New("curriculum config: command timeout must be zero or positive")
var ErrLoggingProviderRequired = errors.New("curriculum config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("curriculum config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("curriculum config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("curriculum config: logging format is invalid")

// Config aggregates feature flags and adapter bindings for the curriculum module.
// Fields intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Content  ContentConfig
	Features Features
	Commands CommandsConfig
	Logging  LoggingConfig
}

// ContentConfig captures filesystem discovery behaviour for the markdown loader.
type ContentConfig struct {
	Dir              string
	Pattern          string
	Recursive        bool
	SectionsManifest string
}

// Features toggles module functionality.
type Features struct {
	Loader   bool
	Commands bool
	Logger   bool
}

// CommandsConfig captures optional command-layer behaviour. A zero Timeout
// keeps the handler default; a positive one overrides it.
type CommandsConfig struct {
	Timeout time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for embedding hosts.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Content: ContentConfig{
			Dir:              "content",
			Pattern:          "*.md",
			Recursive:        true,
			SectionsManifest: "sections.yaml",
		},
		Features: Features{},
		Commands: CommandsConfig{},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if cfg.Features.Loader {
		if strings.TrimSpace(cfg.Content.Dir) == "" {
			return ErrContentDirRequired
		}
	}
	if cfg.Features.Commands && !cfg.Features.Loader {
		return ErrCommandsRequireLoader
	}
	if cfg.Commands.Timeout < 0 {
		return ErrCommandTimeoutInvalid
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
