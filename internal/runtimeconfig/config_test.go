package runtimeconfig

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
	if cfg.Content.Dir != "content" || cfg.Content.Pattern != "*.md" {
		t.Fatalf("unexpected content defaults: %+v", cfg.Content)
	}
	if cfg.Content.SectionsManifest != "sections.yaml" {
		t.Fatalf("unexpected manifest default: %q", cfg.Content.SectionsManifest)
	}
}

func TestValidateRequiresContentDirForLoader(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Loader = true
	cfg.Content.Dir = "   "

	if err := cfg.Validate(); !errors.Is(err, ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}

	cfg.Content.Dir = "content"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRequiresLoaderForCommands(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Commands = true

	if err := cfg.Validate(); !errors.Is(err, ErrCommandsRequireLoader) {
		t.Fatalf("expected ErrCommandsRequireLoader, got %v", err)
	}

	cfg.Features.Loader = true
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateRejectsNegativeCommandTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Commands.Timeout = -time.Second

	if err := cfg.Validate(); !errors.Is(err, ErrCommandTimeoutInvalid) {
		t.Fatalf("expected ErrCommandTimeoutInvalid, got %v", err)
	}
}

func TestValidateLoggingProvider(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = " Console "
	if err := cfg.Validate(); err != nil {
		t.Fatalf("provider matching should be case and space insensitive, got %v", err)
	}
}

func TestValidateLoggingLevelAndFormat(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); !errors.Is(err, ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}

	cfg.Logging.Format = "json"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestValidateSkipsLoggingChecksWhenFeatureOff(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Provider = "syslog"
	cfg.Logging.Level = "verbose"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("logging settings should be ignored while the feature is off, got %v", err)
	}
}
