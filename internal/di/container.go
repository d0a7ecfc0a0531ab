package di

import (
	"context"
	"errors"
	"io/fs"
	"strings"

	"github.com/goliatone/go-curriculum/internal/catalog"
	"github.com/goliatone/go-curriculum/internal/commands"
	catalogcmd "github.com/goliatone/go-curriculum/internal/commands/catalog"
	"github.com/goliatone/go-curriculum/internal/logging"
	"github.com/goliatone/go-curriculum/internal/logging/console"
	"github.com/goliatone/go-curriculum/internal/logging/gologger"
	"github.com/goliatone/go-curriculum/internal/markdown"
	"github.com/goliatone/go-curriculum/internal/runtimeconfig"
	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

// ErrContentSourceRequired indicates the loader feature was enabled without a content filesystem.
var ErrContentSourceRequired = errors.New("curriculum: loader feature requires a content filesystem")

// Container wires module dependencies from configuration and host-supplied inputs.
type Container struct {
	config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider

	contentFS fs.FS

	seedTopics   []catalog.Topic
	seedSections []catalog.Section
	hasSeed      bool

	store       *catalog.Store
	catalogSvc  catalog.Service
	buildReport *catalog.Report

	syncHandler  *catalogcmd.SyncCatalogHandler
	checkHandler *catalogcmd.CheckContentHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the logger provider resolved from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		if provider != nil {
			c.loggerProvider = provider
		}
	}
}

// WithContentFS supplies the filesystem the markdown loader reads from.
func WithContentFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.contentFS = fsys
	}
}

// WithRecords supplies the static topic and section literals the catalog is
// built from at startup. This is the primary ingestion point for hosts that
// compile content in rather than loading it from disk.
func WithRecords(topics []catalog.Topic, sections []catalog.Section) Option {
	return func(c *Container) {
		c.seedTopics = topics
		c.seedSections = sections
		c.hasSeed = true
	}
}

// NewContainer validates configuration and wires the module services.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		config: cfg,
		store:  catalog.NewStore(nil),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.loggerProvider == nil {
		provider, err := resolveLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		c.loggerProvider = provider
	}

	catalogLogger := logging.CatalogLogger(c.loggerProvider)

	if c.hasSeed {
		built, report, err := catalog.Build(c.seedTopics, c.seedSections)
		if err != nil {
			return nil, err
		}
		c.buildReport = report
		for _, warning := range report.Warnings {
			catalogLogger.Warn("catalog.content.warning",
				"topic_id", warning.TopicID,
				"field", warning.Field,
				"message", warning.Message,
			)
		}
		c.store.Replace(built)
	}

	c.catalogSvc = catalog.NewService(c.store, catalog.WithLogger(catalogLogger))

	if cfg.Features.Loader {
		if c.contentFS == nil {
			return nil, ErrContentSourceRequired
		}
		if !c.hasSeed {
			if err := c.loadInitialContent(); err != nil {
				return nil, err
			}
		}
	}

	if cfg.Features.Commands {
		commandsLogger := logging.CommandsLogger(c.loggerProvider)
		factory := c.loaderFactory()

		var syncOpts []commands.HandlerOption[catalogcmd.SyncCatalogCommand]
		var checkOpts []commands.HandlerOption[catalogcmd.CheckContentCommand]
		if timeout := cfg.Commands.Timeout; timeout > 0 {
			syncOpts = append(syncOpts, commands.WithTimeout[catalogcmd.SyncCatalogCommand](timeout))
			checkOpts = append(checkOpts, commands.WithTimeout[catalogcmd.CheckContentCommand](timeout))
		}

		c.syncHandler = catalogcmd.NewSyncCatalogHandler(factory, c.store, commandsLogger, syncOpts...)
		c.checkHandler = catalogcmd.NewCheckContentHandler(factory, commandsLogger, checkOpts...)
	}

	return c, nil
}

func (c *Container) loadInitialContent() error {
	loader := c.newLoader(c.config.Content.Dir)
	topics, sections, err := loader.Load(context.Background())
	if err != nil {
		return err
	}

	built, report, err := catalog.Build(topics, sections)
	if err != nil {
		return err
	}
	c.buildReport = report

	catalogLogger := logging.CatalogLogger(c.loggerProvider)
	for _, warning := range report.Warnings {
		catalogLogger.Warn("catalog.content.warning",
			"topic_id", warning.TopicID,
			"field", warning.Field,
			"message", warning.Message,
		)
	}

	c.store.Replace(built)
	return nil
}

func (c *Container) newLoader(dir string) *markdown.Loader {
	return markdown.NewLoader(c.contentFS, markdown.Config{
		Dir:              dir,
		Pattern:          c.config.Content.Pattern,
		Recursive:        c.config.Content.Recursive,
		SectionsManifest: c.config.Content.SectionsManifest,
	}, markdown.WithLogger(logging.LoaderLogger(c.loggerProvider)))
}

func (c *Container) loaderFactory() catalogcmd.LoaderFactory {
	return func(dir string) catalogcmd.ContentLoader {
		return c.newLoader(dir)
	}
}

// Config returns the configuration the container was built from.
func (c *Container) Config() runtimeconfig.Config {
	return c.config
}

// CatalogService returns the configured catalog query service.
func (c *Container) CatalogService() catalog.Service {
	return c.catalogSvc
}

// Store returns the catalog store backing the query service.
func (c *Container) Store() *catalog.Store {
	return c.store
}

// BuildReport returns the soft findings from the startup build, if one ran.
func (c *Container) BuildReport() *catalog.Report {
	return c.buildReport
}

// LoggerProvider exposes the provider used for module loggers.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// SyncHandler returns the catalog sync command handler when commands are enabled.
func (c *Container) SyncHandler() *catalogcmd.SyncCatalogHandler {
	return c.syncHandler
}

// CheckHandler returns the content check command handler when commands are enabled.
func (c *Container) CheckHandler() *catalogcmd.CheckContentHandler {
	return c.checkHandler
}

func resolveLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return noopProvider{}, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		level := consoleLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	}
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "", "info":
		return console.LevelInfo
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}

type noopProvider struct{}

func (noopProvider) GetLogger(string) interfaces.Logger {
	return logging.NoOp()
}
