package curriculum

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-curriculum/internal/catalog"
	catalogcmd "github.com/goliatone/go-curriculum/internal/commands/catalog"
	"github.com/goliatone/go-curriculum/internal/di"
	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

// Topic is one unit of teaching content.
type Topic = catalog.Topic

// Section is a named grouping of topics.
type Section = catalog.Section

// Catalog is the immutable, indexed aggregation of all topics and sections.
type Catalog = catalog.Catalog

// Report carries soft findings collected while building a catalog.
type Report = catalog.Report

// Warning flags a soft invariant violation found during a build.
type Warning = catalog.Warning

// CatalogService exports the catalog query contract for consumers of the module.
type CatalogService = catalog.Service

// BuildOption configures catalog construction.
type BuildOption = catalog.BuildOption

// Error types surfaced by catalog construction and lookups.
type (
	BuildError          = catalog.BuildError
	DuplicateIDError    = catalog.DuplicateIDError
	DuplicateSlugError  = catalog.DuplicateSlugError
	DuplicateSectionErr = catalog.DuplicateSectionError
	UnknownSectionError = catalog.UnknownSectionError
	InvalidTopicError   = catalog.InvalidTopicError
	NotFoundError       = catalog.NotFoundError
)

// ErrCatalogNotReady signals a query arrived before any catalog was built.
var ErrCatalogNotReady = catalog.ErrCatalogNotReady

// ErrCommandsDisabled signals a command was invoked while the commands feature is off.
var ErrCommandsDisabled = errors.New("curriculum: commands feature is disabled")

// ErrModuleDisabled signals the module was constructed with Enabled unset.
var ErrModuleDisabled = errors.New("curriculum: module is disabled")

// SyncCatalogCommand exports the catalog sync command message.
type SyncCatalogCommand = catalogcmd.SyncCatalogCommand

// CheckContentCommand exports the content check command message.
type CheckContentCommand = catalogcmd.CheckContentCommand

// Build validates topic and section records and assembles an immutable catalog.
// It is the module's single ingestion point for compiled-in content.
func Build(topics []Topic, sections []Section, opts ...BuildOption) (*Catalog, *Report, error) {
	return catalog.Build(topics, sections, opts...)
}

// Option mutates the module container before it is finalised.
type Option = di.Option

// WithRecords supplies the static records the catalog is built from at startup.
func WithRecords(topics []Topic, sections []Section) Option {
	return di.WithRecords(topics, sections)
}

// WithContentFS supplies the filesystem the markdown loader reads from.
func WithContentFS(fsys fs.FS) Option {
	return di.WithContentFS(fsys)
}

// WithLoggerProvider overrides the logger provider resolved from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return di.WithLoggerProvider(provider)
}

// Module represents the top level curriculum runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a curriculum module using the provided configuration and optional DI overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	if !cfg.Enabled {
		return nil, ErrModuleDisabled
	}
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Catalog returns the configured catalog query service.
func (m *Module) Catalog() CatalogService {
	return m.container.CatalogService()
}

// BuildReport returns soft findings from the startup build, if one ran.
func (m *Module) BuildReport() *Report {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.BuildReport()
}

// Sync rebuilds the served catalog from the configured content directory.
// It requires the loader and commands features to be enabled.
func (m *Module) Sync(ctx context.Context) error {
	handler := m.container.SyncHandler()
	if handler == nil {
		return ErrCommandsDisabled
	}
	return handler.Execute(ctx, SyncCatalogCommand{
		ContentDir: m.container.Config().Content.Dir,
	})
}

// Check dry-runs a build of the supplied content directory without touching
// the served catalog. It requires the commands feature to be enabled.
func (m *Module) Check(ctx context.Context, contentDir string, failOnWarnings bool) error {
	handler := m.container.CheckHandler()
	if handler == nil {
		return ErrCommandsDisabled
	}
	return handler.Execute(ctx, CheckContentCommand{
		ContentDir:     contentDir,
		FailOnWarnings: failOnWarnings,
	})
}
