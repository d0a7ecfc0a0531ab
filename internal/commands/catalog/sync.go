package catalogcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-curriculum/internal/catalog"
	"github.com/goliatone/go-curriculum/internal/commands"
	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

const syncCatalogMessageType = "curriculum.catalog.sync"

// ContentLoader abstracts the filesystem loader so handlers stay decoupled
// from the markdown package.
type ContentLoader interface {
	Load(ctx context.Context) ([]catalog.Topic, []catalog.Section, error)
}

// LoaderFactory builds a loader rooted at the supplied content directory.
type LoaderFactory func(dir string) ContentLoader

// SyncCatalogCommand requests a rebuild of the served catalog from a content directory.
type SyncCatalogCommand struct {
	ContentDir string `json:"content_dir"`
}

// Type implements command.Message.
func (SyncCatalogCommand) Type() string { return syncCatalogMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m SyncCatalogCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ContentDir) == "" {
		errs["content_dir"] = validation.NewError("curriculum.catalog.sync.content_dir_required", "content_dir is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SyncCatalogHandler rebuilds the catalog from disk and swaps it into the store.
type SyncCatalogHandler struct {
	inner *commands.Handler[SyncCatalogCommand]
}

// NewSyncCatalogHandler constructs a handler wired to the provided loader factory and store.
func NewSyncCatalogHandler(loaders LoaderFactory, store *catalog.Store, logger interfaces.Logger, opts ...commands.HandlerOption[SyncCatalogCommand]) *SyncCatalogHandler {
	exec := func(ctx context.Context, msg SyncCatalogCommand) error {
		topics, sections, err := loaders(msg.ContentDir).Load(ctx)
		if err != nil {
			return err
		}

		built, report, err := catalog.Build(topics, sections)
		if err != nil {
			return err
		}
		logWarnings(logger, report)

		store.Replace(built)
		logger.Info("catalog.sync.replaced",
			"topics", built.TopicCount(),
			"sections", built.SectionCount(),
		)
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncCatalogCommand]{
		commands.WithLogger[SyncCatalogCommand](logger),
		commands.WithOperation[SyncCatalogCommand]("catalog.sync"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncCatalogHandler{
		inner: commands.NewHandler[SyncCatalogCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncCatalogCommand].Execute.
func (h *SyncCatalogHandler) Execute(ctx context.Context, msg SyncCatalogCommand) error {
	return h.inner.Execute(ctx, msg)
}

func logWarnings(logger interfaces.Logger, report *catalog.Report) {
	if logger == nil || !report.HasWarnings() {
		return
	}
	for _, warning := range report.Warnings {
		logger.Warn("catalog.content.warning",
			"topic_id", warning.TopicID,
			"field", warning.Field,
			"message", warning.Message,
		)
	}
}
