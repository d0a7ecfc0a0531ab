package catalogcmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-curriculum/internal/catalog"
	"github.com/goliatone/go-curriculum/internal/commands"
	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

const checkContentMessageType = "curriculum.catalog.check"

// ErrContentWarnings marks a check that found soft violations while FailOnWarnings was set.
var ErrContentWarnings = errors.New("catalog check: content has warnings")

// CheckContentCommand runs a dry-run build of a content directory so authors
// get the full violation report without touching the served catalog.
type CheckContentCommand struct {
	ContentDir     string `json:"content_dir"`
	FailOnWarnings bool   `json:"fail_on_warnings"`
}

// Type implements command.Message.
func (CheckContentCommand) Type() string { return checkContentMessageType }

// Validate ensures the message carries the required fields before reaching handlers.
func (m CheckContentCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ContentDir) == "" {
		errs["content_dir"] = validation.NewError("curriculum.catalog.check.content_dir_required", "content_dir is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// CheckContentHandler validates content trees without replacing the served catalog.
type CheckContentHandler struct {
	inner *commands.Handler[CheckContentCommand]
}

// NewCheckContentHandler constructs a handler wired to the provided loader factory.
func NewCheckContentHandler(loaders LoaderFactory, logger interfaces.Logger, opts ...commands.HandlerOption[CheckContentCommand]) *CheckContentHandler {
	exec := func(ctx context.Context, msg CheckContentCommand) error {
		topics, sections, err := loaders(msg.ContentDir).Load(ctx)
		if err != nil {
			return err
		}

		built, report, err := catalog.Build(topics, sections)
		if err != nil {
			return err
		}
		logWarnings(logger, report)

		if msg.FailOnWarnings && report.HasWarnings() {
			return fmt.Errorf("%w: %d warning(s)", ErrContentWarnings, len(report.Warnings))
		}

		logger.Info("catalog.check.passed",
			"topics", built.TopicCount(),
			"sections", built.SectionCount(),
			"warnings", len(report.Warnings),
		)
		return nil
	}

	handlerOpts := []commands.HandlerOption[CheckContentCommand]{
		commands.WithLogger[CheckContentCommand](logger),
		commands.WithOperation[CheckContentCommand]("catalog.check"),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CheckContentHandler{
		inner: commands.NewHandler[CheckContentCommand](exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CheckContentCommand].Execute.
func (h *CheckContentHandler) Execute(ctx context.Context, msg CheckContentCommand) error {
	return h.inner.Execute(ctx, msg)
}
