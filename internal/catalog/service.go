package catalog

import (
	"context"

	"github.com/goliatone/go-curriculum/internal/logging"
	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

// Service exposes catalog query use-cases to hosting applications.
type Service interface {
	Topic(ctx context.Context, id string) (*Topic, error)
	TopicBySlug(ctx context.Context, slug string) (*Topic, error)
	Sections(ctx context.Context) ([]*Section, error)
	TopicsBySection(ctx context.Context, sectionID string) ([]*Topic, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger injects the logger used for query diagnostics.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type service struct {
	store  *Store
	logger interfaces.Logger
}

// NewService constructs a catalog query service backed by the supplied store.
func NewService(store *Store, opts ...ServiceOption) Service {
	s := &service{
		store:  store,
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) catalog(ctx context.Context) (*Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	current := s.store.Current()
	if current == nil {
		return nil, ErrCatalogNotReady
	}
	return current, nil
}

// Topic resolves a topic by id.
func (s *service) Topic(ctx context.Context, id string) (*Topic, error) {
	current, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	record, err := current.Topic(id)
	if err != nil {
		s.logger.WithContext(ctx).Debug("catalog.topic.miss", "topic_id", id)
		return nil, err
	}
	return record, nil
}

// TopicBySlug resolves a topic by routing slug.
func (s *service) TopicBySlug(ctx context.Context, slug string) (*Topic, error) {
	current, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	record, err := current.TopicBySlug(slug)
	if err != nil {
		s.logger.WithContext(ctx).Debug("catalog.topic.slug_miss", "slug", slug)
		return nil, err
	}
	return record, nil
}

// Sections lists declared sections in catalog order.
func (s *service) Sections(ctx context.Context) ([]*Section, error) {
	current, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	return current.Sections(), nil
}

// TopicsBySection lists a section's topics in declaration order.
func (s *service) TopicsBySection(ctx context.Context, sectionID string) ([]*Topic, error) {
	current, err := s.catalog(ctx)
	if err != nil {
		return nil, err
	}
	records, err := current.TopicsBySection(sectionID)
	if err != nil {
		s.logger.WithContext(ctx).Warn("catalog.section.unknown", "section_id", sectionID)
		return nil, err
	}
	return records, nil
}
