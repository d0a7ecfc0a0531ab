package markdown

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"strings"

	yaml "gopkg.in/yaml.v3"

	"github.com/goliatone/go-curriculum/internal/catalog"
	"github.com/goliatone/go-curriculum/internal/domain"
	"github.com/goliatone/go-curriculum/internal/logging"
	"github.com/goliatone/go-curriculum/pkg/interfaces"
)

// Config configures how topic documents are discovered within a base directory.
type Config struct {
	// Dir is the root directory where topic documents live.
	Dir string
	// Pattern limits discovered files to those matching the supplied glob (defaults to "*.md").
	Pattern string
	// Recursive controls whether sub-directories are traversed.
	Recursive bool
	// SectionsManifest names the YAML manifest declaring sections (defaults to "sections.yaml").
	SectionsManifest string
}

// Option configures the loader at construction time.
type Option func(*Loader)

// WithLogger injects the logger used for load diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// Loader turns filesystem content into catalog records. Loading is the only
// I/O step; catalog construction stays synchronous over the loaded records.
type Loader struct {
	fsys      fs.FS
	dir       string
	pattern   string
	recursive bool
	manifest  string
	logger    interfaces.Logger
}

// NewLoader constructs a Loader using the provided filesystem and configuration.
func NewLoader(fsys fs.FS, cfg Config, opts ...Option) *Loader {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	manifest := strings.TrimSpace(cfg.SectionsManifest)
	if manifest == "" {
		manifest = "sections.yaml"
	}

	l := &Loader{
		fsys:      fsys,
		dir:       path.Clean(cfg.Dir),
		pattern:   pattern,
		recursive: cfg.Recursive,
		manifest:  manifest,
		logger:    logging.NoOp(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type sectionManifest struct {
	Sections []sectionEntry `yaml:"sections"`
}

type sectionEntry struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Position int    `yaml:"position"`
	Level    string `yaml:"level"`
}

// LoadSections reads the section manifest in declaration order.
func (l *Loader) LoadSections(ctx context.Context) ([]catalog.Section, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	manifestPath := path.Join(l.dir, l.manifest)
	data, err := fs.ReadFile(l.fsys, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("loader read %s: %w", manifestPath, err)
	}

	var manifest sectionManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("loader parse %s: %w", manifestPath, err)
	}

	sections := make([]catalog.Section, 0, len(manifest.Sections))
	for _, entry := range manifest.Sections {
		sections = append(sections, catalog.Section{
			ID:       strings.TrimSpace(entry.ID),
			Name:     strings.TrimSpace(entry.Name),
			Position: entry.Position,
			Level:    domain.NormalizeLevel(entry.Level),
		})
	}

	l.logger.WithContext(ctx).Debug("loader.sections.loaded", "path", manifestPath, "count", len(sections))
	return sections, nil
}

// LoadTopics discovers topic documents and parses them in lexical path order,
// so repeated loads of the same tree keep a stable declaration order.
func (l *Loader) LoadTopics(ctx context.Context) ([]catalog.Topic, error) {
	paths, err := l.discover(ctx)
	if err != nil {
		return nil, err
	}

	topics := make([]catalog.Topic, 0, len(paths))
	for _, filePath := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := fs.ReadFile(l.fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("loader read %s: %w", filePath, err)
		}

		topic, err := ParseTopicDocument(filePath, data)
		if err != nil {
			return nil, err
		}

		l.logger.WithContext(ctx).Debug("loader.topic.parsed", "path", filePath, "topic_id", topic.ID)
		topics = append(topics, topic)
	}
	return topics, nil
}

// Load reads the full content tree, topics and sections together.
func (l *Loader) Load(ctx context.Context) ([]catalog.Topic, []catalog.Section, error) {
	sections, err := l.LoadSections(ctx)
	if err != nil {
		return nil, nil, err
	}
	topics, err := l.LoadTopics(ctx)
	if err != nil {
		return nil, nil, err
	}
	return topics, sections, nil
}

func (l *Loader) discover(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	paths := []string{}
	err := fs.WalkDir(l.fsys, l.dir, func(entryPath string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			if !l.recursive && entryPath != l.dir {
				return fs.SkipDir
			}
			return nil
		}

		matched, err := path.Match(l.pattern, entry.Name())
		if err != nil {
			return fmt.Errorf("loader pattern %q: %w", l.pattern, err)
		}
		if matched {
			paths = append(paths, entryPath)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loader scan %s: %w", l.dir, err)
	}
	return paths, nil
}
