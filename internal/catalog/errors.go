package catalog

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ErrCatalogNotReady signals a query arrived before any catalog was built.
var ErrCatalogNotReady = errors.New("catalog: no catalog has been built yet")

// NotFoundError represents missing records from catalog lookups.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// DuplicateIDError reports every topic id shared by two or more records.
type DuplicateIDError struct {
	IDs []string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("catalog: duplicate topic ids: %s", strings.Join(e.IDs, ", "))
}

// DuplicateSlugError reports every slug shared by two or more records.
type DuplicateSlugError struct {
	Slugs []string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("catalog: duplicate topic slugs: %s", strings.Join(e.Slugs, ", "))
}

// DuplicateSectionError reports section ids declared more than once.
type DuplicateSectionError struct {
	IDs []string
}

func (e *DuplicateSectionError) Error() string {
	return fmt.Sprintf("catalog: duplicate section ids: %s", strings.Join(e.IDs, ", "))
}

// UnknownSectionError reports a section id that was never declared. At build
// time TopicIDs names the topics referencing it; on lookups it is empty.
type UnknownSectionError struct {
	SectionID string
	TopicIDs  []string
}

func (e *UnknownSectionError) Error() string {
	if len(e.TopicIDs) == 0 {
		return fmt.Sprintf("catalog: section %q not declared", e.SectionID)
	}
	return fmt.Sprintf("catalog: section %q not declared, referenced by topics: %s", e.SectionID, strings.Join(e.TopicIDs, ", "))
}

// InvalidTopicError carries per-field validation failures for one topic record.
type InvalidTopicError struct {
	Index  int
	ID     string
	Fields validation.Errors
}

func (e *InvalidTopicError) Error() string {
	label := e.ID
	if label == "" {
		label = fmt.Sprintf("at position %d", e.Index)
	}
	return fmt.Sprintf("catalog: invalid topic %s: %v", label, e.Fields)
}

// InvalidSectionError carries per-field validation failures for one section record.
type InvalidSectionError struct {
	Index  int
	ID     string
	Fields validation.Errors
}

func (e *InvalidSectionError) Error() string {
	label := e.ID
	if label == "" {
		label = fmt.Sprintf("at position %d", e.Index)
	}
	return fmt.Sprintf("catalog: invalid section %s: %v", label, e.Fields)
}

// BuildError aggregates every hard violation detected during catalog
// construction so content authors see the full picture in one report.
type BuildError struct {
	Violations []error
}

func (e *BuildError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		parts = append(parts, violation.Error())
	}
	return fmt.Sprintf("catalog build failed: %s", strings.Join(parts, "; "))
}

// Unwrap exposes individual violations to errors.Is and errors.As.
func (e *BuildError) Unwrap() []error {
	return e.Violations
}
