package catalog

import (
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/goliatone/go-curriculum/internal/identity"
	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
)

// Warning flags a soft invariant violation. Warnings are collected for author
// feedback and never abort a build.
type Warning struct {
	TopicID string
	Field   string
	Message string
}

// Report carries the soft findings collected while building a catalog.
type Report struct {
	Warnings []Warning
}

// HasWarnings reports whether any soft invariant was violated.
func (r *Report) HasWarnings() bool {
	return r != nil && len(r.Warnings) > 0
}

// UIDDeriver produces the stable UUID stamped on records that arrive without one.
type UIDDeriver func(kind, key string) uuid.UUID

// BuildOption configures catalog construction.
type BuildOption func(*builder)

// WithUIDDeriver overrides the deterministic UUID derivation used for records.
func WithUIDDeriver(derive UIDDeriver) BuildOption {
	return func(b *builder) {
		if derive != nil {
			b.uid = derive
		}
	}
}

type builder struct {
	uid UIDDeriver
}

func defaultUIDDeriver(kind, key string) uuid.UUID {
	switch kind {
	case "section":
		return identity.SectionUUID(key)
	default:
		return identity.TopicUUID(key)
	}
}

// Build validates the supplied records and assembles the immutable catalog.
//
// Hard violations (duplicate topic ids or slugs, duplicate or missing
// sections, malformed fields) are aggregated into a single *BuildError so the
// report is actionable in one pass; the catalog is never partially usable.
// Soft violations (empty key points or payloads) are returned as warnings on
// the Report and do not abort construction.
func Build(topics []Topic, sections []Section, opts ...BuildOption) (*Catalog, *Report, error) {
	b := &builder{uid: defaultUIDDeriver}
	for _, opt := range opts {
		opt(b)
	}

	report := &Report{}
	violations := []error{}

	orderedSections, sectionViolations := b.collectSections(sections)
	violations = append(violations, sectionViolations...)

	declared := make(map[string]*Section, len(orderedSections))
	for _, section := range orderedSections {
		declared[section.ID] = section
	}

	orderedTopics, topicViolations := b.collectTopics(topics, declared, report)
	violations = append(violations, topicViolations...)

	if len(violations) > 0 {
		return nil, report, &BuildError{Violations: violations}
	}

	c := &Catalog{
		byID:      make(map[string]*Topic, len(orderedTopics)),
		bySlug:    make(map[string]*Topic, len(orderedTopics)),
		bySection: make(map[string][]*Topic, len(orderedSections)),
		sections:  orderedSections,
		sectionID: declared,
	}
	for _, section := range orderedSections {
		c.bySection[section.ID] = []*Topic{}
	}
	for _, topic := range orderedTopics {
		c.byID[topic.ID] = topic
		c.bySlug[topic.Slug] = topic
		c.bySection[topic.SectionID] = append(c.bySection[topic.SectionID], topic)
	}
	return c, report, nil
}

func (b *builder) collectSections(sections []Section) ([]*Section, []error) {
	violations := []error{}
	seen := map[string]int{}
	duplicates := []string{}
	ordered := make([]*Section, 0, len(sections))

	for index, section := range sections {
		record := cloneSection(&section)
		record.ID = strings.TrimSpace(record.ID)
		record.Name = strings.TrimSpace(record.Name)

		if errs := validateSectionFields(record); len(errs) > 0 {
			violations = append(violations, &InvalidSectionError{Index: index, ID: record.ID, Fields: errs})
			continue
		}

		seen[record.ID]++
		if seen[record.ID] == 2 {
			duplicates = append(duplicates, record.ID)
		}
		if seen[record.ID] > 1 {
			continue
		}

		if record.UID == uuid.Nil {
			record.UID = b.uid("section", record.ID)
		}
		ordered = append(ordered, record)
	}

	if len(duplicates) > 0 {
		violations = append(violations, &DuplicateSectionError{IDs: duplicates})
	}

	// Explicit positions win; ties keep declaration order. Unpositioned
	// sections (zero) follow every positioned one, also in declaration order.
	sort.SliceStable(ordered, func(i, j int) bool {
		pi, pj := ordered[i].Position, ordered[j].Position
		if (pi > 0) != (pj > 0) {
			return pi > 0
		}
		return pi < pj
	})

	return ordered, violations
}

func (b *builder) collectTopics(topics []Topic, declared map[string]*Section, report *Report) ([]*Topic, []error) {
	violations := []error{}

	idSeen := map[string]int{}
	slugSeen := map[string]int{}
	duplicateIDs := []string{}
	duplicateSlugs := []string{}
	missingSections := map[string][]string{}
	missingOrder := []string{}

	ordered := make([]*Topic, 0, len(topics))

	for index, topic := range topics {
		record := cloneTopic(&topic)
		record.ID = strings.TrimSpace(record.ID)
		record.Name = strings.TrimSpace(record.Name)
		record.SectionID = strings.TrimSpace(record.SectionID)
		record.Slug = strings.TrimSpace(record.Slug)

		if errs := validateTopicFields(record); len(errs) > 0 {
			violations = append(violations, &InvalidTopicError{Index: index, ID: record.ID, Fields: errs})
			continue
		}

		idSeen[record.ID]++
		if idSeen[record.ID] == 2 {
			duplicateIDs = append(duplicateIDs, record.ID)
		}
		slugSeen[record.Slug]++
		if slugSeen[record.Slug] == 2 {
			duplicateSlugs = append(duplicateSlugs, record.Slug)
		}

		if record.SectionID != "" {
			if _, ok := declared[record.SectionID]; !ok {
				if _, tracked := missingSections[record.SectionID]; !tracked {
					missingOrder = append(missingOrder, record.SectionID)
				}
				missingSections[record.SectionID] = append(missingSections[record.SectionID], record.ID)
			}
		}

		collectTopicWarnings(record, report)

		if record.UID == uuid.Nil {
			record.UID = b.uid("topic", record.ID)
		}
		ordered = append(ordered, record)
	}

	if len(duplicateIDs) > 0 {
		violations = append(violations, &DuplicateIDError{IDs: duplicateIDs})
	}
	if len(duplicateSlugs) > 0 {
		violations = append(violations, &DuplicateSlugError{Slugs: duplicateSlugs})
	}
	for _, sectionID := range missingOrder {
		violations = append(violations, &UnknownSectionError{
			SectionID: sectionID,
			TopicIDs:  missingSections[sectionID],
		})
	}

	return ordered, violations
}

func validateSectionFields(section *Section) validation.Errors {
	errs := validation.Errors{}
	if section.ID == "" {
		errs["id"] = validation.NewError("curriculum.section.id_required", "section id is required")
	}
	if section.Name == "" {
		errs["name"] = validation.NewError("curriculum.section.name_required", "section name is required")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateTopicFields(topic *Topic) validation.Errors {
	errs := validation.Errors{}
	if topic.ID == "" {
		errs["id"] = validation.NewError("curriculum.topic.id_required", "topic id is required")
	}
	if topic.Name == "" {
		errs["name"] = validation.NewError("curriculum.topic.name_required", "topic name is required")
	}
	if topic.SectionID == "" {
		errs["section_id"] = validation.NewError("curriculum.topic.section_required", "topic section id is required")
	}
	if topic.Slug == "" {
		errs["slug"] = validation.NewError("curriculum.topic.slug_required", "topic slug is required")
	} else if !slug.IsValid(topic.Slug) {
		errs["slug"] = validation.NewError("curriculum.topic.slug_invalid", "topic slug contains invalid characters")
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func collectTopicWarnings(topic *Topic, report *Report) {
	if len(topic.KeyPoints) == 0 {
		report.Warnings = append(report.Warnings, Warning{
			TopicID: topic.ID,
			Field:   "key_points",
			Message: "topic has no key points",
		})
	}
	if strings.TrimSpace(topic.Explanation) == "" {
		report.Warnings = append(report.Warnings, Warning{
			TopicID: topic.ID,
			Field:   "explanation",
			Message: "topic explanation is empty",
		})
	}
	if strings.TrimSpace(topic.CodeExample) == "" {
		report.Warnings = append(report.Warnings, Warning{
			TopicID: topic.ID,
			Field:   "code_example",
			Message: "topic code example is empty",
		})
	}
	if strings.TrimSpace(topic.Exercise) == "" {
		report.Warnings = append(report.Warnings, Warning{
			TopicID: topic.ID,
			Field:   "exercise",
			Message: "topic exercise is empty",
		})
	}
}
