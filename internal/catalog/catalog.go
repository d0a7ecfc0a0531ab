package catalog

// Catalog is the immutable, indexed aggregation of all topics and sections.
// It is built once via Build and never mutated afterwards; every accessor
// returns defensive copies so callers cannot reach the shared indexes.
type Catalog struct {
	byID      map[string]*Topic
	bySlug    map[string]*Topic
	bySection map[string][]*Topic
	sections  []*Section
	sectionID map[string]*Section
}

// Topic resolves a topic by its primary identifier.
func (c *Catalog) Topic(id string) (*Topic, error) {
	record, ok := c.byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "topic", Key: id}
	}
	return cloneTopic(record), nil
}

// TopicBySlug resolves a topic by its URL-safe routing identifier.
func (c *Catalog) TopicBySlug(slug string) (*Topic, error) {
	record, ok := c.bySlug[slug]
	if !ok {
		return nil, &NotFoundError{Resource: "topic", Key: slug}
	}
	return cloneTopic(record), nil
}

// Section resolves a declared section by id.
func (c *Catalog) Section(id string) (*Section, error) {
	record, ok := c.sectionID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "section", Key: id}
	}
	return cloneSection(record), nil
}

// Sections lists every declared section in catalog order.
func (c *Catalog) Sections() []*Section {
	out := make([]*Section, 0, len(c.sections))
	for _, section := range c.sections {
		out = append(out, cloneSection(section))
	}
	return out
}

// TopicsBySection lists the topics declared under the section, preserving
// source declaration order. A declared section with zero topics yields an
// empty slice, not an error.
func (c *Catalog) TopicsBySection(sectionID string) ([]*Topic, error) {
	records, ok := c.bySection[sectionID]
	if !ok {
		return nil, &UnknownSectionError{SectionID: sectionID}
	}
	out := make([]*Topic, 0, len(records))
	for _, record := range records {
		out = append(out, cloneTopic(record))
	}
	return out, nil
}

// TopicCount reports how many topics the catalog holds.
func (c *Catalog) TopicCount() int {
	return len(c.byID)
}

// SectionCount reports how many sections the catalog holds.
func (c *Catalog) SectionCount() int {
	return len(c.sections)
}
