package catalog

import (
	"github.com/goliatone/go-curriculum/internal/domain"
	"github.com/google/uuid"
)

// Topic is one unit of teaching content. Explanation, CodeExample, and
// Exercise are opaque payloads; the catalog never parses or renders them.
type Topic struct {
	ID          string         `json:"id"`
	UID         uuid.UUID      `json:"uid"`
	Name        string         `json:"name"`
	SectionID   string         `json:"section_id"`
	Slug        string         `json:"slug"`
	Explanation string         `json:"explanation"`
	CodeExample string         `json:"code_example"`
	KeyPoints   []string       `json:"key_points"`
	Exercise    string         `json:"exercise"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Section groups topics by difficulty tier. Position makes ordering explicit;
// ties fall back to declaration order.
type Section struct {
	ID       string       `json:"id"`
	UID      uuid.UUID    `json:"uid"`
	Name     string       `json:"name"`
	Position int          `json:"position"`
	Level    domain.Level `json:"level,omitempty"`
}

func cloneTopic(src *Topic) *Topic {
	if src == nil {
		return nil
	}
	copied := *src
	if len(src.KeyPoints) > 0 {
		copied.KeyPoints = append([]string(nil), src.KeyPoints...)
	}
	if len(src.Metadata) > 0 {
		copied.Metadata = make(map[string]any, len(src.Metadata))
		for key, value := range src.Metadata {
			copied.Metadata[key] = value
		}
	}
	return &copied
}

func cloneSection(src *Section) *Section {
	if src == nil {
		return nil
	}
	copied := *src
	return &copied
}
