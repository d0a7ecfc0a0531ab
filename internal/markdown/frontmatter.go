package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-curriculum/internal/catalog"
	"github.com/goliatone/go-curriculum/internal/validation"
	"github.com/goliatone/go-slug"
)

const codeFenceMarker = "```csharp"

// ParseTopicDocument extracts a topic record from a markdown source file.
//
// The YAML frontmatter carries the structured fields (id, name, slug, section,
// key_points, exercise); the body is the explanation. The first fenced
// ```csharp block is lifted out verbatim as the code example, never parsed
// beyond its fence delimiters.
func ParseTopicDocument(path string, source []byte) (catalog.Topic, error) {
	meta := map[string]any{}

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return catalog.Topic{}, fmt.Errorf("parse frontmatter %s: %w", path, err)
	}

	if err := validation.ValidateTopicPayload(meta); err != nil {
		return catalog.Topic{}, fmt.Errorf("topic document %s: %w", path, err)
	}

	topic := catalog.Topic{
		ID:        stringField(meta, "id"),
		Name:      stringField(meta, "name"),
		Slug:      stringField(meta, "slug"),
		SectionID: stringField(meta, "section"),
		KeyPoints: stringSliceField(meta, "key_points"),
		Exercise:  stringField(meta, "exercise"),
	}

	if topic.Slug == "" {
		normalized, err := slug.Normalize(topic.Name)
		if err != nil {
			return catalog.Topic{}, fmt.Errorf("topic document %s: derive slug: %w", path, err)
		}
		topic.Slug = normalized
	}
	if topic.ID == "" {
		topic.ID = topic.Slug
	}

	explanation, code := splitCodeExample(string(body))
	topic.Explanation = explanation
	topic.CodeExample = code

	if extra := customFields(meta); len(extra) > 0 {
		topic.Metadata = extra
	}

	return topic, nil
}

// splitCodeExample lifts the first csharp fence out of the body. Everything
// around the fence remains the explanation. Fence delimiters only count at
// the start of a line, so prose mentioning the marker is left alone.
func splitCodeExample(body string) (explanation, code string) {
	start := fenceStart(body)
	if start < 0 {
		return strings.TrimSpace(body), ""
	}

	rest := body[start+len(codeFenceMarker):]
	end := strings.Index(rest, "\n```")
	if end < 0 {
		return strings.TrimSpace(body), ""
	}

	code = strings.Trim(rest[:end], "\n")
	explanation = strings.TrimSpace(body[:start] + rest[end+len("\n```"):])
	return explanation, code
}

// fenceStart returns the offset of the first line-anchored opening fence.
func fenceStart(body string) int {
	offset := 0
	for {
		i := strings.Index(body[offset:], codeFenceMarker)
		if i < 0 {
			return -1
		}
		i += offset
		if i == 0 || body[i-1] == '\n' {
			return i
		}
		offset = i + len(codeFenceMarker)
	}
}

func stringField(meta map[string]any, key string) string {
	value, ok := meta[key].(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}

func stringSliceField(meta map[string]any, key string) []string {
	raw, ok := meta[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, entry := range raw {
		if value, ok := entry.(string); ok {
			out = append(out, value)
		}
	}
	return out
}

func customFields(meta map[string]any) map[string]any {
	known := map[string]struct{}{
		"id": {}, "name": {}, "slug": {}, "section": {}, "key_points": {}, "exercise": {},
	}
	extra := map[string]any{}
	for key, value := range meta {
		if _, ok := known[key]; ok {
			continue
		}
		extra[key] = value
	}
	return extra
}
