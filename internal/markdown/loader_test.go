package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-curriculum/internal/domain"
	"github.com/goliatone/go-curriculum/internal/validation"
)

const topicDocument = `---
id: variables
name: Variables and Data Types
section: beginner
key_points:
  - Every variable has a compile-time type
  - var infers the type from the initializer
exercise: Declare three variables and print them.
difficulty: easy
---
Variables hold typed values.

` + "```csharp" + `
int age = 30;
string name = "Ada";
` + "```" + `

The compiler checks every assignment.
`

const manifestDocument = `sections:
  - id: beginner
    name: Beginner
    position: 1
    level: Beginner
  - id: advanced
    name: Advanced
    position: 2
    level: advanced
`

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"content/sections.yaml":      {Data: []byte(manifestDocument)},
		"content/01-variables.md":    {Data: []byte(topicDocument)},
		"content/notes.txt":          {Data: []byte("not a topic")},
		"content/drafts/02-draft.md": {Data: []byte(topicDocument)},
	}
}

func TestParseTopicDocumentExtractsFields(t *testing.T) {
	topic, err := ParseTopicDocument("content/01-variables.md", []byte(topicDocument))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	if topic.ID != "variables" || topic.Name != "Variables and Data Types" {
		t.Fatalf("unexpected identity fields: %+v", topic)
	}
	if topic.SectionID != "beginner" {
		t.Fatalf("expected beginner section, got %q", topic.SectionID)
	}
	if len(topic.KeyPoints) != 2 {
		t.Fatalf("expected 2 key points, got %v", topic.KeyPoints)
	}
	if !strings.Contains(topic.CodeExample, `string name = "Ada";`) {
		t.Fatalf("code fence was not lifted: %q", topic.CodeExample)
	}
	if strings.Contains(topic.Explanation, "```") {
		t.Fatalf("fence delimiters leaked into the explanation: %q", topic.Explanation)
	}
	if !strings.Contains(topic.Explanation, "Variables hold typed values.") ||
		!strings.Contains(topic.Explanation, "The compiler checks every assignment.") {
		t.Fatalf("text around the fence must survive as explanation: %q", topic.Explanation)
	}
	if topic.Metadata["difficulty"] != "easy" {
		t.Fatalf("custom frontmatter should land in metadata, got %v", topic.Metadata)
	}
}

func TestParseTopicDocumentDerivesSlugAndID(t *testing.T) {
	source := `---
name: Pattern Matching
section: advanced
---
Body text.
`
	topic, err := ParseTopicDocument("doc.md", []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if topic.Slug != "pattern-matching" {
		t.Fatalf("expected slug derived from name, got %q", topic.Slug)
	}
	if topic.ID != "pattern-matching" {
		t.Fatalf("expected id to default to the slug, got %q", topic.ID)
	}
}

func TestParseTopicDocumentRejectsMissingRequiredFields(t *testing.T) {
	source := `---
id: broken
---
Body text.
`
	_, err := ParseTopicDocument("doc.md", []byte(source))
	if !errors.Is(err, validation.ErrSchemaValidation) {
		t.Fatalf("expected schema validation failure, got %v", err)
	}
}

func TestParseTopicDocumentWithoutFence(t *testing.T) {
	source := `---
name: Plain Topic
section: beginner
---
Only prose here.
`
	topic, err := ParseTopicDocument("doc.md", []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if topic.CodeExample != "" {
		t.Fatalf("expected empty code example, got %q", topic.CodeExample)
	}
	if topic.Explanation != "Only prose here." {
		t.Fatalf("unexpected explanation: %q", topic.Explanation)
	}
}

func TestParseTopicDocumentIgnoresInlineFenceMentions(t *testing.T) {
	source := `---
name: Fenced Topic
section: beginner
---
Open blocks with ` + "```csharp" + ` in your editor.

` + "```csharp" + `
var total = 0;
` + "```" + `
`
	topic, err := ParseTopicDocument("doc.md", []byte(source))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if topic.CodeExample != "var total = 0;" {
		t.Fatalf("expected the line-anchored fence lifted, got %q", topic.CodeExample)
	}
	if !strings.Contains(topic.Explanation, "in your editor.") {
		t.Fatalf("prose mentioning the marker must stay in the explanation: %q", topic.Explanation)
	}

	proseOnly := `---
name: Prose Topic
section: beginner
---
The marker ` + "```csharp" + ` mid-sentence is not a fence.
`
	topic, err = ParseTopicDocument("doc.md", []byte(proseOnly))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if topic.CodeExample != "" {
		t.Fatalf("expected no code example from inline mention, got %q", topic.CodeExample)
	}
}

func TestLoadSectionsReadsManifestInOrder(t *testing.T) {
	loader := NewLoader(contentFS(), Config{Dir: "content"})

	sections, err := loader.LoadSections(context.Background())
	if err != nil {
		t.Fatalf("manifest load failed: %v", err)
	}
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(sections))
	}
	if sections[0].ID != "beginner" || sections[0].Position != 1 {
		t.Fatalf("unexpected first section: %+v", sections[0])
	}
	if sections[0].Level != domain.LevelBeginner || sections[1].Level != domain.LevelAdvanced {
		t.Fatalf("levels should normalize case: %v / %v", sections[0].Level, sections[1].Level)
	}
}

func TestLoadTopicsMatchesPatternAndRecursesWhenAsked(t *testing.T) {
	recursive := NewLoader(contentFS(), Config{Dir: "content", Recursive: true})
	topics, err := recursive.LoadTopics(context.Background())
	if err != nil {
		t.Fatalf("recursive load failed: %v", err)
	}
	if len(topics) != 2 {
		t.Fatalf("expected both markdown files, got %d", len(topics))
	}

	flat := NewLoader(contentFS(), Config{Dir: "content", Recursive: false})
	topics, err = flat.LoadTopics(context.Background())
	if err != nil {
		t.Fatalf("flat load failed: %v", err)
	}
	if len(topics) != 1 {
		t.Fatalf("expected subdirectories skipped, got %d topics", len(topics))
	}
}

func TestLoadReturnsTopicsAndSectionsTogether(t *testing.T) {
	loader := NewLoader(contentFS(), Config{Dir: "content", Recursive: false})

	topics, sections, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(topics) != 1 || len(sections) != 2 {
		t.Fatalf("expected 1 topic and 2 sections, got %d / %d", len(topics), len(sections))
	}
}

func TestLoadFailsOnMissingManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"content/01-variables.md": {Data: []byte(topicDocument)},
	}
	loader := NewLoader(fsys, Config{Dir: "content"})

	_, _, err := loader.Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "sections.yaml") {
		t.Fatalf("expected manifest read failure, got %v", err)
	}
}

func TestLoadHonorsContextCancellation(t *testing.T) {
	loader := NewLoader(contentFS(), Config{Dir: "content"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := loader.Load(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
