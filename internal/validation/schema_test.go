package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateTopicPayloadAcceptsCompleteDocument(t *testing.T) {
	payload := map[string]any{
		"id":         "variables",
		"name":       "Variables",
		"section":    "beginner",
		"slug":       "variables",
		"key_points": []any{"one", "two"},
		"exercise":   "Do the thing.",
		"custom":     true,
	}
	if err := ValidateTopicPayload(payload); err != nil {
		t.Fatalf("expected payload to validate, got %v", err)
	}
}

func TestValidateTopicPayloadRequiresNameAndSection(t *testing.T) {
	err := ValidateTopicPayload(map[string]any{"id": "x"})
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	issues := Issues(err)
	if len(issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidateTopicPayloadRejectsWrongTypes(t *testing.T) {
	payload := map[string]any{
		"name":       "Variables",
		"section":    "beginner",
		"key_points": "not-an-array",
	}
	err := ValidateTopicPayload(payload)
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("expected ErrSchemaValidation, got %v", err)
	}

	var payloadErr *PayloadValidationError
	if !errors.As(err, &payloadErr) {
		t.Fatalf("expected PayloadValidationError, got %T", err)
	}
	if !strings.Contains(payloadErr.Error(), "key_points") {
		t.Fatalf("expected message to locate key_points, got %q", payloadErr.Error())
	}
}

func TestValidatePayloadSkipsEmptySchema(t *testing.T) {
	if err := ValidatePayload(nil, map[string]any{"anything": "goes"}); err != nil {
		t.Fatalf("empty schema must accept everything, got %v", err)
	}
}

func TestValidatePayloadHandlesNilPayload(t *testing.T) {
	err := ValidateTopicPayload(nil)
	if !errors.Is(err, ErrSchemaValidation) {
		t.Fatalf("nil payload misses required fields, got %v", err)
	}
}

func TestIssuesPassesThroughUnknownErrors(t *testing.T) {
	plain := errors.New("boom")
	issues := Issues(plain)
	if len(issues) != 1 || issues[0].Message != "boom" {
		t.Fatalf("expected the raw message preserved, got %v", issues)
	}
	if Issues(nil) != nil {
		t.Fatal("expected nil issues for nil error")
	}
}
