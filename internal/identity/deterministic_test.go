package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDIsDeterministic(t *testing.T) {
	a := UUID("go-curriculum:topic:variables")
	b := UUID("go-curriculum:topic:variables")
	if a == uuid.Nil {
		t.Fatal("expected a derived UUID")
	}
	if a != b {
		t.Fatalf("same key must derive the same UUID, got %s vs %s", a, b)
	}
}

func TestUUIDDistinguishesKeys(t *testing.T) {
	if UUID("a") == UUID("b") {
		t.Fatal("different keys must not collide")
	}
	if TopicUUID("x") == SectionUUID("x") {
		t.Fatal("topic and section namespaces must not collide")
	}
}

func TestUUIDEmptyKeyIsNil(t *testing.T) {
	if UUID("   ") != uuid.Nil {
		t.Fatal("blank keys must not derive a UUID")
	}
}

func TestSectionUUIDIgnoresCase(t *testing.T) {
	if SectionUUID("Beginner") != SectionUUID("beginner") {
		t.Fatal("section ids are case-insensitive for identity purposes")
	}
}
