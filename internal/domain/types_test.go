package domain

import "testing"

func TestNormalizeLevelCoercesCaseAndSpace(t *testing.T) {
	if got := NormalizeLevel("  Beginner "); got != LevelBeginner {
		t.Fatalf("expected beginner, got %q", got)
	}
	if got := NormalizeLevel("ADVANCED"); got != LevelAdvanced {
		t.Fatalf("expected advanced, got %q", got)
	}
}

func TestNormalizeLevelPreservesUnknownValues(t *testing.T) {
	if got := NormalizeLevel(" Expert "); got != Level("expert") {
		t.Fatalf("expected trimmed lowercase passthrough, got %q", got)
	}
	if NormalizeLevel("expert").IsKnown() {
		t.Fatal("expert is not a declared tier")
	}
}

func TestLevelRankOrdersTiers(t *testing.T) {
	if !(LevelBeginner.Rank() < LevelIntermediate.Rank() && LevelIntermediate.Rank() < LevelAdvanced.Rank()) {
		t.Fatal("tiers must rank from introductory to advanced")
	}
	if Level("expert").Rank() <= LevelAdvanced.Rank() {
		t.Fatal("unknown levels must sort last")
	}
}
