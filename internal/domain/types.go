package domain

import "strings"

// Level represents the difficulty tier a section belongs to.
type Level string

const (
	// LevelBeginner identifies introductory material.
	LevelBeginner Level = "beginner"
	// LevelIntermediate identifies material that assumes the basics.
	LevelIntermediate Level = "intermediate"
	// LevelAdvanced identifies material aimed at experienced readers.
	LevelAdvanced Level = "advanced"
)

// NormalizeLevel coerces arbitrary level strings into a known representation.
// Unknown values are preserved after trimming so callers can surface them.
func NormalizeLevel(input string) Level {
	level := Level(strings.ToLower(strings.TrimSpace(input)))
	switch level {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return level
	default:
		return level
	}
}

// IsKnown reports whether the level is one of the declared tiers.
func (l Level) IsKnown() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	default:
		return false
	}
}

// Rank orders known levels from introductory to advanced. Unknown levels sort last.
func (l Level) Rank() int {
	switch l {
	case LevelBeginner:
		return 0
	case LevelIntermediate:
		return 1
	case LevelAdvanced:
		return 2
	default:
		return 3
	}
}
