package domain

import internaldomain "github.com/goliatone/go-curriculum/internal/domain"

// Level represents the difficulty tier a section belongs to.
type Level = internaldomain.Level

const (
	// LevelBeginner identifies introductory material.
	LevelBeginner = internaldomain.LevelBeginner
	// LevelIntermediate identifies material that assumes the basics.
	LevelIntermediate = internaldomain.LevelIntermediate
	// LevelAdvanced identifies material aimed at experienced readers.
	LevelAdvanced = internaldomain.LevelAdvanced
)

// NormalizeLevel coerces arbitrary level strings into a known representation.
func NormalizeLevel(input string) Level {
	return internaldomain.NormalizeLevel(input)
}
