package domain

import "fmt"

// ValidationResult holds the outcome of a roll-history consistency check.
type ValidationResult struct {
	Valid    bool
	Errors   []string
	Warnings []string
}

// ValidateHistory checks that every recorded roll has the same number of
// dice and that every face is in range. It is a consistency check, not a
// statistical randomness proof.
func ValidateHistory(history [][]int) ValidationResult {
	if len(history) == 0 {
		return ValidationResult{Valid: true, Warnings: []string{"no history to validate"}}
	}

	width := len(history[0])
	for i, roll := range history {
		if len(roll) != width {
			return ValidationResult{
				Valid:  false,
				Errors: []string{fmt.Sprintf("roll %d has %d dice, expected %d", i, len(roll), width)},
			}
		}
		for _, face := range roll {
			if face < MinFace || face > MaxFace {
				return ValidationResult{
					Valid:  false,
					Errors: []string{fmt.Sprintf("roll %d contains invalid face %d", i, face)},
				}
			}
		}
	}
	return ValidationResult{Valid: true}
}
