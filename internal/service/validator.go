package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/anusha761/shopassist/internal/model"
	"github.com/anusha761/shopassist/internal/utils"
)

// ProfileValidator checks a canonical profile sentence against hard rules
// before the sentence is trusted for structured extraction. The upstream text
// is model-authored, so this second, stricter pass guards the deterministic
// matching pipeline.
type ProfileValidator struct {
	budgetFloor int
}

// NewProfileValidator creates a validator with the given budget floor
func NewProfileValidator(budgetFloor int) *ProfileValidator {
	return &ProfileValidator{budgetFloor: budgetFloor}
}

// categoryPatterns matches "<value> <key>" for each categorical key,
// e.g. "high GPU Intensity". Keyed by canonical key name.
var categoryPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(model.ProfileKeys))
	for _, key := range model.ProfileKeys {
		keyPattern := strings.ReplaceAll(regexp.QuoteMeta(key), ` `, `\s+`)
		patterns[key] = regexp.MustCompile(`(?i)(\S+)\s+` + keyPattern)
	}
	return patterns
}()

var budgetPattern = regexp.MustCompile(`(?i)budget`)

// Validate applies the validation rules in order:
// 1. all six keys textually present
// 2. the five categorical keys resolve to exactly one of low/medium/high
// 3. Budget contains a numeric token; the first numeric token is the value
// 4. the budget value is at or above the floor
func (v *ProfileValidator) Validate(sentence string) model.ValidationResult {
	for _, key := range model.ProfileKeys {
		matches := categoryPatterns[key].FindStringSubmatch(sentence)
		if matches == nil {
			return model.ValidationResult{
				Accepted: false,
				Reason:   fmt.Sprintf("missing key: %s", key),
			}
		}
		value := strings.ToLower(matches[1])
		if !model.IsValidBucket(value) {
			return model.ValidationResult{
				Accepted: false,
				Reason:   fmt.Sprintf("invalid value %q for %s, must be one of low, medium, high", matches[1], key),
			}
		}
	}

	loc := budgetPattern.FindStringIndex(sentence)
	if loc == nil {
		return model.ValidationResult{
			Accepted: false,
			Reason:   "missing key: Budget",
		}
	}

	budget, ok := utils.FirstNumber(sentence[loc[1]:])
	if !ok {
		return model.ValidationResult{
			Accepted: false,
			Reason:   "budget missing: no numeric value found",
		}
	}

	if budget < v.budgetFloor {
		return model.ValidationResult{
			Accepted: false,
			Reason:   fmt.Sprintf("budget too low: %d is below the minimum of %d", budget, v.budgetFloor),
		}
	}

	return model.ValidationResult{Accepted: true}
}

// ExtractBudget returns the numeric budget from a profile sentence. The
// second return value is false when no number follows the Budget key.
func (v *ProfileValidator) ExtractBudget(sentence string) (int, bool) {
	loc := budgetPattern.FindStringIndex(sentence)
	if loc == nil {
		return 0, false
	}
	return utils.FirstNumber(sentence[loc[1]:])
}
