package validation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/Naiem890/momentum/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	// Register custom validators for enums
	if err := Validate.RegisterValidation("habit_category", validateHabitCategory); err != nil {
		panic(fmt.Sprintf("failed to register habit_category validator: %v", err))
	}
}

// validateHabitCategory validates that a string is a valid HabitCategory enum value
func validateHabitCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	switch models.HabitCategory(value) {
	case models.CategoryHealth, models.CategoryWork, models.CategoryStudy, models.CategoryOther:
		return true
	default:
		return false
	}
}

// SanitizeText sanitizes text input by trimming whitespace and removing control characters
func SanitizeText(text string) string {
	text = strings.TrimSpace(text)

	var sanitized strings.Builder
	for _, r := range text {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			continue
		}
		sanitized.WriteRune(r)
	}

	return sanitized.String()
}

// ValidateCategory validates a HabitCategory string value
func ValidateCategory(value string) error {
	switch models.HabitCategory(value) {
	case models.CategoryHealth, models.CategoryWork, models.CategoryStudy, models.CategoryOther:
		return nil
	default:
		return fmt.Errorf("invalid category: %s (must be 'health', 'work', 'study', or 'other')", value)
	}
}
