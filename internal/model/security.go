package model

// Strength classifies how many of the base password criteria a candidate
// satisfies.
type Strength string

const (
	StrengthWeak   Strength = "weak"
	StrengthMedium Strength = "medium"
	StrengthStrong Strength = "strong"
)

// Criterion tags, in checklist order. Extended tags follow the base five.
const (
	CriterionTooShort      = "too_short"
	CriterionNoUppercase   = "no_uppercase"
	CriterionNoLowercase   = "no_lowercase"
	CriterionNoDigit       = "no_digit"
	CriterionNoSpecialChar = "no_special_char"

	CriterionCommonPassword     = "common_password"
	CriterionRepeatedCharacters = "repeated_characters"
)

type PasswordPolicy struct {
	MinLength           int      `json:"min_length"`
	RequireUppercase    bool     `json:"require_uppercase"`
	RequireLowercase    bool     `json:"require_lowercase"`
	RequireNumbers      bool     `json:"require_numbers"`
	RequireSpecialChars bool     `json:"require_special_chars"`
	AllowedSpecialChars string   `json:"allowed_special_chars"`
	BlockedPasswords    []string `json:"blocked_passwords"` // Common/weak passwords to reject
	DetectRepeatedRuns  bool     `json:"detect_repeated_runs"`
}

// DefaultPasswordPolicy returns the baseline checklist: minimum length 8 and
// all four character classes required, special set !@#$%^&*.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:           8,
		RequireUppercase:    true,
		RequireLowercase:    true,
		RequireNumbers:      true,
		RequireSpecialChars: true,
		AllowedSpecialChars: "!@#$%^&*",
	}
}

// ValidationResult is built fresh on every password validation. Failed
// criteria and suggestions are parallel slices in checklist order.
type ValidationResult struct {
	IsValid        bool     `json:"is_valid"`
	FailedCriteria []string `json:"failed_criteria"`
	Suggestions    []string `json:"suggestions"`
	Strength       Strength `json:"strength"`
}
