package password

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/katalabs/katakit/internal/model"
	"github.com/katalabs/katakit/pkg/logger"
)

// Validator evaluates a fixed, ordered checklist of criteria against a
// candidate password. It never returns an error: a failing password is a
// normal, fully described result.
type Validator struct {
	policy model.PasswordPolicy
	log    *logger.Logger
}

// NewValidator builds a Validator for the given policy. A nil logger
// disables logging.
func NewValidator(policy model.PasswordPolicy, log *logger.Logger) *Validator {
	if log == nil {
		log = logger.Nop()
	}
	if policy.AllowedSpecialChars == "" {
		policy.AllowedSpecialChars = model.DefaultPasswordPolicy().AllowedSpecialChars
	}
	return &Validator{policy: policy, log: log}
}

// Validate runs every criterion in checklist order. Failed criteria and
// suggestions are parallel, one suggestion per failed criterion. Strength is
// derived from the five base criteria only: 5 passes is strong, 3-4 medium,
// 2 or fewer weak.
func (v *Validator) Validate(candidate string) model.ValidationResult {
	var (
		hasUpper   bool
		hasLower   bool
		hasDigit   bool
		hasSpecial bool
	)
	for _, r := range candidate {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(v.policy.AllowedSpecialChars, r):
			hasSpecial = true
		}
	}

	result := model.ValidationResult{}
	basePasses := 0

	pass := func(ok bool, tag, suggestion string) {
		if ok {
			basePasses++
			return
		}
		result.FailedCriteria = append(result.FailedCriteria, tag)
		result.Suggestions = append(result.Suggestions, suggestion)
	}

	pass(len(candidate) >= v.policy.MinLength,
		model.CriterionTooShort,
		fmt.Sprintf("use at least %d characters", v.policy.MinLength))
	pass(hasUpper || !v.policy.RequireUppercase,
		model.CriterionNoUppercase,
		"add an uppercase letter")
	pass(hasLower || !v.policy.RequireLowercase,
		model.CriterionNoLowercase,
		"add a lowercase letter")
	pass(hasDigit || !v.policy.RequireNumbers,
		model.CriterionNoDigit,
		"add a digit")
	pass(hasSpecial || !v.policy.RequireSpecialChars,
		model.CriterionNoSpecialChar,
		fmt.Sprintf("add a special character from %s", v.policy.AllowedSpecialChars))

	switch {
	case basePasses == 5:
		result.Strength = model.StrengthStrong
	case basePasses >= 3:
		result.Strength = model.StrengthMedium
	default:
		result.Strength = model.StrengthWeak
	}

	// Extended criteria fail the password but do not feed the strength count.
	if v.isBlocked(candidate) {
		result.FailedCriteria = append(result.FailedCriteria, model.CriterionCommonPassword)
		result.Suggestions = append(result.Suggestions, "avoid commonly used passwords")
	}
	if v.policy.DetectRepeatedRuns && hasRepeatedRun(candidate) {
		result.FailedCriteria = append(result.FailedCriteria, model.CriterionRepeatedCharacters)
		result.Suggestions = append(result.Suggestions, "avoid repeating the same character three or more times")
	}

	result.IsValid = len(result.FailedCriteria) == 0

	v.log.Debug("password validated", "is_valid", result.IsValid,
		"strength", string(result.Strength), "failed", len(result.FailedCriteria))

	return result
}

func (v *Validator) isBlocked(candidate string) bool {
	for _, blocked := range v.policy.BlockedPasswords {
		if strings.EqualFold(candidate, blocked) {
			return true
		}
	}
	return false
}

// hasRepeatedRun reports a run of three or more identical characters.
func hasRepeatedRun(s string) bool {
	runes := []rune(s)
	run := 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			run++
			if run >= 3 {
				return true
			}
		} else {
			run = 1
		}
	}
	return false
}
