package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalabs/katakit/internal/model"
)

func newTestValidator(policy model.PasswordPolicy) *Validator {
	return NewValidator(policy, nil)
}

func TestValidateStrongPassword(t *testing.T) {
	v := newTestValidator(model.DefaultPasswordPolicy())

	result := v.Validate("Pass123!")

	assert.True(t, result.IsValid)
	assert.Empty(t, result.FailedCriteria)
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, model.StrengthStrong, result.Strength)
}

func TestValidateWeakPassword(t *testing.T) {
	v := newTestValidator(model.DefaultPasswordPolicy())

	result := v.Validate("password")

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{
		model.CriterionNoUppercase,
		model.CriterionNoDigit,
		model.CriterionNoSpecialChar,
	}, result.FailedCriteria)
	assert.Len(t, result.Suggestions, len(result.FailedCriteria))
	assert.Equal(t, model.StrengthWeak, result.Strength)
}

func TestValidateCriteriaOrder(t *testing.T) {
	v := newTestValidator(model.DefaultPasswordPolicy())

	result := v.Validate("")

	assert.Equal(t, []string{
		model.CriterionTooShort,
		model.CriterionNoUppercase,
		model.CriterionNoLowercase,
		model.CriterionNoDigit,
		model.CriterionNoSpecialChar,
	}, result.FailedCriteria)
	assert.Len(t, result.Suggestions, 5)
	assert.Equal(t, model.StrengthWeak, result.Strength)
}

func TestValidateMediumStrength(t *testing.T) {
	v := newTestValidator(model.DefaultPasswordPolicy())

	// Length, uppercase, lowercase and digit pass; no special char.
	result := v.Validate("Password1")

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{model.CriterionNoSpecialChar}, result.FailedCriteria)
	assert.Equal(t, model.StrengthMedium, result.Strength)
}

func TestValidateSpecialSetIsPolicyDriven(t *testing.T) {
	policy := model.DefaultPasswordPolicy()
	policy.AllowedSpecialChars = "-_"
	v := newTestValidator(policy)

	result := v.Validate("Pass123!")
	assert.Contains(t, result.FailedCriteria, model.CriterionNoSpecialChar)

	result = v.Validate("Pass123-")
	assert.True(t, result.IsValid)
}

func TestValidateBlockedPassword(t *testing.T) {
	policy := model.DefaultPasswordPolicy()
	policy.BlockedPasswords = []string{"Winter2024!"}
	v := newTestValidator(policy)

	result := v.Validate("Winter2024!")

	assert.False(t, result.IsValid)
	require.Equal(t, []string{model.CriterionCommonPassword}, result.FailedCriteria)
	// Blocked-list failures do not downgrade the base-criteria strength.
	assert.Equal(t, model.StrengthStrong, result.Strength)
}

func TestValidateRepeatedRuns(t *testing.T) {
	policy := model.DefaultPasswordPolicy()
	policy.DetectRepeatedRuns = true
	v := newTestValidator(policy)

	result := v.Validate("Paaass123!")
	assert.False(t, result.IsValid)
	assert.Contains(t, result.FailedCriteria, model.CriterionRepeatedCharacters)

	result = v.Validate("Paass123!")
	assert.True(t, result.IsValid)
}

func TestValidateResultIsFreshPerCall(t *testing.T) {
	v := newTestValidator(model.DefaultPasswordPolicy())

	first := v.Validate("password")
	second := v.Validate("Pass123!")

	assert.False(t, first.IsValid)
	assert.True(t, second.IsValid)
	assert.NotEmpty(t, first.FailedCriteria)
	assert.Empty(t, second.FailedCriteria)
}
