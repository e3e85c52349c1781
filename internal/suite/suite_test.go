package suite

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalabs/katakit/internal/model"
	"github.com/katalabs/katakit/pkg/errors"
	"github.com/katalabs/katakit/pkg/metrics"
)

func newTestSuite(m *metrics.Metrics) *Suite {
	return New(model.DefaultPasswordPolicy(), nil, nil, m)
}

func TestSuiteCoversEveryExercise(t *testing.T) {
	kit := newTestSuite(nil)

	seq, err := kit.FizzBuzz(15)
	require.NoError(t, err)
	assert.Equal(t, "FizzBuzz", seq[14])

	assert.True(t, kit.IsPalindrome("A man, a plan, a canal: Panama!"))
	assert.False(t, kit.IsPalindrome("race a car"))

	sum, err := kit.Add(2, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, sum)
	_, err = kit.Divide(10, 0)
	assert.True(t, errors.IsCode(err, errors.ErrArithmetic))

	stats := kit.AnalyzeText("Hello world")
	assert.Equal(t, 2, stats.WordCount)

	assert.True(t, kit.IsLeapYear(2000))
	assert.False(t, kit.IsLeapYear(1900))

	words, err := kit.NumberToWords(999)
	require.NoError(t, err)
	assert.Equal(t, "nine hundred ninety nine", words)

	numeral, err := kit.ToRoman(1994)
	require.NoError(t, err)
	assert.Equal(t, "MCMXCIV", numeral)

	n, err := kit.FromRoman("MMXXIII")
	require.NoError(t, err)
	assert.Equal(t, 2023, n)

	result := kit.ValidatePassword("Pass123!")
	assert.True(t, result.IsValid)
	assert.Equal(t, model.StrengthStrong, result.Strength)
}

func TestSuiteRecordsMetrics(t *testing.T) {
	m := metrics.NewMetrics("test")
	kit := newTestSuite(m)

	_, _ = kit.FizzBuzz(10)
	_, _ = kit.FizzBuzz(-1)
	_ = kit.ValidatePassword("password")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Evaluations.WithLabelValues(ExerciseFizzBuzz)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EvaluationErrors.WithLabelValues(ExerciseFizzBuzz)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ValidationResults.WithLabelValues("weak")))
}
