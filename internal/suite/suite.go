// Package suite bundles every exercise behind one instrumented facade.
package suite

import (
	"time"

	"github.com/katalabs/katakit/internal/model"
	"github.com/katalabs/katakit/internal/service/calculator"
	"github.com/katalabs/katakit/internal/service/calendar"
	"github.com/katalabs/katakit/internal/service/convert"
	"github.com/katalabs/katakit/internal/service/fizzbuzz"
	"github.com/katalabs/katakit/internal/service/palindrome"
	"github.com/katalabs/katakit/internal/service/password"
	"github.com/katalabs/katakit/internal/service/roman"
	"github.com/katalabs/katakit/internal/service/textstats"
	"github.com/katalabs/katakit/pkg/logger"
	"github.com/katalabs/katakit/pkg/metrics"
)

// Exercise names used as metric labels.
const (
	ExerciseFizzBuzz   = "fizzbuzz"
	ExercisePalindrome = "palindrome"
	ExerciseCalculator = "calculator"
	ExerciseTextStats  = "textstats"
	ExerciseLeapYear   = "leap_year"
	ExerciseNumWords   = "number_to_words"
	ExerciseRoman      = "roman"
	ExercisePassword   = "password"
)

// Suite aggregates all exercises with shared logging and metrics. Every
// method delegates to the corresponding pure service; the suite only adds
// instrumentation.
type Suite struct {
	log       *logger.Logger
	metrics   *metrics.Metrics
	validator *password.Validator
	converter *convert.Service
}

// New wires a Suite. Logger and metrics may be nil.
func New(policy model.PasswordPolicy, converter *convert.Service, log *logger.Logger, m *metrics.Metrics) *Suite {
	if log == nil {
		log = logger.Nop()
	}
	if converter == nil {
		converter = convert.NewService(convert.DefaultConfig(), roman.NewConverter(), m)
	}
	return &Suite{
		log:       log,
		metrics:   m,
		validator: password.NewValidator(policy, log),
		converter: converter,
	}
}

func (s *Suite) observe(exercise string, start time.Time, err error) {
	if s.metrics == nil {
		return
	}
	s.metrics.Evaluations.WithLabelValues(exercise).Inc()
	s.metrics.EvaluationLatency.WithLabelValues(exercise).Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.EvaluationErrors.WithLabelValues(exercise).Inc()
	}
}

func (s *Suite) FizzBuzz(n int) ([]string, error) {
	start := time.Now()
	seq, err := fizzbuzz.Sequence(n)
	s.observe(ExerciseFizzBuzz, start, err)
	return seq, err
}

func (s *Suite) IsPalindrome(text string) bool {
	start := time.Now()
	ok := palindrome.IsPalindrome(text)
	s.observe(ExercisePalindrome, start, nil)
	return ok
}

func (s *Suite) Add(a, b float64) (float64, error)      { return s.calc(calculator.Add, a, b) }
func (s *Suite) Subtract(a, b float64) (float64, error) { return s.calc(calculator.Subtract, a, b) }
func (s *Suite) Multiply(a, b float64) (float64, error) { return s.calc(calculator.Multiply, a, b) }
func (s *Suite) Divide(a, b float64) (float64, error)   { return s.calc(calculator.Divide, a, b) }

func (s *Suite) calc(op func(float64, float64) (float64, error), a, b float64) (float64, error) {
	start := time.Now()
	result, err := op(a, b)
	s.observe(ExerciseCalculator, start, err)
	return result, err
}

func (s *Suite) AnalyzeText(text string) model.TextStats {
	start := time.Now()
	stats := textstats.Analyze(text)
	s.observe(ExerciseTextStats, start, nil)
	return stats
}

func (s *Suite) IsLeapYear(year int) bool {
	start := time.Now()
	leap := calendar.IsLeapYear(year)
	s.observe(ExerciseLeapYear, start, nil)
	return leap
}

func (s *Suite) NumberToWords(n int) (string, error) {
	start := time.Now()
	words, err := s.converter.ToWords(n)
	s.observe(ExerciseNumWords, start, err)
	return words, err
}

func (s *Suite) ToRoman(n int) (string, error) {
	start := time.Now()
	numeral, err := s.converter.ToRoman(n)
	s.observe(ExerciseRoman, start, err)
	return numeral, err
}

func (s *Suite) FromRoman(numeral string) (int, error) {
	start := time.Now()
	n, err := s.converter.FromRoman(numeral)
	s.observe(ExerciseRoman, start, err)
	return n, err
}

func (s *Suite) ValidatePassword(candidate string) model.ValidationResult {
	start := time.Now()
	result := s.validator.Validate(candidate)
	s.observe(ExercisePassword, start, nil)
	if s.metrics != nil {
		s.metrics.ValidationResults.WithLabelValues(string(result.Strength)).Inc()
	}
	return result
}
