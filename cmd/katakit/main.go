package main

import (
	"os"

	"github.com/katalabs/katakit/internal/config"
	"github.com/katalabs/katakit/internal/service/convert"
	"github.com/katalabs/katakit/internal/service/roman"
	"github.com/katalabs/katakit/internal/suite"
	"github.com/katalabs/katakit/pkg/logger"
	"github.com/katalabs/katakit/pkg/metrics"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger(nil).Fatal(err, "failed to load configuration")
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Logger.Level),
		TimeFormat: cfg.Logger.TimeFormat,
		Output:     os.Stdout,
	})

	m := metrics.NewMetrics("katakit")

	var romanOpts []roman.Option
	if cfg.Converter.StrictRoman {
		romanOpts = append(romanOpts, roman.WithStrictParsing())
	}
	converter := convert.NewService(cfg.ConvertConfig(), roman.NewConverter(romanOpts...), m)

	kit := suite.New(cfg.PasswordPolicy(), converter, log, m)

	runDemo(kit, log)
	reportMetrics(m, log)
}

// runDemo exercises every operation once with the documented examples.
func runDemo(kit *suite.Suite, log *logger.Logger) {
	if seq, err := kit.FizzBuzz(15); err == nil {
		log.Info("fizzbuzz", "n", 15, "last", seq[len(seq)-1])
	}

	log.Info("palindrome", "text", "A man, a plan, a canal: Panama!",
		"result", kit.IsPalindrome("A man, a plan, a canal: Panama!"))

	if quotient, err := kit.Divide(10, 4); err == nil {
		log.Info("calculator", "op", "10/4", "result", quotient)
	}
	if _, err := kit.Divide(10, 0); err != nil {
		log.Warn("calculator rejected division by zero", "error", err.Error())
	}

	stats := kit.AnalyzeText("Hello world")
	log.Info("textstats", "words", stats.WordCount, "longest", stats.LongestWord,
		"avg_len", stats.AverageWordLength)

	log.Info("leap year", "2000", kit.IsLeapYear(2000), "1900", kit.IsLeapYear(1900))

	if words, err := kit.NumberToWords(101); err == nil {
		log.Info("number to words", "n", 101, "words", words)
	}

	if numeral, err := kit.ToRoman(1994); err == nil {
		log.Info("to roman", "n", 1994, "numeral", numeral)
	}
	if n, err := kit.FromRoman("MMXXIII"); err == nil {
		log.Info("from roman", "numeral", "MMXXIII", "n", n)
	}

	result := kit.ValidatePassword("Pass123!")
	log.Info("password", "is_valid", result.IsValid, "strength", string(result.Strength))
}

// reportMetrics dumps the gathered counters. There is no exposition endpoint;
// the library keeps metrics on a private registry.
func reportMetrics(m *metrics.Metrics, log *logger.Logger) {
	families, err := m.Registry().Gather()
	if err != nil {
		log.Error(err, "failed to gather metrics")
		return
	}
	for _, family := range families {
		log.Debug("metric family", "name", family.GetName(), "series", len(family.GetMetric()))
	}
}
