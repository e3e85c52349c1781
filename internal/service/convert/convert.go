// Package convert fronts the two numeral converters with a TTL cache.
// Results are cached by input; errors are never cached.
package convert

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/katalabs/katakit/internal/service/numwords"
	"github.com/katalabs/katakit/internal/service/roman"
	"github.com/katalabs/katakit/pkg/metrics"
)

// Config controls the conversion cache.
type Config struct {
	CacheTTL        time.Duration
	CleanupInterval time.Duration
}

// DefaultConfig returns the cache settings used when none are configured.
func DefaultConfig() Config {
	return Config{
		CacheTTL:        15 * time.Minute,
		CleanupInterval: 1 * time.Hour,
	}
}

// Service memoizes Roman numeral and number-to-words conversions.
type Service struct {
	converter *roman.Converter
	cache     *cache.Cache
	metrics   *metrics.Metrics
}

// NewService builds the caching facade. Metrics may be nil.
func NewService(cfg Config, converter *roman.Converter, m *metrics.Metrics) *Service {
	if cfg.CacheTTL <= 0 {
		cfg = DefaultConfig()
	}
	if converter == nil {
		converter = roman.NewConverter()
	}
	return &Service{
		converter: converter,
		cache:     cache.New(cfg.CacheTTL, cfg.CleanupInterval),
		metrics:   m,
	}
}

// ToRoman encodes n, serving repeat calls from cache.
func (s *Service) ToRoman(n int) (string, error) {
	key := "roman:" + strconv.Itoa(n)
	if cached, found := s.cache.Get(key); found {
		s.count("to_roman", true)
		return cached.(string), nil
	}

	encoded, err := s.converter.ToRoman(n)
	if err != nil {
		return "", err
	}
	s.cache.SetDefault(key, encoded)
	s.count("to_roman", false)
	return encoded, nil
}

// FromRoman decodes s, serving repeat calls from cache.
func (s *Service) FromRoman(numeral string) (int, error) {
	key := "arabic:" + numeral
	if cached, found := s.cache.Get(key); found {
		s.count("from_roman", true)
		return cached.(int), nil
	}

	decoded, err := s.converter.FromRoman(numeral)
	if err != nil {
		return 0, err
	}
	s.cache.SetDefault(key, decoded)
	s.count("from_roman", false)
	return decoded, nil
}

// ToWords spells out n, serving repeat calls from cache.
func (s *Service) ToWords(n int) (string, error) {
	key := "words:" + strconv.Itoa(n)
	if cached, found := s.cache.Get(key); found {
		s.count("to_words", true)
		return cached.(string), nil
	}

	spelled, err := numwords.ToWords(n)
	if err != nil {
		return "", err
	}
	s.cache.SetDefault(key, spelled)
	s.count("to_words", false)
	return spelled, nil
}

func (s *Service) count(conversion string, hit bool) {
	if s.metrics == nil {
		return
	}
	if hit {
		s.metrics.CacheHits.WithLabelValues(conversion).Inc()
		return
	}
	s.metrics.CacheMisses.WithLabelValues(conversion).Inc()
}
