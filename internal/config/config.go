package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"

	"github.com/katalabs/katakit/internal/model"
	"github.com/katalabs/katakit/internal/service/convert"
)

type Config struct {
	Logger    LoggerConfig    `mapstructure:"logger"`
	Password  PasswordConfig  `mapstructure:"password"`
	Converter ConverterConfig `mapstructure:"converter"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level" envconfig:"LOG_LEVEL" validate:"oneof=debug info warn error fatal"`
	TimeFormat string `mapstructure:"time_format" envconfig:"LOG_TIME_FORMAT"`
}

type PasswordConfig struct {
	MinLength           int      `mapstructure:"min_length" envconfig:"PASSWORD_MIN_LENGTH" validate:"min=1,max=128"`
	RequireUppercase    bool     `mapstructure:"require_uppercase" envconfig:"PASSWORD_REQUIRE_UPPERCASE"`
	RequireLowercase    bool     `mapstructure:"require_lowercase" envconfig:"PASSWORD_REQUIRE_LOWERCASE"`
	RequireNumbers      bool     `mapstructure:"require_numbers" envconfig:"PASSWORD_REQUIRE_NUMBERS"`
	RequireSpecialChars bool     `mapstructure:"require_special_chars" envconfig:"PASSWORD_REQUIRE_SPECIAL_CHARS"`
	AllowedSpecialChars string   `mapstructure:"allowed_special_chars" envconfig:"PASSWORD_ALLOWED_SPECIAL_CHARS" validate:"required"`
	BlockedPasswords    []string `mapstructure:"blocked_passwords" envconfig:"PASSWORD_BLOCKED"`
	DetectRepeatedRuns  bool     `mapstructure:"detect_repeated_runs" envconfig:"PASSWORD_DETECT_REPEATED_RUNS"`
}

type ConverterConfig struct {
	CacheTTL        time.Duration `mapstructure:"cache_ttl" envconfig:"CONVERTER_CACHE_TTL" validate:"min=0"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval" envconfig:"CONVERTER_CLEANUP_INTERVAL" validate:"min=0"`
	StrictRoman     bool          `mapstructure:"strict_roman" envconfig:"CONVERTER_STRICT_ROMAN"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	policy := model.DefaultPasswordPolicy()
	cache := convert.DefaultConfig()
	return Config{
		Logger: LoggerConfig{
			Level:      "info",
			TimeFormat: time.RFC3339,
		},
		Password: PasswordConfig{
			MinLength:           policy.MinLength,
			RequireUppercase:    policy.RequireUppercase,
			RequireLowercase:    policy.RequireLowercase,
			RequireNumbers:      policy.RequireNumbers,
			RequireSpecialChars: policy.RequireSpecialChars,
			AllowedSpecialChars: policy.AllowedSpecialChars,
		},
		Converter: ConverterConfig{
			CacheTTL:        cache.CacheTTL,
			CleanupInterval: cache.CleanupInterval,
		},
	}
}

// LoadConfig reads config.yaml (optional), applies KATAKIT_* environment
// overrides, and validates the result.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	config := Default()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process("katakit", &config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := validator.New().Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// PasswordPolicy converts the password section into the model policy.
func (c *Config) PasswordPolicy() model.PasswordPolicy {
	return model.PasswordPolicy{
		MinLength:           c.Password.MinLength,
		RequireUppercase:    c.Password.RequireUppercase,
		RequireLowercase:    c.Password.RequireLowercase,
		RequireNumbers:      c.Password.RequireNumbers,
		RequireSpecialChars: c.Password.RequireSpecialChars,
		AllowedSpecialChars: c.Password.AllowedSpecialChars,
		BlockedPasswords:    c.Password.BlockedPasswords,
		DetectRepeatedRuns:  c.Password.DetectRepeatedRuns,
	}
}

// ConvertConfig converts the converter section into the cache settings.
func (c *Config) ConvertConfig() convert.Config {
	return convert.Config{
		CacheTTL:        c.Converter.CacheTTL,
		CleanupInterval: c.Converter.CleanupInterval,
	}
}
