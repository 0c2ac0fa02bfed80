// Package config loads the law-check runner configuration using viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// LAWCHECK_CHECK_SEED.
const EnvPrefix = "LAWCHECK"

// Config is the complete runner configuration.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Check   CheckConfig   `mapstructure:"check" validate:"required"`
	Report  ReportConfig  `mapstructure:"report" validate:"required"`
}

// LoggingConfig defines logging settings with validation.
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text tint"`
}

// CheckConfig controls how many samples each property draws and from which
// suites.
type CheckConfig struct {
	MinSuccessful int      `mapstructure:"min_successful" validate:"min=1,max=100000"`
	MaxSize       int      `mapstructure:"max_size" validate:"min=0,max=1024"`
	Seed          int64    `mapstructure:"seed"`
	Suites        []string `mapstructure:"suites" validate:"dive,required"`
}

// ReportConfig selects the encoding of the final report.
type ReportConfig struct {
	Format string `mapstructure:"format" validate:"required,oneof=yaml json none"`
}

// ErrInvalid is wrapped by every validation failure returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

var configValidator = validator.New()

// Load reads configuration from path (or lawcheck.yaml in the usual places
// when path is empty), then applies LAWCHECK_* environment overrides.
// A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lawcheck")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Check:   CheckConfig{MinSuccessful: 100, MaxSize: 32},
		Report:  ReportConfig{Format: "yaml"},
	}
}

// Validate checks struct tags. Suite names are checked by the runner, which
// owns the registry.
func Validate(cfg *Config) error {
	if err := configValidator.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("check.min_successful", d.Check.MinSuccessful)
	v.SetDefault("check.max_size", d.Check.MaxSize)
	v.SetDefault("check.seed", d.Check.Seed)
	v.SetDefault("check.suites", []string{})

	v.SetDefault("report.format", d.Report.Format)
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed validation: %s (value: %v)",
			fieldError.Namespace(), fieldError.Tag(), fieldError.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(messages, "; "))
}
