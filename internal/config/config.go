// Package config loads CLI settings from defaults, .litedsl.yaml, the
// environment and flag overrides.
package config

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/sourceplane/litedsl/internal/errors"
)

// EnvPrefix prefixes every environment variable read by litedsl
const EnvPrefix = "LITEDSL"

// FileName is the project config file looked up in the working directory
const FileName = ".litedsl.yaml"

// Keys
const (
	KeyLogLevel     = "log_level"
	KeyOutputFormat = "output_format"
	KeyStrict       = "strict"
	KeyLint         = "lint"
	KeyColor        = "color"
)

// Config holds CLI settings. Strict turns unknown descriptor types into load
// errors; Lint reports undecodable values as warnings.
type Config struct {
	LogLevel     string `mapstructure:"log_level" json:"log_level" validate:"oneof=trace debug info warn error"`
	OutputFormat string `mapstructure:"output_format" json:"output_format" validate:"oneof=json yaml"`
	Strict       bool   `mapstructure:"strict" json:"strict"`
	Lint         bool   `mapstructure:"lint" json:"lint"`
	Color        bool   `mapstructure:"color" json:"color"`
}

// Options controls where configuration is read from
type Options struct {
	// File is an explicit config file. It must exist when set.
	File string
	// Dir is searched for .litedsl.yaml and .env. Defaults to the working directory.
	Dir string
	// Overrides are applied last, typically from changed CLI flags.
	Overrides map[string]any
}

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		LogLevel:     "info",
		OutputFormat: "yaml",
		Strict:       false,
		Lint:         true,
		Color:        true,
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyOutputFormat, d.OutputFormat)
	v.SetDefault(KeyStrict, d.Strict)
	v.SetDefault(KeyLint, d.Lint)
	v.SetDefault(KeyColor, d.Color)
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration with the following precedence (highest first):
//  1. Overrides
//  2. Environment variables (LITEDSL_* prefix, .env in Dir is loaded first)
//  3. Config file
//  4. Built-in defaults
func Load(ctx context.Context, opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "failed to determine working directory")
		}
		dir = wd
	}

	// Existing variables win over .env.
	envFile := filepath.Join(dir, ".env")
	if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: failed to load %s: %v", errors.ErrConfigInvalid, envFile, err)
	}

	v := newViperInstance()
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", opts.File)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(FileName, filepath.Ext(FileName)))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
			return nil, errors.Wrap(err, "failed to read project config file")
		}
	}

	for key, value := range opts.Overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("file", v.ConfigFileUsed()).
		Str("log_level", cfg.LogLevel).
		Str("output_format", cfg.OutputFormat).
		Bool("strict", cfg.Strict).
		Bool("lint", cfg.Lint).
		Msg("configuration loaded")

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Use the config key in error messages
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := validate.Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if !stderrors.As(err, &validationErrs) {
			return errors.Wrap(err, "failed to validate config")
		}
		msgs := make([]string, 0, len(validationErrs))
		for _, e := range validationErrs {
			msgs = append(msgs, fmt.Sprintf("key=%q, value=%q, failed %q validation", e.Field(), fmt.Sprint(e.Value()), e.ActualTag()))
		}
		return fmt.Errorf("%w: %s", errors.ErrConfigInvalid, strings.Join(msgs, "; "))
	}
	return nil
}

func isConfigNotFoundError(err error) bool {
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	)
}
