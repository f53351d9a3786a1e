package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/K3nguruh/validation/pkg/config"
	"github.com/K3nguruh/validation/pkg/logger"
	"github.com/K3nguruh/validation/pkg/sanitizer"
	"github.com/K3nguruh/validation/pkg/validation"
)

const envPrefix = "VALIDATE_"

// Config holds the defaults read from the environment.
type Config struct {
	LogLevel  string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string   `env:"LOG_FORMAT" envDefault:"text"`
	Separator string   `env:"SEPARATOR" envDefault:"||"`
	Output    string   `env:"OUTPUT" envDefault:"text"`
	Sanitize  []string `env:"SANITIZE" envDefault:"trim" envSeparator:","`
}

// LoadConfig reads Config from VALIDATE_* variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix(envPrefix)); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// sessionOptions translates cfg into session options.
func (cfg Config) sessionOptions(log *slog.Logger) ([]validation.Option, error) {
	clean, err := sanitizer.Parse(cfg.Sanitize...)
	if err != nil {
		return nil, err
	}
	return []validation.Option{
		validation.WithSeparator(cfg.Separator),
		validation.WithSanitizer(clean),
		validation.WithLogger(log),
	}, nil
}

func (cfg Config) logger(opts ...logger.Option) (*slog.Logger, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	return logger.New(append([]logger.Option{
		logger.WithLevel(level),
		logger.WithFormat(format),
		logger.WithService(name),
	}, opts...)...), nil
}

type outputFormat string

const (
	outputText outputFormat = "text"
	outputJSON outputFormat = "json"
)

func parseOutput(s string) (outputFormat, error) {
	switch f := outputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case outputText, outputJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: must be %q or %q", s, outputText, outputJSON)
	}
}
