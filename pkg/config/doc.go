// Package config loads configuration structs from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: optional
// .env files are read into the process environment first (existing variables
// win), then the environment is parsed into the target struct using `env`
// and `envDefault` field tags.
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("VALIDATE_")); err != nil {
//	    return err
//	}
//
// Without WithEnvFiles, a .env file in the working directory is loaded when
// present and silently skipped otherwise. Files passed explicitly must exist.
package config
