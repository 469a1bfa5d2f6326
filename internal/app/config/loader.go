package config

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

var defaults = map[string]any{
	"LOG_LEVEL":          "info",
	"LOG_FORMAT":         "json",
	"HTTP_PORT":          8080,
	"HTTP_TIMEOUT":       "30s",
	"REDIS_ADDR":         "localhost:6379",
	"REDIS_TIMEOUT":      "2s",
	"CACHE_ENABLED":      true,
	"CACHE_EXPIRATION":   "5m",
	"CACHE_LOCK_TIMEOUT": "5s",
	"RATE_LIMIT_RPS":     20,

	"OPTIMIZER_MAX_CANDIDATES_PER_CATEGORY": 50,
}

// MustInitConfig initializes configuration from .env file or environment variables
// and panics when the result cannot be decoded.
func MustInitConfig(configFile string) Config {
	cfg, err := Load(configFile)
	if err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	return cfg
}

// Load reads configFile when it exists, then overlays environment variables
// bound from the Config struct's mapstructure tags.
func Load(configFile string) (Config, error) {
	var (
		vpr = viper.New()
		cfg Config
	)

	for key, value := range defaults {
		vpr.SetDefault(key, value)
	}

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))
	}

	bindEnvFromType(vpr, reflect.TypeOf(Config{}))

	if err := vpr.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, nil
}

// bindEnvFromType binds every mapstructure tag of t, descending into
// squashed structs, so Unmarshal sees variables that only exist in the
// environment.
func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		name, squash := parseTag(field.Tag.Get("mapstructure"))
		if squash || (name == "" && field.Anonymous) {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if name != "" && name != "-" {
			_ = vpr.BindEnv(name)
		}
	}
}

func parseTag(tag string) (string, bool) {
	parts := strings.Split(tag, ",")

	for _, p := range parts[1:] {
		if strings.TrimSpace(p) == "squash" {
			return parts[0], true
		}
	}

	return parts[0], false
}
