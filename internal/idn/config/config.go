package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds the runtime configuration of idn-display.
type AppConfig struct {
	// Env is the runtime environment, either "dev" or "prod".
	Env       string          `koanf:"env" validate:"required,oneof=dev prod"`
	Log       LoggingConfig   `koanf:"log"`
	Checker   CheckerConfig   `koanf:"checker"`
	Overrides OverridesConfig `koanf:"overrides"`
	Render    RenderConfig    `koanf:"render"`
}

// LoggingConfig controls log verbosity: "debug", "info", "warn", or "error".
type LoggingConfig struct {
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`
}

// CheckerConfig tunes the label classifier.
type CheckerConfig struct {
	// AppleFonts removes scalars that Apple system fonts render misleadingly
	// from the allow-list.
	AppleFonts bool        `koanf:"apple_fonts"`
	Cache      CacheConfig `koanf:"cache"`
}

// OverridesConfig locates the forced-ASCII override lists.
type OverridesConfig struct {
	// Directory holds plain and structured override lists. Empty disables overrides.
	Directory string `koanf:"dir"`
	// DB is the bbolt file the rules are persisted to. Empty keeps them in memory.
	DB     string      `koanf:"db"`
	FPRate float64     `koanf:"fp_rate" validate:"fp_rate"`
	Cache  CacheConfig `koanf:"cache"`
}

// CacheConfig sizes an LRU cache. Zero disables it.
type CacheConfig struct {
	Size uint `koanf:"size" validate:"lte=1000000"`
}

// RenderConfig controls batch rendering.
type RenderConfig struct {
	Workers int `koanf:"workers" validate:"required,gte=1,lte=256"`
}

// DEFAULT_APP_CONFIG holds the defaults applied before the environment is read.
var DEFAULT_APP_CONFIG = AppConfig{
	Env: "prod",
	Log: LoggingConfig{
		Level: "warn",
	},
	Checker: CheckerConfig{
		AppleFonts: runtime.GOOS == "darwin",
		Cache:      CacheConfig{Size: 4096},
	},
	Overrides: OverridesConfig{
		Directory: "",
		DB:        "",
		FPRate:    0.001,
		Cache:     CacheConfig{Size: 1000},
	},
	Render: RenderConfig{
		Workers: 4,
	},
}

// envKeys maps supported environment variables (without the IDN_ prefix)
// onto koanf keys. Anything else is ignored.
var envKeys = map[string]string{
	"ENV":                  "env",
	"LOG_LEVEL":            "log.level",
	"CHECKER_APPLE_FONTS":  "checker.apple_fonts",
	"CHECKER_CACHE_SIZE":   "checker.cache.size",
	"OVERRIDES_DIR":        "overrides.dir",
	"OVERRIDES_DB":         "overrides.db",
	"OVERRIDES_FP_RATE":    "overrides.fp_rate",
	"OVERRIDES_CACHE_SIZE": "overrides.cache.size",
	"RENDER_WORKERS":       "render.workers",
}

const envPrefix = "IDN_"

// validFPRate accepts bloom filter false-positive rates in (0, 0.5].
func validFPRate(fl validator.FieldLevel) bool {
	p := fl.Field().Float()
	return p > 0 && p <= 0.5
}

// transformEnv maps an IDN_ variable onto its koanf key; unknown keys map to
// "" and are skipped by the provider.
func transformEnv(key, value string) (string, any) {
	mapped, ok := envKeys[strings.ToUpper(strings.TrimPrefix(key, envPrefix))]
	if !ok {
		return "", nil
	}
	return mapped, strings.TrimSpace(value)
}

// envLoader loads IDN_ prefixed environment variables. It can be replaced in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix:        envPrefix,
		TransformFunc: transformEnv,
	}), nil)
}

// defaultLoader loads DEFAULT_APP_CONFIG. It can be replaced in tests.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DEFAULT_APP_CONFIG, "koanf"), nil)
}

// registerValidation registers the custom "fp_rate" tag.
var registerValidation = func(v *validator.Validate) error {
	return v.RegisterValidation("fp_rate", validFPRate)
}

// Load builds an AppConfig from defaults and the environment, then validates it.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := registerValidation(validate); err != nil {
		return nil, fmt.Errorf("error registering validation: %w", err)
	}
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
