package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load.
const EnvPrefix = "FACTQA"

// providerKeyEnv lists the conventional credential variable per provider, used
// when FACTQA_LLM_API_KEY is not set.
var providerKeyEnv = map[string]string{
	"anthropic": "ANTHROPIC_API_KEY",
	"gemini":    "GEMINI_API_KEY",
}

// Load configuration from defaults, an optional factqa config file, an optional
// .env file and environment variables. Environment variables take precedence over
// values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// A missing .env is fine: variables may come from the real environment.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("factqa")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("llm.api_key"); err != nil {
		return nil, fmt.Errorf("failed to bind api key variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.LLM.APIKey == "" {
		if name, ok := providerKeyEnv[cfg.LLM.Provider]; ok {
			cfg.LLM.APIKey = os.Getenv(name)
		}
	}
	cfg.Generation.Languages = cleanLanguages(cfg.Generation.Languages)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("generation.facts_path", "self_facts.txt")
	v.SetDefault("generation.output_path", "finetuning_data.json")
	v.SetDefault("generation.languages", []string{"Spanish", "Russian"})
	v.SetDefault("generation.fact_limit", 0)
	v.SetDefault("generation.translation_max_attempts", 10)

	v.SetDefault("llm.provider", "anthropic")
	v.SetDefault("llm.model", "claude-3-5-sonnet-latest")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.system_prompt", "You're a helpful assistant")
	v.SetDefault("llm.temperature", 0.8)
	v.SetDefault("llm.max_tokens", 5000)
	v.SetDefault("llm.max_attempts", 10)
	v.SetDefault("llm.initial_backoff", "1s")
	v.SetDefault("llm.max_backoff", "0s")
	v.SetDefault("llm.requests_per_minute", 0)
	v.SetDefault("llm.timeout", "2m")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// cleanLanguages trims each entry and drops blanks left by trailing commas in
// FACTQA_GENERATION_LANGUAGES.
func cleanLanguages(in []string) []string {
	out := make([]string, 0, len(in))
	for _, lang := range in {
		if lang = strings.TrimSpace(lang); lang != "" {
			out = append(out, lang)
		}
	}
	return out
}
