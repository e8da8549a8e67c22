package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Generation GenerationConfig `mapstructure:"generation" validate:"required"`
	LLM        LLMConfig        `mapstructure:"llm"        validate:"required"`
	Log        LogConfig        `mapstructure:"log"        validate:"required"`
}

// GenerationConfig contains the dataset generation settings fixed at run start.
type GenerationConfig struct {
	FactsPath  string   `mapstructure:"facts_path"  validate:"required"`
	OutputPath string   `mapstructure:"output_path" validate:"required"`
	Languages  []string `mapstructure:"languages"   validate:"dive,required"`
	// FactLimit truncates the loaded facts to the first N entries. Zero means no cap.
	FactLimit              int `mapstructure:"fact_limit"               validate:"gte=0"`
	TranslationMaxAttempts int `mapstructure:"translation_max_attempts" validate:"gte=1"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	Provider     string  `mapstructure:"provider"      validate:"required,oneof=anthropic gemini"`
	Model        string  `mapstructure:"model"         validate:"required"`
	APIKey       string  `mapstructure:"api_key"       validate:"required"`
	BaseURL      string  `mapstructure:"base_url"      validate:"omitempty,url"`
	SystemPrompt string  `mapstructure:"system_prompt" validate:"required"`
	Temperature  float64 `mapstructure:"temperature"   validate:"gte=0,lte=2"`
	MaxTokens    int     `mapstructure:"max_tokens"    validate:"gt=0"`

	MaxAttempts    int           `mapstructure:"max_attempts"    validate:"gte=1"`
	InitialBackoff time.Duration `mapstructure:"initial_backoff" validate:"gt=0"`
	// MaxBackoff caps a single backoff delay. Zero leaves the delay uncapped.
	MaxBackoff        time.Duration `mapstructure:"max_backoff"         validate:"gte=0"`
	RequestsPerMinute int           `mapstructure:"requests_per_minute" validate:"gte=0"`
	Timeout           time.Duration `mapstructure:"timeout"             validate:"gt=0"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"  validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
}
