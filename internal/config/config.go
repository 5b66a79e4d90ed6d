package config

import (
	"time"

	"github.com/caarlos0/env/v10"

	"smartdna/internal/domain"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort          string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL       string        `env:"DATABASE_URL,required"`
	CORSOrigins       []string      `env:"CORS_ORIGINS" envDefault:"http://localhost:3000"`
	JWTSecret         string        `env:"JWT_SECRET"`
	JWTAccessTTL      time.Duration `env:"JWT_ACCESS_TTL" envDefault:"24h"`
	SuperAdminKey     string        `env:"SUPERADMIN_KEY"`
	SuperAdminKeyHash string        `env:"SUPERADMIN_KEY_HASH"`
	MinHubScore       float64       `env:"MIN_HUB_SCORE" envDefault:"40"`
	DNAValidityDays   int           `env:"DNA_VALIDITY_DAYS" envDefault:"365"`
	DNAHubJitter      bool          `env:"DNA_HUB_JITTER" envDefault:"true"`
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisPassword     string        `env:"REDIS_PASSWORD"`
	RedisDB           int           `env:"REDIS_DB" envDefault:"0"`
	LoginMaxAttempts  int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginWindow       time.Duration `env:"LOGIN_WINDOW" envDefault:"10m"`
	Providers         ProvidersConfig
}

// ProvidersConfig agrupa credenciales y limites de los proveedores de generacion.
// Se puede cargar sola (ver LoadProviders) para herramientas sin base de datos.
type ProvidersConfig struct {
	DeepInfraAPIKey  string        `env:"DEEPINFRA_API_KEY"`
	DeepInfraModel   string        `env:"DEEPINFRA_MODEL" envDefault:"meta-llama/Llama-2-70b-chat-hf"`
	DeepInfraBaseURL string        `env:"DEEPINFRA_BASE_URL" envDefault:"https://api.deepinfra.com/v1/openai"`
	OpenAIAPIKey     string        `env:"OPENAI_API_KEY"`
	OpenAIModel      string        `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIBaseURL    string        `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com/v1"`
	OpenAIImageModel string        `env:"OPENAI_IMAGE_MODEL" envDefault:"dall-e-3"`
	AnthropicAPIKey  string        `env:"ANTHROPIC_API_KEY"`
	AnthropicModel   string        `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-haiku-20241022"`
	AnthropicBaseURL string        `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`
	GroqAPIKey       string        `env:"GROQ_API_KEY"`
	GroqModel        string        `env:"GROQ_MODEL" envDefault:"llama-3.1-70b-versatile"`
	GroqBaseURL      string        `env:"GROQ_BASE_URL" envDefault:"https://api.groq.com/openai/v1"`
	GeminiAPIKey     string        `env:"GEMINI_API_KEY"`
	GeminiModel      string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	GeminiBaseURL    string        `env:"GEMINI_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/"`
	Timeout          time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"60s"`
	RPS              float64       `env:"PROVIDER_RPS" envDefault:"5"`
	Burst            int           `env:"PROVIDER_BURST" envDefault:"10"`
}

// Configs devuelve la configuracion de cada proveedor en orden de enumeracion.
// Tarifas y limites son fijos; solo credenciales, modelos y endpoints vienen del entorno.
func (p ProvidersConfig) Configs() []domain.ProviderConfig {
	return []domain.ProviderConfig{
		{
			ID:              domain.ProviderDeepInfra,
			Model:           p.DeepInfraModel,
			APIKey:          p.DeepInfraAPIKey,
			BaseURL:         p.DeepInfraBaseURL,
			CostPer1KInput:  0.0001,
			CostPer1KOutput: 0.0001,
			MaxTokens:       4096,
		},
		{
			ID:              domain.ProviderOpenAI,
			Model:           p.OpenAIModel,
			APIKey:          p.OpenAIAPIKey,
			BaseURL:         p.OpenAIBaseURL,
			CostPer1KInput:  0.00015,
			CostPer1KOutput: 0.0006,
			MaxTokens:       16384,
			SupportsImages:  true,
			ImageModel:      p.OpenAIImageModel,
		},
		{
			ID:              domain.ProviderAnthropic,
			Model:           p.AnthropicModel,
			APIKey:          p.AnthropicAPIKey,
			BaseURL:         p.AnthropicBaseURL,
			CostPer1KInput:  0.00025,
			CostPer1KOutput: 0.00125,
			MaxTokens:       8192,
		},
		{
			ID:        domain.ProviderGroq,
			Model:     p.GroqModel,
			APIKey:    p.GroqAPIKey,
			BaseURL:   p.GroqBaseURL,
			MaxTokens: 8192,
		},
		{
			ID:        domain.ProviderGemini,
			Model:     p.GeminiModel,
			APIKey:    p.GeminiAPIKey,
			BaseURL:   p.GeminiBaseURL,
			MaxTokens: 8192,
		},
	}
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadProviders carga solo la configuracion de proveedores.
func LoadProviders() (*ProvidersConfig, error) {
	var cfg ProvidersConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
