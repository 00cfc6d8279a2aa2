package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"creatoros/internal/domain"
)

const (
	defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "meta-llama/llama-3.3-70b-instruct:free"
	defaultAITimeout         = 60 * time.Second
	defaultCORSOrigins       = "http://localhost:5173,http://localhost:3000"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort  string
	LogLevel    string
	Environment string

	SupabaseURL        string
	SupabaseKey        string
	SupabaseServiceKey string

	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string
	AIProxyURL        string
	AITimeout         time.Duration

	GumroadWebhookSecret   string
	RedisURL               string
	PricingNicheMultiplier float64
	CORSAllowedOrigins     []string
}

// NewConfig reads the configuration from the environment with default values
func NewConfig() domain.Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("OPENROUTER_BASE_URL", defaultOpenRouterBaseURL)
	v.SetDefault("OPENROUTER_MODEL", defaultOpenRouterModel)
	v.SetDefault("AI_TIMEOUT", defaultAITimeout)
	v.SetDefault("PRICING_NICHE_MULTIPLIER", 1.0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)

	// Cloud Run (and many PaaS) provide the listening port via PORT.
	// Keep SERVER_PORT for local/dev compatibility.
	port := v.GetString("PORT")
	if port == "" {
		port = v.GetString("SERVER_PORT")
	}

	anonKey := v.GetString("SUPABASE_ANON_KEY")
	serviceKey := v.GetString("SUPABASE_SERVICE_ROLE_KEY")
	if serviceKey == "" {
		serviceKey = anonKey
	}

	timeout := v.GetDuration("AI_TIMEOUT")
	if timeout <= 0 {
		timeout = defaultAITimeout
	}

	multiplier := v.GetFloat64("PRICING_NICHE_MULTIPLIER")
	if multiplier <= 0 {
		multiplier = 1.0
	}

	return &AppConfig{
		ServerPort:             port,
		LogLevel:               v.GetString("LOG_LEVEL"),
		Environment:            v.GetString("ENVIRONMENT"),
		SupabaseURL:            v.GetString("SUPABASE_URL"),
		SupabaseKey:            anonKey,
		SupabaseServiceKey:     serviceKey,
		OpenRouterAPIKey:       v.GetString("OPENROUTER_API_KEY"),
		OpenRouterBaseURL:      strings.TrimRight(v.GetString("OPENROUTER_BASE_URL"), "/"),
		OpenRouterModel:        v.GetString("OPENROUTER_MODEL"),
		AIProxyURL:             v.GetString("AI_PROXY_URL"),
		AITimeout:              timeout,
		GumroadWebhookSecret:   v.GetString("GUMROAD_WEBHOOK_SECRET"),
		RedisURL:               v.GetString("REDIS_URL"),
		PricingNicheMultiplier: multiplier,
		CORSAllowedOrigins:     splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}
}

// GetServerPort returns the server port
func (c *AppConfig) GetServerPort() string {
	return c.ServerPort
}

// GetLogLevel returns the logging level
func (c *AppConfig) GetLogLevel() string {
	return c.LogLevel
}

func (c *AppConfig) GetEnvironment() string {
	return c.Environment
}

// IsProduction reports whether ENVIRONMENT is "production".
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// GetSupabaseURL returns the Supabase URL
func (c *AppConfig) GetSupabaseURL() string {
	return c.SupabaseURL
}

// GetSupabaseKey returns the Supabase anon key
func (c *AppConfig) GetSupabaseKey() string {
	return c.SupabaseKey
}

// GetSupabaseServiceKey returns the service role key, or the anon key when unset
func (c *AppConfig) GetSupabaseServiceKey() string {
	return c.SupabaseServiceKey
}

func (c *AppConfig) GetOpenRouterAPIKey() string {
	return c.OpenRouterAPIKey
}

func (c *AppConfig) GetOpenRouterBaseURL() string {
	return c.OpenRouterBaseURL
}

func (c *AppConfig) GetOpenRouterModel() string {
	return c.OpenRouterModel
}

// GetAIProxyURL returns the remote proxy URL; empty means the proxy runs in-process
func (c *AppConfig) GetAIProxyURL() string {
	return c.AIProxyURL
}

func (c *AppConfig) GetAITimeout() time.Duration {
	return c.AITimeout
}

func (c *AppConfig) GetGumroadWebhookSecret() string {
	return c.GumroadWebhookSecret
}

func (c *AppConfig) GetRedisURL() string {
	return c.RedisURL
}

func (c *AppConfig) GetPricingNicheMultiplier() float64 {
	return c.PricingNicheMultiplier
}

func (c *AppConfig) GetCORSAllowedOrigins() []string {
	return c.CORSAllowedOrigins
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
