package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment
// variables (with an optional .env file for local development).
type Config struct {
	// Server
	Port        int    `mapstructure:"PORT"`
	CORSOrigins string `mapstructure:"CORS_ORIGINS"` // comma-separated

	// Auth
	JWTSecret          string `mapstructure:"JWT_SECRET"`
	JWTExpirationHours int    `mapstructure:"JWT_EXPIRATION_HOURS"`
	SeedAdminPassword  string `mapstructure:"SEED_ADMIN_PASSWORD"`

	// Advisory text service
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel  string `mapstructure:"GEMINI_MODEL"`

	// Store identity (printed on receipts)
	StoreName    string `mapstructure:"STORE_NAME"`
	StoreAddress string `mapstructure:"STORE_ADDRESS"`
	StoreTaxID   string `mapstructure:"STORE_TAX_ID"`

	// Inventory
	LowStockThreshold int `mapstructure:"LOW_STOCK_THRESHOLD"`

	// Optional write-behind sales archive. Empty = disabled.
	ArchiveDSN string `mapstructure:"DB_DSN"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for a single-terminal demo deployment
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("CORS_ORIGINS", "http://localhost:5173")
	viper.SetDefault("JWT_SECRET", "dev_only_change_me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)
	viper.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash-001")
	viper.SetDefault("DB_DSN", "")
	viper.SetDefault("STORE_NAME", "Sari-Sari Store")
	viper.SetDefault("STORE_ADDRESS", "")
	viper.SetDefault("STORE_TAX_ID", "")
	viper.SetDefault("LOW_STOCK_THRESHOLD", 10)

	// Optional .env file — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Origins splits the comma-separated CORS origin list.
func (c *Config) Origins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
