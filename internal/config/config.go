package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port                          string        `mapstructure:"PORT"`
	DatabasePath                  string        `mapstructure:"DATABASE_PATH"`
	GenerationDelay               time.Duration `mapstructure:"GENERATION_DELAY"`
	GenerationRate                float64       `mapstructure:"GENERATION_RATE"`
	GenerationBurst               int           `mapstructure:"GENERATION_BURST"`
	SessionSecret                 string        `mapstructure:"SESSION_SECRET"`
	SessionTTL                    time.Duration `mapstructure:"SESSION_TTL"`
	SecureCookies                 bool          `mapstructure:"SECURE_COOKIES"`
	PurgeInterval                 time.Duration `mapstructure:"PURGE_INTERVAL"`
	CatalogPath                   string        `mapstructure:"CATALOG_PATH"`
	DiscordBotToken               string        `mapstructure:"DISCORD_BOT_TOKEN"`
	DiscordNotificationsChannelID string        `mapstructure:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
	EnableCORS                    bool          `mapstructure:"ENABLE_CORS"`
	CORSAllowedOrigins            []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	LogLevel                      string        `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using system environment")
	}

	config, err := Load(viper.GetViper())
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
	return config
}

// Load reads configuration from the environment bound to v.
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("DATABASE_PATH", "planner.db")
	v.SetDefault("GENERATION_DELAY", "2s")
	v.SetDefault("GENERATION_RATE", 0)
	v.SetDefault("GENERATION_BURST", 1)
	v.SetDefault("SESSION_SECRET", "change-me")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SECURE_COOKIES", false)
	v.SetDefault("PURGE_INTERVAL", "10m")
	v.SetDefault("CATALOG_PATH", "")
	v.SetDefault("DISCORD_BOT_TOKEN", "")
	v.SetDefault("DISCORD_NOTIFICATIONS_CHANNEL_ID", "")
	v.SetDefault("ENABLE_CORS", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://127.0.0.1:3000"})
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}
