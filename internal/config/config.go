package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string `mapstructure:"PORT"`
	Environment string `mapstructure:"GO_ENV"`
	FrontendURL string `mapstructure:"FRONTEND_URL"`

	// Contribution store backing: redis, postgres or memory
	StoreBackend string `mapstructure:"STORE_BACKEND"`
	StoreKey     string `mapstructure:"STORE_KEY"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	DatabaseURL   string `mapstructure:"DATABASE_URL"`

	// Built-in catalog data file
	CatalogPath string `mapstructure:"CATALOG_PATH"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("GO_ENV", "development")
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")
	viper.SetDefault("STORE_BACKEND", "redis")
	viper.SetDefault("STORE_KEY", "codecraft_contributions")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("CATALOG_PATH", "data/catalog.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}
