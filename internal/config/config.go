package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	SQLitePath    string
	RedisAddr     string
	KafkaAddress  string
	SessionSecret []byte
	CatalogFile   string
	LogLevel      string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("missing required env SESSION_SECRET")
	}

	cfg := &Config{
		ServerPort:    getenvDefault("SERVER_PORT", "8080"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "storefront.db"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		KafkaAddress:  os.Getenv("KAFKA_ADDRESS"),
		SessionSecret: []byte(secret),
		CatalogFile:   os.Getenv("CATALOG_FILE"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
	}

	return cfg, nil
}

func getenvDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}
