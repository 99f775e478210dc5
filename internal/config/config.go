package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	ServerPort     string
	AIAPIKey       string
	AIAPIURL       string
	AIModel        string
	InitialCredits string
}

func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "campusverse"),
		JWTSecret:      getEnv("JWT_SECRET", "super-secret-key-change-me"),
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		AIAPIKey:       getEnv("AI_API_KEY", ""),
		AIAPIURL:       getEnv("AI_API_URL", "https://openrouter.ai/api/v1"),
		AIModel:        getEnv("AI_MODEL", "qwen/qwen-2.5-72b-instruct"),
		InitialCredits: getEnv("INITIAL_CREDITS", "50"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
