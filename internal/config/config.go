package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	ClientURL        string
	MongoURI         string
	MongoDatabase    string
	RedisAddr        string
	RabbitURI        string
	RabbitExchange   string
	Judge0APIKey     string
	Judge0APIHost    string
	PenanceFile      string
}

// Load reads configuration from the environment, falling back to a .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	return &Config{
		Port:           getEnv("PORT", "5000"),
		ClientURL:      getEnv("CLIENT_URL", "http://localhost:3000"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "gauntlet_service"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RabbitURI:      getEnv("RABBITMQ_URI", ""),
		RabbitExchange: getEnv("RABBITMQ_EXCHANGE", ""),
		Judge0APIKey:   getEnv("JUDGE0_API_KEY", ""),
		Judge0APIHost:  getEnv("JUDGE0_API_HOST", ""),
		PenanceFile:    getEnv("PENANCE_FILE", "data/penance.json"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
