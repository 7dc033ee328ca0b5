package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port        string
	MongoURI    string
	DBName      string
	RedisURL    string
	SelfBaseURL string

	CoinMarketCapAPIKey string

	SentimentAPIURL   string
	SentimentModel    string
	HuggingFaceAPIKey string

	OpenAIAPIKey string
	OpenAIModel  string

	TelegramBotToken string
}

func Load() *Config {
	cfg := &Config{
		MongoURI:            os.Getenv("MONGODB_URI"),
		CoinMarketCapAPIKey: os.Getenv("COINMARKETCAP_API_KEY"),
		RedisURL:            os.Getenv("REDIS_URL"),
		SentimentAPIURL:     strings.TrimSpace(os.Getenv("SENTIMENT_API_URL")),
		HuggingFaceAPIKey:   os.Getenv("HUGGINGFACE_API_KEY"),
		OpenAIAPIKey:        os.Getenv("OPENAI_API_KEY"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
	}

	if cfg.MongoURI == "" {
		log.Println("Warning: MONGODB_URI not set, defaulting to mongodb://localhost:27017")
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	cfg.DBName = strings.TrimSpace(os.Getenv("DB_NAME"))
	if cfg.DBName == "" {
		cfg.DBName = "crypto_trading"
	}

	if cfg.CoinMarketCapAPIKey == "" {
		log.Println("Warning: COINMARKETCAP_API_KEY not set, provider requests will be rejected upstream")
	}

	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, global-metrics caching disabled")
	}

	cfg.SentimentModel = strings.TrimSpace(os.Getenv("SENTIMENT_MODEL"))
	if cfg.SentimentModel == "" {
		cfg.SentimentModel = "ProsusAI/finbert"
	}

	cfg.OpenAIModel = strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if cfg.OpenAIModel == "" {
		cfg.OpenAIModel = "gpt-4o-mini"
	}

	cfg.Port = "8000"
	if v := strings.TrimSpace(os.Getenv("PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n < 65536 {
			cfg.Port = v
		} else {
			log.Printf("Warning: invalid PORT=%q, defaulting to 8000", v)
		}
	}

	cfg.SelfBaseURL = strings.TrimSpace(os.Getenv("SELF_BASE_URL"))
	if cfg.SelfBaseURL == "" {
		cfg.SelfBaseURL = "http://localhost:" + cfg.Port
	}
	cfg.SelfBaseURL = strings.TrimRight(cfg.SelfBaseURL, "/")

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}

	return cfg
}
