package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coinpulse/internal/bot"
	"coinpulse/internal/cache"
	"coinpulse/internal/config"
	"coinpulse/internal/handler"
	"coinpulse/internal/provider"
	"coinpulse/internal/sentiment"
	"coinpulse/internal/service"
	"coinpulse/internal/store"
	"coinpulse/pkg/tracing"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "coinpulse/docs"
)

var (
	loadEnvFunc            = godotenv.Load
	loadConfigFunc         = config.Load
	initMongoFunc          = store.Init
	initRedisFunc          = cache.InitRedis
	initTracerFunc         = tracing.InitTracer
	newGatewayFunc         = store.NewGateway
	newProviderFunc        = provider.NewCoinMarketCap
	newClassifierFunc      = newClassifier
	startTelegramBotFunc   = bot.StartTelegramBot
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// newClassifier picks the inference backend. An explicit SENTIMENT_API_URL
// wins, then OpenAI when a key is present, otherwise the hosted inference
// API with the configured model.
func newClassifier(cfg *config.Config, tracer trace.Tracer) sentiment.Classifier {
	if cfg.SentimentAPIURL != "" {
		return sentiment.NewRemoteClassifier(cfg.SentimentAPIURL, cfg.SentimentModel, cfg.HuggingFaceAPIKey, tracer)
	}
	if cfg.OpenAIAPIKey != "" {
		return sentiment.NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return sentiment.NewRemoteClassifier(sentiment.DefaultInferenceBaseURL, cfg.SentimentModel, cfg.HuggingFaceAPIKey, tracer)
}

// @title           Crypto Trading Bot API
// @version         1.0
// @description     Market data, news, sentiment scoring, and paper trading over CoinMarketCap and MongoDB.

// @host      localhost:8000
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init MongoDB and Redis
	if err := initMongoFunc(ctx, cfg.MongoURI, cfg.DBName); err != nil {
		log.Fatalf("failed to initialize MongoDB: %v", err)
	}
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Store gateway over the shared database handle
	gateway := newGatewayFunc(store.Database(), tracer)

	// Provider, classifier, and scorer
	cmc := newProviderFunc(cfg.CoinMarketCapAPIKey, tracer)
	scorer := sentiment.NewScorer(newClassifierFunc(cfg, tracer), tracer)

	var redisClient service.RedisClient
	if cache.Client != nil {
		redisClient = cache.Client
	}

	marketService := service.NewMarketService(tracer, cmc, gateway, redisClient)
	newsService := service.NewNewsService(tracer, cmc, gateway)
	sentimentService := service.NewSentimentService(tracer, scorer, gateway, cfg.SelfBaseURL)
	tradeService := service.NewTradeService(tracer, gateway)

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(marketService, sentimentService)

	// Create handlers and routes
	h := handler.New(tracer, marketService, newsService, sentimentService, tradeService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("coinpulse"))
	r.Use(cors.Default())

	h.RegisterRoutes(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
