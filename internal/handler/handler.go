package handler

import (
	"strings"

	"coinpulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer           trace.Tracer
	marketService    *service.MarketService
	newsService      *service.NewsService
	sentimentService *service.SentimentService
	tradeService     *service.TradeService
}

func New(
	tracer trace.Tracer,
	marketService *service.MarketService,
	newsService *service.NewsService,
	sentimentService *service.SentimentService,
	tradeService *service.TradeService,
) *Handler {
	return &Handler{
		tracer:           tracer,
		marketService:    marketService,
		newsService:      newsService,
		sentimentService: sentimentService,
		tradeService:     tradeService,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Root)
	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/market-data", h.GetMarketData)
	api.GET("/global-metrics", h.GetGlobalMetrics)
	api.GET("/crypto-news", h.GetCryptoNews)
	api.POST("/analyze-sentiment", h.AnalyzeSentiment)
	api.GET("/coin-sentiment/:coin", h.GetCoinSentiment)
	api.GET("/analyze-news-sentiment", h.AnalyzeNewsSentiment)
	api.POST("/trade", h.RecordTrade)
	api.GET("/trade-history", h.GetTradeHistory)
}

// splitCSV parses a comma-separated symbol list, dropping empty entries.
func splitCSV(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
