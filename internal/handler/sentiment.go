package handler

import (
	"net/http"
	"strconv"
	"strings"

	"coinpulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type sentimentRequest struct {
	Text string `json:"text" binding:"required"`
	Coin string `json:"coin" binding:"required"`
}

// AnalyzeSentiment godoc
// @Summary      Analyze the sentiment of a text
// @Description  Scores a text for a coin with the pre-trained 3-class model and persists the result
// @Tags         sentiment
// @Accept       json
// @Produce      json
// @Param        request  body  sentimentRequest  true  "Text and coin to score"
// @Success      200  {object}  domain.SentimentRecord
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/analyze-sentiment [post]
func (h *Handler) AnalyzeSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze-sentiment")
	defer span.End()

	var req sentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	span.SetAttributes(attribute.String("coin", strings.ToUpper(req.Coin)))

	record, err := h.sentimentService.AnalyzeText(ctx, req.Coin, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetCoinSentiment godoc
// @Summary      Get sentiment history for a coin
// @Description  Returns recent sentiment records, newest first, with labels recomputed from stored scores
// @Tags         sentiment
// @Produce      json
// @Param        coin  path   string  true   "Coin symbol (e.g., BTC)"
// @Param        days  query  int     false  "Days of history to return"  default(7)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/coin-sentiment/{coin} [get]
func (h *Handler) GetCoinSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-coin-sentiment")
	defer span.End()

	coin := strings.ToUpper(c.Param("coin"))
	span.SetAttributes(attribute.String("coin", coin))

	days := 7
	if d := c.Query("days"); d != "" {
		if n, err := strconv.Atoi(d); err == nil && n > 0 {
			days = n
		}
	}

	history, err := h.sentimentService.History(ctx, coin, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"coin":              coin,
		"sentiment_history": history,
	})
}

// AnalyzeNewsSentiment godoc
// @Summary      Analyze news sentiment per coin
// @Description  Fetches recent news for each coin and aggregates article sentiment; failures are reported per coin
// @Tags         sentiment
// @Produce      json
// @Param        coins  query  string  false  "Comma-separated coin symbols"  default(BTC,ETH)
// @Param        limit  query  int     false  "Articles to analyze per coin"  default(5)
// @Success      200  {object}  map[string]domain.NewsSentiment
// @Router       /api/analyze-news-sentiment [get]
func (h *Handler) AnalyzeNewsSentiment(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.analyze-news-sentiment")
	defer span.End()

	coins := splitCSV(strings.ToUpper(c.Query("coins")))
	if len(coins) == 0 {
		coins = domain.DefaultNewsSentimentSymbols
	}
	span.SetAttributes(attribute.StringSlice("coins", coins))

	limit := 5
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	c.JSON(http.StatusOK, h.sentimentService.AnalyzeNews(ctx, coins, limit))
}
