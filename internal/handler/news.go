package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetCryptoNews godoc
// @Summary      Get latest cryptocurrency news
// @Description  Returns recent articles, optionally filtered by coin symbol; degrades to simulated articles when the provider is unavailable
// @Tags         news
// @Produce      json
// @Param        coins      query  string  false  "Comma-separated coin symbols to filter by"
// @Param        limit      query  int     false  "Number of articles to return"  default(10)
// @Param        use_cache  query  bool    false  "Serve stored articles if present"  default(true)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/crypto-news [get]
func (h *Handler) GetCryptoNews(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-crypto-news")
	defer span.End()

	coins := splitCSV(strings.ToUpper(c.Query("coins")))
	span.SetAttributes(attribute.StringSlice("coins", coins))

	limit := 10
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	useCache := true
	if v, err := strconv.ParseBool(c.DefaultQuery("use_cache", "true")); err == nil {
		useCache = v
	}

	articles, err := h.newsService.GetNews(ctx, coins, limit, useCache)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"news": articles})
}
