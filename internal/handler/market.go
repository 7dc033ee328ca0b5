package handler

import (
	"net/http"
	"strconv"
	"strings"

	"coinpulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetMarketData godoc
// @Summary      Get current market data
// @Description  Returns the latest snapshot of USD quotes for the requested symbols, served from cache when available
// @Tags         market-data
// @Produce      json
// @Param        symbols    query  string  false  "Comma-separated coin symbols"  default(BTC,ETH,XRP,LTC,ADA)
// @Param        limit      query  int     false  "Number of results to return"  default(10)
// @Param        use_cache  query  bool    false  "Serve the latest stored snapshot if present"  default(true)
// @Success      200  {object}  domain.MarketSnapshot
// @Failure      500  {object}  map[string]string
// @Router       /api/market-data [get]
func (h *Handler) GetMarketData(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-market-data")
	defer span.End()

	symbols := splitCSV(strings.ToUpper(c.DefaultQuery("symbols", "")))
	if len(symbols) == 0 {
		symbols = domain.DefaultSymbols
	}
	span.SetAttributes(attribute.StringSlice("symbols", symbols))

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

	snapshot, err := h.marketService.GetMarketData(ctx, symbols, limit, useCache)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// GetGlobalMetrics godoc
// @Summary      Get global market metrics
// @Description  Returns total market cap, volume, dominance, and active currency counts
// @Tags         market-data
// @Produce      json
// @Success      200  {object}  domain.GlobalMetrics
// @Failure      500  {object}  map[string]string
// @Router       /api/global-metrics [get]
func (h *Handler) GetGlobalMetrics(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-global-metrics")
	defer span.End()

	metrics, err := h.marketService.GetGlobalMetrics(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics)
}
