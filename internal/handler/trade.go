package handler

import (
	"net/http"
	"strconv"

	"coinpulse/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

type tradeRequest struct {
	UserID string  `json:"user_id" binding:"required"`
	Coin   string  `json:"coin" binding:"required"`
	Action string  `json:"action" binding:"required"`
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

// RecordTrade godoc
// @Summary      Record a trade
// @Description  Appends a buy or sell record for a user
// @Tags         trading
// @Accept       json
// @Produce      json
// @Param        request  body  tradeRequest  true  "Trade to record"
// @Success      200  {object}  domain.TradeRecord
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/trade [post]
func (h *Handler) RecordTrade(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.record-trade")
	defer span.End()

	var req tradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	action := domain.TradeAction(req.Action)
	if !action.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be buy or sell"})
		return
	}
	span.SetAttributes(attribute.String("action", req.Action))

	record, err := h.tradeService.RecordTrade(ctx, req.UserID, req.Coin, action, req.Amount, req.Price)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// GetTradeHistory godoc
// @Summary      Get trade history
// @Description  Lists recorded trades newest first, optionally filtered by user
// @Tags         trading
// @Produce      json
// @Param        user_id  query  string  false  "Filter by user id"
// @Param        limit    query  int     false  "Number of trades to return"  default(20)
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]string
// @Router       /api/trade-history [get]
func (h *Handler) GetTradeHistory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-trade-history")
	defer span.End()

	limit := 0
	if l := c.Query("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}

	trades, err := h.tradeService.History(ctx, c.Query("user_id"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trades": trades})
}
