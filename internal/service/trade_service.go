package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coinpulse/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTradeHistoryLimit caps trade-history reads when no limit is given.
const DefaultTradeHistoryLimit = 20

type TradeStore interface {
	InsertTradeRecord(ctx context.Context, rec *domain.TradeRecord) error
	TradeHistory(ctx context.Context, userID string, limit int) ([]domain.TradeRecord, error)
}

// TradeService records paper trades and lists their history.
type TradeService struct {
	tracer trace.Tracer
	store  TradeStore
}

func NewTradeService(tracer trace.Tracer, store TradeStore) *TradeService {
	return &TradeService{tracer: tracer, store: store}
}

func (s *TradeService) RecordTrade(ctx context.Context, userID, coin string, action domain.TradeAction, amount, price float64) (*domain.TradeRecord, error) {
	ctx, span := s.tracer.Start(ctx, "trade-service.record-trade")
	defer span.End()
	span.SetAttributes(attribute.String("action", string(action)))

	if !action.IsValid() {
		return nil, fmt.Errorf("invalid action %q: must be buy or sell", action)
	}

	rec := &domain.TradeRecord{
		UserID: userID,
		Coin:   strings.ToUpper(strings.TrimSpace(coin)),
		Action: action,
		Amount: amount,
		Price:  price,
	}
	if err := s.store.InsertTradeRecord(ctx, rec); err != nil {
		return nil, err
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	return rec, nil
}

// History lists trades newest first, optionally filtered by user.
func (s *TradeService) History(ctx context.Context, userID string, limit int) ([]domain.TradeRecord, error) {
	ctx, span := s.tracer.Start(ctx, "trade-service.history")
	defer span.End()

	if limit <= 0 {
		limit = DefaultTradeHistoryLimit
	}
	trades, err := s.store.TradeHistory(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	if trades == nil {
		trades = []domain.TradeRecord{}
	}
	return trades, nil
}
