package service

import (
	"context"
	"errors"
	"testing"

	"coinpulse/internal/domain"
)

func TestRecordTrade(t *testing.T) {
	t.Parallel()

	store := &mockTradeStore{}
	svc := NewTradeService(testTracer, store)

	rec, err := svc.RecordTrade(context.Background(), "user-1", "btc", domain.ActionBuy, 0.5, 97000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Coin != "BTC" || rec.Action != domain.ActionBuy || rec.Amount != 0.5 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Timestamp.IsZero() {
		t.Fatal("expected stamped timestamp")
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected a persisted trade, got %d", len(store.inserted))
	}
}

func TestRecordTradeInvalidAction(t *testing.T) {
	t.Parallel()

	svc := NewTradeService(testTracer, &mockTradeStore{})
	if _, err := svc.RecordTrade(context.Background(), "user-1", "BTC", "hold", 1, 1); err == nil {
		t.Fatal("expected error for invalid action")
	}
}

func TestRecordTradePersistError(t *testing.T) {
	t.Parallel()

	svc := NewTradeService(testTracer, &mockTradeStore{insertErr: errors.New("down")})
	if _, err := svc.RecordTrade(context.Background(), "user-1", "BTC", domain.ActionSell, 1, 1); err == nil {
		t.Fatal("expected persist error to propagate")
	}
}

func TestTradeHistoryDefaults(t *testing.T) {
	t.Parallel()

	store := &mockTradeStore{trades: []domain.TradeRecord{{UserID: "u1", Coin: "BTC"}}}
	svc := NewTradeService(testTracer, store)

	trades, err := svc.History(context.Background(), "u1", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.lastLimit != DefaultTradeHistoryLimit {
		t.Fatalf("expected default limit %d, got %d", DefaultTradeHistoryLimit, store.lastLimit)
	}
	if store.lastUserID != "u1" {
		t.Fatalf("expected user filter to pass through, got %q", store.lastUserID)
	}
	if len(trades) != 1 {
		t.Fatalf("unexpected trades: %+v", trades)
	}
}

func TestTradeHistoryEmptyIsNotAnError(t *testing.T) {
	t.Parallel()

	svc := NewTradeService(testTracer, &mockTradeStore{})
	trades, err := svc.History(context.Background(), "", 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if trades == nil || len(trades) != 0 {
		t.Fatalf("expected empty slice, got %#v", trades)
	}
}
