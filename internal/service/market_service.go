package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"coinpulse/internal/domain"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

const (
	globalMetricsCacheKey = "global-metrics"
	globalMetricsCacheTTL = 90 * time.Second
)

type MarketProvider interface {
	FetchQuotes(ctx context.Context, symbols []string, limit int) (map[string]domain.CoinQuote, error)
	FetchGlobalMetrics(ctx context.Context) (*domain.GlobalMetrics, error)
}

type MarketStore interface {
	InsertMarketSnapshot(ctx context.Context, snap *domain.MarketSnapshot) error
	LatestMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error)
}

type RedisClient interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
}

// MarketService composes the read-through snapshot cache with the provider.
type MarketService struct {
	tracer   trace.Tracer
	provider MarketProvider
	store    MarketStore
	redis    RedisClient
}

func NewMarketService(tracer trace.Tracer, provider MarketProvider, store MarketStore, redisClient RedisClient) *MarketService {
	return &MarketService{
		tracer:   tracer,
		provider: provider,
		store:    store,
		redis:    redisClient,
	}
}

// GetMarketData returns the latest snapshot. With useCache, whatever was
// last written wins regardless of age; only an empty store reaches the
// provider. The fresh snapshot is persisted best-effort before returning.
func (s *MarketService) GetMarketData(ctx context.Context, symbols []string, limit int, useCache bool) (*domain.MarketSnapshot, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.get-market-data")
	defer span.End()

	if useCache {
		cached, err := s.store.LatestMarketSnapshot(ctx)
		if err != nil {
			log.Printf("market snapshot cache read error: %v", err)
		}
		if cached != nil {
			return cached, nil
		}
	}

	quotes, err := s.provider.FetchQuotes(ctx, symbols, limit)
	if err != nil {
		return nil, err
	}

	snap := &domain.MarketSnapshot{Data: quotes}
	if err := s.store.InsertMarketSnapshot(ctx, snap); err != nil {
		log.Printf("market snapshot persist error: %v", err)
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	return snap, nil
}

// GetGlobalMetrics fetches the global market overview, with a short Redis
// TTL in front of the provider. No Redis means every call passes through.
func (s *MarketService) GetGlobalMetrics(ctx context.Context) (*domain.GlobalMetrics, error) {
	ctx, span := s.tracer.Start(ctx, "market-service.get-global-metrics")
	defer span.End()

	if s.redis != nil {
		data, err := s.redis.Get(ctx, globalMetricsCacheKey).Bytes()
		if err == nil {
			var metrics domain.GlobalMetrics
			if err := json.Unmarshal(data, &metrics); err == nil {
				return &metrics, nil
			}
		} else if err != redis.Nil {
			log.Printf("global metrics cache read error: %v", err)
		}
	}

	metrics, err := s.provider.FetchGlobalMetrics(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(metrics); err == nil {
			if err := s.redis.Set(ctx, globalMetricsCacheKey, data, globalMetricsCacheTTL).Err(); err != nil {
				log.Printf("global metrics cache write error: %v", err)
			}
		}
	}
	return metrics, nil
}
