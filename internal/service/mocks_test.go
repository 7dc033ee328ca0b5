package service

import (
	"context"
	"encoding/json"
	"time"

	"coinpulse/internal/domain"
	"coinpulse/internal/sentiment"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

type mockMarketProvider struct {
	quotes            map[string]domain.CoinQuote
	quotesErr         error
	metrics           *domain.GlobalMetrics
	metricsErr        error
	fetchQuotesCalls  int
	fetchMetricsCalls int
	lastSymbols       []string
}

func (m *mockMarketProvider) FetchQuotes(ctx context.Context, symbols []string, limit int) (map[string]domain.CoinQuote, error) {
	m.fetchQuotesCalls++
	m.lastSymbols = symbols
	if m.quotesErr != nil {
		return nil, m.quotesErr
	}
	return m.quotes, nil
}

func (m *mockMarketProvider) FetchGlobalMetrics(ctx context.Context) (*domain.GlobalMetrics, error) {
	m.fetchMetricsCalls++
	if m.metricsErr != nil {
		return nil, m.metricsErr
	}
	return m.metrics, nil
}

type mockMarketStore struct {
	latest    *domain.MarketSnapshot
	latestErr error
	inserted  []*domain.MarketSnapshot
	insertErr error
}

func (m *mockMarketStore) InsertMarketSnapshot(ctx context.Context, snap *domain.MarketSnapshot) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	m.inserted = append(m.inserted, snap)
	return nil
}

func (m *mockMarketStore) LatestMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	return m.latest, m.latestErr
}

type mockNewsProvider struct {
	articles  []domain.NewsArticle
	err       error
	calls     int
	lastLimit int
}

func (m *mockNewsProvider) FetchNews(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	m.calls++
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.articles, nil
}

type mockNewsStore struct {
	recent    []domain.NewsArticle
	recentErr error
	inserted  [][]domain.NewsArticle
	insertErr error
}

func (m *mockNewsStore) InsertNewsArticles(ctx context.Context, articles []domain.NewsArticle) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.inserted = append(m.inserted, articles)
	return nil
}

func (m *mockNewsStore) RecentNewsArticles(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	if m.recentErr != nil {
		return nil, m.recentErr
	}
	if len(m.recent) > limit {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

type mockSentimentStore struct {
	history    []domain.SentimentRecord
	historyErr error
	inserted   []*domain.SentimentRecord
	insertErr  error
	lastCoin   string
	lastLimit  int
}

func (m *mockSentimentStore) InsertSentimentRecord(ctx context.Context, rec *domain.SentimentRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	m.inserted = append(m.inserted, rec)
	return nil
}

func (m *mockSentimentStore) SentimentHistory(ctx context.Context, coin string, limit int) ([]domain.SentimentRecord, error) {
	m.lastCoin = coin
	m.lastLimit = limit
	return m.history, m.historyErr
}

type mockTradeStore struct {
	trades     []domain.TradeRecord
	historyErr error
	inserted   []*domain.TradeRecord
	insertErr  error
	lastUserID string
	lastLimit  int
}

func (m *mockTradeStore) InsertTradeRecord(ctx context.Context, rec *domain.TradeRecord) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	m.inserted = append(m.inserted, rec)
	return nil
}

func (m *mockTradeStore) TradeHistory(ctx context.Context, userID string, limit int) ([]domain.TradeRecord, error) {
	m.lastUserID = userID
	m.lastLimit = limit
	return m.trades, m.historyErr
}

type stubScorer struct {
	score float64
	err   error
	calls int
	texts []string
}

func (s *stubScorer) Score(ctx context.Context, text string) (*sentiment.Result, error) {
	s.calls++
	s.texts = append(s.texts, text)
	if s.err != nil {
		return nil, s.err
	}
	return &sentiment.Result{Score: s.score, Label: domain.LabelForScore(s.score)}, nil
}

type fakeRedis struct {
	data   map[string][]byte
	setErr error
	getErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: make(map[string][]byte)}
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.setErr != nil {
		return redis.NewStatusResult("", f.setErr)
	}
	switch v := value.(type) {
	case []byte:
		f.data[key] = append([]byte(nil), v...)
	case string:
		f.data[key] = []byte(v)
	default:
		bytes, _ := json.Marshal(v)
		f.data[key] = bytes
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.getErr != nil {
		return redis.NewStringResult("", f.getErr)
	}
	if v, ok := f.data[key]; ok {
		return redis.NewStringResult(string(v), nil)
	}
	return redis.NewStringResult("", redis.Nil)
}
