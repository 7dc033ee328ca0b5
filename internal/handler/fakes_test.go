package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coinpulse/internal/domain"
	"coinpulse/internal/sentiment"
	"coinpulse/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

type fakeMarketProvider struct {
	quotes     map[string]domain.CoinQuote
	quotesErr  error
	metrics    *domain.GlobalMetrics
	metricsErr error
	calls      int
}

func (f *fakeMarketProvider) FetchQuotes(ctx context.Context, symbols []string, limit int) (map[string]domain.CoinQuote, error) {
	f.calls++
	return f.quotes, f.quotesErr
}

func (f *fakeMarketProvider) FetchGlobalMetrics(ctx context.Context) (*domain.GlobalMetrics, error) {
	f.calls++
	return f.metrics, f.metricsErr
}

type fakeMarketStore struct {
	latest   *domain.MarketSnapshot
	inserted []*domain.MarketSnapshot
}

func (f *fakeMarketStore) InsertMarketSnapshot(ctx context.Context, snap *domain.MarketSnapshot) error {
	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	f.inserted = append(f.inserted, snap)
	return nil
}

func (f *fakeMarketStore) LatestMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	return f.latest, nil
}

type fakeNewsProvider struct {
	articles []domain.NewsArticle
	err      error
}

func (f *fakeNewsProvider) FetchNews(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	return f.articles, f.err
}

type fakeNewsStore struct {
	recent []domain.NewsArticle
}

func (f *fakeNewsStore) InsertNewsArticles(ctx context.Context, articles []domain.NewsArticle) error {
	return nil
}

func (f *fakeNewsStore) RecentNewsArticles(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	return f.recent, nil
}

type fakeSentimentStore struct {
	history  []domain.SentimentRecord
	inserted []*domain.SentimentRecord
}

func (f *fakeSentimentStore) InsertSentimentRecord(ctx context.Context, rec *domain.SentimentRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	f.inserted = append(f.inserted, rec)
	return nil
}

func (f *fakeSentimentStore) SentimentHistory(ctx context.Context, coin string, limit int) ([]domain.SentimentRecord, error) {
	return f.history, nil
}

type fakeTradeStore struct {
	trades   []domain.TradeRecord
	inserted []*domain.TradeRecord
}

func (f *fakeTradeStore) InsertTradeRecord(ctx context.Context, rec *domain.TradeRecord) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	f.inserted = append(f.inserted, rec)
	return nil
}

func (f *fakeTradeStore) TradeHistory(ctx context.Context, userID string, limit int) ([]domain.TradeRecord, error) {
	return f.trades, nil
}

type fakeScorer struct {
	score float64
	err   error
}

func (f *fakeScorer) Score(ctx context.Context, text string) (*sentiment.Result, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &sentiment.Result{Score: f.score, Label: domain.LabelForScore(f.score)}, nil
}

type handlerFixture struct {
	marketProvider *fakeMarketProvider
	marketStore    *fakeMarketStore
	newsProvider   *fakeNewsProvider
	newsStore      *fakeNewsStore
	sentimentStore *fakeSentimentStore
	tradeStore     *fakeTradeStore
	scorer         *fakeScorer
	router         *gin.Engine
}

func newFixture(t *testing.T, selfBaseURL string) *handlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &handlerFixture{
		marketProvider: &fakeMarketProvider{},
		marketStore:    &fakeMarketStore{},
		newsProvider:   &fakeNewsProvider{},
		newsStore:      &fakeNewsStore{},
		sentimentStore: &fakeSentimentStore{},
		tradeStore:     &fakeTradeStore{},
		scorer:         &fakeScorer{},
	}

	h := New(
		testTracer,
		service.NewMarketService(testTracer, f.marketProvider, f.marketStore, nil),
		service.NewNewsService(testTracer, f.newsProvider, f.newsStore),
		service.NewSentimentService(testTracer, f.scorer, f.sentimentStore, selfBaseURL),
		service.NewTradeService(testTracer, f.tradeStore),
	)

	f.router = gin.New()
	h.RegisterRoutes(f.router)
	return f
}

func (f *handlerFixture) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}
