package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"coinpulse/internal/domain"
	"coinpulse/internal/sentiment"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// historyPerDay approximates records per day when converting a
	// days-of-history request into a read limit.
	historyPerDay = 10

	// descriptionSnippetChars caps how much of an article description is
	// scored alongside its title.
	descriptionSnippetChars = 100

	loopbackTimeout = 10 * time.Second
)

type SentimentStore interface {
	InsertSentimentRecord(ctx context.Context, rec *domain.SentimentRecord) error
	SentimentHistory(ctx context.Context, coin string, limit int) ([]domain.SentimentRecord, error)
}

type TextScorer interface {
	Score(ctx context.Context, text string) (*sentiment.Result, error)
}

// SentimentService scores texts, serves per-coin history, and aggregates
// news sentiment. News articles are fetched through the service's own HTTP
// surface over loopback, so the news path's cache and fallback behavior
// apply unchanged.
type SentimentService struct {
	tracer      trace.Tracer
	scorer      TextScorer
	store       SentimentStore
	selfBaseURL string
	loopback    *http.Client
}

func NewSentimentService(tracer trace.Tracer, scorer TextScorer, store SentimentStore, selfBaseURL string) *SentimentService {
	return &SentimentService{
		tracer:      tracer,
		scorer:      scorer,
		store:       store,
		selfBaseURL: strings.TrimRight(selfBaseURL, "/"),
		loopback:    &http.Client{Timeout: loopbackTimeout},
	}
}

// AnalyzeText scores one text for a coin and persists the record. The
// returned record carries the store-stamped timestamp.
func (s *SentimentService) AnalyzeText(ctx context.Context, coin, text string) (*domain.SentimentRecord, error) {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.analyze-text")
	defer span.End()

	coin = strings.ToUpper(strings.TrimSpace(coin))
	span.SetAttributes(attribute.String("coin", coin))

	res, err := s.scorer.Score(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("error analyzing sentiment: %w", err)
	}

	rec := &domain.SentimentRecord{
		Coin:  coin,
		Text:  text,
		Score: res.Score,
		Label: res.Label,
	}
	if err := s.store.InsertSentimentRecord(ctx, rec); err != nil {
		return nil, fmt.Errorf("error analyzing sentiment: %w", err)
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	return rec, nil
}

// History returns recent sentiment records for a coin, newest first, with
// labels recomputed from the stored scores.
func (s *SentimentService) History(ctx context.Context, coin string, days int) ([]domain.SentimentRecord, error) {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.history")
	defer span.End()

	coin = strings.ToUpper(strings.TrimSpace(coin))
	records, err := s.store.SentimentHistory(ctx, coin, days*historyPerDay)
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Label = domain.LabelForScore(records[i].Score)
	}
	if records == nil {
		records = []domain.SentimentRecord{}
	}
	return records, nil
}

// AnalyzeNews scores recent news per coin and aggregates an arithmetic
// mean. A coin whose pipeline fails gets an error entry; the rest of the
// request still succeeds.
func (s *SentimentService) AnalyzeNews(ctx context.Context, coins []string, limit int) map[string]domain.NewsSentiment {
	ctx, span := s.tracer.Start(ctx, "sentiment-service.analyze-news")
	defer span.End()

	results := make(map[string]domain.NewsSentiment, len(coins))
	for _, coin := range coins {
		coin = strings.ToUpper(strings.TrimSpace(coin))
		result, err := s.analyzeCoinNews(ctx, coin, limit)
		if err != nil {
			results[coin] = domain.NewsSentiment{
				Error:    fmt.Sprintf("failed to analyze news sentiment: %v", err),
				Articles: []domain.ScoredArticle{},
			}
			continue
		}
		results[coin] = *result
	}
	return results
}

func (s *SentimentService) analyzeCoinNews(ctx context.Context, coin string, limit int) (*domain.NewsSentiment, error) {
	articles, err := s.fetchCoinNews(ctx, coin, limit)
	if err != nil {
		return nil, err
	}

	scored := make([]domain.ScoredArticle, 0, len(articles))
	var total float64
	for _, article := range articles {
		text := article.Title + ". " + snippet(article.Description, descriptionSnippetChars)

		res, err := s.scorer.Score(ctx, text)
		if err != nil {
			return nil, err
		}
		rec := &domain.SentimentRecord{
			Coin:  coin,
			Text:  text,
			Score: res.Score,
			Label: res.Label,
		}
		if err := s.store.InsertSentimentRecord(ctx, rec); err != nil {
			return nil, err
		}

		scored = append(scored, domain.ScoredArticle{
			Title:       article.Title,
			URL:         article.URL,
			PublishedAt: article.PublishedAt,
			Score:       res.Score,
			Label:       res.Label,
		})
		total += res.Score
	}

	avg := 0.0
	if len(scored) > 0 {
		avg = total / float64(len(scored))
	}
	return &domain.NewsSentiment{
		Articles:         scored,
		AverageSentiment: &avg,
		OverallSentiment: domain.LabelForScore(avg),
	}, nil
}

// fetchCoinNews calls the crypto-news endpoint over loopback with a fixed
// 10s timeout.
func (s *SentimentService) fetchCoinNews(ctx context.Context, coin string, limit int) ([]domain.NewsArticle, error) {
	reqURL := fmt.Sprintf("%s/api/crypto-news?coins=%s&limit=%d", s.selfBaseURL, url.QueryEscape(coin), limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.loopback.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news endpoint status %d", resp.StatusCode)
	}

	var payload struct {
		News []domain.NewsArticle `json:"news"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	return payload.News, nil
}

func snippet(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
