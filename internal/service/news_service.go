package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"coinpulse/internal/domain"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// fetchOverhead is how many extra articles are requested upstream so that
// coin filtering still leaves enough to fill the limit.
const fetchOverhead = 10

type NewsProvider interface {
	FetchNews(ctx context.Context, limit int) ([]domain.NewsArticle, error)
}

type NewsStore interface {
	InsertNewsArticles(ctx context.Context, articles []domain.NewsArticle) error
	RecentNewsArticles(ctx context.Context, limit int) ([]domain.NewsArticle, error)
}

// NewsService serves cached articles, fetches fresh ones, and — when the
// provider fails — degrades to synthetic placeholder articles instead of
// surfacing the error. The fetch-or-simulate split is deliberate: the news
// surface stays up with flagged-quality data rather than going dark.
type NewsService struct {
	tracer   trace.Tracer
	provider NewsProvider
	store    NewsStore
	now      func() time.Time
}

func NewNewsService(tracer trace.Tracer, provider NewsProvider, store NewsStore) *NewsService {
	return &NewsService{
		tracer:   tracer,
		provider: provider,
		store:    store,
		now:      time.Now,
	}
}

// GetNews returns up to limit articles. Cached reads are filtered
// client-side by coin symbol substring; fresh fetches are filtered, cut to
// limit, and persisted best-effort.
func (s *NewsService) GetNews(ctx context.Context, coins []string, limit int, useCache bool) ([]domain.NewsArticle, error) {
	ctx, span := s.tracer.Start(ctx, "news-service.get-news")
	defer span.End()

	if useCache {
		cached, err := s.store.RecentNewsArticles(ctx, limit)
		if err != nil {
			log.Printf("news cache read error: %v", err)
		}
		if len(cached) > 0 {
			if len(coins) > 0 {
				return filterByCoins(cached, coins), nil
			}
			return cached, nil
		}
	}

	fetched, err := s.provider.FetchNews(ctx, limit+fetchOverhead)
	if err != nil {
		span.SetAttributes(attribute.Bool("news.simulated", true))
		log.Printf("news fetch failed, serving simulated articles: %v", err)
		simulated := s.simulateNews(coins, limit)
		if err := s.store.InsertNewsArticles(ctx, simulated); err != nil {
			log.Printf("news persist error: %v", err)
		}
		return simulated, nil
	}

	if len(coins) > 0 {
		fetched = filterByCoins(fetched, coins)
	}
	if len(fetched) > limit {
		fetched = fetched[:limit]
	}
	if err := s.store.InsertNewsArticles(ctx, fetched); err != nil {
		log.Printf("news persist error: %v", err)
	}
	return fetched, nil
}

// filterByCoins keeps articles mentioning any of the coin symbols in the
// title or description, or tagged with one of them. Matching is a plain
// case-sensitive substring check against upper-cased symbols.
func filterByCoins(articles []domain.NewsArticle, coins []string) []domain.NewsArticle {
	symbols := make([]string, 0, len(coins))
	for _, coin := range coins {
		symbols = append(symbols, strings.ToUpper(strings.TrimSpace(coin)))
	}

	filtered := make([]domain.NewsArticle, 0, len(articles))
	for _, article := range articles {
		for _, symbol := range symbols {
			if strings.Contains(article.Title, symbol) ||
				strings.Contains(article.Description, symbol) ||
				hasRelatedCoin(article, symbol) {
				filtered = append(filtered, article)
				break
			}
		}
	}
	return filtered
}

func hasRelatedCoin(article domain.NewsArticle, symbol string) bool {
	for _, related := range article.RelatedCoins {
		if related.Symbol == symbol {
			return true
		}
	}
	return false
}

// simulateNews produces exactly limit placeholder articles, round-robining
// through the requested coins with timestamps stepping back one hour per
// article.
func (s *NewsService) simulateNews(coins []string, limit int) []domain.NewsArticle {
	included := domain.DefaultSymbols
	if len(coins) > 0 {
		included = make([]string, 0, len(coins))
		for _, coin := range coins {
			included = append(included, strings.ToUpper(strings.TrimSpace(coin)))
		}
	}

	now := s.now().UTC()
	articles := make([]domain.NewsArticle, 0, limit)
	for i := 0; i < limit; i++ {
		coin := included[i%len(included)]
		articles = append(articles, domain.NewsArticle{
			Title:       fmt.Sprintf("%s Shows Promising Movement in Today's Trading", coin),
			URL:         fmt.Sprintf("https://example.com/crypto-news/%s-update", strings.ToLower(coin)),
			Description: fmt.Sprintf("The cryptocurrency %s has shown significant movement today with traders taking interest in its latest developments.", coin),
			PublishedAt: now.Add(-time.Duration(i) * time.Hour),
			Source:      "CryptoNewsSimulator",
			RelatedCoins: []domain.RelatedCoin{
				{Symbol: coin},
			},
		})
	}
	return articles
}
