package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"coinpulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const coinMarketCapBaseURL = "https://pro-api.coinmarketcap.com/v1"

// CoinMarketCap fetches quotes, global metrics, and news from the
// CoinMarketCap Pro API. The API key is attached as a static header on
// every request; there is no retry or backoff.
type CoinMarketCap struct {
	client  *http.Client
	baseURL string
	apiKey  string
	tracer  trace.Tracer
}

func NewCoinMarketCap(apiKey string, tracer trace.Tracer) *CoinMarketCap {
	return &CoinMarketCap{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: coinMarketCapBaseURL,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

// FetchQuotes fetches current USD quotes for the given symbols and reshapes
// them into the snapshot model.
func (p *CoinMarketCap) FetchQuotes(ctx context.Context, symbols []string, limit int) (map[string]domain.CoinQuote, error) {
	ctx, span := p.tracer.Start(ctx, "coinmarketcap.fetch-quotes")
	defer span.End()

	params := url.Values{}
	params.Set("symbol", strings.Join(symbols, ","))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("convert", "USD")

	body, err := p.doRequest(ctx, "cryptocurrency/quotes/latest", params)
	if err != nil {
		return nil, err
	}

	var raw quotesResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse quotes: %w", err)
	}
	if raw.Data == nil {
		return nil, &MissingFieldError{Endpoint: "cryptocurrency/quotes/latest", Field: "data"}
	}

	result := make(map[string]domain.CoinQuote, len(raw.Data))
	for symbol, coin := range raw.Data {
		usd := coin.Quote.USD
		if usd == nil {
			return nil, &MissingFieldError{Endpoint: "cryptocurrency/quotes/latest", Field: "data." + symbol + ".quote.USD"}
		}
		result[symbol] = domain.CoinQuote{
			Name:             coin.Name,
			Symbol:           coin.Symbol,
			Price:            usd.Price,
			PercentChange1h:  usd.PercentChange1h,
			PercentChange24h: usd.PercentChange24h,
			PercentChange7d:  usd.PercentChange7d,
			MarketCap:        usd.MarketCap,
			Volume24h:        usd.Volume24h,
		}
	}
	return result, nil
}

// FetchGlobalMetrics fetches the global market overview.
func (p *CoinMarketCap) FetchGlobalMetrics(ctx context.Context) (*domain.GlobalMetrics, error) {
	ctx, span := p.tracer.Start(ctx, "coinmarketcap.fetch-global-metrics")
	defer span.End()

	body, err := p.doRequest(ctx, "global-metrics/quotes/latest", nil)
	if err != nil {
		return nil, err
	}

	var raw globalMetricsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse global metrics: %w", err)
	}
	if raw.Data == nil {
		return nil, &MissingFieldError{Endpoint: "global-metrics/quotes/latest", Field: "data"}
	}
	if raw.Data.Quote.USD == nil {
		return nil, &MissingFieldError{Endpoint: "global-metrics/quotes/latest", Field: "data.quote.USD"}
	}

	return &domain.GlobalMetrics{
		TotalMarketCap:         raw.Data.Quote.USD.TotalMarketCap,
		TotalVolume24h:         raw.Data.Quote.USD.TotalVolume24h,
		BTCDominance:           raw.Data.BTCDominance,
		ETHDominance:           raw.Data.ETHDominance,
		ActiveCryptocurrencies: raw.Data.ActiveCryptocurrencies,
		LastUpdated:            raw.Data.LastUpdated,
	}, nil
}

// FetchNews fetches latest crypto news articles. Timestamps the provider
// can't produce in a parseable form come back zero rather than failing the
// whole batch.
func (p *CoinMarketCap) FetchNews(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	ctx, span := p.tracer.Start(ctx, "coinmarketcap.fetch-news")
	defer span.End()

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	body, err := p.doRequest(ctx, "cryptocurrency/news", params)
	if err != nil {
		return nil, err
	}

	var raw newsResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("parse news: %w", err)
	}
	if raw.Data == nil {
		return nil, &MissingFieldError{Endpoint: "cryptocurrency/news", Field: "data"}
	}

	articles := make([]domain.NewsArticle, 0, len(raw.Data))
	for _, item := range raw.Data {
		article := domain.NewsArticle{
			Title:       item.Title,
			URL:         item.URL,
			Description: item.Description,
			Source:      item.Source,
		}
		if item.PublishedAt != "" {
			if ts, err := time.Parse(time.RFC3339, item.PublishedAt); err == nil {
				article.PublishedAt = ts.UTC()
			}
		}
		for _, coin := range item.Coins {
			article.RelatedCoins = append(article.RelatedCoins, domain.RelatedCoin{
				Symbol: coin.Symbol,
				Name:   coin.Name,
			})
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (p *CoinMarketCap) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	reqURL := p.baseURL + "/" + endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	req.Header.Set("X-CMC_PRO_API_KEY", p.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &FetchError{
			Endpoint: endpoint,
			Err:      fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	return body, nil
}
