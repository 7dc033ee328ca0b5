package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"coinpulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// DefaultInferenceBaseURL is the hosted inference endpoint used when no
// SENTIMENT_API_URL is configured.
const DefaultInferenceBaseURL = "https://api-inference.huggingface.co"

// RemoteClassifier runs the forward pass on a HuggingFace-style inference
// server. The model is identified by name and loaded server-side; this
// process never holds weights.
type RemoteClassifier struct {
	client  *http.Client
	baseURL string
	model   string
	apiKey  string
	tracer  trace.Tracer
}

func NewRemoteClassifier(baseURL, model, apiKey string, tracer trace.Tracer) *RemoteClassifier {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultInferenceBaseURL
	}
	return &RemoteClassifier{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		apiKey:  apiKey,
		tracer:  tracer,
	}
}

func (c *RemoteClassifier) Classify(ctx context.Context, text string) (domain.SentimentDistribution, error) {
	ctx, span := c.tracer.Start(ctx, "sentiment.remote-classify")
	defer span.End()

	payload, err := json.Marshal(map[string]string{"inputs": text})
	if err != nil {
		return domain.SentimentDistribution{}, err
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return domain.SentimentDistribution{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.SentimentDistribution{}, fmt.Errorf("sentiment inference: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.SentimentDistribution{}, fmt.Errorf("sentiment inference: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.SentimentDistribution{}, fmt.Errorf("sentiment inference: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return parseInferenceBody(body)
}

type labelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// parseInferenceBody accepts both shapes the inference API serves:
// [[{label, score}, ...]] for a single input, or the flat [{label, score}].
func parseInferenceBody(body []byte) (domain.SentimentDistribution, error) {
	var nested [][]labelScore
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return distributionFromRows(nested[0])
	}

	var flat []labelScore
	if err := json.Unmarshal(body, &flat); err == nil && len(flat) > 0 {
		return distributionFromRows(flat)
	}

	return domain.SentimentDistribution{}, fmt.Errorf("unrecognized inference response: %s", strings.TrimSpace(string(body)))
}

func distributionFromRows(rows []labelScore) (domain.SentimentDistribution, error) {
	var dist domain.SentimentDistribution
	matched := 0
	for _, row := range rows {
		switch strings.ToLower(row.Label) {
		case domain.LabelNegative:
			dist.Negative = row.Score
			matched++
		case domain.LabelNeutral:
			dist.Neutral = row.Score
			matched++
		case domain.LabelPositive:
			dist.Positive = row.Score
			matched++
		}
	}
	if matched == 0 {
		return domain.SentimentDistribution{}, fmt.Errorf("inference response carried no known sentiment labels")
	}
	return dist, nil
}
