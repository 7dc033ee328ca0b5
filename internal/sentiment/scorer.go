package sentiment

import (
	"context"
	"errors"
	"math"
	"strings"

	"coinpulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// maxInputTokens caps how much of a text reaches the classifier, mirroring
// the model's 512-token input window.
const maxInputTokens = 512

// Classifier produces a raw 3-way distribution for a text. Implementations
// may return probabilities or logits; the scorer normalizes either.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.SentimentDistribution, error)
}

// Result is one scored text: the scalar in [-1, 1], its label, and the
// normalized distribution it was computed from.
type Result struct {
	Score        float64
	Label        string
	Distribution domain.SentimentDistribution
}

// Scorer turns classifier output into the scalar score the rest of the
// system stores and labels. Constructed once at startup and shared; it
// holds no per-call state.
type Scorer struct {
	classifier Classifier
	tracer     trace.Tracer
}

func NewScorer(classifier Classifier, tracer trace.Tracer) *Scorer {
	return &Scorer{classifier: classifier, tracer: tracer}
}

func (s *Scorer) Score(ctx context.Context, text string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "sentiment.score")
	defer span.End()

	dist, err := s.classifier.Classify(ctx, truncateTokens(text, maxInputTokens))
	if err != nil {
		return nil, err
	}

	dist, err = normalize(dist)
	if err != nil {
		return nil, err
	}

	score := clamp(dist.Positive-dist.Negative, -1, 1)
	return &Result{
		Score:        score,
		Label:        domain.LabelForScore(score),
		Distribution: dist,
	}, nil
}

// truncateTokens keeps at most max whitespace-separated tokens.
func truncateTokens(text string, max int) string {
	fields := strings.Fields(text)
	if len(fields) <= max {
		return strings.TrimSpace(text)
	}
	return strings.Join(fields[:max], " ")
}

// normalize turns the backend's three values into a probability
// distribution: softmax when they look like logits, plain renormalization
// when they are already probabilities that drift off a unit sum.
func normalize(dist domain.SentimentDistribution) (domain.SentimentDistribution, error) {
	values := [3]float64{dist.Negative, dist.Neutral, dist.Positive}

	probabilities := true
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return domain.SentimentDistribution{}, errors.New("classifier returned a non-finite value")
		}
		if v < 0 || v > 1 {
			probabilities = false
		}
	}

	if !probabilities {
		maxV := math.Max(values[0], math.Max(values[1], values[2]))
		sum := 0.0
		for i, v := range values {
			values[i] = math.Exp(v - maxV)
			sum += values[i]
		}
		return domain.SentimentDistribution{
			Negative: values[0] / sum,
			Neutral:  values[1] / sum,
			Positive: values[2] / sum,
		}, nil
	}

	sum := values[0] + values[1] + values[2]
	if sum <= 0 {
		return domain.SentimentDistribution{}, errors.New("classifier returned an empty distribution")
	}
	return domain.SentimentDistribution{
		Negative: values[0] / sum,
		Neutral:  values[1] / sum,
		Positive: values[2] / sum,
	}, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
