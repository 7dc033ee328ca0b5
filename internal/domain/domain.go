package domain

// Sentiment labels produced by the scorer and by history backfill.
const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Fixed classification thresholds on the [-1, 1] sentiment score.
const (
	PositiveThreshold = 0.2
	NegativeThreshold = -0.2
)

// LabelForScore maps a sentiment score to its label. Every place that
// labels a score — fresh inference, history backfill, per-coin averages —
// goes through this so stored and computed labels can never disagree.
func LabelForScore(score float64) string {
	switch {
	case score > PositiveThreshold:
		return LabelPositive
	case score < NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

// DefaultSymbols is the coin list used when a request doesn't name any.
var DefaultSymbols = []string{"BTC", "ETH", "XRP", "LTC", "ADA"}

// DefaultNewsSentimentSymbols is the narrower default for news-driven
// sentiment aggregation.
var DefaultNewsSentimentSymbols = []string{"BTC", "ETH"}

type TradeAction string

const (
	ActionBuy  TradeAction = "buy"
	ActionSell TradeAction = "sell"
)

func (a TradeAction) IsValid() bool {
	return a == ActionBuy || a == ActionSell
}
