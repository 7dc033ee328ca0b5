package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SentimentDistribution is the raw 3-way probability distribution a
// classifier backend produces for one text.
type SentimentDistribution struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
}

// SentimentRecord is one scored text for a coin. The label is never stored:
// it is recomputed from the score on every read via LabelForScore, so
// historical records written before labels existed come back labeled too.
type SentimentRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Coin      string             `bson:"coin" json:"coin"`
	Text      string             `bson:"text" json:"text"`
	Score     float64            `bson:"sentiment_score" json:"sentiment_score"`
	Label     string             `bson:"-" json:"sentiment_label"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}

// ScoredArticle is one news article with the sentiment attached to its
// title-plus-snippet text.
type ScoredArticle struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	Score       float64   `json:"sentiment_score"`
	Label       string    `json:"sentiment_label"`
}

// NewsSentiment is a per-coin aggregation over scored articles. Error is
// set instead of the aggregate fields when that coin's analysis failed;
// other coins in the same request are unaffected.
type NewsSentiment struct {
	Articles         []ScoredArticle `json:"articles"`
	AverageSentiment *float64        `json:"average_sentiment,omitempty"`
	OverallSentiment string          `json:"overall_sentiment,omitempty"`
	Error            string          `json:"error,omitempty"`
}

// TradeRecord is one recorded buy or sell.
type TradeRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID    string             `bson:"user_id" json:"user_id"`
	Coin      string             `bson:"coin" json:"coin"`
	Action    TradeAction        `bson:"action" json:"action"`
	Amount    float64            `bson:"amount" json:"amount"`
	Price     float64            `bson:"price" json:"price"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
