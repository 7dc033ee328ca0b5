package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelatedCoin ties a news article to a coin symbol.
type RelatedCoin struct {
	Symbol string `bson:"symbol" json:"symbol"`
	Name   string `bson:"name,omitempty" json:"name,omitempty"`
}

// NewsArticle is a single stored news item. Articles are written in batches
// and never updated; StoredAt is stamped by the store gateway.
type NewsArticle struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Title        string             `bson:"title" json:"title"`
	URL          string             `bson:"url" json:"url"`
	Description  string             `bson:"description" json:"description"`
	PublishedAt  time.Time          `bson:"published_at" json:"published_at"`
	Source       string             `bson:"source" json:"source"`
	RelatedCoins []RelatedCoin      `bson:"related_coins" json:"related_coins"`
	StoredAt     time.Time          `bson:"stored_at" json:"stored_at,omitempty"`
}
