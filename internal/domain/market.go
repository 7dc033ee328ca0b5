package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CoinQuote is the reshaped USD quote for a single coin inside a snapshot.
type CoinQuote struct {
	Name             string  `bson:"name" json:"name"`
	Symbol           string  `bson:"symbol" json:"symbol"`
	Price            float64 `bson:"price" json:"price"`
	PercentChange1h  float64 `bson:"percent_change_1h" json:"percent_change_1h"`
	PercentChange24h float64 `bson:"percent_change_24h" json:"percent_change_24h"`
	PercentChange7d  float64 `bson:"percent_change_7d" json:"percent_change_7d"`
	MarketCap        float64 `bson:"market_cap" json:"market_cap"`
	Volume24h        float64 `bson:"volume_24h" json:"volume_24h"`
}

// MarketSnapshot is a point-in-time market-data document covering multiple
// symbols. Snapshots are append-only; the newest one is the cache.
type MarketSnapshot struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"-"`
	Data      map[string]CoinQuote `bson:"data" json:"data"`
	Timestamp time.Time            `bson:"timestamp" json:"timestamp"`
}

// GlobalMetrics is the reshaped global market overview. LastUpdated is
// passed through as the provider reports it.
type GlobalMetrics struct {
	TotalMarketCap         float64 `json:"total_market_cap"`
	TotalVolume24h         float64 `json:"total_volume_24h"`
	BTCDominance           float64 `json:"btc_dominance"`
	ETHDominance           float64 `json:"eth_dominance"`
	ActiveCryptocurrencies int     `json:"active_cryptocurrencies"`
	LastUpdated            string  `json:"last_updated"`
}
