package store

import (
	"context"
	"errors"
	"time"

	"coinpulse/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

const (
	marketDataCollection = "market_data"
	newsCollection       = "news"
	sentimentCollection  = "sentiment"
	tradesCollection     = "trades"
)

// collection is the narrow slice of *mongo.Collection the gateway uses,
// so tests can fake it with mongo.NewSingleResultFromDocument and
// mongo.NewCursorFromDocuments.
type collection interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
	InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error)
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// Gateway wraps the four append-only collections. Every read is ordered by
// descending timestamp; every insert stamps the storage timestamp when the
// caller left it zero. No joins, no transactions.
type Gateway struct {
	marketData collection
	news       collection
	sentiment  collection
	trades     collection
	tracer     trace.Tracer
}

func NewGateway(db *mongo.Database, tracer trace.Tracer) *Gateway {
	return &Gateway{
		marketData: db.Collection(marketDataCollection),
		news:       db.Collection(newsCollection),
		sentiment:  db.Collection(sentimentCollection),
		trades:     db.Collection(tradesCollection),
		tracer:     tracer,
	}
}

func (g *Gateway) InsertMarketSnapshot(ctx context.Context, snap *domain.MarketSnapshot) error {
	ctx, span := g.tracer.Start(ctx, "store.insert-market-snapshot")
	defer span.End()

	if snap.Timestamp.IsZero() {
		snap.Timestamp = time.Now().UTC()
	}
	_, err := g.marketData.InsertOne(ctx, snap)
	return err
}

// LatestMarketSnapshot returns the most recently written snapshot, however
// old it is. Absence is a cache miss, not an error.
func (g *Gateway) LatestMarketSnapshot(ctx context.Context) (*domain.MarketSnapshot, error) {
	ctx, span := g.tracer.Start(ctx, "store.latest-market-snapshot")
	defer span.End()

	opts := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	var snap domain.MarketSnapshot
	if err := g.marketData.FindOne(ctx, bson.D{}, opts).Decode(&snap); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &snap, nil
}

// InsertNewsArticles writes a batch of articles. Each insert is independent;
// a failing document does not roll back its siblings.
func (g *Gateway) InsertNewsArticles(ctx context.Context, articles []domain.NewsArticle) error {
	if len(articles) == 0 {
		return nil
	}

	ctx, span := g.tracer.Start(ctx, "store.insert-news-articles")
	defer span.End()

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(articles))
	for i := range articles {
		if articles[i].StoredAt.IsZero() {
			articles[i].StoredAt = now
		}
		docs = append(docs, articles[i])
	}
	_, err := g.news.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	return err
}

func (g *Gateway) RecentNewsArticles(ctx context.Context, limit int) ([]domain.NewsArticle, error) {
	ctx, span := g.tracer.Start(ctx, "store.recent-news-articles")
	defer span.End()

	opts := options.Find().
		SetSort(bson.D{{Key: "published_at", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := g.news.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	var articles []domain.NewsArticle
	if err := cur.All(ctx, &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

func (g *Gateway) InsertSentimentRecord(ctx context.Context, rec *domain.SentimentRecord) error {
	ctx, span := g.tracer.Start(ctx, "store.insert-sentiment-record")
	defer span.End()

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	_, err := g.sentiment.InsertOne(ctx, rec)
	return err
}

func (g *Gateway) SentimentHistory(ctx context.Context, coin string, limit int) ([]domain.SentimentRecord, error) {
	ctx, span := g.tracer.Start(ctx, "store.sentiment-history")
	defer span.End()

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := g.sentiment.Find(ctx, bson.D{{Key: "coin", Value: coin}}, opts)
	if err != nil {
		return nil, err
	}
	var records []domain.SentimentRecord
	if err := cur.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (g *Gateway) InsertTradeRecord(ctx context.Context, rec *domain.TradeRecord) error {
	ctx, span := g.tracer.Start(ctx, "store.insert-trade-record")
	defer span.End()

	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	_, err := g.trades.InsertOne(ctx, rec)
	return err
}

// TradeHistory lists recorded trades, newest first. An empty userID returns
// trades for all users.
func (g *Gateway) TradeHistory(ctx context.Context, userID string, limit int) ([]domain.TradeRecord, error) {
	ctx, span := g.tracer.Start(ctx, "store.trade-history")
	defer span.End()

	filter := bson.D{}
	if userID != "" {
		filter = bson.D{{Key: "user_id", Value: userID}}
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := g.trades.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	var trades []domain.TradeRecord
	if err := cur.All(ctx, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}
