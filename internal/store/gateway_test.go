package store

import (
	"context"
	"testing"
	"time"

	"coinpulse/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("test")

type fakeCollection struct {
	insertedOne     []interface{}
	insertedMany    []interface{}
	insertOneErr    error
	findOneResult   *mongo.SingleResult
	findDocs        []interface{}
	findErr         error
	lastFilter      interface{}
	lastFindOpts    []*options.FindOptions
	lastFindOneOpts []*options.FindOneOptions
}

func (f *fakeCollection) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error) {
	if f.insertOneErr != nil {
		return nil, f.insertOneErr
	}
	f.insertedOne = append(f.insertedOne, document)
	return &mongo.InsertOneResult{}, nil
}

func (f *fakeCollection) InsertMany(ctx context.Context, documents []interface{}, opts ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	f.insertedMany = append(f.insertedMany, documents...)
	return &mongo.InsertManyResult{}, nil
}

func (f *fakeCollection) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) *mongo.SingleResult {
	f.lastFilter = filter
	f.lastFindOneOpts = opts
	return f.findOneResult
}

func (f *fakeCollection) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error) {
	f.lastFilter = filter
	f.lastFindOpts = opts
	if f.findErr != nil {
		return nil, f.findErr
	}
	return mongo.NewCursorFromDocuments(f.findDocs, nil, nil)
}

func TestGatewayInsertMarketSnapshotStampsTimestamp(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{}
	g := &Gateway{marketData: coll, tracer: testTracer}

	snap := &domain.MarketSnapshot{Data: map[string]domain.CoinQuote{"BTC": {Symbol: "BTC", Price: 97000}}}
	if err := g.InsertMarketSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be stamped")
	}
	if len(coll.insertedOne) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(coll.insertedOne))
	}
}

func TestGatewayInsertMarketSnapshotKeepsCallerTimestamp(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{}
	g := &Gateway{marketData: coll, tracer: testTracer}

	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	snap := &domain.MarketSnapshot{Timestamp: ts}
	if err := g.InsertMarketSnapshot(context.Background(), snap); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.Timestamp.Equal(ts) {
		t.Fatalf("expected caller timestamp to survive, got %v", snap.Timestamp)
	}
}

func TestGatewayLatestMarketSnapshot(t *testing.T) {
	t.Parallel()

	stored := domain.MarketSnapshot{
		Data:      map[string]domain.CoinQuote{"ETH": {Symbol: "ETH", Price: 3200}},
		Timestamp: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	coll := &fakeCollection{findOneResult: mongo.NewSingleResultFromDocument(stored, nil, nil)}
	g := &Gateway{marketData: coll, tracer: testTracer}

	snap, err := g.LatestMarketSnapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snap == nil || snap.Data["ETH"].Price != 3200 {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	if len(coll.lastFindOneOpts) == 0 || coll.lastFindOneOpts[0].Sort == nil {
		t.Fatal("expected a descending-timestamp sort option")
	}
}

func TestGatewayLatestMarketSnapshotMiss(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{findOneResult: mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)}
	g := &Gateway{marketData: coll, tracer: testTracer}

	snap, err := g.LatestMarketSnapshot(context.Background())
	if err != nil {
		t.Fatalf("a miss must not be an error, got %v", err)
	}
	if snap != nil {
		t.Fatalf("expected nil snapshot on miss, got %+v", snap)
	}
}

func TestGatewayInsertNewsArticlesStampsStoredAt(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{}
	g := &Gateway{news: coll, tracer: testTracer}

	articles := []domain.NewsArticle{
		{Title: "one"},
		{Title: "two", StoredAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
	if err := g.InsertNewsArticles(context.Background(), articles); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coll.insertedMany) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(coll.insertedMany))
	}
	first := coll.insertedMany[0].(domain.NewsArticle)
	if first.StoredAt.IsZero() {
		t.Fatal("expected stored_at to be stamped")
	}
	second := coll.insertedMany[1].(domain.NewsArticle)
	if second.StoredAt.Year() != 2025 || second.StoredAt.Month() != 1 {
		t.Fatalf("expected caller stored_at to survive, got %v", second.StoredAt)
	}
}

func TestGatewayInsertNewsArticlesEmptyBatch(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{}
	g := &Gateway{news: coll, tracer: testTracer}
	if err := g.InsertNewsArticles(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coll.insertedMany) != 0 {
		t.Fatal("expected no insert for empty batch")
	}
}

func TestGatewayRecentNewsArticles(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{findDocs: []interface{}{
		domain.NewsArticle{Title: "newest"},
		domain.NewsArticle{Title: "older"},
	}}
	g := &Gateway{news: coll, tracer: testTracer}

	articles, err := g.RecentNewsArticles(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(articles) != 2 || articles[0].Title != "newest" {
		t.Fatalf("unexpected articles: %+v", articles)
	}
	if len(coll.lastFindOpts) == 0 || coll.lastFindOpts[0].Limit == nil || *coll.lastFindOpts[0].Limit != 10 {
		t.Fatal("expected limit option to be applied")
	}
}

func TestGatewaySentimentHistoryFiltersByCoin(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{findDocs: []interface{}{
		domain.SentimentRecord{Coin: "BTC", Score: 0.5},
	}}
	g := &Gateway{sentiment: coll, tracer: testTracer}

	records, err := g.SentimentHistory(context.Background(), "BTC", 70)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Score != 0.5 {
		t.Fatalf("unexpected records: %+v", records)
	}
	filter, ok := coll.lastFilter.(bson.D)
	if !ok || len(filter) != 1 || filter[0].Key != "coin" || filter[0].Value != "BTC" {
		t.Fatalf("unexpected filter: %+v", coll.lastFilter)
	}
}

func TestGatewayTradeHistoryFilter(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{findDocs: []interface{}{
		domain.TradeRecord{UserID: "u1", Coin: "BTC", Action: domain.ActionBuy},
	}}
	g := &Gateway{trades: coll, tracer: testTracer}

	if _, err := g.TradeHistory(context.Background(), "", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filter := coll.lastFilter.(bson.D); len(filter) != 0 {
		t.Fatalf("expected empty filter without user id, got %+v", filter)
	}

	if _, err := g.TradeHistory(context.Background(), "u1", 20); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	filter := coll.lastFilter.(bson.D)
	if len(filter) != 1 || filter[0].Key != "user_id" || filter[0].Value != "u1" {
		t.Fatalf("unexpected filter: %+v", coll.lastFilter)
	}
}

func TestGatewayInsertSentimentRecordStampsTimestamp(t *testing.T) {
	t.Parallel()

	coll := &fakeCollection{}
	g := &Gateway{sentiment: coll, tracer: testTracer}

	rec := &domain.SentimentRecord{Coin: "BTC", Text: "up only", Score: 0.8}
	if err := g.InsertSentimentRecord(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be stamped")
	}
}
