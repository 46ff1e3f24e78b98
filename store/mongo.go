package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Closer
	Pinger
	UserStore
	IssueStore
	TaskStore
	RoadStore
	IntersectionStore
	PlanStore
	PlanningStore
	PropertyStore
	ReportStore
	Summarizer
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping(ctx context.Context) error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// Ping - ping mongo db
func (m mongoDB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

func (m mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// NewMongoStore - return mongo db operations
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

// findPage applies the pagination window and sort to a find query and
// returns the total count of the matching documents along with the page.
func findPage(ctx context.Context, c *mongo.Collection, query interface{}, page pager, sort interface{}, results interface{}) (int64, error) {
	total, err := c.CountDocuments(ctx, query)
	if err != nil {
		return 0, err
	}

	opts := options.Find().
		SetSort(sort).
		SetSkip(page.Skip()).
		SetLimit(page.Normalize().Limit)

	cursor, err := c.Find(ctx, query, opts)
	if err != nil {
		return 0, err
	}

	if err := cursor.All(ctx, results); err != nil {
		return 0, err
	}

	return total, nil
}

// deleteByID removes one document and reports notFound when nothing matched
func deleteByID(ctx context.Context, c *mongo.Collection, id interface{}, notFound error) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return notFound
	}
	return nil
}
