package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, indexes ...mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateMany(m.ctx, indexes)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexUserCollection())
	panicIfError(m.IndexIssueCollection())
	panicIfError(m.IndexTaskCollection())
	panicIfError(m.IndexRoadCollection())
	panicIfError(m.IndexIntersectionCollection())
	panicIfError(m.IndexIntersectionAnalysisCollection())
	panicIfError(m.IndexDecongestionPlanCollection())
	panicIfError(m.IndexPlanningCollections())
	panicIfError(m.IndexPropertyCollections())
	panicIfError(m.IndexReportCollection())
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	return m.createIndex(UserCollection,
		mongo.IndexModel{
			Keys:    bson.M{"email": 1},
			Options: options.Index().SetUnique(true),
		},
		mongo.IndexModel{
			Keys: bson.M{"role": 1},
		},
	)
}

func (m *MongoDBIndexer) IndexIssueCollection() error {
	return m.createIndex(IssueCollection,
		mongo.IndexModel{
			Keys: bson.M{"location": "2dsphere"},
		},
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "created_at", Value: -1},
			},
		},
		mongo.IndexModel{
			Keys: bson.M{"road_id": 1},
		},
	)
}

func (m *MongoDBIndexer) IndexTaskCollection() error {
	return m.createIndex(TaskCollection,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "assigned_to", Value: 1},
				{Key: "status", Value: 1},
			},
		},
		mongo.IndexModel{
			Keys: bson.M{"issue_id": 1},
		},
		mongo.IndexModel{
			Keys: bson.M{"created_at": -1},
		},
	)
}

func (m *MongoDBIndexer) IndexRoadCollection() error {
	return m.createIndex(RoadCollection,
		mongo.IndexModel{
			Keys: bson.M{"geometry": "2dsphere"},
		},
		mongo.IndexModel{
			Keys: bson.M{"condition": 1},
		},
	)
}

func (m *MongoDBIndexer) IndexIntersectionCollection() error {
	return m.createIndex(IntersectionCollection,
		mongo.IndexModel{
			Keys: bson.M{"location": "2dsphere"},
		},
		mongo.IndexModel{
			Keys: bson.M{"latest_los": 1},
		},
	)
}

func (m *MongoDBIndexer) IndexIntersectionAnalysisCollection() error {
	return m.createIndex(IntersectionAnalysisCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "intersection_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}

func (m *MongoDBIndexer) IndexDecongestionPlanCollection() error {
	return m.createIndex(DecongestionPlanCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "intersection_id", Value: 1},
			{Key: "status", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexPlanningCollections() error {
	if err := m.createIndex(PlanningSessionCollection,
		mongo.IndexModel{Keys: bson.M{"owner": 1}},
		mongo.IndexModel{Keys: bson.M{"participants": 1}},
	); err != nil {
		return err
	}

	return m.createIndex(PlanningAnnotationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "session_id", Value: 1},
			{Key: "created_at", Value: 1},
		},
	})
}

func (m *MongoDBIndexer) IndexPropertyCollections() error {
	if err := m.createIndex(NeighborhoodCollection, mongo.IndexModel{
		Keys:    bson.M{"name": 1},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	if err := m.createIndex(PropertyCollection,
		mongo.IndexModel{Keys: bson.M{"neighborhood_id": 1}},
		mongo.IndexModel{Keys: bson.M{"location": "2dsphere"}},
	); err != nil {
		return err
	}

	return m.createIndex(PropertyTransactionCollection,
		mongo.IndexModel{
			Keys: bson.D{
				{Key: "neighborhood_id", Value: 1},
				{Key: "property_type", Value: 1},
				{Key: "sale_date", Value: -1},
			},
		},
		mongo.IndexModel{
			Keys: bson.M{"property_id": 1},
		},
	)
}

func (m *MongoDBIndexer) IndexReportCollection() error {
	return m.createIndex(ReportCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "generated_by", Value: 1},
			{Key: "created_at", Value: -1},
		},
	})
}
