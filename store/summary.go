package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/schema"
)

// Summarizer - aggregations feeding the generated reports
type Summarizer interface {
	CountByField(ctx context.Context, collection, field, timeField string, from, to time.Time) ([]schema.Bucket, error)
	AverageRoadCondition(ctx context.Context) (float64, error)
	TaskPerformance(ctx context.Context, from, to, now time.Time) (*schema.TaskPerformance, error)
	WorstIntersections(ctx context.Context, limit int64) ([]schema.IntersectionRank, error)
	NeighborhoodSales(ctx context.Context, from, to time.Time, neighborhoodID *primitive.ObjectID) ([]schema.NeighborhoodSales, error)
}

// CountByField groups the documents of a collection by a field. When
// timeField is set, only documents within [from, to) are counted.
func (m *mongoDB) CountByField(ctx context.Context, collection, field, timeField string, from, to time.Time) ([]schema.Bucket, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := bson.M{}
	if timeField != "" {
		match = matchWindow(timeField, from, to)
	}

	cursor, err := m.collection(collection).Aggregate(ctx, []bson.M{
		aggStageMatch(match),
		aggStageGroupCount(field),
		aggStageSortBy("_id", 1),
	})
	if err != nil {
		return nil, err
	}

	buckets := make([]schema.Bucket, 0)
	if err := cursor.All(ctx, &buckets); err != nil {
		return nil, err
	}

	return buckets, nil
}

func (m *mongoDB) AverageRoadCondition(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.RoadCollection).Aggregate(ctx, []bson.M{
		{"$group": bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$condition_score"},
		}},
	})
	if err != nil {
		return 0, err
	}

	var result []struct {
		Average float64 `bson:"average"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, err
	}
	if len(result) == 0 {
		return 0, nil
	}

	return result[0].Average, nil
}

// TaskPerformance summarizes tasks created within [from, to). A task is
// overdue when it is still open and its due date is before now.
func (m *mongoDB) TaskPerformance(ctx context.Context, from, to, now time.Time) (*schema.TaskPerformance, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	openStatus := bson.A{schema.TaskPending, schema.TaskInProgress}

	cursor, err := m.collection(schema.TaskCollection).Aggregate(ctx, []bson.M{
		aggStageMatch(matchWindow("created_at", from, to)),
		{"$group": bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$eq": bson.A{"$status", schema.TaskCompleted}}, 1, 0,
			}}},
			"overdue": bson.M{"$sum": bson.M{"$cond": bson.A{
				bson.M{"$and": bson.A{
					bson.M{"$gt": bson.A{"$due_date", nil}},
					bson.M{"$lt": bson.A{"$due_date", now}},
					bson.M{"$in": bson.A{"$status", openStatus}},
				}}, 1, 0,
			}}},
			"average_completion_hours": bson.M{"$avg": bson.M{"$cond": bson.A{
				bson.M{"$gt": bson.A{"$completed_at", nil}},
				bson.M{"$divide": bson.A{
					bson.M{"$subtract": bson.A{"$completed_at", "$created_at"}},
					3600000,
				}},
				nil,
			}}},
		}},
	})
	if err != nil {
		return nil, err
	}

	var result []schema.TaskPerformance
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return &schema.TaskPerformance{}, nil
	}

	return &result[0], nil
}

// WorstIntersections ranks intersections by the congestion index of their latest analysis
func (m *mongoDB) WorstIntersections(ctx context.Context, limit int64) ([]schema.IntersectionRank, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.IntersectionAnalysisCollection).Aggregate(ctx, []bson.M{
		aggStageSortBy("created_at", -1),
		{"$group": bson.M{
			"_id":              "$intersection_id",
			"level_of_service": bson.M{"$first": "$level_of_service"},
			"congestion_index": bson.M{"$first": "$congestion_index"},
		}},
		aggStageSortBy("congestion_index", -1),
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         schema.IntersectionCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "intersection",
		}},
		{"$project": bson.M{
			"level_of_service": 1,
			"congestion_index": 1,
			"name":             bson.M{"$arrayElemAt": bson.A{"$intersection.name", 0}},
		}},
	})
	if err != nil {
		return nil, err
	}

	ranks := make([]schema.IntersectionRank, 0)
	if err := cursor.All(ctx, &ranks); err != nil {
		return nil, err
	}

	return ranks, nil
}

// NeighborhoodSales summarizes transactions per neighborhood within [from, to)
func (m *mongoDB) NeighborhoodSales(ctx context.Context, from, to time.Time, neighborhoodID *primitive.ObjectID) ([]schema.NeighborhoodSales, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	match := matchWindow("sale_date", from, to)
	if neighborhoodID != nil {
		match["neighborhood_id"] = *neighborhoodID
	}

	cursor, err := m.collection(schema.PropertyTransactionCollection).Aggregate(ctx, []bson.M{
		aggStageMatch(match),
		{"$group": bson.M{
			"_id":           "$neighborhood_id",
			"count":         bson.M{"$sum": 1},
			"average_price": bson.M{"$avg": "$sale_price"},
			"average_price_per_sqft": bson.M{"$avg": bson.M{
				"$cond": bson.A{
					bson.M{"$gt": bson.A{"$square_feet", 0}},
					bson.M{"$divide": bson.A{"$sale_price", "$square_feet"}},
					nil,
				},
			}},
		}},
		{"$lookup": bson.M{
			"from":         schema.NeighborhoodCollection,
			"localField":   "_id",
			"foreignField": "_id",
			"as":           "neighborhood",
		}},
		{"$addFields": bson.M{
			"name": bson.M{"$arrayElemAt": bson.A{"$neighborhood.name", 0}},
		}},
		{"$project": bson.M{"neighborhood": 0}},
		aggStageSortBy("name", 1),
	})
	if err != nil {
		return nil, err
	}

	sales := make([]schema.NeighborhoodSales, 0)
	if err := cursor.All(ctx, &sales); err != nil {
		return nil, err
	}

	return sales, nil
}
