package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var (
	ErrIntersectionNotFound = fmt.Errorf("intersection not found")
	ErrAnalysisNotFound     = fmt.Errorf("intersection has not been analyzed")
)

type IntersectionStore interface {
	CreateIntersection(ctx context.Context, intersection *schema.Intersection) error
	GetIntersection(ctx context.Context, id primitive.ObjectID) (*schema.Intersection, error)
	ListIntersections(ctx context.Context, filter schema.IntersectionFilter) ([]schema.Intersection, int64, error)
	UpdateIntersection(ctx context.Context, id primitive.ObjectID, update schema.IntersectionUpdate) (*schema.Intersection, error)
	DeleteIntersection(ctx context.Context, id primitive.ObjectID) error

	CreateIntersectionAnalysis(ctx context.Context, analysis *schema.IntersectionAnalysis) error
	ListIntersectionAnalyses(ctx context.Context, intersectionID primitive.ObjectID, limit int64) ([]schema.IntersectionAnalysis, error)
	LatestIntersectionAnalysis(ctx context.Context, intersectionID primitive.ObjectID) (*schema.IntersectionAnalysis, error)
}

func (m *mongoDB) CreateIntersection(ctx context.Context, intersection *schema.Intersection) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	intersection.ID = primitive.NewObjectID()
	if intersection.Roads == nil {
		intersection.Roads = []primitive.ObjectID{}
	}
	intersection.CreatedAt = now
	intersection.UpdatedAt = now

	_, err := m.collection(schema.IntersectionCollection).InsertOne(ctx, intersection)
	return err
}

func (m *mongoDB) GetIntersection(ctx context.Context, id primitive.ObjectID) (*schema.Intersection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var intersection schema.Intersection
	if err := m.collection(schema.IntersectionCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&intersection); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrIntersectionNotFound
		}
		return nil, err
	}

	return &intersection, nil
}

// ListIntersections lists intersections. With MinLOS set, only intersections
// whose latest level of service is at least that bad are returned, worst first.
func (m *mongoDB) ListIntersections(ctx context.Context, filter schema.IntersectionFilter) ([]schema.Intersection, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	sort := bson.D{{Key: "name", Value: 1}}
	if filter.ControlType != "" {
		query["control_type"] = filter.ControlType
	}
	if filter.MinLOS != "" {
		query["latest_los"] = bson.M{"$gte": filter.MinLOS}
		sort = bson.D{{Key: "latest_los", Value: -1}, {Key: "name", Value: 1}}
	}

	intersections := make([]schema.Intersection, 0)
	total, err := findPage(ctx, m.collection(schema.IntersectionCollection), query, filter.Page, sort, &intersections)
	if err != nil {
		return nil, 0, err
	}

	return intersections, total, nil
}

func (m *mongoDB) UpdateIntersection(ctx context.Context, id primitive.ObjectID, update schema.IntersectionUpdate) (*schema.Intersection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Location != nil {
		set["location"] = schema.NewPoint(*update.Location)
	}
	if update.Roads != nil {
		set["roads"] = *update.Roads
	}
	if update.ControlType != nil {
		set["control_type"] = *update.ControlType
	}
	if update.Capacity != nil {
		set["capacity"] = *update.Capacity
	}

	var intersection schema.Intersection
	if err := m.collection(schema.IntersectionCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, returnUpdated()).
		Decode(&intersection); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrIntersectionNotFound
		}
		return nil, err
	}

	return &intersection, nil
}

// DeleteIntersection removes the intersection along with its analyses
func (m *mongoDB) DeleteIntersection(ctx context.Context, id primitive.ObjectID) error {
	if err := deleteByID(ctx, m.collection(schema.IntersectionCollection), id, ErrIntersectionNotFound); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.IntersectionAnalysisCollection).DeleteMany(ctx, bson.M{"intersection_id": id})
	return err
}

// CreateIntersectionAnalysis stores an analysis and promotes its level of
// service to the intersection
func (m *mongoDB) CreateIntersectionAnalysis(ctx context.Context, analysis *schema.IntersectionAnalysis) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	analysis.ID = primitive.NewObjectID()
	analysis.CreatedAt = time.Now().UTC()
	if analysis.Recommendations == nil {
		analysis.Recommendations = []string{}
	}

	result, err := m.collection(schema.IntersectionCollection).UpdateOne(ctx,
		bson.M{"_id": analysis.IntersectionID},
		bson.M{"$set": bson.M{
			"latest_los":  analysis.LevelOfService,
			"analyzed_at": analysis.CreatedAt,
		}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrIntersectionNotFound
	}

	_, err = m.collection(schema.IntersectionAnalysisCollection).InsertOne(ctx, analysis)
	return err
}

func (m *mongoDB) ListIntersectionAnalyses(ctx context.Context, intersectionID primitive.ObjectID, limit int64) ([]schema.IntersectionAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.IntersectionAnalysisCollection).Find(ctx,
		bson.M{"intersection_id": intersectionID},
		options.Find().SetSort(sortNewest).SetLimit(limit))
	if err != nil {
		return nil, err
	}

	analyses := make([]schema.IntersectionAnalysis, 0)
	if err := cursor.All(ctx, &analyses); err != nil {
		return nil, err
	}

	return analyses, nil
}

func (m *mongoDB) LatestIntersectionAnalysis(ctx context.Context, intersectionID primitive.ObjectID) (*schema.IntersectionAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var analysis schema.IntersectionAnalysis
	if err := m.collection(schema.IntersectionAnalysisCollection).FindOne(ctx,
		bson.M{"intersection_id": intersectionID},
		options.FindOne().SetSort(sortNewest)).Decode(&analysis); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAnalysisNotFound
		}
		return nil, err
	}

	return &analysis, nil
}
