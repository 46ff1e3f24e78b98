package store

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var (
	ErrRoadNotFound = fmt.Errorf("road not found")
)

type RoadStore interface {
	CreateRoad(ctx context.Context, road *schema.Road) error
	GetRoad(ctx context.Context, id primitive.ObjectID) (*schema.Road, error)
	ListRoads(ctx context.Context, filter schema.RoadFilter) ([]schema.Road, int64, error)
	UpdateRoad(ctx context.Context, id primitive.ObjectID, update schema.RoadUpdate) (*schema.Road, error)
	AddRoadInspection(ctx context.Context, id primitive.ObjectID, inspection schema.RoadInspection, condition schema.RoadCondition) (*schema.Road, error)
	DeleteRoad(ctx context.Context, id primitive.ObjectID) error
}

func (m *mongoDB) CreateRoad(ctx context.Context, road *schema.Road) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	road.ID = primitive.NewObjectID()
	if road.Inspections == nil {
		road.Inspections = []schema.RoadInspection{}
	}
	road.CreatedAt = now
	road.UpdatedAt = now

	_, err := m.collection(schema.RoadCollection).InsertOne(ctx, road)
	return err
}

func (m *mongoDB) GetRoad(ctx context.Context, id primitive.ObjectID) (*schema.Road, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var road schema.Road
	if err := m.collection(schema.RoadCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&road); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRoadNotFound
		}
		return nil, err
	}

	return &road, nil
}

func (m *mongoDB) ListRoads(ctx context.Context, filter schema.RoadFilter) ([]schema.Road, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Condition != "" {
		query["condition"] = filter.Condition
	}
	if filter.Surface != "" {
		query["surface"] = filter.Surface
	}
	if filter.Name != "" {
		query["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Name), Options: "i"}
	}

	roads := make([]schema.Road, 0)
	total, err := findPage(ctx, m.collection(schema.RoadCollection), query, filter.Page,
		bson.D{{Key: "name", Value: 1}}, &roads)
	if err != nil {
		return nil, 0, err
	}

	return roads, total, nil
}

// UpdateRoad applies the update. Geometry changes must come with the
// recomputed length.
func (m *mongoDB) UpdateRoad(ctx context.Context, id primitive.ObjectID, update schema.RoadUpdate) (*schema.Road, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Code != nil {
		set["code"] = *update.Code
	}
	if update.Points != nil {
		set["geometry"] = schema.NewLineString(*update.Points)
	}
	if update.LengthKm != nil {
		set["length_km"] = *update.LengthKm
	}
	if update.Lanes != nil {
		set["lanes"] = *update.Lanes
	}
	if update.Surface != nil {
		set["surface"] = *update.Surface
	}
	if update.ConditionScore != nil {
		set["condition_score"] = *update.ConditionScore
	}
	if update.Condition != nil {
		set["condition"] = *update.Condition
	}
	if update.DailyTraffic != nil {
		set["daily_traffic"] = *update.DailyTraffic
	}
	if update.SpeedLimit != nil {
		set["speed_limit"] = *update.SpeedLimit
	}

	return m.updateRoad(ctx, id, bson.M{"$set": set})
}

// AddRoadInspection appends an inspection and makes it the current condition of the road
func (m *mongoDB) AddRoadInspection(ctx context.Context, id primitive.ObjectID, inspection schema.RoadInspection, condition schema.RoadCondition) (*schema.Road, error) {
	if inspection.InspectedAt.IsZero() {
		inspection.InspectedAt = time.Now().UTC()
	}

	return m.updateRoad(ctx, id, bson.M{
		"$push": bson.M{"inspections": inspection},
		"$set": bson.M{
			"condition_score":   inspection.Score,
			"condition":         condition,
			"last_inspected_at": inspection.InspectedAt,
			"updated_at":        time.Now().UTC(),
		},
	})
}

func (m *mongoDB) updateRoad(ctx context.Context, id primitive.ObjectID, update bson.M) (*schema.Road, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var road schema.Road
	if err := m.collection(schema.RoadCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, update, returnUpdated()).
		Decode(&road); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRoadNotFound
		}
		return nil, err
	}

	return &road, nil
}

func (m *mongoDB) DeleteRoad(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, m.collection(schema.RoadCollection), id, ErrRoadNotFound)
}
