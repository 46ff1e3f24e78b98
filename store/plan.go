package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var (
	ErrPlanNotFound       = fmt.Errorf("decongestion plan not found")
	ErrPlanStatusConflict = fmt.Errorf("decongestion plan status has been changed")
)

type PlanStore interface {
	CreatePlan(ctx context.Context, plan *schema.DecongestionPlan) error
	GetPlan(ctx context.Context, id primitive.ObjectID) (*schema.DecongestionPlan, error)
	ListPlans(ctx context.Context, filter schema.PlanFilter) ([]schema.DecongestionPlan, int64, error)
	UpdatePlan(ctx context.Context, id primitive.ObjectID, update schema.PlanUpdate) (*schema.DecongestionPlan, error)
	TransitPlanStatus(ctx context.Context, id primitive.ObjectID, from, to schema.PlanStatus, review *schema.PlanReview) (*schema.DecongestionPlan, error)
	DeletePlan(ctx context.Context, id primitive.ObjectID) error
}

func (m *mongoDB) CreatePlan(ctx context.Context, plan *schema.DecongestionPlan) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	plan.ID = primitive.NewObjectID()
	if plan.Status == "" {
		plan.Status = schema.PlanDraft
	}
	if plan.Interventions == nil {
		plan.Interventions = []schema.Intervention{}
	}
	plan.CreatedAt = now
	plan.UpdatedAt = now

	_, err := m.collection(schema.DecongestionPlanCollection).InsertOne(ctx, plan)
	return err
}

func (m *mongoDB) GetPlan(ctx context.Context, id primitive.ObjectID) (*schema.DecongestionPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var plan schema.DecongestionPlan
	if err := m.collection(schema.DecongestionPlanCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	return &plan, nil
}

func (m *mongoDB) ListPlans(ctx context.Context, filter schema.PlanFilter) ([]schema.DecongestionPlan, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.IntersectionID != nil {
		query["intersection_id"] = *filter.IntersectionID
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	plans := make([]schema.DecongestionPlan, 0)
	total, err := findPage(ctx, m.collection(schema.DecongestionPlanCollection), query, filter.Page, sortNewest, &plans)
	if err != nil {
		return nil, 0, err
	}

	return plans, total, nil
}

// UpdatePlan edits the content of a plan. Only drafts are editable.
func (m *mongoDB) UpdatePlan(ctx context.Context, id primitive.ObjectID, update schema.PlanUpdate) (*schema.DecongestionPlan, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Interventions != nil {
		set["interventions"] = *update.Interventions
	}
	if update.TotalCost != nil {
		set["total_cost"] = *update.TotalCost
	}
	if update.ExpectedDelayReduction != nil {
		set["expected_delay_reduction"] = *update.ExpectedDelayReduction
	}

	return m.updatePlan(ctx, bson.M{"_id": id, "status": schema.PlanDraft}, bson.M{"$set": set}, ErrPlanStatusConflict)
}

// TransitPlanStatus moves a plan between statuses. The update only applies if
// the plan is still in the `from` status.
func (m *mongoDB) TransitPlanStatus(ctx context.Context, id primitive.ObjectID, from, to schema.PlanStatus, review *schema.PlanReview) (*schema.DecongestionPlan, error) {
	now := time.Now().UTC()
	set := bson.M{
		"status":     to,
		"updated_at": now,
	}
	if review != nil {
		set["reviewed_by"] = review.Reviewer
		set["review_note"] = review.Note
		set["reviewed_at"] = now
	}

	return m.updatePlan(ctx, bson.M{"_id": id, "status": from}, bson.M{"$set": set}, ErrPlanStatusConflict)
}

func (m *mongoDB) updatePlan(ctx context.Context, query, update bson.M, notMatched error) (*schema.DecongestionPlan, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var plan schema.DecongestionPlan
	if err := m.collection(schema.DecongestionPlanCollection).
		FindOneAndUpdate(ctx, query, update, returnUpdated()).
		Decode(&plan); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, notMatched
		}
		return nil, err
	}

	return &plan, nil
}

func (m *mongoDB) DeletePlan(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, m.collection(schema.DecongestionPlanCollection), id, ErrPlanNotFound)
}
