package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DecongestionPlanCollection = "decongestion_plans"
)

type InterventionType string

const (
	InterventionSignalRetiming   InterventionType = "signal_retiming"
	InterventionAdaptiveSignal   InterventionType = "adaptive_signal"
	InterventionTurnLane         InterventionType = "turn_lane"
	InterventionRoundabout       InterventionType = "roundabout"
	InterventionTransitPriority  InterventionType = "transit_priority"
	InterventionPedestrianPhase  InterventionType = "pedestrian_phase"
	InterventionNewSignal        InterventionType = "new_signal"
	InterventionParkingRestrict  InterventionType = "parking_restriction"
	InterventionOtherImprovement InterventionType = "other"
)

func (t InterventionType) Valid() bool {
	switch t {
	case InterventionSignalRetiming, InterventionAdaptiveSignal, InterventionTurnLane,
		InterventionRoundabout, InterventionTransitPriority, InterventionPedestrianPhase,
		InterventionNewSignal, InterventionParkingRestrict, InterventionOtherImprovement:
		return true
	}
	return false
}

type Intervention struct {
	Type                   InterventionType `json:"type" bson:"type"`
	Description            string           `json:"description" bson:"description"`
	EstimatedCost          float64          `json:"estimated_cost" bson:"estimated_cost"`
	ExpectedDelayReduction float64          `json:"expected_delay_reduction" bson:"expected_delay_reduction"`
}

type PlanStatus string

const (
	PlanDraft       PlanStatus = "draft"
	PlanProposed    PlanStatus = "proposed"
	PlanApproved    PlanStatus = "approved"
	PlanRejected    PlanStatus = "rejected"
	PlanImplemented PlanStatus = "implemented"
)

func (s PlanStatus) Valid() bool {
	switch s {
	case PlanDraft, PlanProposed, PlanApproved, PlanRejected, PlanImplemented:
		return true
	}
	return false
}

// CanTransit tells if a plan in status s may move to next
func (s PlanStatus) CanTransit(next PlanStatus) bool {
	switch s {
	case PlanDraft:
		return next == PlanProposed
	case PlanProposed:
		return next == PlanApproved || next == PlanRejected || next == PlanDraft
	case PlanRejected:
		return next == PlanDraft
	case PlanApproved:
		return next == PlanImplemented
	}
	return false
}

// NeedsReview reports whether moving into s is a review decision
func (s PlanStatus) NeedsReview() bool {
	return s == PlanApproved || s == PlanRejected
}

// DecongestionPlan - a proposed set of traffic interventions for an intersection
type DecongestionPlan struct {
	ID                     primitive.ObjectID  `json:"id" bson:"_id"`
	IntersectionID         primitive.ObjectID  `json:"intersection_id" bson:"intersection_id"`
	AnalysisID             *primitive.ObjectID `json:"analysis_id,omitempty" bson:"analysis_id,omitempty"`
	Title                  string              `json:"title" bson:"title"`
	Description            string              `json:"description" bson:"description"`
	Interventions          []Intervention      `json:"interventions" bson:"interventions"`
	TotalCost              float64             `json:"total_cost" bson:"total_cost"`
	ExpectedDelayReduction float64             `json:"expected_delay_reduction" bson:"expected_delay_reduction"`
	Status                 PlanStatus          `json:"status" bson:"status"`
	CreatedBy              primitive.ObjectID  `json:"created_by" bson:"created_by"`
	ReviewedBy             *primitive.ObjectID `json:"reviewed_by,omitempty" bson:"reviewed_by,omitempty"`
	ReviewNote             string              `json:"review_note,omitempty" bson:"review_note,omitempty"`
	ReviewedAt             *time.Time          `json:"reviewed_at,omitempty" bson:"reviewed_at,omitempty"`
	CreatedAt              time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt              time.Time           `json:"updated_at" bson:"updated_at"`
}

type PlanFilter struct {
	IntersectionID *primitive.ObjectID
	Status         PlanStatus
	Page
}

// PlanUpdate replaces content fields. Totals are recomputed by the caller.
type PlanUpdate struct {
	Title                  *string
	Description            *string
	Interventions          *[]Intervention
	TotalCost              *float64
	ExpectedDelayReduction *float64
}

// PlanReview is attached to a status change
type PlanReview struct {
	Reviewer primitive.ObjectID
	Note     string
}
