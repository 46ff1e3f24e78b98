package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoadCollection = "roads"
)

type Surface string

const (
	SurfaceAsphalt  Surface = "asphalt"
	SurfaceConcrete Surface = "concrete"
	SurfaceGravel   Surface = "gravel"
	SurfaceBrick    Surface = "brick"
	SurfaceDirt     Surface = "dirt"
)

func (s Surface) Valid() bool {
	switch s {
	case SurfaceAsphalt, SurfaceConcrete, SurfaceGravel, SurfaceBrick, SurfaceDirt:
		return true
	}
	return false
}

type RoadCondition string

const (
	ConditionExcellent RoadCondition = "excellent"
	ConditionGood      RoadCondition = "good"
	ConditionFair      RoadCondition = "fair"
	ConditionPoor      RoadCondition = "poor"
	ConditionCritical  RoadCondition = "critical"
)

func (c RoadCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionCritical:
		return true
	}
	return false
}

type RoadInspection struct {
	InspectedBy primitive.ObjectID `json:"inspected_by" bson:"inspected_by"`
	Score       float64            `json:"score" bson:"score"`
	Notes       string             `json:"notes" bson:"notes"`
	InspectedAt time.Time          `json:"inspected_at" bson:"inspected_at"`
}

// Road - a tracked road segment
type Road struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	Name            string             `json:"name" bson:"name"`
	Code            string             `json:"code,omitempty" bson:"code,omitempty"`
	Geometry        *LineString        `json:"geometry" bson:"geometry"`
	LengthKm        float64            `json:"length_km" bson:"length_km"`
	Lanes           int                `json:"lanes" bson:"lanes"`
	Surface         Surface            `json:"surface" bson:"surface"`
	ConditionScore  float64            `json:"condition_score" bson:"condition_score"`
	Condition       RoadCondition      `json:"condition" bson:"condition"`
	DailyTraffic    int                `json:"daily_traffic" bson:"daily_traffic"`
	SpeedLimit      int                `json:"speed_limit" bson:"speed_limit"`
	LastInspectedAt *time.Time         `json:"last_inspected_at,omitempty" bson:"last_inspected_at,omitempty"`
	Inspections     []RoadInspection   `json:"inspections" bson:"inspections"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at" bson:"updated_at"`
}

type RoadFilter struct {
	Condition RoadCondition
	Surface   Surface
	Name      string
	Page
}

type RoadUpdate struct {
	Name           *string
	Code           *string
	Points         *[]Location
	LengthKm       *float64
	Lanes          *int
	Surface        *Surface
	ConditionScore *float64
	Condition      *RoadCondition
	DailyTraffic   *int
	SpeedLimit     *int
}
