package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	IntersectionCollection         = "intersections"
	IntersectionAnalysisCollection = "intersection_analyses"
)

type ControlType string

const (
	ControlSignal       ControlType = "signal"
	ControlStop         ControlType = "stop"
	ControlAllWayStop   ControlType = "all_way_stop"
	ControlYield        ControlType = "yield"
	ControlRoundabout   ControlType = "roundabout"
	ControlUncontrolled ControlType = "uncontrolled"
)

func (c ControlType) Valid() bool {
	switch c {
	case ControlSignal, ControlStop, ControlAllWayStop, ControlYield, ControlRoundabout, ControlUncontrolled:
		return true
	}
	return false
}

// Signalized reports whether delay thresholds for signalized intersections apply
func (c ControlType) Signalized() bool {
	return c == ControlSignal
}

// LevelOfService is the A-F grade of an intersection
type LevelOfService string

const (
	LOSA LevelOfService = "A"
	LOSB LevelOfService = "B"
	LOSC LevelOfService = "C"
	LOSD LevelOfService = "D"
	LOSE LevelOfService = "E"
	LOSF LevelOfService = "F"
)

func (l LevelOfService) Valid() bool {
	return l >= LOSA && l <= LOSF && len(l) == 1
}

// AtLeast reports whether l is the same as or worse than other
func (l LevelOfService) AtLeast(other LevelOfService) bool {
	return l >= other
}

type CongestionLevel string

const (
	CongestionLow      CongestionLevel = "low"
	CongestionModerate CongestionLevel = "moderate"
	CongestionHigh     CongestionLevel = "high"
	CongestionSevere   CongestionLevel = "severe"
)

// Intersection - a junction of two or more roads
type Intersection struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id"`
	Name        string               `json:"name" bson:"name"`
	Location    *GeoJSON             `json:"location" bson:"location"`
	Roads       []primitive.ObjectID `json:"roads" bson:"roads"`
	ControlType ControlType          `json:"control_type" bson:"control_type"`
	Capacity    int                  `json:"capacity" bson:"capacity"`
	LatestLOS   LevelOfService       `json:"latest_los,omitempty" bson:"latest_los,omitempty"`
	AnalyzedAt  *time.Time           `json:"analyzed_at,omitempty" bson:"analyzed_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at" bson:"updated_at"`
}

type IntersectionFilter struct {
	ControlType ControlType
	MinLOS      LevelOfService
	Page
}

type IntersectionUpdate struct {
	Name        *string
	Location    *Location
	Roads       *[]primitive.ObjectID
	ControlType *ControlType
	Capacity    *int
}

// TrafficObservation is the measured input of a congestion analysis
type TrafficObservation struct {
	WindowStart      time.Time `json:"window_start" bson:"window_start"`
	WindowEnd        time.Time `json:"window_end" bson:"window_end"`
	PeakHourVolume   int       `json:"peak_hour_volume" bson:"peak_hour_volume"`
	AverageDelaySecs float64   `json:"average_delay_secs" bson:"average_delay_secs"`
	QueueLength      int       `json:"queue_length" bson:"queue_length"`
}

// IntersectionAnalysis - a computed congestion assessment
type IntersectionAnalysis struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id"`
	IntersectionID      primitive.ObjectID `json:"intersection_id" bson:"intersection_id"`
	Observation         TrafficObservation `json:"observation" bson:"observation"`
	VolumeCapacityRatio float64            `json:"volume_capacity_ratio" bson:"volume_capacity_ratio"`
	LevelOfService      LevelOfService     `json:"level_of_service" bson:"level_of_service"`
	CongestionIndex     float64            `json:"congestion_index" bson:"congestion_index"`
	CongestionLevel     CongestionLevel    `json:"congestion_level" bson:"congestion_level"`
	Recommendations     []string           `json:"recommendations" bson:"recommendations"`
	AnalyzedBy          primitive.ObjectID `json:"analyzed_by" bson:"analyzed_by"`
	CreatedAt           time.Time          `json:"created_at" bson:"created_at"`
}
