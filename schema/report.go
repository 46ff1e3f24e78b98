package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ReportCollection = "reports"
)

type ReportType string

const (
	ReportInfrastructure ReportType = "infrastructure"
	ReportTasks          ReportType = "tasks"
	ReportTraffic        ReportType = "traffic"
	ReportProperty       ReportType = "property"
)

func (t ReportType) Valid() bool {
	switch t {
	case ReportInfrastructure, ReportTasks, ReportTraffic, ReportProperty:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportGenerating ReportStatus = "generating"
	ReportCompleted  ReportStatus = "completed"
	ReportFailed     ReportStatus = "failed"
)

type ReportParameters struct {
	From           time.Time           `json:"from" bson:"from"`
	To             time.Time           `json:"to" bson:"to"`
	NeighborhoodID *primitive.ObjectID `json:"neighborhood_id,omitempty" bson:"neighborhood_id,omitempty"`
}

// ReportMetric is one labelled figure of a report section
type ReportMetric struct {
	Key   string  `json:"key" bson:"key"`
	Label string  `json:"label" bson:"label"`
	Value float64 `json:"value" bson:"value"`
}

type ReportSection struct {
	Name    string         `json:"name" bson:"name"`
	Title   string         `json:"title" bson:"title"`
	Metrics []ReportMetric `json:"metrics" bson:"metrics"`
}

// Report - a generated aggregation over the municipal data
type Report struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Type        ReportType         `json:"type" bson:"type"`
	Parameters  ReportParameters   `json:"parameters" bson:"parameters"`
	Status      ReportStatus       `json:"status" bson:"status"`
	Sections    []ReportSection    `json:"sections" bson:"sections"`
	Error       string             `json:"error,omitempty" bson:"error,omitempty"`
	FileKey     string             `json:"file_key,omitempty" bson:"file_key,omitempty"`
	GeneratedBy primitive.ObjectID `json:"generated_by" bson:"generated_by"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	CompletedAt *time.Time         `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
}

type ReportFilter struct {
	Type        ReportType
	Status      ReportStatus
	GeneratedBy *primitive.ObjectID
	Page
}

// Bucket is a grouped count returned by aggregations
type Bucket struct {
	Key   string `json:"key" bson:"_id"`
	Count int64  `json:"count" bson:"count"`
}

// TaskPerformance aggregates task throughput in a window
type TaskPerformance struct {
	Total                  int64   `bson:"total"`
	Completed              int64   `bson:"completed"`
	Overdue                int64   `bson:"overdue"`
	AverageCompletionHours float64 `bson:"average_completion_hours"`
}

// NeighborhoodSales summarizes transactions per neighborhood
type NeighborhoodSales struct {
	NeighborhoodID      primitive.ObjectID `bson:"_id"`
	Name                string             `bson:"name"`
	Count               int64              `bson:"count"`
	AveragePrice        float64            `bson:"average_price"`
	AveragePricePerSqft float64            `bson:"average_price_per_sqft"`
}

// IntersectionRank is an intersection with its latest analysis figures
type IntersectionRank struct {
	IntersectionID  primitive.ObjectID `bson:"_id"`
	Name            string             `bson:"name"`
	LevelOfService  LevelOfService     `bson:"level_of_service"`
	CongestionIndex float64            `bson:"congestion_index"`
}
