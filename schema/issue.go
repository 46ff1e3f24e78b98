package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	IssueCollection = "issues"
)

type IssueType string

const (
	IssuePothole     IssueType = "pothole"
	IssueGarbage     IssueType = "garbage"
	IssueStreetlight IssueType = "streetlight"
	IssueGraffiti    IssueType = "graffiti"
	IssueFlooding    IssueType = "flooding"
	IssueSignage     IssueType = "signage"
	IssueSidewalk    IssueType = "sidewalk"
	IssueOther       IssueType = "other"
)

func (t IssueType) Valid() bool {
	switch t {
	case IssuePothole, IssueGarbage, IssueStreetlight, IssueGraffiti,
		IssueFlooding, IssueSignage, IssueSidewalk, IssueOther:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

// Priority maps an issue severity to the priority of the task fixing it
func (s Severity) Priority() Priority {
	switch s {
	case SeverityCritical:
		return PriorityCritical
	case SeverityHigh:
		return PriorityHigh
	case SeverityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

type IssueStatus string

const (
	IssueReported   IssueStatus = "reported"
	IssueVerified   IssueStatus = "verified"
	IssueInProgress IssueStatus = "in_progress"
	IssueResolved   IssueStatus = "resolved"
	IssueRejected   IssueStatus = "rejected"
)

func (s IssueStatus) Valid() bool {
	switch s {
	case IssueReported, IssueVerified, IssueInProgress, IssueResolved, IssueRejected:
		return true
	}
	return false
}

// Open reports whether the issue still needs work
func (s IssueStatus) Open() bool {
	return s != IssueResolved && s != IssueRejected
}

// Issue - a reported infrastructure problem
type Issue struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id"`
	Type        IssueType           `json:"type" bson:"type"`
	Title       string              `json:"title" bson:"title"`
	Description string              `json:"description" bson:"description"`
	Location    *GeoJSON            `json:"location" bson:"location"`
	Address     string              `json:"address" bson:"address"`
	Severity    Severity            `json:"severity" bson:"severity"`
	Status      IssueStatus         `json:"status" bson:"status"`
	ReportedBy  primitive.ObjectID  `json:"reported_by" bson:"reported_by"`
	Images      []string            `json:"images" bson:"images"`
	RoadID      *primitive.ObjectID `json:"road_id,omitempty" bson:"road_id,omitempty"`
	TaskID      *primitive.ObjectID `json:"task_id,omitempty" bson:"task_id,omitempty"`
	ResolvedAt  *time.Time          `json:"resolved_at,omitempty" bson:"resolved_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at" bson:"updated_at"`
}

type IssueFilter struct {
	Status     IssueStatus
	Type       IssueType
	Severity   Severity
	RoadID     *primitive.ObjectID
	ReportedBy *primitive.ObjectID
	Page
}

type IssueUpdate struct {
	Title       *string
	Description *string
	Address     *string
	Type        *IssueType
	Severity    *Severity
	Status      *IssueStatus
	Images      *[]string
	RoadID      *primitive.ObjectID
	Location    *Location
}
