package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PlanningSessionCollection    = "planning_sessions"
	PlanningAnnotationCollection = "planning_annotations"
)

type SessionStatus string

const (
	SessionActive   SessionStatus = "active"
	SessionArchived SessionStatus = "archived"
)

func (s SessionStatus) Valid() bool {
	return s == SessionActive || s == SessionArchived
}

// PlanningSession - a collaborative map canvas shared among users
type PlanningSession struct {
	ID           primitive.ObjectID   `json:"id" bson:"_id"`
	Title        string               `json:"title" bson:"title"`
	Description  string               `json:"description" bson:"description"`
	Owner        primitive.ObjectID   `json:"owner" bson:"owner"`
	Participants []primitive.ObjectID `json:"participants" bson:"participants"`
	Status       SessionStatus        `json:"status" bson:"status"`
	Center       *Location            `json:"center,omitempty" bson:"center,omitempty"`
	Zoom         int                  `json:"zoom" bson:"zoom"`
	CreatedAt    time.Time            `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at" bson:"updated_at"`
}

// IsMember reports whether the user is the owner or a participant
func (s *PlanningSession) IsMember(userID primitive.ObjectID) bool {
	if s.Owner == userID {
		return true
	}
	for _, p := range s.Participants {
		if p == userID {
			return true
		}
	}
	return false
}

type PlanningSessionUpdate struct {
	Title       *string
	Description *string
	Status      *SessionStatus
	Center      *Location
	Zoom        *int
}

type AnnotationKind string

const (
	AnnotationMarker  AnnotationKind = "marker"
	AnnotationLine    AnnotationKind = "line"
	AnnotationPolygon AnnotationKind = "polygon"
	AnnotationNote    AnnotationKind = "note"
)

func (k AnnotationKind) Valid() bool {
	switch k {
	case AnnotationMarker, AnnotationLine, AnnotationPolygon, AnnotationNote:
		return true
	}
	return false
}

// AcceptsPoints checks the vertex count required by the kind
func (k AnnotationKind) AcceptsPoints(n int) bool {
	switch k {
	case AnnotationMarker:
		return n == 1
	case AnnotationLine:
		return n >= 2
	case AnnotationPolygon:
		return n >= 3
	case AnnotationNote:
		return n <= 1
	}
	return false
}

// PlanningAnnotation - a shape or note drawn on a planning session
type PlanningAnnotation struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	SessionID primitive.ObjectID `json:"session_id" bson:"session_id"`
	Author    primitive.ObjectID `json:"author" bson:"author"`
	Kind      AnnotationKind     `json:"kind" bson:"kind"`
	Points    []Location         `json:"points" bson:"points"`
	Text      string             `json:"text" bson:"text"`
	Color     string             `json:"color" bson:"color"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}

type AnnotationUpdate struct {
	Points *[]Location
	Text   *string
	Color  *string
}
