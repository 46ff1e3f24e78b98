package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TaskCollection = "tasks"

	DefaultTaskMinutes = 30
)

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskPending, TaskInProgress, TaskCompleted, TaskCancelled:
		return true
	}
	return false
}

// Final reports whether no further transition is possible
func (s TaskStatus) Final() bool {
	return s == TaskCompleted || s == TaskCancelled
}

// CanTransit tells if a task in status s may move to next
func (s TaskStatus) CanTransit(next TaskStatus) bool {
	switch s {
	case TaskPending:
		return next == TaskInProgress || next == TaskCancelled
	case TaskInProgress:
		return next == TaskCompleted || next == TaskPending || next == TaskCancelled
	}
	return false
}

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Weight is the ordering weight used when planning routes
func (p Priority) Weight() int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}
	return 0
}

type TaskNote struct {
	Author    primitive.ObjectID `json:"author" bson:"author"`
	Text      string             `json:"text" bson:"text"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

// Task - a work assignment, usually derived from an issue
type Task struct {
	ID               primitive.ObjectID  `json:"id" bson:"_id"`
	Title            string              `json:"title" bson:"title"`
	Description      string              `json:"description" bson:"description"`
	IssueID          *primitive.ObjectID `json:"issue_id,omitempty" bson:"issue_id,omitempty"`
	AssignedTo       *primitive.ObjectID `json:"assigned_to,omitempty" bson:"assigned_to,omitempty"`
	CreatedBy        primitive.ObjectID  `json:"created_by" bson:"created_by"`
	Status           TaskStatus          `json:"status" bson:"status"`
	Priority         Priority            `json:"priority" bson:"priority"`
	Location         *GeoJSON            `json:"location,omitempty" bson:"location,omitempty"`
	EstimatedMinutes int                 `json:"estimated_minutes" bson:"estimated_minutes"`
	DueDate          *time.Time          `json:"due_date,omitempty" bson:"due_date,omitempty"`
	StartedAt        *time.Time          `json:"started_at,omitempty" bson:"started_at,omitempty"`
	CompletedAt      *time.Time          `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	Notes            []TaskNote          `json:"notes" bson:"notes"`
	CreatedAt        time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at" bson:"updated_at"`
}

// Overdue reports whether an open task has passed its due date
func (t *Task) Overdue(now time.Time) bool {
	return t.DueDate != nil && !t.Status.Final() && now.After(*t.DueDate)
}

type TaskFilter struct {
	Status     TaskStatus
	Priority   Priority
	AssignedTo *primitive.ObjectID
	IssueID    *primitive.ObjectID
	Page
}

type TaskUpdate struct {
	Title            *string
	Description      *string
	Priority         *Priority
	AssignedTo       *primitive.ObjectID
	Location         *Location
	EstimatedMinutes *int
	DueDate          *time.Time
}
