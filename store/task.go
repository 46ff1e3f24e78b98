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
	ErrTaskNotFound       = fmt.Errorf("task not found")
	ErrTaskStatusConflict = fmt.Errorf("task status has been changed")
)

type TaskStore interface {
	CreateTask(ctx context.Context, task *schema.Task) error
	GetTask(ctx context.Context, id primitive.ObjectID) (*schema.Task, error)
	GetTasksByIDs(ctx context.Context, ids []primitive.ObjectID) ([]schema.Task, error)
	ListTasks(ctx context.Context, filter schema.TaskFilter) ([]schema.Task, int64, error)
	ListOpenTasks(ctx context.Context, assignee primitive.ObjectID) ([]schema.Task, error)
	UpdateTask(ctx context.Context, id primitive.ObjectID, update schema.TaskUpdate) (*schema.Task, error)
	TransitTaskStatus(ctx context.Context, id primitive.ObjectID, from, to schema.TaskStatus) (*schema.Task, error)
	AddTaskNote(ctx context.Context, id primitive.ObjectID, note schema.TaskNote) (*schema.Task, error)
	DeleteTask(ctx context.Context, id primitive.ObjectID) error
}

func (m *mongoDB) CreateTask(ctx context.Context, task *schema.Task) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	task.ID = primitive.NewObjectID()
	if task.Status == "" {
		task.Status = schema.TaskPending
	}
	if task.Priority == "" {
		task.Priority = schema.PriorityMedium
	}
	if task.EstimatedMinutes <= 0 {
		task.EstimatedMinutes = schema.DefaultTaskMinutes
	}
	if task.Notes == nil {
		task.Notes = []schema.TaskNote{}
	}
	task.CreatedAt = now
	task.UpdatedAt = now

	_, err := m.collection(schema.TaskCollection).InsertOne(ctx, task)
	return err
}

func (m *mongoDB) GetTask(ctx context.Context, id primitive.ObjectID) (*schema.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var task schema.Task
	if err := m.collection(schema.TaskCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&task); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}

	return &task, nil
}

// GetTasksByIDs returns the tasks in the order of ids. Unknown ids are skipped.
func (m *mongoDB) GetTasksByIDs(ctx context.Context, ids []primitive.ObjectID) ([]schema.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	// $in query doesn't guarantee order
	// use aggregation to sort the docs according to the query order
	pipeline := []bson.M{
		{"$match": bson.M{"_id": bson.M{"$in": objectIDs(ids)}}},
		{"$addFields": bson.M{"__order": bson.M{"$indexOfArray": bson.A{objectIDs(ids), "$_id"}}}},
		{"$sort": bson.M{"__order": 1}},
		{"$project": bson.M{"__order": 0}},
	}

	cursor, err := m.collection(schema.TaskCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	tasks := make([]schema.Task, 0, len(ids))
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (m *mongoDB) ListTasks(ctx context.Context, filter schema.TaskFilter) ([]schema.Task, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Priority != "" {
		query["priority"] = filter.Priority
	}
	if filter.AssignedTo != nil {
		query["assigned_to"] = *filter.AssignedTo
	}
	if filter.IssueID != nil {
		query["issue_id"] = *filter.IssueID
	}

	tasks := make([]schema.Task, 0)
	total, err := findPage(ctx, m.collection(schema.TaskCollection), query, filter.Page, sortNewest, &tasks)
	if err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// ListOpenTasks returns pending and in-progress tasks assigned to a user
func (m *mongoDB) ListOpenTasks(ctx context.Context, assignee primitive.ObjectID) ([]schema.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"assigned_to": assignee,
		"status":      bson.M{"$in": bson.A{schema.TaskPending, schema.TaskInProgress}},
	}

	cursor, err := m.collection(schema.TaskCollection).Find(ctx, query)
	if err != nil {
		return nil, err
	}

	tasks := make([]schema.Task, 0)
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, err
	}

	return tasks, nil
}

func (m *mongoDB) UpdateTask(ctx context.Context, id primitive.ObjectID, update schema.TaskUpdate) (*schema.Task, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Priority != nil {
		set["priority"] = *update.Priority
	}
	if update.AssignedTo != nil {
		set["assigned_to"] = *update.AssignedTo
	}
	if update.Location != nil {
		set["location"] = schema.NewPoint(*update.Location)
	}
	if update.EstimatedMinutes != nil {
		set["estimated_minutes"] = *update.EstimatedMinutes
	}
	if update.DueDate != nil {
		set["due_date"] = *update.DueDate
	}

	return m.updateTask(ctx, bson.M{"_id": id}, bson.M{"$set": set}, ErrTaskNotFound)
}

// TransitTaskStatus moves a task from one status to another. The update only
// applies if the task is still in the `from` status.
func (m *mongoDB) TransitTaskStatus(ctx context.Context, id primitive.ObjectID, from, to schema.TaskStatus) (*schema.Task, error) {
	now := time.Now().UTC()
	set := bson.M{
		"status":     to,
		"updated_at": now,
	}
	doc := bson.M{"$set": set}

	switch to {
	case schema.TaskInProgress:
		set["started_at"] = now
	case schema.TaskCompleted:
		set["completed_at"] = now
	case schema.TaskPending:
		doc["$unset"] = bson.M{"started_at": ""}
	}

	return m.updateTask(ctx, bson.M{"_id": id, "status": from}, doc, ErrTaskStatusConflict)
}

func (m *mongoDB) AddTaskNote(ctx context.Context, id primitive.ObjectID, note schema.TaskNote) (*schema.Task, error) {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}

	return m.updateTask(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"notes": note},
		"$set":  bson.M{"updated_at": note.CreatedAt},
	}, ErrTaskNotFound)
}

func (m *mongoDB) updateTask(ctx context.Context, query, update bson.M, notFound error) (*schema.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var task schema.Task
	if err := m.collection(schema.TaskCollection).
		FindOneAndUpdate(ctx, query, update, returnUpdated()).
		Decode(&task); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, notFound
		}
		return nil, err
	}

	return &task, nil
}

func (m *mongoDB) DeleteTask(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, m.collection(schema.TaskCollection), id, ErrTaskNotFound)
}
