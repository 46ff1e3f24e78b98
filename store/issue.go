package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var (
	ErrIssueNotFound = fmt.Errorf("issue not found")
	ErrIssueHasTask  = fmt.Errorf("the issue already has a task")
)

type IssueStore interface {
	CreateIssue(ctx context.Context, issue *schema.Issue) error
	GetIssue(ctx context.Context, id primitive.ObjectID) (*schema.Issue, error)
	ListIssues(ctx context.Context, filter schema.IssueFilter) ([]schema.Issue, int64, error)
	NearbyIssues(ctx context.Context, loc schema.Location, meters int, limit int64) ([]schema.Issue, error)
	CountOpenIssuesNear(ctx context.Context, loc schema.Location, meters int, severities []schema.Severity) (int64, error)
	UpdateIssue(ctx context.Context, id primitive.ObjectID, update schema.IssueUpdate) (*schema.Issue, error)
	LinkIssueTask(ctx context.Context, issueID, taskID primitive.ObjectID) error
	UnlinkIssueTask(ctx context.Context, issueID, taskID primitive.ObjectID) error
	DeleteIssue(ctx context.Context, id primitive.ObjectID) error
}

func (m *mongoDB) CreateIssue(ctx context.Context, issue *schema.Issue) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	issue.ID = primitive.NewObjectID()
	if issue.Status == "" {
		issue.Status = schema.IssueReported
	}
	if issue.Images == nil {
		issue.Images = []string{}
	}
	issue.CreatedAt = now
	issue.UpdatedAt = now

	if _, err := m.collection(schema.IssueCollection).InsertOne(ctx, issue); err != nil {
		return err
	}

	return nil
}

func (m *mongoDB) GetIssue(ctx context.Context, id primitive.ObjectID) (*schema.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var issue schema.Issue
	if err := m.collection(schema.IssueCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&issue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}

	return &issue, nil
}

func (m *mongoDB) ListIssues(ctx context.Context, filter schema.IssueFilter) ([]schema.Issue, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Severity != "" {
		query["severity"] = filter.Severity
	}
	if filter.RoadID != nil {
		query["road_id"] = *filter.RoadID
	}
	if filter.ReportedBy != nil {
		query["reported_by"] = *filter.ReportedBy
	}

	issues := make([]schema.Issue, 0)
	total, err := findPage(ctx, m.collection(schema.IssueCollection), query, filter.Page, sortNewest, &issues)
	if err != nil {
		return nil, 0, err
	}

	return issues, total, nil
}

// NearbyIssues returns issues within the radius ordered by distance
func (m *mongoDB) NearbyIssues(ctx context.Context, loc schema.Location, meters int, limit int64) ([]schema.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.IssueCollection).Find(ctx,
		bson.M{"location": nearSphere(loc, meters)},
		options.Find().SetLimit(limit))
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby issues with error: %s", err)
		return nil, err
	}

	issues := make([]schema.Issue, 0)
	if err := cursor.All(ctx, &issues); err != nil {
		return nil, err
	}

	return issues, nil
}

// CountOpenIssuesNear counts unresolved issues of the given severities around a location
func (m *mongoDB) CountOpenIssuesNear(ctx context.Context, loc schema.Location, meters int, severities []schema.Severity) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"location": geoWithinRadius(loc, meters),
		"status":   bson.M{"$nin": bson.A{schema.IssueResolved, schema.IssueRejected}},
	}
	if len(severities) > 0 {
		query["severity"] = bson.M{"$in": severities}
	}

	return m.collection(schema.IssueCollection).CountDocuments(ctx, query)
}

func (m *mongoDB) UpdateIssue(ctx context.Context, id primitive.ObjectID, update schema.IssueUpdate) (*schema.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	set := bson.M{"updated_at": now}
	unset := bson.M{}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Address != nil {
		set["address"] = *update.Address
	}
	if update.Type != nil {
		set["type"] = *update.Type
	}
	if update.Severity != nil {
		set["severity"] = *update.Severity
	}
	if update.Images != nil {
		set["images"] = *update.Images
	}
	if update.RoadID != nil {
		set["road_id"] = *update.RoadID
	}
	if update.Location != nil {
		set["location"] = schema.NewPoint(*update.Location)
	}
	if update.Status != nil {
		set["status"] = *update.Status
		if *update.Status == schema.IssueResolved {
			set["resolved_at"] = now
		} else {
			unset["resolved_at"] = ""
		}
	}

	doc := bson.M{"$set": set}
	if len(unset) > 0 {
		doc["$unset"] = unset
	}

	var issue schema.Issue
	if err := m.collection(schema.IssueCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, doc, returnUpdated()).
		Decode(&issue); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}

	return &issue, nil
}

// LinkIssueTask attaches a task to an issue which has none yet and marks a
// freshly reported issue as verified.
func (m *mongoDB) LinkIssueTask(ctx context.Context, issueID, taskID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.IssueCollection)
	now := time.Now().UTC()

	// a null filter matches both a missing and an unset task_id
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": issueID, "task_id": nil},
		bson.M{"$set": bson.M{"task_id": taskID, "updated_at": now}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		count, err := c.CountDocuments(ctx, bson.M{"_id": issueID})
		if err != nil {
			return err
		}
		if count == 0 {
			return ErrIssueNotFound
		}
		return ErrIssueHasTask
	}

	_, err = c.UpdateOne(ctx,
		bson.M{"_id": issueID, "status": schema.IssueReported},
		bson.M{"$set": bson.M{"status": schema.IssueVerified}})
	return err
}

// UnlinkIssueTask detaches a task from its issue so the issue can get a new
// one. Nothing happens if the issue is linked to another task.
func (m *mongoDB) UnlinkIssueTask(ctx context.Context, issueID, taskID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.IssueCollection).UpdateOne(ctx,
		bson.M{"_id": issueID, "task_id": taskID},
		bson.M{
			"$unset": bson.M{"task_id": ""},
			"$set":   bson.M{"updated_at": time.Now().UTC()},
		})
	return err
}

func (m *mongoDB) DeleteIssue(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, m.collection(schema.IssueCollection), id, ErrIssueNotFound)
}
