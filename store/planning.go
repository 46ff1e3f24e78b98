package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var (
	ErrSessionNotFound    = fmt.Errorf("planning session not found")
	ErrAnnotationNotFound = fmt.Errorf("annotation not found")
)

type PlanningStore interface {
	CreatePlanningSession(ctx context.Context, session *schema.PlanningSession) error
	GetPlanningSession(ctx context.Context, id primitive.ObjectID) (*schema.PlanningSession, error)
	ListPlanningSessions(ctx context.Context, member primitive.ObjectID, status schema.SessionStatus) ([]schema.PlanningSession, error)
	UpdatePlanningSession(ctx context.Context, id primitive.ObjectID, update schema.PlanningSessionUpdate) (*schema.PlanningSession, error)
	AddSessionParticipant(ctx context.Context, id, userID primitive.ObjectID) (*schema.PlanningSession, error)
	RemoveSessionParticipant(ctx context.Context, id, userID primitive.ObjectID) (*schema.PlanningSession, error)
	DeletePlanningSession(ctx context.Context, id primitive.ObjectID) error

	CreateAnnotation(ctx context.Context, annotation *schema.PlanningAnnotation) error
	GetAnnotation(ctx context.Context, sessionID, id primitive.ObjectID) (*schema.PlanningAnnotation, error)
	ListAnnotations(ctx context.Context, sessionID primitive.ObjectID) ([]schema.PlanningAnnotation, error)
	UpdateAnnotation(ctx context.Context, sessionID, id primitive.ObjectID, update schema.AnnotationUpdate) (*schema.PlanningAnnotation, error)
	DeleteAnnotation(ctx context.Context, sessionID, id primitive.ObjectID) error
}

func (m *mongoDB) CreatePlanningSession(ctx context.Context, session *schema.PlanningSession) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	session.ID = primitive.NewObjectID()
	if session.Status == "" {
		session.Status = schema.SessionActive
	}
	if session.Participants == nil {
		session.Participants = []primitive.ObjectID{}
	}
	session.CreatedAt = now
	session.UpdatedAt = now

	_, err := m.collection(schema.PlanningSessionCollection).InsertOne(ctx, session)
	return err
}

func (m *mongoDB) GetPlanningSession(ctx context.Context, id primitive.ObjectID) (*schema.PlanningSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var session schema.PlanningSession
	if err := m.collection(schema.PlanningSessionCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

// ListPlanningSessions returns sessions owned or joined by the member
func (m *mongoDB) ListPlanningSessions(ctx context.Context, member primitive.ObjectID, status schema.SessionStatus) ([]schema.PlanningSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"$or": bson.A{
			bson.M{"owner": member},
			bson.M{"participants": member},
		},
	}
	if status != "" {
		query["status"] = status
	}

	cursor, err := m.collection(schema.PlanningSessionCollection).Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}

	sessions := make([]schema.PlanningSession, 0)
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, err
	}

	return sessions, nil
}

func (m *mongoDB) UpdatePlanningSession(ctx context.Context, id primitive.ObjectID, update schema.PlanningSessionUpdate) (*schema.PlanningSession, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}
	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.Center != nil {
		set["center"] = *update.Center
	}
	if update.Zoom != nil {
		set["zoom"] = *update.Zoom
	}

	return m.updateSession(ctx, id, bson.M{"$set": set})
}

func (m *mongoDB) AddSessionParticipant(ctx context.Context, id, userID primitive.ObjectID) (*schema.PlanningSession, error) {
	return m.updateSession(ctx, id, bson.M{
		"$addToSet": bson.M{"participants": userID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
}

func (m *mongoDB) RemoveSessionParticipant(ctx context.Context, id, userID primitive.ObjectID) (*schema.PlanningSession, error) {
	return m.updateSession(ctx, id, bson.M{
		"$pull": bson.M{"participants": userID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
}

func (m *mongoDB) updateSession(ctx context.Context, id primitive.ObjectID, update bson.M) (*schema.PlanningSession, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var session schema.PlanningSession
	if err := m.collection(schema.PlanningSessionCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id}, update, returnUpdated()).
		Decode(&session); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

// DeletePlanningSession removes a session and all of its annotations
func (m *mongoDB) DeletePlanningSession(ctx context.Context, id primitive.ObjectID) error {
	if err := deleteByID(ctx, m.collection(schema.PlanningSessionCollection), id, ErrSessionNotFound); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := m.collection(schema.PlanningAnnotationCollection).DeleteMany(ctx, bson.M{"session_id": id})
	return err
}

func (m *mongoDB) CreateAnnotation(ctx context.Context, annotation *schema.PlanningAnnotation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	annotation.ID = primitive.NewObjectID()
	if annotation.Points == nil {
		annotation.Points = []schema.Location{}
	}
	annotation.CreatedAt = now
	annotation.UpdatedAt = now

	_, err := m.collection(schema.PlanningAnnotationCollection).InsertOne(ctx, annotation)
	return err
}

func (m *mongoDB) GetAnnotation(ctx context.Context, sessionID, id primitive.ObjectID) (*schema.PlanningAnnotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var annotation schema.PlanningAnnotation
	if err := m.collection(schema.PlanningAnnotationCollection).
		FindOne(ctx, bson.M{"_id": id, "session_id": sessionID}).
		Decode(&annotation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAnnotationNotFound
		}
		return nil, err
	}

	return &annotation, nil
}

func (m *mongoDB) ListAnnotations(ctx context.Context, sessionID primitive.ObjectID) ([]schema.PlanningAnnotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.PlanningAnnotationCollection).Find(ctx,
		bson.M{"session_id": sessionID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}

	annotations := make([]schema.PlanningAnnotation, 0)
	if err := cursor.All(ctx, &annotations); err != nil {
		return nil, err
	}

	return annotations, nil
}

func (m *mongoDB) UpdateAnnotation(ctx context.Context, sessionID, id primitive.ObjectID, update schema.AnnotationUpdate) (*schema.PlanningAnnotation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Points != nil {
		set["points"] = *update.Points
	}
	if update.Text != nil {
		set["text"] = *update.Text
	}
	if update.Color != nil {
		set["color"] = *update.Color
	}

	var annotation schema.PlanningAnnotation
	if err := m.collection(schema.PlanningAnnotationCollection).
		FindOneAndUpdate(ctx, bson.M{"_id": id, "session_id": sessionID}, bson.M{"$set": set}, returnUpdated()).
		Decode(&annotation); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAnnotationNotFound
		}
		return nil, err
	}

	return &annotation, nil
}

func (m *mongoDB) DeleteAnnotation(ctx context.Context, sessionID, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.PlanningAnnotationCollection).
		DeleteOne(ctx, bson.M{"_id": id, "session_id": sessionID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrAnnotationNotFound
	}

	return nil
}
