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
	ErrReportNotFound   = fmt.Errorf("report not found")
	ErrReportInProgress = fmt.Errorf("report is being generated or has been completed")
)

type ReportStore interface {
	CreateReport(ctx context.Context, report *schema.Report) error
	GetReport(ctx context.Context, id primitive.ObjectID) (*schema.Report, error)
	ListReports(ctx context.Context, filter schema.ReportFilter) ([]schema.Report, int64, error)
	StartReport(ctx context.Context, id primitive.ObjectID) (*schema.Report, error)
	CompleteReport(ctx context.Context, id primitive.ObjectID, sections []schema.ReportSection, fileKey string) error
	FailReport(ctx context.Context, id primitive.ObjectID, reason string) error
	DeleteReport(ctx context.Context, id primitive.ObjectID) error
}

func (m *mongoDB) CreateReport(ctx context.Context, report *schema.Report) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	report.ID = primitive.NewObjectID()
	report.Status = schema.ReportPending
	report.Sections = []schema.ReportSection{}
	report.CreatedAt = time.Now().UTC()

	_, err := m.collection(schema.ReportCollection).InsertOne(ctx, report)
	return err
}

func (m *mongoDB) GetReport(ctx context.Context, id primitive.ObjectID) (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var report schema.Report
	if err := m.collection(schema.ReportCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&report); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrReportNotFound
		}
		return nil, err
	}

	return &report, nil
}

func (m *mongoDB) ListReports(ctx context.Context, filter schema.ReportFilter) ([]schema.Report, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.GeneratedBy != nil {
		query["generated_by"] = *filter.GeneratedBy
	}

	reports := make([]schema.Report, 0)
	total, err := findPage(ctx, m.collection(schema.ReportCollection), query, filter.Page, sortNewest, &reports)
	if err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

// StartReport claims a pending or failed report for generation
func (m *mongoDB) StartReport(ctx context.Context, id primitive.ObjectID) (*schema.Report, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.ReportCollection)

	var report schema.Report
	err := c.FindOneAndUpdate(ctx,
		bson.M{
			"_id":    id,
			"status": bson.M{"$in": bson.A{schema.ReportPending, schema.ReportFailed}},
		},
		bson.M{
			"$set":   bson.M{"status": schema.ReportGenerating},
			"$unset": bson.M{"error": ""},
		},
		returnUpdated()).Decode(&report)
	if err == nil {
		return &report, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	n, err := c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrReportNotFound
	}
	return nil, ErrReportInProgress
}

func (m *mongoDB) CompleteReport(ctx context.Context, id primitive.ObjectID, sections []schema.ReportSection, fileKey string) error {
	set := bson.M{
		"status":       schema.ReportCompleted,
		"sections":     sections,
		"completed_at": time.Now().UTC(),
	}
	if fileKey != "" {
		set["file_key"] = fileKey
	}

	return m.updateReport(ctx, id, bson.M{"$set": set})
}

func (m *mongoDB) FailReport(ctx context.Context, id primitive.ObjectID, reason string) error {
	return m.updateReport(ctx, id, bson.M{"$set": bson.M{
		"status": schema.ReportFailed,
		"error":  reason,
	}})
}

func (m *mongoDB) updateReport(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.ReportCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrReportNotFound
	}

	return nil
}

func (m *mongoDB) DeleteReport(ctx context.Context, id primitive.ObjectID) error {
	return deleteByID(ctx, m.collection(schema.ReportCollection), id, ErrReportNotFound)
}
