package background

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

const jobTimeout = 5 * time.Minute

// GenerateReport is a background job to fill a pending report. Reports
// which have been picked up already are skipped.
func (m *BackgroundManager) GenerateReport(reportID string) error {
	id, err := primitive.ObjectIDFromHex(reportID)
	if err != nil {
		return fmt.Errorf("invalid report id %q: %w", reportID, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	_, err = m.reports.Generate(ctx, id)
	if errors.Is(err, store.ErrReportInProgress) || errors.Is(err, store.ErrReportNotFound) {
		log.WithError(err).WithField("report_id", reportID).Warn("skip report generation")
		return nil
	}
	return err
}

// CreateScheduledReport creates a report covering the last period and
// generates it through the worker queue when there is one
func (m *BackgroundManager) CreateScheduledReport(ctx context.Context, reportType schema.ReportType, period time.Duration) (*schema.Report, error) {
	now := m.now()
	r := &schema.Report{
		Title: fmt.Sprintf("Scheduled %s report %s", reportType, now.Format("2006-01-02")),
		Type:  reportType,
		Parameters: schema.ReportParameters{
			From: now.Add(-period),
			To:   now,
		},
		GeneratedBy: primitive.NilObjectID,
	}
	if err := m.store.CreateReport(ctx, r); err != nil {
		return nil, err
	}

	if m.queue != nil {
		err := m.queue.EnqueueReport(ctx, r.ID)
		if err == nil {
			return r, nil
		}
		log.WithError(err).Warn("fail to enqueue scheduled report, generating inline")
	}

	return m.reports.Generate(ctx, r.ID)
}

// LogOverdueTasks is a background job to log the number of open tasks past
// their due date
func (m *BackgroundManager) LogOverdueTasks() error {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	perf, err := m.store.TaskPerformance(ctx, time.Time{}, time.Time{}, m.now())
	if err != nil {
		return err
	}

	entry := log.WithField("overdue", perf.Overdue).WithField("open", perf.Total-perf.Completed)
	if perf.Overdue > 0 {
		entry.Warn("tasks are overdue")
	} else {
		entry.Info("no overdue tasks")
	}
	return nil
}
