package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/external/objectstore"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

const (
	logPrefix = "report"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var ErrUnknownReportType = fmt.Errorf("unknown report type")

// Store is the persistence a generator works on
type Store interface {
	store.ReportStore
	store.Summarizer
}

// Generator fills reports with aggregated figures and exports them
type Generator struct {
	store   Store
	objects objectstore.ObjectStore
	now     func() time.Time
}

// NewGenerator returns a generator. Exports are skipped when objects is nil.
func NewGenerator(s Store, objects objectstore.ObjectStore) *Generator {
	return &Generator{
		store:   s,
		objects: objects,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Generate claims a pending report, computes its sections and stores the
// result. A failure is recorded on the report.
func (g *Generator) Generate(ctx context.Context, id primitive.ObjectID) (*schema.Report, error) {
	l := log.WithField("prefix", logPrefix).WithField("report_id", id.Hex())

	report, err := g.store.StartReport(ctx, id)
	if err != nil {
		l.WithError(err).Warn("cannot start report")
		return nil, err
	}

	l.WithField("type", report.Type).Info("generating report")
	started := time.Now()

	fileKey, sections, err := g.build(ctx, report)
	if err != nil {
		l.WithError(err).Error("report generation failed")
		if ferr := g.store.FailReport(ctx, id, err.Error()); ferr != nil {
			l.WithError(ferr).Error("cannot mark report failed")
		}
		return nil, err
	}

	if err := g.store.CompleteReport(ctx, id, sections, fileKey); err != nil {
		return nil, err
	}

	l.WithField("elapsed", time.Since(started).String()).Info("report generated")

	return g.store.GetReport(ctx, id)
}

func (g *Generator) build(ctx context.Context, report *schema.Report) (string, []schema.ReportSection, error) {
	sections, err := g.Sections(ctx, report.Type, report.Parameters)
	if err != nil {
		return "", nil, err
	}

	if g.objects == nil {
		return "", sections, nil
	}

	report.Sections = sections
	buf, err := Export(report, g.now())
	if err != nil {
		return "", nil, fmt.Errorf("export: %w", err)
	}

	key := FileKey(report.ID)
	if err := g.objects.Put(ctx, key, buf, int64(buf.Len()), xlsxContentType); err != nil {
		return "", nil, fmt.Errorf("upload: %w", err)
	}

	return key, sections, nil
}

// FileKey names the exported object of a report
func FileKey(id primitive.ObjectID) string {
	return fmt.Sprintf("reports/%s/%s.xlsx", id.Hex(), uuid.New().String())
}
