package report

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	extmocks "github.com/bitmark-inc/cityworks-api/external/mocks"
	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

type GeneratorTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *mocks.MockMongoStore
	objects *extmocks.MockObjectStore
	now     time.Time
	from    time.Time
	to      time.Time
}

func (s *GeneratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctrl)
	s.objects = extmocks.NewMockObjectStore(s.ctrl)
	s.now = time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)
	s.from, s.to = DefaultWindow(s.now)
}

func (s *GeneratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *GeneratorTestSuite) generator(objects bool) *Generator {
	g := NewGenerator(s.store, nil)
	if objects {
		g = NewGenerator(s.store, s.objects)
	}
	g.now = func() time.Time { return s.now }
	return g
}

func (s *GeneratorTestSuite) report(t schema.ReportType) *schema.Report {
	return &schema.Report{
		ID:     primitive.NewObjectID(),
		Title:  "test",
		Type:   t,
		Status: schema.ReportGenerating,
		Parameters: schema.ReportParameters{
			From: s.from,
			To:   s.to,
		},
	}
}

func (s *GeneratorTestSuite) TestTaskSections() {
	g := s.generator(false)
	p := schema.ReportParameters{From: s.from, To: s.to}

	gomock.InOrder(
		s.store.EXPECT().CountByField(gomock.Any(), schema.TaskCollection, "status", "created_at", s.from, s.to).
			Return([]schema.Bucket{{Key: "completed", Count: 3}, {Key: "in_progress", Count: 1}}, nil),
		s.store.EXPECT().CountByField(gomock.Any(), schema.TaskCollection, "priority", "created_at", s.from, s.to).
			Return([]schema.Bucket{{Key: "high", Count: 4}}, nil),
		s.store.EXPECT().TaskPerformance(gomock.Any(), s.from, s.to, s.now).
			Return(&schema.TaskPerformance{Total: 4, Completed: 3, Overdue: 1, AverageCompletionHours: 5.256}, nil),
	)

	sections, err := g.Sections(context.Background(), schema.ReportTasks, p)
	s.NoError(err)
	s.Len(sections, 3)
	s.Equal("tasks_by_status", sections[0].Name)
	s.Equal("In progress", sections[0].Metrics[1].Label)

	perf := sections[2]
	s.Equal("task_performance", perf.Name)
	s.Equal(float64(75), perf.Metrics[2].Value)
	s.Equal(5.26, perf.Metrics[3].Value)
	s.Equal(float64(1), perf.Metrics[4].Value)
}

func (s *GeneratorTestSuite) TestTrafficSectionsStopOnError() {
	g := s.generator(false)
	p := schema.ReportParameters{From: s.from, To: s.to}

	s.store.EXPECT().CountByField(gomock.Any(), schema.IntersectionCollection, "latest_los", "", s.from, s.to).
		Return(nil, fmt.Errorf("boom"))

	_, err := g.Sections(context.Background(), schema.ReportTraffic, p)
	s.Error(err)
	s.True(strings.HasPrefix(err.Error(), "intersections_by_los"))
}

func (s *GeneratorTestSuite) TestUnknownReportType() {
	_, err := s.generator(false).Sections(context.Background(), schema.ReportType("unknown"), schema.ReportParameters{})
	s.Equal(ErrUnknownReportType, err)
}

func (s *GeneratorTestSuite) TestGeneratePropertyReportWithExport() {
	g := s.generator(true)
	r := s.report(schema.ReportProperty)
	neighborhood := primitive.NewObjectID()

	s.store.EXPECT().StartReport(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().NeighborhoodSales(gomock.Any(), s.from, s.to, nil).
		Return([]schema.NeighborhoodSales{{
			NeighborhoodID:      neighborhood,
			Name:                "Riverside",
			Count:               2,
			AveragePrice:        350000,
			AveragePricePerSqft: 175.123,
		}}, nil)
	s.objects.EXPECT().
		Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), xlsxContentType).
		DoAndReturn(func(_ context.Context, key string, _ interface{}, size int64, _ string) error {
			s.True(strings.HasPrefix(key, "reports/"+r.ID.Hex()+"/"))
			s.True(size > 0)
			return nil
		})
	s.store.EXPECT().CompleteReport(gomock.Any(), r.ID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, sections []schema.ReportSection, key string) error {
			s.Len(sections, 3)
			s.Equal(neighborhood.Hex(), sections[0].Metrics[0].Key)
			s.Equal(175.12, sections[2].Metrics[0].Value)
			s.NotEmpty(key)
			return nil
		})
	s.store.EXPECT().GetReport(gomock.Any(), r.ID).Return(&schema.Report{ID: r.ID, Status: schema.ReportCompleted}, nil)

	report, err := g.Generate(context.Background(), r.ID)
	s.NoError(err)
	s.Equal(schema.ReportCompleted, report.Status)
}

func (s *GeneratorTestSuite) TestGenerateFailure() {
	g := s.generator(false)
	r := s.report(schema.ReportInfrastructure)

	s.store.EXPECT().StartReport(gomock.Any(), r.ID).Return(r, nil)
	s.store.EXPECT().CountByField(gomock.Any(), schema.IssueCollection, "status", "created_at", s.from, s.to).
		Return(nil, fmt.Errorf("connection lost"))
	s.store.EXPECT().FailReport(gomock.Any(), r.ID, "issues_by_status: connection lost").Return(nil)

	_, err := g.Generate(context.Background(), r.ID)
	s.Error(err)
}

func (s *GeneratorTestSuite) TestGenerateAlreadyStarted() {
	id := primitive.NewObjectID()
	s.store.EXPECT().StartReport(gomock.Any(), id).Return(nil, store.ErrReportInProgress)

	_, err := s.generator(false).Generate(context.Background(), id)
	s.Equal(store.ErrReportInProgress, err)
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}
