package background

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

type ManagerTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *mocks.MockMongoStore
	manager *BackgroundManager
	now     time.Time
}

func (s *ManagerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = mocks.NewMockMongoStore(s.ctrl)
	s.now = time.Date(2022, 6, 6, 6, 0, 0, 0, time.UTC)

	s.manager = New(s.store, nil, nil)
	s.manager.now = func() time.Time { return s.now }
}

func (s *ManagerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ManagerTestSuite) TestGenerateReportInvalidID() {
	s.Error(s.manager.GenerateReport("not-an-object-id"))
}

func (s *ManagerTestSuite) TestGenerateReportSkipsClaimedReport() {
	id := primitive.NewObjectID()
	s.store.EXPECT().StartReport(gomock.Any(), id).Return(nil, store.ErrReportInProgress).Times(1)

	s.NoError(s.manager.GenerateReport(id.Hex()))
}

func (s *ManagerTestSuite) TestGenerateReportSkipsMissingReport() {
	id := primitive.NewObjectID()
	s.store.EXPECT().StartReport(gomock.Any(), id).Return(nil, store.ErrReportNotFound).Times(1)

	s.NoError(s.manager.GenerateReport(id.Hex()))
}

func (s *ManagerTestSuite) TestGenerateReportStoreError() {
	id := primitive.NewObjectID()
	s.store.EXPECT().StartReport(gomock.Any(), id).Return(nil, fmt.Errorf("server selection timeout")).Times(1)

	s.Error(s.manager.GenerateReport(id.Hex()))
}

func (s *ManagerTestSuite) TestCreateScheduledReportInline() {
	var created *schema.Report
	s.store.EXPECT().CreateReport(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *schema.Report) error {
		r.ID = primitive.NewObjectID()
		created = r
		return nil
	}).Times(1)
	s.store.EXPECT().StartReport(gomock.Any(), gomock.Any()).Return(nil, store.ErrReportInProgress).Times(1)

	_, err := s.manager.CreateScheduledReport(context.Background(), schema.ReportInfrastructure, week)
	s.ErrorIs(err, store.ErrReportInProgress)

	s.Require().NotNil(created)
	s.Equal(schema.ReportInfrastructure, created.Type)
	s.Equal(primitive.NilObjectID, created.GeneratedBy)
	s.Equal(s.now, created.Parameters.To)
	s.Equal(s.now.Add(-week), created.Parameters.From)
	s.Equal("Scheduled infrastructure report 2022-06-06", created.Title)
}

func (s *ManagerTestSuite) TestLogOverdueTasks() {
	s.store.EXPECT().TaskPerformance(gomock.Any(), time.Time{}, time.Time{}, s.now).
		Return(&schema.TaskPerformance{Total: 10, Completed: 4, Overdue: 2}, nil).Times(1)

	s.NoError(s.manager.LogOverdueTasks())
}

func (s *ManagerTestSuite) TestLogOverdueTasksError() {
	s.store.EXPECT().TaskPerformance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("aggregate failed")).Times(1)

	s.Error(s.manager.LogOverdueTasks())
}

func (s *ManagerTestSuite) TestSchedule() {
	s.NoError(s.manager.Schedule(ScheduleConfig{}))
	s.Len(s.manager.cron.Entries(), 2)

	s.Error(New(s.store, nil, nil).Schedule(ScheduleConfig{WeeklyReport: "every monday"}))
}

func TestManagerTestSuite(t *testing.T) {
	suite.Run(t, new(ManagerTestSuite))
}
