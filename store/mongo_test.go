package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/schema"
)

type MongoStoreTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewMongoStoreTestSuite(connURI, dbName string) *MongoStoreTestSuite {
	return &MongoStoreTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoStoreTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI).SetServerSelectionTimeout(2 * time.Second)
	mongoClient, err := mongo.Connect(context.Background(), opts)
	if err != nil {
		s.T().Fatalf("create mongo client with error: %s", err)
	}
	if err := mongoClient.Ping(context.Background(), nil); err != nil {
		s.T().Skipf("mongo is not reachable: %s", err)
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *MongoStoreTestSuite) TearDownSuite() {
	if s.mongoClient == nil {
		return
	}
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}

// CleanMongoDB drop the whole test mongodb
func (s *MongoStoreTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *MongoStoreTestSuite) TestEmailIsUniqueIgnoringCase() {
	ctx := context.Background()

	s.NoError(s.store.CreateUser(ctx, &schema.User{
		Name:   "Sita",
		Email:  "Sita@Cityworks.test",
		Role:   schema.RolePlanner,
		Active: true,
	}))

	err := s.store.CreateUser(ctx, &schema.User{Name: "Other", Email: "sita@cityworks.test", Role: schema.RoleCitizen})
	s.ErrorIs(err, ErrEmailTaken)

	user, err := s.store.GetUserByEmail(ctx, " SITA@cityworks.test ")
	s.NoError(err)
	s.Equal("Sita", user.Name)

	_, err = s.store.GetUserByEmail(ctx, "nobody@cityworks.test")
	s.ErrorIs(err, ErrUserNotFound)
}

func (s *MongoStoreTestSuite) TestTaskTransitionIsConditional() {
	ctx := context.Background()

	task := &schema.Task{Title: "clear drain"}
	s.NoError(s.store.CreateTask(ctx, task))
	s.Equal(schema.TaskPending, task.Status)
	s.Equal(schema.DefaultTaskMinutes, task.EstimatedMinutes)

	started, err := s.store.TransitTaskStatus(ctx, task.ID, schema.TaskPending, schema.TaskInProgress)
	s.NoError(err)
	s.Equal(schema.TaskInProgress, started.Status)
	s.NotNil(started.StartedAt)

	// a second client still believes the task is pending
	_, err = s.store.TransitTaskStatus(ctx, task.ID, schema.TaskPending, schema.TaskCancelled)
	s.ErrorIs(err, ErrTaskStatusConflict)

	done, err := s.store.TransitTaskStatus(ctx, task.ID, schema.TaskInProgress, schema.TaskCompleted)
	s.NoError(err)
	s.NotNil(done.CompletedAt)

	_, err = s.store.TransitTaskStatus(ctx, primitive.NewObjectID(), schema.TaskPending, schema.TaskInProgress)
	s.ErrorIs(err, ErrTaskStatusConflict)
}

func (s *MongoStoreTestSuite) TestLinkIssueTaskVerifiesIssue() {
	ctx := context.Background()

	issue := &schema.Issue{
		Type:     schema.IssuePothole,
		Title:    "pothole",
		Severity: schema.SeverityHigh,
		Location: schema.NewPoint(schema.Location{Latitude: 27.7, Longitude: 85.3}),
	}
	s.NoError(s.store.CreateIssue(ctx, issue))

	taskID := primitive.NewObjectID()
	s.NoError(s.store.LinkIssueTask(ctx, issue.ID, taskID))

	linked, err := s.store.GetIssue(ctx, issue.ID)
	s.NoError(err)
	s.Equal(schema.IssueVerified, linked.Status)
	s.Equal(taskID, *linked.TaskID)

	s.ErrorIs(s.store.LinkIssueTask(ctx, primitive.NewObjectID(), taskID), ErrIssueNotFound)

	// a second task never replaces the linked one
	s.ErrorIs(s.store.LinkIssueTask(ctx, issue.ID, primitive.NewObjectID()), ErrIssueHasTask)

	// unlinking with another task id leaves the link alone
	s.NoError(s.store.UnlinkIssueTask(ctx, issue.ID, primitive.NewObjectID()))
	linked, err = s.store.GetIssue(ctx, issue.ID)
	s.NoError(err)
	s.Equal(taskID, *linked.TaskID)

	s.NoError(s.store.UnlinkIssueTask(ctx, issue.ID, taskID))
	unlinked, err := s.store.GetIssue(ctx, issue.ID)
	s.NoError(err)
	s.Nil(unlinked.TaskID)

	replacement := primitive.NewObjectID()
	s.NoError(s.store.LinkIssueTask(ctx, issue.ID, replacement))
}

func (s *MongoStoreTestSuite) TestCountOpenIssuesNear() {
	ctx := context.Background()

	center := schema.Location{Latitude: 27.6, Longitude: 85.2}
	for _, issue := range []*schema.Issue{
		{Type: schema.IssueFlooding, Title: "near", Severity: schema.SeverityCritical,
			Location: schema.NewPoint(schema.Location{Latitude: 27.6005, Longitude: 85.2})},
		{Type: schema.IssueGarbage, Title: "near but minor", Severity: schema.SeverityLow,
			Location: schema.NewPoint(schema.Location{Latitude: 27.6005, Longitude: 85.2})},
		{Type: schema.IssueSidewalk, Title: "near but resolved", Severity: schema.SeverityHigh, Status: schema.IssueResolved,
			Location: schema.NewPoint(schema.Location{Latitude: 27.6005, Longitude: 85.2})},
		{Type: schema.IssueFlooding, Title: "far", Severity: schema.SeverityCritical,
			Location: schema.NewPoint(schema.Location{Latitude: 27.7, Longitude: 85.2})},
	} {
		s.NoError(s.store.CreateIssue(ctx, issue))
	}

	n, err := s.store.CountOpenIssuesNear(ctx, center, 500, []schema.Severity{schema.SeverityHigh, schema.SeverityCritical})
	s.NoError(err)
	s.Equal(int64(1), n)
}

func (s *MongoStoreTestSuite) TestAnalysisUpdatesLatestLOS() {
	ctx := context.Background()

	intersection := &schema.Intersection{
		Name:        "Kalanki Chowk",
		Location:    schema.NewPoint(schema.Location{Latitude: 27.693, Longitude: 85.281}),
		Roads:       []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()},
		ControlType: schema.ControlSignal,
		Capacity:    1800,
	}
	s.NoError(s.store.CreateIntersection(ctx, intersection))

	s.NoError(s.store.CreateIntersectionAnalysis(ctx, &schema.IntersectionAnalysis{
		IntersectionID: intersection.ID,
		LevelOfService: schema.LOSE,
	}))

	graded, err := s.store.GetIntersection(ctx, intersection.ID)
	s.NoError(err)
	s.Equal(schema.LOSE, graded.LatestLOS)
	s.NotNil(graded.AnalyzedAt)

	err = s.store.CreateIntersectionAnalysis(ctx, &schema.IntersectionAnalysis{IntersectionID: primitive.NewObjectID()})
	s.ErrorIs(err, ErrIntersectionNotFound)
}

func (s *MongoStoreTestSuite) TestPlanReview() {
	ctx := context.Background()

	plan := &schema.DecongestionPlan{IntersectionID: primitive.NewObjectID(), Title: "retime"}
	s.NoError(s.store.CreatePlan(ctx, plan))
	s.Equal(schema.PlanDraft, plan.Status)

	_, err := s.store.TransitPlanStatus(ctx, plan.ID, schema.PlanDraft, schema.PlanProposed, nil)
	s.NoError(err)

	reviewer := primitive.NewObjectID()
	approved, err := s.store.TransitPlanStatus(ctx, plan.ID, schema.PlanProposed, schema.PlanApproved,
		&schema.PlanReview{Reviewer: reviewer, Note: "fund it"})
	s.NoError(err)
	s.Equal(reviewer, *approved.ReviewedBy)
	s.Equal("fund it", approved.ReviewNote)
	s.NotNil(approved.ReviewedAt)

	_, err = s.store.TransitPlanStatus(ctx, plan.ID, schema.PlanProposed, schema.PlanRejected, nil)
	s.ErrorIs(err, ErrPlanStatusConflict)
}

func (s *MongoStoreTestSuite) TestStartReportOnce() {
	ctx := context.Background()

	report := &schema.Report{Title: "weekly", Type: schema.ReportTasks}
	s.NoError(s.store.CreateReport(ctx, report))
	s.Equal(schema.ReportPending, report.Status)

	started, err := s.store.StartReport(ctx, report.ID)
	s.NoError(err)
	s.Equal(schema.ReportGenerating, started.Status)

	_, err = s.store.StartReport(ctx, report.ID)
	s.ErrorIs(err, ErrReportInProgress)

	s.NoError(s.store.FailReport(ctx, report.ID, "boom"))
	retried, err := s.store.StartReport(ctx, report.ID)
	s.NoError(err)
	s.Empty(retried.Error)

	_, err = s.store.StartReport(ctx, primitive.NewObjectID())
	s.ErrorIs(err, ErrReportNotFound)
}

func TestMongoStoreTestSuite(t *testing.T) {
	suite.Run(t, NewMongoStoreTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "cityworks-test-db"))
}
