package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
)

func TestUpdateTaskStatusResolvesIssue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	worker := testUser(schema.RoleFieldWorker)
	issueID := primitive.NewObjectID()
	task := &schema.Task{
		ID:         primitive.NewObjectID(),
		IssueID:    &issueID,
		AssignedTo: &worker.ID,
		Status:     schema.TaskInProgress,
	}
	completed := *task
	completed.Status = schema.TaskCompleted
	noted := completed
	noted.Notes = []schema.TaskNote{{Author: worker.ID, Text: "patched"}}

	resolved := schema.IssueResolved
	m.EXPECT().GetTask(gomock.Any(), task.ID).Return(task, nil).Times(1)
	m.EXPECT().TransitTaskStatus(gomock.Any(), task.ID, schema.TaskInProgress, schema.TaskCompleted).Return(&completed, nil).Times(1)
	m.EXPECT().AddTaskNote(gomock.Any(), task.ID, gomock.Any()).Return(&noted, nil).Times(1)
	m.EXPECT().UpdateIssue(gomock.Any(), issueID, schema.IssueUpdate{Status: &resolved}).Return(&schema.Issue{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(worker))
	router.PATCH("/:taskID/status", s.updateTaskStatus)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PATCH", "/"+task.ID.Hex()+"/status", gin.H{
		"status": "completed",
		"note":   "patched",
	}))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var result schema.Task
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.Equal(t, schema.TaskCompleted, result.Status)
	assert.Len(t, result.Notes, 1)
}

func TestUpdateTaskStatusInvalidTransition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	task := &schema.Task{ID: primitive.NewObjectID(), Status: schema.TaskPending}
	m.EXPECT().GetTask(gomock.Any(), task.ID).Return(task, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RolePlanner)))
	router.PATCH("/:taskID/status", s.updateTaskStatus)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PATCH", "/"+task.ID.Hex()+"/status", gin.H{"status": "completed"}))

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	assert.Equal(t, int64(1302), decodeResponse(t, w).Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PATCH", "/"+task.ID.Hex()+"/status", gin.H{"status": "done"}))
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown status")
}

func TestFieldWorkerCannotReadOthersTask(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	other := primitive.NewObjectID()
	task := &schema.Task{ID: primitive.NewObjectID(), AssignedTo: &other, Status: schema.TaskPending}
	m.EXPECT().GetTask(gomock.Any(), task.ID).Return(task, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RoleFieldWorker)))
	router.GET("/:taskID", s.getTask)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/"+task.ID.Hex(), nil))

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Equal(t, int64(1002), decodeResponse(t, w).Code)
}

func TestGetTaskMalformedID(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RoleAdmin)))
	router.GET("/:taskID", s.getTask)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/not-an-id", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1010), decodeResponse(t, w).Code)
}

func TestOptimizeRouteOpenTasks(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	worker := testUser(schema.RoleFieldWorker)
	low := schema.Task{
		ID:       primitive.NewObjectID(),
		Title:    "repaint crossing",
		Priority: schema.PriorityLow,
		Location: schema.NewPoint(schema.Location{Latitude: 27.70, Longitude: 85.30}),
		Status:   schema.TaskPending,
	}
	critical := schema.Task{
		ID:       primitive.NewObjectID(),
		Title:    "fill sinkhole",
		Priority: schema.PriorityCritical,
		Location: schema.NewPoint(schema.Location{Latitude: 27.75, Longitude: 85.35}),
		Status:   schema.TaskInProgress,
	}
	m.EXPECT().ListOpenTasks(gomock.Any(), worker.ID).Return([]schema.Task{low, critical}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(worker))
	router.POST("/route", s.optimizeRoute)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/route", gin.H{
		"start":    gin.H{"latitude": 27.7, "longitude": 85.3},
		"start_at": "2024-03-01T08:00:00Z",
	}))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var route analysis.Route
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &route))
	assert.Len(t, route.Stops, 2)
	assert.Equal(t, critical.ID, route.Stops[0].TaskID)
	assert.Equal(t, low.ID, route.Stops[1].TaskID)
	assert.Equal(t, 1, route.Stops[0].Sequence)
}

func TestOptimizeRouteRequiresStart(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RoleFieldWorker)))
	router.POST("/route", s.optimizeRoute)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/route", gin.H{"task_ids": []string{}}))

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestDeleteTaskFreesIssue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	issueID := primitive.NewObjectID()
	task := &schema.Task{ID: primitive.NewObjectID(), IssueID: &issueID, Status: schema.TaskPending}

	gomock.InOrder(
		m.EXPECT().GetTask(gomock.Any(), task.ID).Return(task, nil).Times(1),
		m.EXPECT().DeleteTask(gomock.Any(), task.ID).Return(nil).Times(1),
		m.EXPECT().UnlinkIssueTask(gomock.Any(), issueID, task.ID).Return(nil).Times(1),
	)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RolePlanner)))
	router.DELETE("/:taskID", s.deleteTask)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/"+task.ID.Hex(), nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestDeleteTaskWithoutIssue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	task := &schema.Task{ID: primitive.NewObjectID(), Status: schema.TaskPending}
	m.EXPECT().GetTask(gomock.Any(), task.ID).Return(task, nil).Times(1)
	m.EXPECT().DeleteTask(gomock.Any(), task.ID).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RoleAdmin)))
	router.DELETE("/:taskID", s.deleteTask)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("DELETE", "/"+task.ID.Hex(), nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestCancelTaskFreesIssue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	issueID := primitive.NewObjectID()
	task := &schema.Task{ID: primitive.NewObjectID(), IssueID: &issueID, Status: schema.TaskInProgress}
	cancelled := *task
	cancelled.Status = schema.TaskCancelled

	m.EXPECT().GetTask(gomock.Any(), task.ID).Return(task, nil).Times(1)
	m.EXPECT().TransitTaskStatus(gomock.Any(), task.ID, schema.TaskInProgress, schema.TaskCancelled).Return(&cancelled, nil).Times(1)
	m.EXPECT().UnlinkIssueTask(gomock.Any(), issueID, task.ID).Return(nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RolePlanner)))
	router.PATCH("/:taskID/status", s.updateTaskStatus)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PATCH", "/"+task.ID.Hex()+"/status", gin.H{"status": "cancelled"}))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var result schema.Task
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.Equal(t, schema.TaskCancelled, result.Status)
}
