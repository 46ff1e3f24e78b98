package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	extmocks "github.com/bitmark-inc/cityworks-api/external/mocks"
	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
)

type fakeEnqueuer struct {
	enqueued []primitive.ObjectID
	err      error
}

func (f *fakeEnqueuer) EnqueueReport(ctx context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	f.enqueued = append(f.enqueued, id)
	return nil
}

func TestCreateReportEnqueued(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	q := &fakeEnqueuer{}
	s := Server{mongoStore: m, enqueuer: q}

	planner := testUser(schema.RolePlanner)
	reportID := primitive.NewObjectID()
	m.EXPECT().CreateReport(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *schema.Report) error {
		r.ID = reportID
		r.Status = schema.ReportPending
		return nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(planner))
	router.POST("/", s.createReport)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("POST", "/", gin.H{
		"title": "march tasks",
		"type":  "tasks",
		"from":  "2024-03-01T00:00:00Z",
		"to":    "2024-04-01T00:00:00Z",
	}))

	assert.Equal(t, http.StatusAccepted, w.Code, "wrong status code")
	assert.Equal(t, []primitive.ObjectID{reportID}, q.enqueued)

	var result schema.Report
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.Equal(t, planner.ID, result.GeneratedBy)
	assert.Equal(t, schema.ReportPending, result.Status)
	assert.Equal(t, 2024, result.Parameters.From.Year())
}

func TestCreateReportInvalidWindow(t *testing.T) {
	s := Server{}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RolePlanner)))
	router.POST("/", s.createReport)

	for _, body := range []gin.H{
		{"title": "t", "type": "tasks", "from": "2024-04-01T00:00:00Z", "to": "2024-03-01T00:00:00Z"},
		{"title": "t", "type": "weather"},
		{"type": "tasks"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("POST", "/", body))
		assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	}
}

func TestDownloadReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	o := extmocks.NewMockObjectStore(ctl)
	s := Server{mongoStore: m, objects: o}

	r := &schema.Report{ID: primitive.NewObjectID(), Status: schema.ReportCompleted, FileKey: "reports/a.xlsx"}
	m.EXPECT().GetReport(gomock.Any(), r.ID).Return(r, nil).Times(1)
	o.EXPECT().PresignedURL(gomock.Any(), "reports/a.xlsx", downloadExpiry).
		Return("https://objects.test/reports/a.xlsx?sig=1", nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RolePlanner)))
	router.GET("/:reportID/download", s.downloadReport)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/"+r.ID.Hex()+"/download", nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var result struct {
		URL string `json:"url"`
	}
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.Equal(t, "https://objects.test/reports/a.xlsx?sig=1", result.URL)
}

func TestDownloadReportNotExported(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m, objects: extmocks.NewMockObjectStore(ctl)}

	r := &schema.Report{ID: primitive.NewObjectID(), Status: schema.ReportPending}
	m.EXPECT().GetReport(gomock.Any(), r.ID).Return(r, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RolePlanner)))
	router.GET("/:reportID/download", s.downloadReport)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/"+r.ID.Hex()+"/download", nil))

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, int64(1901), decodeResponse(t, w).Code)
}

func TestUnexpectedStoreError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().GetReport(gomock.Any(), id).Return(nil, fmt.Errorf("connection reset")).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RoleAdmin)))
	router.GET("/:reportID", s.getReport)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/"+id.Hex(), nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
	assert.Equal(t, int64(999), decodeResponse(t, w).Code)
}
