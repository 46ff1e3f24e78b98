package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

func intersectionRouter(s *Server, user *schema.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(user))
	router.POST("/", s.createIntersection)
	router.GET("/congested", s.congestedIntersections)
	router.PATCH("/:intersectionID", s.updateIntersection)
	router.POST("/:intersectionID/analyses", s.analyzeIntersection)
	return router
}

func intersectionBody(roads ...primitive.ObjectID) gin.H {
	hexes := make([]string, 0, len(roads))
	for _, r := range roads {
		hexes = append(hexes, r.Hex())
	}
	return gin.H{
		"name":         "Maitighar Mandala",
		"location":     gin.H{"latitude": 27.694, "longitude": 85.32},
		"control_type": "signal",
		"capacity":     1800,
		"roads":        hexes,
	}
}

func TestCreateIntersection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	north, south := primitive.NewObjectID(), primitive.NewObjectID()
	m.EXPECT().GetRoad(gomock.Any(), north).Return(&schema.Road{ID: north}, nil).Times(1)
	m.EXPECT().GetRoad(gomock.Any(), south).Return(&schema.Road{ID: south}, nil).Times(1)
	m.EXPECT().CreateIntersection(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, i *schema.Intersection) error {
		i.ID = primitive.NewObjectID()
		return nil
	}).Times(1)

	w := httptest.NewRecorder()
	intersectionRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w, jsonRequest("POST", "/", intersectionBody(north, south)))

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var intersection schema.Intersection
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &intersection))
	assert.Equal(t, []primitive.ObjectID{north, south}, intersection.Roads)
	assert.Equal(t, schema.ControlSignal, intersection.ControlType)
}

func TestCreateIntersectionNeedsTwoRoads(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{mongoStore: mocks.NewMockMongoStore(ctl)}
	router := intersectionRouter(&s, testUser(schema.RolePlanner))

	road := primitive.NewObjectID()

	noRoads := intersectionBody()
	delete(noRoads, "roads")

	for name, body := range map[string]gin.H{
		"missing":   noRoads,
		"empty":     intersectionBody(),
		"one road":  intersectionBody(road),
		"same road": intersectionBody(road, road),
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("POST", "/", body))
		assert.Equal(t, http.StatusBadRequest, w.Code, name)
	}
}

func TestCreateIntersectionUnknownRoad(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	known, unknown := primitive.NewObjectID(), primitive.NewObjectID()
	m.EXPECT().GetRoad(gomock.Any(), known).Return(&schema.Road{ID: known}, nil).Times(1)
	m.EXPECT().GetRoad(gomock.Any(), unknown).Return(nil, store.ErrRoadNotFound).Times(1)

	w := httptest.NewRecorder()
	intersectionRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w, jsonRequest("POST", "/", intersectionBody(known, unknown)))

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
}

func TestUpdateIntersectionRoads(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}
	router := intersectionRouter(&s, testUser(schema.RolePlanner))

	id := primitive.NewObjectID()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PATCH", "/"+id.Hex(), gin.H{"roads": []string{primitive.NewObjectID().Hex()}}))
	assert.Equal(t, http.StatusBadRequest, w.Code, "a single road")

	m.EXPECT().UpdateIntersection(gomock.Any(), id, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ primitive.ObjectID, update schema.IntersectionUpdate) (*schema.Intersection, error) {
			assert.Nil(t, update.Roads)
			return &schema.Intersection{ID: id, Capacity: *update.Capacity}, nil
		}).Times(1)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PATCH", "/"+id.Hex(), gin.H{"capacity": 2400}))
	assert.Equal(t, http.StatusOK, w.Code, "roads untouched")
}

func TestAnalyzeIntersection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	engineer := testUser(schema.RolePlanner)
	intersection := &schema.Intersection{
		ID:          primitive.NewObjectID(),
		ControlType: schema.ControlSignal,
		Capacity:    1000,
		LatestLOS:   schema.LOSB,
	}

	var stored *schema.IntersectionAnalysis
	m.EXPECT().GetIntersection(gomock.Any(), intersection.ID).Return(intersection, nil).Times(1)
	m.EXPECT().CreateIntersectionAnalysis(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *schema.IntersectionAnalysis) error {
		a.ID = primitive.NewObjectID()
		stored = a
		return nil
	}).Times(1)

	start := time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC)
	w := httptest.NewRecorder()
	intersectionRouter(&s, engineer).ServeHTTP(w, jsonRequest("POST", "/"+intersection.ID.Hex()+"/analyses", gin.H{
		"window_start":       start,
		"window_end":         start.Add(time.Hour),
		"peak_hour_volume":   1100,
		"average_delay_secs": 30,
		"queue_length":       12,
	}))

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")
	if assert.NotNil(t, stored) {
		assert.Equal(t, intersection.ID, stored.IntersectionID)
		assert.Equal(t, engineer.ID, stored.AnalyzedBy)
		// over capacity forces the worst grade
		assert.Equal(t, schema.LOSF, stored.LevelOfService)
		assert.Equal(t, 1.1, stored.VolumeCapacityRatio)
		assert.Equal(t, schema.CongestionHigh, stored.CongestionLevel)
		assert.NotEmpty(t, stored.Recommendations)
	}
}

func TestCongestedIntersectionsDefaultLevel(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}
	router := intersectionRouter(&s, testUser(schema.RoleCitizen))

	m.EXPECT().ListIntersections(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter schema.IntersectionFilter) ([]schema.Intersection, int64, error) {
			assert.Equal(t, schema.LOSE, filter.MinLOS)
			return []schema.Intersection{{ID: primitive.NewObjectID(), LatestLOS: schema.LOSF}}, 1, nil
		}).Times(1)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/congested", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	m.EXPECT().ListIntersections(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter schema.IntersectionFilter) ([]schema.Intersection, int64, error) {
			assert.Equal(t, schema.LOSD, filter.MinLOS)
			return []schema.Intersection{}, 0, nil
		}).Times(1)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/congested?min_level=D", nil))
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/congested?min_level=G", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code, "unknown level")
}
