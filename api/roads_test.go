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
)

func roadRouter(s *Server, user *schema.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(user))
	router.POST("/", s.createRoad)
	router.POST("/:roadID/inspections", s.inspectRoad)
	return router
}

func TestCreateRoadComputesLength(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().CreateRoad(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, road *schema.Road) error {
		road.ID = primitive.NewObjectID()
		return nil
	}).Times(1)

	w := httptest.NewRecorder()
	roadRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w, jsonRequest("POST", "/", gin.H{
		"name": "Kanti Path",
		"points": []gin.H{
			{"latitude": 27.70, "longitude": 85.30},
			{"latitude": 27.71, "longitude": 85.30},
		},
		"condition_score": 62,
	}))

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var road schema.Road
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &road))
	assert.InDelta(t, 1.11, road.LengthKm, 0.01)
	assert.Equal(t, 2, road.Lanes)
	assert.Equal(t, schema.SurfaceAsphalt, road.Surface)
	assert.Equal(t, schema.ConditionFair, road.Condition)
}

func TestCreateRoadKeepsGivenLength(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	m.EXPECT().CreateRoad(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w := httptest.NewRecorder()
	roadRouter(&s, testUser(schema.RoleAdmin)).ServeHTTP(w, jsonRequest("POST", "/", gin.H{
		"name": "Ring Road",
		"points": []gin.H{
			{"latitude": 27.70, "longitude": 85.30},
			{"latitude": 27.71, "longitude": 85.30},
		},
		"length_km": 27,
	}))

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var road schema.Road
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &road))
	assert.Equal(t, 27.0, road.LengthKm)
}

func TestCreateRoadInvalid(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{mongoStore: mocks.NewMockMongoStore(ctl)}
	router := roadRouter(&s, testUser(schema.RolePlanner))

	points := []gin.H{
		{"latitude": 27.70, "longitude": 85.30},
		{"latitude": 27.71, "longitude": 85.30},
	}
	for _, body := range []gin.H{
		{"points": points},
		{"name": "one point", "points": points[:1]},
		{"name": "too many lanes", "points": points, "lanes": 13},
		{"name": "mud", "points": points, "surface": "mud"},
	} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("POST", "/", body))
		assert.Equal(t, http.StatusBadRequest, w.Code, body["name"])
	}
}

func TestInspectRoad(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	worker := testUser(schema.RoleFieldWorker)
	roadID := primitive.NewObjectID()
	inspectedAt := time.Date(2024, 3, 4, 10, 0, 0, 0, time.UTC)

	m.EXPECT().AddRoadInspection(gomock.Any(), roadID, gomock.Any(), schema.ConditionPoor).
		DoAndReturn(func(_ context.Context, _ primitive.ObjectID, inspection schema.RoadInspection, condition schema.RoadCondition) (*schema.Road, error) {
			assert.Equal(t, worker.ID, inspection.InspectedBy)
			assert.Equal(t, 40.0, inspection.Score)
			assert.Equal(t, "alligator cracking", inspection.Notes)

			inspection.InspectedAt = inspectedAt
			return &schema.Road{
				ID:              roadID,
				ConditionScore:  inspection.Score,
				Condition:       condition,
				LastInspectedAt: &inspectedAt,
				Inspections:     []schema.RoadInspection{inspection},
			}, nil
		}).Times(1)

	w := httptest.NewRecorder()
	roadRouter(&s, worker).ServeHTTP(w, jsonRequest("POST", "/"+roadID.Hex()+"/inspections", gin.H{
		"score": 40,
		"notes": "alligator cracking",
	}))

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var road schema.Road
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &road))
	assert.Equal(t, 40.0, road.ConditionScore)
	assert.Equal(t, schema.ConditionPoor, road.Condition)
	assert.True(t, inspectedAt.Equal(*road.LastInspectedAt))
	assert.Len(t, road.Inspections, 1)
}

func TestInspectRoadScoreOutOfRange(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	w := httptest.NewRecorder()
	roadRouter(&s, testUser(schema.RoleFieldWorker)).ServeHTTP(w,
		jsonRequest("POST", "/"+primitive.NewObjectID().Hex()+"/inspections", gin.H{"score": 120}))

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1010), decodeResponse(t, w).Code)
}
