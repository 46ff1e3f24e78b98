package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/live"
	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
)

func annotationRouter(s *Server, user *schema.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(user))
	router.POST("/:sessionID/annotations", s.createAnnotation)
	router.POST("/:sessionID/leave", s.leaveSession)
	return router
}

func TestCreateAnnotation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m, hub: live.NewHub(nil)}
	defer s.hub.Close()

	member := testUser(schema.RolePlanner)
	session := &schema.PlanningSession{
		ID:           primitive.NewObjectID(),
		Owner:        primitive.NewObjectID(),
		Participants: []primitive.ObjectID{member.ID},
		Status:       schema.SessionActive,
	}

	m.EXPECT().GetPlanningSession(gomock.Any(), session.ID).Return(session, nil).Times(1)
	m.EXPECT().CreateAnnotation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *schema.PlanningAnnotation) error {
		a.ID = primitive.NewObjectID()
		return nil
	}).Times(1)

	w := httptest.NewRecorder()
	annotationRouter(&s, member).ServeHTTP(w, jsonRequest("POST", "/"+session.ID.Hex()+"/annotations", gin.H{
		"kind": "line",
		"points": []gin.H{
			{"latitude": 27.70, "longitude": 85.30},
			{"latitude": 27.71, "longitude": 85.31},
		},
		"color": "#ff0000",
	}))

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var result schema.PlanningAnnotation
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.Equal(t, member.ID, result.Author)
	assert.Equal(t, session.ID, result.SessionID)
	assert.Len(t, result.Points, 2)
}

func TestCreateAnnotationWrongPoints(t *testing.T) {
	s := Server{}

	w := httptest.NewRecorder()
	annotationRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w,
		jsonRequest("POST", "/"+primitive.NewObjectID().Hex()+"/annotations", gin.H{
			"kind":   "polygon",
			"points": []gin.H{{"latitude": 27.70, "longitude": 85.30}},
		}))

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.Equal(t, int64(1704), decodeResponse(t, w).Code)
}

func TestCreateAnnotationNotMember(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	session := &schema.PlanningSession{
		ID:           primitive.NewObjectID(),
		Owner:        primitive.NewObjectID(),
		Participants: []primitive.ObjectID{},
		Status:       schema.SessionActive,
	}
	m.EXPECT().GetPlanningSession(gomock.Any(), session.ID).Return(session, nil).Times(1)

	w := httptest.NewRecorder()
	annotationRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w,
		jsonRequest("POST", "/"+session.ID.Hex()+"/annotations", gin.H{
			"kind":   "marker",
			"points": []gin.H{{"latitude": 27.70, "longitude": 85.30}},
		}))

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Equal(t, int64(1705), decodeResponse(t, w).Code)
}

func TestCreateAnnotationArchivedSession(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	owner := testUser(schema.RolePlanner)
	session := &schema.PlanningSession{
		ID:     primitive.NewObjectID(),
		Owner:  owner.ID,
		Status: schema.SessionArchived,
	}
	m.EXPECT().GetPlanningSession(gomock.Any(), session.ID).Return(session, nil).Times(1)

	w := httptest.NewRecorder()
	annotationRouter(&s, owner).ServeHTTP(w,
		jsonRequest("POST", "/"+session.ID.Hex()+"/annotations", gin.H{"kind": "note", "text": "closed"}))

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	assert.Equal(t, int64(1702), decodeResponse(t, w).Code)
}

func TestOwnerCannotLeaveSession(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	owner := testUser(schema.RoleAdmin)
	session := &schema.PlanningSession{ID: primitive.NewObjectID(), Owner: owner.ID, Status: schema.SessionActive}
	m.EXPECT().GetPlanningSession(gomock.Any(), session.ID).Return(session, nil).Times(1)

	w := httptest.NewRecorder()
	annotationRouter(&s, owner).ServeHTTP(w, jsonRequest("POST", "/"+session.ID.Hex()+"/leave", nil))

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	assert.Equal(t, int64(1703), decodeResponse(t, w).Code)
}
