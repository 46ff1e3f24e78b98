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

	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

func planStatusRouter(s *Server, user *schema.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(user))
	router.PATCH("/:planID/status", s.updatePlanStatus)
	return router
}

func TestApprovePlan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	admin := testUser(schema.RoleAdmin)
	plan := &schema.DecongestionPlan{ID: primitive.NewObjectID(), Status: schema.PlanProposed}
	approved := *plan
	approved.Status = schema.PlanApproved
	approved.ReviewedBy = &admin.ID
	approved.ReviewNote = "go ahead"

	m.EXPECT().GetPlan(gomock.Any(), plan.ID).Return(plan, nil).Times(1)
	m.EXPECT().TransitPlanStatus(gomock.Any(), plan.ID, schema.PlanProposed, schema.PlanApproved,
		&schema.PlanReview{Reviewer: admin.ID, Note: "go ahead"}).Return(&approved, nil).Times(1)

	w := httptest.NewRecorder()
	planStatusRouter(&s, admin).ServeHTTP(w, jsonRequest("PATCH", "/"+plan.ID.Hex()+"/status", gin.H{
		"status": "approved",
		"note":   "go ahead",
	}))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var result schema.DecongestionPlan
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.Equal(t, schema.PlanApproved, result.Status)
	assert.Equal(t, admin.ID, *result.ReviewedBy)
}

func TestPlannerCannotApprovePlan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	w := httptest.NewRecorder()
	planStatusRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w,
		jsonRequest("PATCH", "/"+primitive.NewObjectID().Hex()+"/status", gin.H{"status": "rejected"}))

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Equal(t, int64(1002), decodeResponse(t, w).Code)
}

func TestProposePlan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	plan := &schema.DecongestionPlan{ID: primitive.NewObjectID(), Status: schema.PlanDraft}
	proposed := *plan
	proposed.Status = schema.PlanProposed

	m.EXPECT().GetPlan(gomock.Any(), plan.ID).Return(plan, nil).Times(1)
	m.EXPECT().TransitPlanStatus(gomock.Any(), plan.ID, schema.PlanDraft, schema.PlanProposed, nil).
		Return(&proposed, nil).Times(1)

	w := httptest.NewRecorder()
	planStatusRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w,
		jsonRequest("PATCH", "/"+plan.ID.Hex()+"/status", gin.H{"status": "proposed"}))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestPlanInvalidTransition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	plan := &schema.DecongestionPlan{ID: primitive.NewObjectID(), Status: schema.PlanDraft}
	m.EXPECT().GetPlan(gomock.Any(), plan.ID).Return(plan, nil).Times(1)

	w := httptest.NewRecorder()
	planStatusRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w,
		jsonRequest("PATCH", "/"+plan.ID.Hex()+"/status", gin.H{"status": "implemented"}))

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	assert.Equal(t, int64(1602), decodeResponse(t, w).Code)
}

func TestPlanNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	id := primitive.NewObjectID()
	m.EXPECT().GetPlan(gomock.Any(), id).Return(nil, store.ErrPlanNotFound).Times(1)

	w := httptest.NewRecorder()
	planStatusRouter(&s, testUser(schema.RolePlanner)).ServeHTTP(w,
		jsonRequest("PATCH", "/"+id.Hex()+"/status", gin.H{"status": "proposed"}))

	assert.Equal(t, http.StatusNotFound, w.Code, "wrong status code")
	assert.Equal(t, int64(1600), decodeResponse(t, w).Code)
}

func TestUpdateProposedPlan(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	plan := &schema.DecongestionPlan{ID: primitive.NewObjectID(), Status: schema.PlanProposed}
	m.EXPECT().GetPlan(gomock.Any(), plan.ID).Return(plan, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RolePlanner)))
	router.PATCH("/:planID", s.updatePlan)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, jsonRequest("PATCH", "/"+plan.ID.Hex(), gin.H{"title": "retime signals"}))

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")
	assert.Equal(t, int64(1603), decodeResponse(t, w).Code)
}
