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

	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
)

func userRouter(s *Server, user *schema.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(user), requireRole(schema.RoleAdmin))
	router.GET("/", s.listUsers)
	router.PATCH("/:userID", s.updateUser)
	return router
}

func TestListUsersFilters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	worker := testUser(schema.RoleFieldWorker)
	m.EXPECT().ListUsers(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, filter schema.UserFilter) ([]schema.User, int64, error) {
			assert.Equal(t, schema.RoleFieldWorker, filter.Role)
			if assert.NotNil(t, filter.Active) {
				assert.False(t, *filter.Active)
			}
			return []schema.User{*worker}, 1, nil
		}).Times(1)

	w := httptest.NewRecorder()
	userRouter(&s, testUser(schema.RoleAdmin)).ServeHTTP(w, httptest.NewRequest("GET", "/?role=field_worker&active=false", nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var users []schema.User
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &users))
	assert.Len(t, users, 1)
}

func TestListUsersUnknownRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	w := httptest.NewRecorder()
	userRouter(&s, testUser(schema.RoleAdmin)).ServeHTTP(w, httptest.NewRequest("GET", "/?role=mayor", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestUsersAreAdminOnly(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{mongoStore: mocks.NewMockMongoStore(ctl)}

	for _, role := range []schema.Role{schema.RolePlanner, schema.RoleFieldWorker, schema.RoleCitizen} {
		router := userRouter(&s, testUser(role))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusForbidden, w.Code, string(role))
		assert.Equal(t, int64(1002), decodeResponse(t, w).Code)

		w = httptest.NewRecorder()
		router.ServeHTTP(w, jsonRequest("PATCH", "/"+primitive.NewObjectID().Hex(), gin.H{"role": "admin"}))
		assert.Equal(t, http.StatusForbidden, w.Code, string(role))
	}
}

func TestDeactivateUserRevokesTokens(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	tokens := mocks.NewMockTokenStore(ctl)
	s := Server{mongoStore: m, tokenStore: tokens}

	user := testUser(schema.RoleFieldWorker)
	inactive := false
	disabled := *user
	disabled.Active = false

	m.EXPECT().UpdateUser(gomock.Any(), user.ID, schema.UserUpdate{Active: &inactive}).Return(&disabled, nil).Times(1)
	tokens.EXPECT().RevokeUserTokens(gomock.Any(), user.ID.Hex()).Return(nil).Times(1)

	w := httptest.NewRecorder()
	userRouter(&s, testUser(schema.RoleAdmin)).ServeHTTP(w, jsonRequest("PATCH", "/"+user.ID.Hex(), gin.H{"active": false}))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var result schema.User
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.False(t, result.Active)
}
