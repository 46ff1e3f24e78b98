package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func (s *Server) listUsers(c *gin.Context) {
	var params struct {
		pageQuery
		Role   schema.Role `form:"role"`
		Active *bool       `form:"active"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Role != "" && !params.Role.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	page := params.toPage()
	users, total, err := s.mongoStore.ListUsers(c.Request.Context(), schema.UserFilter{
		Role:   params.Role,
		Active: params.Active,
		Page:   page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, users, total, page)
}

// updateUser lets admins change the role, the department and the activation of a user
func (s *Server) updateUser(c *gin.Context) {
	id, ok := paramObjectID(c, "userID")
	if !ok {
		return
	}

	var req struct {
		Role       *schema.Role `json:"role"`
		Department *string      `json:"department" binding:"omitempty,max=100"`
		Active     *bool        `json:"active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Role != nil && !req.Role.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	user, err := s.mongoStore.UpdateUser(c.Request.Context(), id, schema.UserUpdate{
		Role:       req.Role,
		Department: req.Department,
		Active:     req.Active,
	})
	if shouldInterupt(err, c) {
		return
	}

	if req.Active != nil && !*req.Active {
		if err := s.tokenStore.RevokeUserTokens(c.Request.Context(), id.Hex()); err != nil {
			log.WithError(err).Warn("fail to revoke refresh tokens of a deactivated user")
		}
	}

	responseResult(c, http.StatusOK, user)
}
