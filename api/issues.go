package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/cityworks-api/schema"
)

const (
	defaultNearbyRadius = 500
	maxNearbyRadius     = 50000
	nearbyLimit         = 100
)

// resolveAddress fills the address of a location with google maps. Failures
// are logged and leave the address empty.
func (s *Server) resolveAddress(ctx context.Context, loc schema.Location) string {
	if s.geoClient == nil {
		return ""
	}

	address, err := s.geoClient.ReverseAddress(ctx, loc)
	if err != nil {
		log.WithError(err).Warn("fail to reverse geocode the location")
		return ""
	}
	return address
}

func (s *Server) createIssue(c *gin.Context) {
	var req struct {
		Type        schema.IssueType `json:"type" binding:"required"`
		Title       string           `json:"title" binding:"required,max=200"`
		Description string           `json:"description" binding:"max=5000"`
		Location    *locationRequest `json:"location" binding:"required"`
		Address     string           `json:"address" binding:"max=300"`
		Severity    schema.Severity  `json:"severity"`
		Images      []string         `json:"images" binding:"max=10,dive,url"`
		RoadID      string           `json:"road_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Severity == "" {
		req.Severity = schema.SeverityMedium
	}
	if !req.Type.Valid() || !req.Severity.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	roadID, ok := optionalObjectID(c, req.RoadID)
	if !ok {
		return
	}
	if roadID != nil {
		if _, err := s.mongoStore.GetRoad(c.Request.Context(), *roadID); shouldInterupt(err, c) {
			return
		}
	}

	loc := req.Location.toLocation()
	if req.Address == "" {
		req.Address = s.resolveAddress(c.Request.Context(), *loc)
	}

	issue := &schema.Issue{
		Type:        req.Type,
		Title:       req.Title,
		Description: req.Description,
		Location:    schema.NewPoint(*loc),
		Address:     req.Address,
		Severity:    req.Severity,
		ReportedBy:  currentUser(c).ID,
		Images:      req.Images,
		RoadID:      roadID,
	}
	if err := s.mongoStore.CreateIssue(c.Request.Context(), issue); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, issue)
}

func (s *Server) listIssues(c *gin.Context) {
	var params struct {
		pageQuery
		Status     schema.IssueStatus `form:"status"`
		Type       schema.IssueType   `form:"type"`
		Severity   schema.Severity    `form:"severity"`
		RoadID     string             `form:"road_id"`
		ReportedBy string             `form:"reported_by"`
		Mine       bool               `form:"mine"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if (params.Status != "" && !params.Status.Valid()) ||
		(params.Type != "" && !params.Type.Valid()) ||
		(params.Severity != "" && !params.Severity.Valid()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	roadID, ok := optionalObjectID(c, params.RoadID)
	if !ok {
		return
	}
	reporter, ok := optionalObjectID(c, params.ReportedBy)
	if !ok {
		return
	}
	if params.Mine {
		me := currentUser(c).ID
		reporter = &me
	}

	page := params.toPage()
	issues, total, err := s.mongoStore.ListIssues(c.Request.Context(), schema.IssueFilter{
		Status:     params.Status,
		Type:       params.Type,
		Severity:   params.Severity,
		RoadID:     roadID,
		ReportedBy: reporter,
		Page:       page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, issues, total, page)
}

func (s *Server) nearbyIssues(c *gin.Context) {
	var params struct {
		locationRequest
		Radius int `form:"radius" binding:"omitempty,min=1"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Radius == 0 {
		params.Radius = defaultNearbyRadius
	}
	if params.Radius > maxNearbyRadius {
		params.Radius = maxNearbyRadius
	}

	issues, err := s.mongoStore.NearbyIssues(c.Request.Context(), *params.toLocation(), params.Radius, nearbyLimit)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, issues)
}

func (s *Server) getIssue(c *gin.Context) {
	id, ok := paramObjectID(c, "issueID")
	if !ok {
		return
	}

	issue, err := s.mongoStore.GetIssue(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, issue)
}

func (s *Server) updateIssue(c *gin.Context) {
	id, ok := paramObjectID(c, "issueID")
	if !ok {
		return
	}

	var req struct {
		Type        *schema.IssueType   `json:"type"`
		Title       *string             `json:"title" binding:"omitempty,min=1,max=200"`
		Description *string             `json:"description" binding:"omitempty,max=5000"`
		Location    *locationRequest    `json:"location"`
		Address     *string             `json:"address" binding:"omitempty,max=300"`
		Severity    *schema.Severity    `json:"severity"`
		Status      *schema.IssueStatus `json:"status"`
		Images      *[]string           `json:"images" binding:"omitempty,max=10,dive,url"`
		RoadID      *string             `json:"road_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if (req.Type != nil && !req.Type.Valid()) ||
		(req.Severity != nil && !req.Severity.Valid()) ||
		(req.Status != nil && !req.Status.Valid()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	update := schema.IssueUpdate{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Type:        req.Type,
		Severity:    req.Severity,
		Status:      req.Status,
		Images:      req.Images,
		Location:    req.Location.toLocation(),
	}
	if req.RoadID != nil {
		roadID, ok := optionalObjectID(c, *req.RoadID)
		if !ok {
			return
		}
		if roadID == nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		if _, err := s.mongoStore.GetRoad(c.Request.Context(), *roadID); shouldInterupt(err, c) {
			return
		}
		update.RoadID = roadID
	}

	issue, err := s.mongoStore.UpdateIssue(c.Request.Context(), id, update)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, issue)
}

func (s *Server) deleteIssue(c *gin.Context) {
	id, ok := paramObjectID(c, "issueID")
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteIssue(c.Request.Context(), id); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{"id": id})
}

// createIssueTask turns an issue into a work task and links them together
func (s *Server) createIssueTask(c *gin.Context) {
	id, ok := paramObjectID(c, "issueID")
	if !ok {
		return
	}

	var req struct {
		Title            string     `json:"title" binding:"max=200"`
		Description      string     `json:"description" binding:"max=5000"`
		AssignedTo       string     `json:"assigned_to"`
		EstimatedMinutes int        `json:"estimated_minutes" binding:"omitempty,min=1,max=1440"`
		DueDate          *time.Time `json:"due_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	issue, err := s.mongoStore.GetIssue(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}
	if issue.TaskID != nil {
		abortWithEncoding(c, http.StatusConflict, errorIssueHasTask)
		return
	}

	assignee, ok := s.lookupAssignee(c, req.AssignedTo)
	if !ok {
		return
	}

	title := req.Title
	if title == "" {
		title = issue.Title
	}
	description := req.Description
	if description == "" {
		description = issue.Description
	}

	task := &schema.Task{
		Title:            title,
		Description:      description,
		IssueID:          &issue.ID,
		AssignedTo:       assignee,
		CreatedBy:        currentUser(c).ID,
		Priority:         issue.Severity.Priority(),
		Location:         issue.Location,
		EstimatedMinutes: req.EstimatedMinutes,
		DueDate:          req.DueDate,
	}
	if err := s.mongoStore.CreateTask(c.Request.Context(), task); shouldInterupt(err, c) {
		return
	}

	if !s.linkIssueTask(c, task) {
		return
	}

	responseResult(c, http.StatusCreated, task)
}
