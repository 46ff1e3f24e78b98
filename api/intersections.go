package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/schema"
)

const (
	defaultAnalysisLimit = 20
	maxAnalysisLimit     = 100
)

type intersectionRequest struct {
	Name        *string             `json:"name" binding:"omitempty,min=1,max=200"`
	Location    *locationRequest    `json:"location"`
	Roads       *[]string           `json:"roads" binding:"omitempty,min=2,max=16,unique"`
	ControlType *schema.ControlType `json:"control_type"`
	Capacity    *int                `json:"capacity" binding:"omitempty,min=1"`
}

// intersectionRoads parses the ids of the roads meeting at an intersection and
// makes sure every road exists
func (s *Server) intersectionRoads(c *gin.Context, hexes []string) ([]primitive.ObjectID, bool) {
	roads, ok := objectIDs(c, hexes)
	if !ok {
		return nil, false
	}

	for _, id := range roads {
		if _, err := s.mongoStore.GetRoad(c.Request.Context(), id); shouldInterupt(err, c) {
			return nil, false
		}
	}

	return roads, true
}

func (s *Server) createIntersection(c *gin.Context) {
	var req intersectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Name == nil || req.Location == nil || req.Capacity == nil || req.Roads == nil ||
		req.ControlType == nil || !req.ControlType.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	intersection := &schema.Intersection{
		Name:        *req.Name,
		Location:    schema.NewPoint(*req.Location.toLocation()),
		ControlType: *req.ControlType,
		Capacity:    *req.Capacity,
	}
	roads, ok := s.intersectionRoads(c, *req.Roads)
	if !ok {
		return
	}
	intersection.Roads = roads

	if err := s.mongoStore.CreateIntersection(c.Request.Context(), intersection); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, intersection)
}

func (s *Server) listIntersections(c *gin.Context) {
	var params struct {
		pageQuery
		ControlType schema.ControlType    `form:"control_type"`
		MinLOS      schema.LevelOfService `form:"min_los"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if (params.ControlType != "" && !params.ControlType.Valid()) ||
		(params.MinLOS != "" && !params.MinLOS.Valid()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	page := params.toPage()
	intersections, total, err := s.mongoStore.ListIntersections(c.Request.Context(), schema.IntersectionFilter{
		ControlType: params.ControlType,
		MinLOS:      params.MinLOS,
		Page:        page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, intersections, total, page)
}

// congestedIntersections lists intersections graded E or worse unless a
// different minimum level is given
func (s *Server) congestedIntersections(c *gin.Context) {
	var params struct {
		pageQuery
		MinLevel schema.LevelOfService `form:"min_level"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.MinLevel == "" {
		params.MinLevel = schema.LOSE
	}
	if !params.MinLevel.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	page := params.toPage()
	intersections, total, err := s.mongoStore.ListIntersections(c.Request.Context(), schema.IntersectionFilter{
		MinLOS: params.MinLevel,
		Page:   page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, intersections, total, page)
}

func (s *Server) getIntersection(c *gin.Context) {
	id, ok := paramObjectID(c, "intersectionID")
	if !ok {
		return
	}

	intersection, err := s.mongoStore.GetIntersection(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, intersection)
}

func (s *Server) updateIntersection(c *gin.Context) {
	id, ok := paramObjectID(c, "intersectionID")
	if !ok {
		return
	}

	var req intersectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.ControlType != nil && !req.ControlType.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	update := schema.IntersectionUpdate{
		Name:        req.Name,
		Location:    req.Location.toLocation(),
		ControlType: req.ControlType,
		Capacity:    req.Capacity,
	}
	if req.Roads != nil {
		roads, ok := s.intersectionRoads(c, *req.Roads)
		if !ok {
			return
		}
		update.Roads = &roads
	}

	intersection, err := s.mongoStore.UpdateIntersection(c.Request.Context(), id, update)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, intersection)
}

func (s *Server) deleteIntersection(c *gin.Context) {
	id, ok := paramObjectID(c, "intersectionID")
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteIntersection(c.Request.Context(), id); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{"id": id})
}

// analyzeIntersection grades a traffic observation and stores it as the
// latest analysis of the intersection
func (s *Server) analyzeIntersection(c *gin.Context) {
	id, ok := paramObjectID(c, "intersectionID")
	if !ok {
		return
	}

	var req struct {
		WindowStart      time.Time `json:"window_start" binding:"required"`
		WindowEnd        time.Time `json:"window_end" binding:"required,gtfield=WindowStart"`
		PeakHourVolume   *int      `json:"peak_hour_volume" binding:"required,min=0"`
		AverageDelaySecs *float64  `json:"average_delay_secs" binding:"required,min=0"`
		QueueLength      int       `json:"queue_length" binding:"min=0"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	intersection, err := s.mongoStore.GetIntersection(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	obs := schema.TrafficObservation{
		WindowStart:      req.WindowStart.UTC(),
		WindowEnd:        req.WindowEnd.UTC(),
		PeakHourVolume:   *req.PeakHourVolume,
		AverageDelaySecs: *req.AverageDelaySecs,
		QueueLength:      req.QueueLength,
	}
	result := analysis.AnalyzeTraffic(intersection.ControlType, intersection.Capacity, obs)

	record := &schema.IntersectionAnalysis{
		IntersectionID:      intersection.ID,
		Observation:         obs,
		VolumeCapacityRatio: result.VolumeCapacityRatio,
		LevelOfService:      result.LevelOfService,
		CongestionIndex:     result.CongestionIndex,
		CongestionLevel:     result.CongestionLevel,
		Recommendations:     result.Recommendations,
		AnalyzedBy:          currentUser(c).ID,
	}
	if err := s.mongoStore.CreateIntersectionAnalysis(c.Request.Context(), record); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, record)
}

func (s *Server) listIntersectionAnalyses(c *gin.Context) {
	id, ok := paramObjectID(c, "intersectionID")
	if !ok {
		return
	}

	var params struct {
		Limit int64 `form:"limit" binding:"omitempty,min=1"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Limit == 0 {
		params.Limit = defaultAnalysisLimit
	}
	if params.Limit > maxAnalysisLimit {
		params.Limit = maxAnalysisLimit
	}

	if _, err := s.mongoStore.GetIntersection(c.Request.Context(), id); shouldInterupt(err, c) {
		return
	}

	analyses, err := s.mongoStore.ListIntersectionAnalyses(c.Request.Context(), id, params.Limit)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, analyses)
}

// suggestPlan drafts a decongestion plan from the latest analysis. Nothing
// is stored.
func (s *Server) suggestPlan(c *gin.Context) {
	id, ok := paramObjectID(c, "intersectionID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	intersection, err := s.mongoStore.GetIntersection(ctx, id)
	if shouldInterupt(err, c) {
		return
	}

	latest, err := s.mongoStore.LatestIntersectionAnalysis(ctx, id)
	if shouldInterupt(err, c) {
		return
	}

	interventions := analysis.SuggestInterventions(intersection.ControlType, *latest)
	cost, reduction := analysis.PlanTotals(interventions)

	responseResult(c, http.StatusOK, schema.DecongestionPlan{
		IntersectionID:         intersection.ID,
		AnalysisID:             &latest.ID,
		Title:                  "Decongestion plan for " + intersection.Name,
		Interventions:          interventions,
		TotalCost:              cost,
		ExpectedDelayReduction: reduction,
		Status:                 schema.PlanDraft,
	})
}
