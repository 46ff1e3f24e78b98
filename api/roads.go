package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/schema"
)

type roadRequest struct {
	Name           *string            `json:"name" binding:"omitempty,min=1,max=200"`
	Code           *string            `json:"code" binding:"omitempty,max=50"`
	Points         *[]locationRequest `json:"points" binding:"omitempty,min=2,max=1000,dive"`
	LengthKm       *float64           `json:"length_km" binding:"omitempty,gt=0"`
	Lanes          *int               `json:"lanes" binding:"omitempty,min=1,max=12"`
	Surface        *schema.Surface    `json:"surface"`
	ConditionScore *float64           `json:"condition_score" binding:"omitempty,min=0,max=100"`
	DailyTraffic   *int               `json:"daily_traffic" binding:"omitempty,min=0"`
	SpeedLimit     *int               `json:"speed_limit" binding:"omitempty,min=0,max=200"`
}

func (r roadRequest) points() []schema.Location {
	if r.Points == nil {
		return nil
	}
	points := make([]schema.Location, 0, len(*r.Points))
	for i := range *r.Points {
		points = append(points, *(*r.Points)[i].toLocation())
	}
	return points
}

func (s *Server) createRoad(c *gin.Context) {
	var req roadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Name == nil || req.Points == nil || (req.Surface != nil && !req.Surface.Valid()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	points := req.points()
	road := &schema.Road{
		Name:           *req.Name,
		Geometry:       schema.NewLineString(points),
		LengthKm:       analysis.PathLengthKm(points),
		Lanes:          2,
		Surface:        schema.SurfaceAsphalt,
		ConditionScore: 100,
	}
	if req.Code != nil {
		road.Code = *req.Code
	}
	if req.LengthKm != nil {
		road.LengthKm = *req.LengthKm
	}
	if req.Lanes != nil {
		road.Lanes = *req.Lanes
	}
	if req.Surface != nil {
		road.Surface = *req.Surface
	}
	if req.ConditionScore != nil {
		road.ConditionScore = *req.ConditionScore
	}
	if req.DailyTraffic != nil {
		road.DailyTraffic = *req.DailyTraffic
	}
	if req.SpeedLimit != nil {
		road.SpeedLimit = *req.SpeedLimit
	}
	road.Condition = analysis.RoadCondition(road.ConditionScore)

	if err := s.mongoStore.CreateRoad(c.Request.Context(), road); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, road)
}

func (s *Server) listRoads(c *gin.Context) {
	var params struct {
		pageQuery
		Condition schema.RoadCondition `form:"condition"`
		Surface   schema.Surface       `form:"surface"`
		Name      string               `form:"name" binding:"max=100"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if (params.Condition != "" && !params.Condition.Valid()) ||
		(params.Surface != "" && !params.Surface.Valid()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	page := params.toPage()
	roads, total, err := s.mongoStore.ListRoads(c.Request.Context(), schema.RoadFilter{
		Condition: params.Condition,
		Surface:   params.Surface,
		Name:      params.Name,
		Page:      page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, roads, total, page)
}

func (s *Server) getRoad(c *gin.Context) {
	id, ok := paramObjectID(c, "roadID")
	if !ok {
		return
	}

	road, err := s.mongoStore.GetRoad(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, road)
}

func (s *Server) updateRoad(c *gin.Context) {
	id, ok := paramObjectID(c, "roadID")
	if !ok {
		return
	}

	var req roadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Surface != nil && !req.Surface.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	update := schema.RoadUpdate{
		Name:           req.Name,
		Code:           req.Code,
		LengthKm:       req.LengthKm,
		Lanes:          req.Lanes,
		Surface:        req.Surface,
		ConditionScore: req.ConditionScore,
		DailyTraffic:   req.DailyTraffic,
		SpeedLimit:     req.SpeedLimit,
	}
	if points := req.points(); points != nil {
		update.Points = &points
		if update.LengthKm == nil {
			length := analysis.PathLengthKm(points)
			update.LengthKm = &length
		}
	}
	if req.ConditionScore != nil {
		condition := analysis.RoadCondition(*req.ConditionScore)
		update.Condition = &condition
	}

	road, err := s.mongoStore.UpdateRoad(c.Request.Context(), id, update)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, road)
}

func (s *Server) deleteRoad(c *gin.Context) {
	id, ok := paramObjectID(c, "roadID")
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteRoad(c.Request.Context(), id); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{"id": id})
}

// inspectRoad records a field inspection and refreshes the road condition
func (s *Server) inspectRoad(c *gin.Context) {
	id, ok := paramObjectID(c, "roadID")
	if !ok {
		return
	}

	var req struct {
		Score *float64 `json:"score" binding:"required,min=0,max=100"`
		Notes string   `json:"notes" binding:"max=2000"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	inspection := schema.RoadInspection{
		InspectedBy: currentUser(c).ID,
		Score:       *req.Score,
		Notes:       req.Notes,
	}

	road, err := s.mongoStore.AddRoadInspection(c.Request.Context(), id, inspection, analysis.RoadCondition(*req.Score))
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, road)
}

func (s *Server) roadIssues(c *gin.Context) {
	id, ok := paramObjectID(c, "roadID")
	if !ok {
		return
	}

	var params struct {
		pageQuery
		Status schema.IssueStatus `form:"status"`
	}
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Status != "" && !params.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if _, err := s.mongoStore.GetRoad(c.Request.Context(), id); shouldInterupt(err, c) {
		return
	}

	page := params.toPage()
	issues, total, err := s.mongoStore.ListIssues(c.Request.Context(), schema.IssueFilter{
		Status: params.Status,
		RoadID: &id,
		Page:   page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, issues, total, page)
}
