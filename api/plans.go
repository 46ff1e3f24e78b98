package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/schema"
	"github.com/bitmark-inc/cityworks-api/store"
)

type interventionRequest struct {
	Type                   schema.InterventionType `json:"type" binding:"required"`
	Description            string                  `json:"description" binding:"max=1000"`
	EstimatedCost          float64                 `json:"estimated_cost" binding:"min=0"`
	ExpectedDelayReduction float64                 `json:"expected_delay_reduction" binding:"min=0,max=100"`
}

func toInterventions(c *gin.Context, reqs []interventionRequest) ([]schema.Intervention, bool) {
	interventions := make([]schema.Intervention, 0, len(reqs))
	for _, r := range reqs {
		if !r.Type.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return nil, false
		}
		interventions = append(interventions, schema.Intervention{
			Type:                   r.Type,
			Description:            r.Description,
			EstimatedCost:          r.EstimatedCost,
			ExpectedDelayReduction: r.ExpectedDelayReduction,
		})
	}
	return interventions, true
}

// createPlan stores a draft plan. Without interventions, the suggestion
// derived from the latest analysis is used.
func (s *Server) createPlan(c *gin.Context) {
	var req struct {
		IntersectionID string                `json:"intersection_id" binding:"required"`
		Title          string                `json:"title" binding:"required,max=200"`
		Description    string                `json:"description" binding:"max=5000"`
		Interventions  []interventionRequest `json:"interventions" binding:"max=20,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	intersectionID, ok := optionalObjectID(c, req.IntersectionID)
	if !ok {
		return
	}
	interventions, ok := toInterventions(c, req.Interventions)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	intersection, err := s.mongoStore.GetIntersection(ctx, *intersectionID)
	if shouldInterupt(err, c) {
		return
	}

	plan := &schema.DecongestionPlan{
		IntersectionID: intersection.ID,
		Title:          req.Title,
		Description:    req.Description,
		CreatedBy:      currentUser(c).ID,
	}

	latest, err := s.mongoStore.LatestIntersectionAnalysis(ctx, intersection.ID)
	switch {
	case err == nil:
		plan.AnalysisID = &latest.ID
		if len(interventions) == 0 {
			interventions = analysis.SuggestInterventions(intersection.ControlType, *latest)
		}
	case !errors.Is(err, store.ErrAnalysisNotFound) || len(interventions) == 0:
		shouldInterupt(err, c)
		return
	}

	plan.Interventions = interventions
	plan.TotalCost, plan.ExpectedDelayReduction = analysis.PlanTotals(interventions)

	if err := s.mongoStore.CreatePlan(ctx, plan); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, plan)
}

func (s *Server) listPlans(c *gin.Context) {
	var params struct {
		pageQuery
		IntersectionID string            `form:"intersection_id"`
		Status         schema.PlanStatus `form:"status"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Status != "" && !params.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	intersectionID, ok := optionalObjectID(c, params.IntersectionID)
	if !ok {
		return
	}

	page := params.toPage()
	plans, total, err := s.mongoStore.ListPlans(c.Request.Context(), schema.PlanFilter{
		IntersectionID: intersectionID,
		Status:         params.Status,
		Page:           page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, plans, total, page)
}

func (s *Server) getPlan(c *gin.Context) {
	id, ok := paramObjectID(c, "planID")
	if !ok {
		return
	}

	plan, err := s.mongoStore.GetPlan(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, plan)
}

// updatePlan edits a draft plan and recomputes its totals
func (s *Server) updatePlan(c *gin.Context) {
	id, ok := paramObjectID(c, "planID")
	if !ok {
		return
	}

	var req struct {
		Title         *string                `json:"title" binding:"omitempty,min=1,max=200"`
		Description   *string                `json:"description" binding:"omitempty,max=5000"`
		Interventions *[]interventionRequest `json:"interventions" binding:"omitempty,max=20,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	plan, err := s.mongoStore.GetPlan(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}
	if plan.Status != schema.PlanDraft {
		abortWithEncoding(c, http.StatusConflict, errorPlanNotEditable)
		return
	}

	update := schema.PlanUpdate{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Interventions != nil {
		interventions, ok := toInterventions(c, *req.Interventions)
		if !ok {
			return
		}
		cost, reduction := analysis.PlanTotals(interventions)
		update.Interventions = &interventions
		update.TotalCost = &cost
		update.ExpectedDelayReduction = &reduction
	}

	plan, err = s.mongoStore.UpdatePlan(c.Request.Context(), id, update)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, plan)
}

func (s *Server) deletePlan(c *gin.Context) {
	id, ok := paramObjectID(c, "planID")
	if !ok {
		return
	}

	if err := s.mongoStore.DeletePlan(c.Request.Context(), id); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{"id": id})
}

// updatePlanStatus moves a plan through review. Approving and rejecting
// is reserved to admins and records the reviewer.
func (s *Server) updatePlanStatus(c *gin.Context) {
	id, ok := paramObjectID(c, "planID")
	if !ok {
		return
	}

	var req struct {
		Status schema.PlanStatus `json:"status" binding:"required"`
		Note   string            `json:"note" binding:"max=2000"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if !req.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	user := currentUser(c)
	var review *schema.PlanReview
	if req.Status.NeedsReview() {
		if !user.HasRole(schema.RoleAdmin) {
			abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
			return
		}
		review = &schema.PlanReview{Reviewer: user.ID, Note: req.Note}
	}

	plan, err := s.mongoStore.GetPlan(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}
	if !plan.Status.CanTransit(req.Status) {
		abortWithEncoding(c, http.StatusConflict, errorPlanTransition)
		return
	}

	plan, err = s.mongoStore.TransitPlanStatus(c.Request.Context(), id, plan.Status, req.Status, review)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, plan)
}
