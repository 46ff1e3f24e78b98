package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/cityworks-api/report"
	"github.com/bitmark-inc/cityworks-api/schema"
)

const downloadExpiry = 15 * time.Minute

// createReport stores a pending report and hands it to the background
// worker. Without a worker, or when enqueuing fails, it is generated before
// responding.
func (s *Server) createReport(c *gin.Context) {
	var req struct {
		Title          string            `json:"title" binding:"required,max=200"`
		Type           schema.ReportType `json:"type" binding:"required"`
		From           *time.Time        `json:"from"`
		To             *time.Time        `json:"to"`
		NeighborhoodID string            `json:"neighborhood_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if !req.Type.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	from, to := report.DefaultWindow(time.Now().UTC())
	if req.From != nil {
		from = req.From.UTC()
	}
	if req.To != nil {
		to = req.To.UTC()
	}
	if !from.Before(to) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	neighborhoodID, ok := optionalObjectID(c, req.NeighborhoodID)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if neighborhoodID != nil {
		if _, err := s.mongoStore.GetNeighborhood(ctx, *neighborhoodID); shouldInterupt(err, c) {
			return
		}
	}

	r := &schema.Report{
		Title: req.Title,
		Type:  req.Type,
		Parameters: schema.ReportParameters{
			From:           from,
			To:             to,
			NeighborhoodID: neighborhoodID,
		},
		GeneratedBy: currentUser(c).ID,
	}
	if err := s.mongoStore.CreateReport(ctx, r); shouldInterupt(err, c) {
		return
	}

	if s.enqueuer != nil {
		err := s.enqueuer.EnqueueReport(ctx, r.ID)
		if err == nil {
			responseResult(c, http.StatusAccepted, r)
			return
		}
		log.WithError(err).WithField("report_id", r.ID.Hex()).Warn("fail to enqueue report, generating inline")
	}

	generated, err := s.reports.Generate(ctx, r.ID)
	if err != nil {
		// the failure is recorded on the report
		generated, err = s.mongoStore.GetReport(ctx, r.ID)
		if shouldInterupt(err, c) {
			return
		}
	}

	responseResult(c, http.StatusCreated, generated)
}

func (s *Server) listReports(c *gin.Context) {
	var params struct {
		pageQuery
		Type   schema.ReportType   `form:"type"`
		Status schema.ReportStatus `form:"status"`
		Mine   bool                `form:"mine"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Type != "" && !params.Type.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	filter := schema.ReportFilter{
		Type:   params.Type,
		Status: params.Status,
		Page:   params.toPage(),
	}
	if params.Mine {
		filter.GeneratedBy = &currentUser(c).ID
	}

	reports, total, err := s.mongoStore.ListReports(c.Request.Context(), filter)
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, reports, total, filter.Page)
}

func (s *Server) getReport(c *gin.Context) {
	id, ok := paramObjectID(c, "reportID")
	if !ok {
		return
	}

	r, err := s.mongoStore.GetReport(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, r)
}

// deleteReport removes a report and its exported spreadsheet
func (s *Server) deleteReport(c *gin.Context) {
	id, ok := paramObjectID(c, "reportID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	r, err := s.mongoStore.GetReport(ctx, id)
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.DeleteReport(ctx, id); shouldInterupt(err, c) {
		return
	}

	if r.FileKey != "" && s.objects != nil {
		if err := s.objects.Remove(ctx, r.FileKey); err != nil {
			log.WithError(err).WithField("key", r.FileKey).Warn("fail to remove exported report")
		}
	}

	responseResult(c, http.StatusOK, gin.H{"id": id})
}

// downloadReport answers a short-lived link to the exported spreadsheet
func (s *Server) downloadReport(c *gin.Context) {
	id, ok := paramObjectID(c, "reportID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	r, err := s.mongoStore.GetReport(ctx, id)
	if shouldInterupt(err, c) {
		return
	}
	if r.FileKey == "" || s.objects == nil {
		abortWithEncoding(c, http.StatusNotFound, errorReportNotExported)
		return
	}

	url, err := s.objects.PresignedURL(ctx, r.FileKey, downloadExpiry)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{
		"url":        url,
		"expires_at": time.Now().UTC().Add(downloadExpiry),
	})
}
