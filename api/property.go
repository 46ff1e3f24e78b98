package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/schema"
)

const (
	defaultStatsYears     = 5
	defaultValuationYears = 3
	maxYears              = 30
	comparableLimit       = 20
	nearbyIssueRadius     = 500
)

var severeIssues = []schema.Severity{schema.SeverityHigh, schema.SeverityCritical}

type yearsQuery struct {
	Years int `form:"years" binding:"omitempty,min=1"`
}

func (q yearsQuery) since(now time.Time, def int) time.Time {
	years := q.Years
	if years == 0 {
		years = def
	}
	if years > maxYears {
		years = maxYears
	}
	return now.AddDate(-years, 0, 0)
}

func (s *Server) createNeighborhood(c *gin.Context) {
	var req struct {
		Name        string            `json:"name" binding:"required,max=200"`
		Description string            `json:"description" binding:"max=5000"`
		Boundary    []locationRequest `json:"boundary" binding:"omitempty,min=3,max=1000,dive"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	neighborhood := &schema.Neighborhood{
		Name:        req.Name,
		Description: req.Description,
	}
	if len(req.Boundary) > 0 {
		neighborhood.Boundary = schema.NewPolygon(toLocations(req.Boundary))
	}

	if err := s.mongoStore.CreateNeighborhood(c.Request.Context(), neighborhood); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, neighborhood)
}

func (s *Server) listNeighborhoods(c *gin.Context) {
	neighborhoods, err := s.mongoStore.ListNeighborhoods(c.Request.Context())
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, neighborhoods)
}

func (s *Server) getNeighborhood(c *gin.Context) {
	id, ok := paramObjectID(c, "neighborhoodID")
	if !ok {
		return
	}

	neighborhood, err := s.mongoStore.GetNeighborhood(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, neighborhood)
}

// neighborhoodStats summarizes recent sales of a neighborhood with a yearly
// price trend
func (s *Server) neighborhoodStats(c *gin.Context) {
	id, ok := paramObjectID(c, "neighborhoodID")
	if !ok {
		return
	}

	var params yearsQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx := c.Request.Context()
	if _, err := s.mongoStore.GetNeighborhood(ctx, id); shouldInterupt(err, c) {
		return
	}

	stats, err := s.mongoStore.NeighborhoodStats(ctx, id, params.since(time.Now().UTC(), defaultStatsYears))
	if shouldInterupt(err, c) {
		return
	}
	analysis.FillChangeRates(stats.Trend)

	responseResult(c, http.StatusOK, stats)
}

type propertyRequest struct {
	Address        *string              `json:"address" binding:"omitempty,min=1,max=300"`
	NeighborhoodID *string              `json:"neighborhood_id"`
	Location       *locationRequest     `json:"location"`
	Type           *schema.PropertyType `json:"type"`
	SquareFeet     *float64             `json:"square_feet" binding:"omitempty,min=0"`
	LotSize        *float64             `json:"lot_size" binding:"omitempty,min=0"`
	Bedrooms       *int                 `json:"bedrooms" binding:"omitempty,min=0,max=100"`
	Bathrooms      *float64             `json:"bathrooms" binding:"omitempty,min=0,max=100"`
	YearBuilt      *int                 `json:"year_built" binding:"omitempty,min=1600,max=2100"`
	AssessedValue  *float64             `json:"assessed_value" binding:"omitempty,min=0"`
}

func (s *Server) createProperty(c *gin.Context) {
	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Address == nil || req.NeighborhoodID == nil || req.Type == nil || !req.Type.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	neighborhoodID, ok := optionalObjectID(c, *req.NeighborhoodID)
	if !ok {
		return
	}
	if neighborhoodID == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	ctx := c.Request.Context()
	if _, err := s.mongoStore.GetNeighborhood(ctx, *neighborhoodID); shouldInterupt(err, c) {
		return
	}

	property := &schema.Property{
		Address:        *req.Address,
		NeighborhoodID: *neighborhoodID,
		Type:           *req.Type,
	}
	if loc := req.Location.toLocation(); loc != nil {
		property.Location = schema.NewPoint(*loc)
	}
	if req.SquareFeet != nil {
		property.SquareFeet = *req.SquareFeet
	}
	if req.LotSize != nil {
		property.LotSize = *req.LotSize
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.YearBuilt != nil {
		property.YearBuilt = *req.YearBuilt
	}
	if req.AssessedValue != nil {
		property.AssessedValue = *req.AssessedValue
	}

	if err := s.mongoStore.CreateProperty(ctx, property); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, property)
}

func (s *Server) listProperties(c *gin.Context) {
	var params struct {
		pageQuery
		NeighborhoodID string              `form:"neighborhood_id"`
		Type           schema.PropertyType `form:"type"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Type != "" && !params.Type.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	neighborhoodID, ok := optionalObjectID(c, params.NeighborhoodID)
	if !ok {
		return
	}

	page := params.toPage()
	properties, total, err := s.mongoStore.ListProperties(c.Request.Context(), schema.PropertyFilter{
		NeighborhoodID: neighborhoodID,
		Type:           params.Type,
		Page:           page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, properties, total, page)
}

func (s *Server) getProperty(c *gin.Context) {
	id, ok := paramObjectID(c, "propertyID")
	if !ok {
		return
	}

	property, err := s.mongoStore.GetProperty(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, property)
}

func (s *Server) updateProperty(c *gin.Context) {
	id, ok := paramObjectID(c, "propertyID")
	if !ok {
		return
	}

	var req propertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	// the neighborhood of a property is fixed
	if req.NeighborhoodID != nil || (req.Type != nil && !req.Type.Valid()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	property, err := s.mongoStore.UpdateProperty(c.Request.Context(), id, schema.PropertyUpdate{
		Address:       req.Address,
		Location:      req.Location.toLocation(),
		Type:          req.Type,
		SquareFeet:    req.SquareFeet,
		LotSize:       req.LotSize,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		YearBuilt:     req.YearBuilt,
		AssessedValue: req.AssessedValue,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, property)
}

func (s *Server) deleteProperty(c *gin.Context) {
	id, ok := paramObjectID(c, "propertyID")
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteProperty(c.Request.Context(), id); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{"id": id})
}

// createTransaction records a sale. The property characteristics at the time
// of sale are copied so comparables stay stable when the property changes.
func (s *Server) createTransaction(c *gin.Context) {
	id, ok := paramObjectID(c, "propertyID")
	if !ok {
		return
	}

	var req struct {
		SalePrice float64   `json:"sale_price" binding:"required,gt=0"`
		SaleDate  time.Time `json:"sale_date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.SaleDate.After(time.Now()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	ctx := c.Request.Context()
	property, err := s.mongoStore.GetProperty(ctx, id)
	if shouldInterupt(err, c) {
		return
	}

	transaction := &schema.PropertyTransaction{
		PropertyID:     property.ID,
		NeighborhoodID: property.NeighborhoodID,
		PropertyType:   property.Type,
		SquareFeet:     property.SquareFeet,
		SalePrice:      req.SalePrice,
		SaleDate:       req.SaleDate.UTC(),
	}
	if err := s.mongoStore.CreatePropertyTransaction(ctx, transaction); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, transaction)
}

func (s *Server) listTransactions(c *gin.Context) {
	id, ok := paramObjectID(c, "propertyID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if _, err := s.mongoStore.GetProperty(ctx, id); shouldInterupt(err, c) {
		return
	}

	transactions, err := s.mongoStore.ListPropertyTransactions(ctx, id)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, transactions)
}

// propertyValuation estimates the market value of a property from recent
// comparable sales in its neighborhood
func (s *Server) propertyValuation(c *gin.Context) {
	id, ok := paramObjectID(c, "propertyID")
	if !ok {
		return
	}

	var params yearsQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx := c.Request.Context()
	property, err := s.mongoStore.GetProperty(ctx, id)
	if shouldInterupt(err, c) {
		return
	}

	comps, err := s.mongoStore.ComparableSales(ctx, schema.ComparableQuery{
		NeighborhoodID:    property.NeighborhoodID,
		PropertyType:      property.Type,
		ExcludePropertyID: property.ID,
		Since:             params.since(time.Now().UTC(), defaultValuationYears),
		Limit:             comparableLimit,
	})
	if shouldInterupt(err, c) {
		return
	}

	var nearbyIssues int64
	if loc := property.Location.Location(); loc != nil {
		nearbyIssues, err = s.mongoStore.CountOpenIssuesNear(ctx, *loc, nearbyIssueRadius, severeIssues)
		if shouldInterupt(err, c) {
			return
		}
	}

	valuation, err := analysis.EstimateValue(*property, comps, nearbyIssues)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{
		"property_id":   property.ID,
		"valuation":     valuation,
		"nearby_issues": nearbyIssues,
	})
}
