package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/mocks"
	"github.com/bitmark-inc/cityworks-api/schema"
)

func TestPropertyValuation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	loc := schema.Location{Latitude: 27.71, Longitude: 85.32}
	property := &schema.Property{
		ID:             primitive.NewObjectID(),
		NeighborhoodID: primitive.NewObjectID(),
		Location:       schema.NewPoint(loc),
		Type:           schema.PropertyResidential,
		SquareFeet:     1000,
		Bedrooms:       3,
		Bathrooms:      2,
		YearBuilt:      2000,
	}
	comps := []schema.ComparableSale{
		{PropertyID: primitive.NewObjectID(), SalePrice: 200000, SquareFeet: 1000, Bedrooms: 3, Bathrooms: 2, YearBuilt: 2000},
		{PropertyID: primitive.NewObjectID(), SalePrice: 400000, SquareFeet: 2000, Bedrooms: 3, Bathrooms: 2, YearBuilt: 2000},
	}

	m.EXPECT().GetProperty(gomock.Any(), property.ID).Return(property, nil).Times(1)
	m.EXPECT().ComparableSales(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q schema.ComparableQuery) ([]schema.ComparableSale, error) {
			assert.Equal(t, property.NeighborhoodID, q.NeighborhoodID)
			assert.Equal(t, property.ID, q.ExcludePropertyID)
			assert.Equal(t, int64(comparableLimit), q.Limit)
			return comps, nil
		}).Times(1)
	m.EXPECT().CountOpenIssuesNear(gomock.Any(), loc, nearbyIssueRadius, severeIssues).Return(int64(2), nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RoleCitizen)))
	router.GET("/:propertyID/valuation", s.propertyValuation)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/"+property.ID.Hex()+"/valuation?years=2", nil))

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var result struct {
		Valuation    analysis.Valuation `json:"valuation"`
		NearbyIssues int64              `json:"nearby_issues"`
	}
	assert.NoError(t, json.Unmarshal(decodeResponse(t, w).Result, &result))
	assert.Equal(t, int64(2), result.NearbyIssues)
	assert.Equal(t, analysis.ValuationComparables, result.Valuation.Method)
	assert.Equal(t, 200.0, result.Valuation.AveragePricePerSqft)
	assert.Equal(t, 192000.0, result.Valuation.EstimatedValue)
	assert.Equal(t, analysis.ConfidenceLow, result.Valuation.Confidence)
}

func TestPropertyValuationInsufficientData(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	s := Server{mongoStore: m}

	property := &schema.Property{ID: primitive.NewObjectID(), Type: schema.PropertyCommercial}
	m.EXPECT().GetProperty(gomock.Any(), property.ID).Return(property, nil).Times(1)
	m.EXPECT().ComparableSales(gomock.Any(), gomock.Any()).Return([]schema.ComparableSale{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(withUser(testUser(schema.RoleCitizen)))
	router.GET("/:propertyID/valuation", s.propertyValuation)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/"+property.ID.Hex()+"/valuation", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, "wrong status code")
	assert.Equal(t, int64(1803), decodeResponse(t, w).Code)
}

func TestYearsQuerySince(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 2021, yearsQuery{}.since(now, 3).Year())
	assert.Equal(t, 2022, yearsQuery{Years: 2}.since(now, 3).Year())
	assert.Equal(t, 2024-maxYears, yearsQuery{Years: 100}.since(now, 3).Year())
}
