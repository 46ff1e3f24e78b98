package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func testComparables(n int) []schema.ComparableSale {
	comps := make([]schema.ComparableSale, 0, n)
	for i := 0; i < n; i++ {
		comps = append(comps, schema.ComparableSale{
			SalePrice:  200000,
			SquareFeet: 1000,
			Bedrooms:   3,
			Bathrooms:  2,
			YearBuilt:  2000,
		})
	}
	return comps
}

func testSubject() schema.Property {
	return schema.Property{
		SquareFeet:    2000,
		Bedrooms:      3,
		Bathrooms:     2,
		YearBuilt:     2000,
		AssessedValue: 300000,
	}
}

func TestEstimateValueNearbyIssues(t *testing.T) {
	v, err := EstimateValue(testSubject(), testComparables(3), 2)

	assert.NoError(t, err)
	assert.Equal(t, ValuationComparables, v.Method)
	assert.Equal(t, ConfidenceMedium, v.Confidence)
	assert.Equal(t, float64(200), v.AveragePricePerSqft)
	assert.Equal(t, float64(400000), v.BaseValue)
	assert.InDelta(t, 384000, v.EstimatedValue, 0.01)
	assert.Equal(t, 3, v.ComparableCount)
}

func TestEstimateValueBedrooms(t *testing.T) {
	subject := testSubject()
	subject.Bedrooms = 4

	v, err := EstimateValue(subject, testComparables(8), 0)

	assert.NoError(t, err)
	assert.Equal(t, ConfidenceHigh, v.Confidence)
	assert.InDelta(t, 412000, v.EstimatedValue, 0.01)
}

func TestEstimateValueCaps(t *testing.T) {
	subject := testSubject()
	subject.YearBuilt = 1960

	v, err := EstimateValue(subject, testComparables(1), 7)

	assert.NoError(t, err)
	assert.Equal(t, ConfidenceLow, v.Confidence)
	for _, a := range v.Adjustments {
		switch a.Factor {
		case "age":
			assert.Equal(t, float64(-15), a.Percent)
		case "nearby_issues":
			assert.Equal(t, float64(-10), a.Percent)
		}
	}
	assert.InDelta(t, 300000, v.EstimatedValue, 0.01)
}

func TestEstimateValueAssessedFallback(t *testing.T) {
	v, err := EstimateValue(testSubject(), nil, 0)

	assert.NoError(t, err)
	assert.Equal(t, ValuationAssessed, v.Method)
	assert.Equal(t, ConfidenceLow, v.Confidence)
	assert.Equal(t, float64(300000), v.EstimatedValue)
}

func TestEstimateValueSkipUnusableComparables(t *testing.T) {
	comps := []schema.ComparableSale{{SalePrice: 100000}}

	v, err := EstimateValue(testSubject(), comps, 0)

	assert.NoError(t, err)
	assert.Equal(t, ValuationAssessed, v.Method)
	assert.Equal(t, 0, v.ComparableCount)
}

func TestEstimateValueNoData(t *testing.T) {
	subject := testSubject()
	subject.AssessedValue = 0

	_, err := EstimateValue(subject, nil, 0)

	assert.Equal(t, ErrInsufficientData, err)
}
