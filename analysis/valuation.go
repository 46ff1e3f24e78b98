package analysis

import (
	"fmt"

	"github.com/bitmark-inc/cityworks-api/schema"
)

var ErrInsufficientData = fmt.Errorf("not enough data to estimate the property value")

const (
	ValuationComparables = "comparables"
	ValuationAssessed    = "assessed"

	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"

	bedroomAdjustment  = 3.0
	bathroomAdjustment = 2.0
	ageAdjustment      = 0.5
	ageAdjustmentCap   = 15.0
	issueAdjustment    = -2.0
	issueAdjustmentCap = -10.0
)

type Adjustment struct {
	Factor  string  `json:"factor"`
	Percent float64 `json:"percent"`
}

type Valuation struct {
	EstimatedValue      float64                 `json:"estimated_value"`
	Method              string                  `json:"method"`
	Confidence          string                  `json:"confidence"`
	BaseValue           float64                 `json:"base_value"`
	AveragePricePerSqft float64                 `json:"average_price_per_sqft"`
	Adjustments         []Adjustment            `json:"adjustments"`
	ComparableCount     int                     `json:"comparable_count"`
	Comparables         []schema.ComparableSale `json:"comparables"`
}

// EstimateValue predicts the value of a property from comparable sales. The
// base value is the mean price per square foot of the comparables applied to
// the subject. Fixed percentage adjustments account for the differences in
// bedrooms, bathrooms and age, and for open severe issues nearby. Without
// usable comparables the assessed value is returned.
func EstimateValue(subject schema.Property, comps []schema.ComparableSale, nearbyIssues int64) (*Valuation, error) {
	usable := make([]schema.ComparableSale, 0, len(comps))
	for _, c := range comps {
		if c.SquareFeet > 0 && c.SalePrice > 0 {
			usable = append(usable, c)
		}
	}

	if len(usable) == 0 || subject.SquareFeet <= 0 {
		if subject.AssessedValue <= 0 {
			return nil, ErrInsufficientData
		}
		return &Valuation{
			EstimatedValue:  round(subject.AssessedValue, 2),
			Method:          ValuationAssessed,
			Confidence:      ConfidenceLow,
			BaseValue:       round(subject.AssessedValue, 2),
			Adjustments:     []Adjustment{},
			ComparableCount: len(usable),
			Comparables:     usable,
		}, nil
	}

	var ppsf, bedrooms, bathrooms, years float64
	built := 0
	for _, c := range usable {
		ppsf += c.SalePrice / c.SquareFeet
		bedrooms += float64(c.Bedrooms)
		bathrooms += c.Bathrooms
		if c.YearBuilt > 0 {
			years += float64(c.YearBuilt)
			built++
		}
	}
	n := float64(len(usable))
	ppsf /= n
	bedrooms /= n
	bathrooms /= n

	adjustments := []Adjustment{
		{Factor: "bedrooms", Percent: round(bedroomAdjustment*(float64(subject.Bedrooms)-bedrooms), 2)},
		{Factor: "bathrooms", Percent: round(bathroomAdjustment*(subject.Bathrooms-bathrooms), 2)},
	}
	if built > 0 && subject.YearBuilt > 0 {
		diff := float64(subject.YearBuilt) - years/float64(built)
		adjustments = append(adjustments, Adjustment{
			Factor:  "age",
			Percent: round(clamp(ageAdjustment*diff, -ageAdjustmentCap, ageAdjustmentCap), 2),
		})
	}
	if nearbyIssues > 0 {
		adjustments = append(adjustments, Adjustment{
			Factor:  "nearby_issues",
			Percent: clamp(issueAdjustment*float64(nearbyIssues), issueAdjustmentCap, 0),
		})
	}

	total := 0.0
	for _, a := range adjustments {
		total += a.Percent
	}

	base := ppsf * subject.SquareFeet
	estimate := base * (1 + total/100)
	if estimate < 0 {
		estimate = 0
	}

	return &Valuation{
		EstimatedValue:      round(estimate, 2),
		Method:              ValuationComparables,
		Confidence:          confidence(len(usable)),
		BaseValue:           round(base, 2),
		AveragePricePerSqft: round(ppsf, 2),
		Adjustments:         adjustments,
		ComparableCount:     len(usable),
		Comparables:         usable,
	}, nil
}

func confidence(comps int) string {
	switch {
	case comps >= 8:
		return ConfidenceHigh
	case comps >= 3:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}
