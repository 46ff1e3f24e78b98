package analysis

import "github.com/bitmark-inc/cityworks-api/schema"

// ChangeRate is the percentage change from old to new. A change from zero
// counts as 100%.
func ChangeRate(new, old float64) float64 {
	if old == 0 {
		if new == 0 {
			return float64(0)
		} else {
			return float64(100)
		}
	}

	return (new - old) / old * 100
}

// FillChangeRates sets the year over year change of average prices. The
// trend must be sorted by year ascending.
func FillChangeRates(trend []schema.YearlyPrice) {
	for i := range trend {
		if i == 0 {
			trend[i].ChangeRate = 0
			continue
		}
		trend[i].ChangeRate = round(ChangeRate(trend[i].AveragePrice, trend[i-1].AveragePrice), 2)
	}
}
