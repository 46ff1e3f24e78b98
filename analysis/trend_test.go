package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cityworks-api/schema"
)

type changeRateTestCase struct {
	new                float64
	old                float64
	expectedChangeRate float64
}

func TestChangeRate(t *testing.T) {
	cases := []changeRateTestCase{
		{0, 0, 0},
		{10, 10, 0},
		{0, 10, -100},
		{10, 0, 100},
		{3, 5, -40},
		{3, 2, 50},
	}
	for _, c := range cases {
		assert.Equal(t, c.expectedChangeRate, ChangeRate(c.new, c.old))
	}
}

func TestFillChangeRates(t *testing.T) {
	trend := []schema.YearlyPrice{
		{Year: 2019, AveragePrice: 200000},
		{Year: 2020, AveragePrice: 250000},
		{Year: 2021, AveragePrice: 225000},
	}

	FillChangeRates(trend)

	assert.Equal(t, float64(0), trend[0].ChangeRate)
	assert.Equal(t, float64(25), trend[1].ChangeRate)
	assert.Equal(t, float64(-10), trend[2].ChangeRate)
}
