package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func TestRoadCondition(t *testing.T) {
	assert.Equal(t, schema.ConditionExcellent, RoadCondition(100))
	assert.Equal(t, schema.ConditionExcellent, RoadCondition(85))
	assert.Equal(t, schema.ConditionGood, RoadCondition(84.9))
	assert.Equal(t, schema.ConditionGood, RoadCondition(70))
	assert.Equal(t, schema.ConditionFair, RoadCondition(50))
	assert.Equal(t, schema.ConditionPoor, RoadCondition(25))
	assert.Equal(t, schema.ConditionCritical, RoadCondition(24.9))
	assert.Equal(t, schema.ConditionCritical, RoadCondition(0))
}

func TestPathLengthKm(t *testing.T) {
	assert.Equal(t, float64(0), PathLengthKm(nil))
	assert.Equal(t, float64(0), PathLengthKm([]schema.Location{{Latitude: 1, Longitude: 1}}))

	// one degree of longitude on the equator
	length := PathLengthKm([]schema.Location{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 0.5},
		{Latitude: 0, Longitude: 1},
	})
	assert.InDelta(t, 111.195, length, 0.001)
}
