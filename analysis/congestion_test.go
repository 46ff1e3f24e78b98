package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func TestLevelOfServiceSignalized(t *testing.T) {
	assert.Equal(t, schema.LOSA, LevelOfService(schema.ControlSignal, 10, 0.5))
	assert.Equal(t, schema.LOSB, LevelOfService(schema.ControlSignal, 20, 0.5))
	assert.Equal(t, schema.LOSC, LevelOfService(schema.ControlSignal, 35, 0.5))
	assert.Equal(t, schema.LOSD, LevelOfService(schema.ControlSignal, 55, 0.5))
	assert.Equal(t, schema.LOSE, LevelOfService(schema.ControlSignal, 80, 0.5))
	assert.Equal(t, schema.LOSF, LevelOfService(schema.ControlSignal, 80.1, 0.5))
}

func TestLevelOfServiceUnsignalized(t *testing.T) {
	assert.Equal(t, schema.LOSA, LevelOfService(schema.ControlStop, 10, 0.5))
	assert.Equal(t, schema.LOSB, LevelOfService(schema.ControlYield, 15, 0.5))
	assert.Equal(t, schema.LOSC, LevelOfService(schema.ControlAllWayStop, 25, 0.5))
	assert.Equal(t, schema.LOSD, LevelOfService(schema.ControlRoundabout, 35, 0.5))
	assert.Equal(t, schema.LOSE, LevelOfService(schema.ControlUncontrolled, 50, 0.5))
	assert.Equal(t, schema.LOSF, LevelOfService(schema.ControlStop, 51, 0.5))
}

func TestLevelOfServiceOverCapacity(t *testing.T) {
	assert.Equal(t, schema.LOSF, LevelOfService(schema.ControlSignal, 5, 1.01))
	assert.Equal(t, schema.LOSA, LevelOfService(schema.ControlSignal, 5, 1))
}

func TestCongestionIndex(t *testing.T) {
	assert.Equal(t, float64(0), CongestionIndex(0, 0))
	assert.Equal(t, float64(44), CongestionIndex(0.8, 30))
	assert.Equal(t, float64(100), CongestionIndex(2, 200))
	assert.Equal(t, float64(60), CongestionIndex(1.5, 0))
}

func TestCongestionLevel(t *testing.T) {
	assert.Equal(t, schema.CongestionLow, CongestionLevel(24.99))
	assert.Equal(t, schema.CongestionModerate, CongestionLevel(25))
	assert.Equal(t, schema.CongestionHigh, CongestionLevel(50))
	assert.Equal(t, schema.CongestionSevere, CongestionLevel(75))
}

func TestAnalyzeTrafficFreeFlow(t *testing.T) {
	c := AnalyzeTraffic(schema.ControlSignal, 1000, schema.TrafficObservation{
		PeakHourVolume:   800,
		AverageDelaySecs: 30,
		QueueLength:      4,
	})

	assert.Equal(t, 0.8, c.VolumeCapacityRatio)
	assert.Equal(t, schema.LOSC, c.LevelOfService)
	assert.Equal(t, float64(44), c.CongestionIndex)
	assert.Equal(t, schema.CongestionModerate, c.CongestionLevel)
	assert.Len(t, c.Recommendations, 1)
}

func TestAnalyzeTrafficOverCapacity(t *testing.T) {
	c := AnalyzeTraffic(schema.ControlSignal, 1000, schema.TrafficObservation{
		PeakHourVolume:   1200,
		AverageDelaySecs: 90,
		QueueLength:      20,
	})

	assert.Equal(t, 1.2, c.VolumeCapacityRatio)
	assert.Equal(t, schema.LOSF, c.LevelOfService)
	assert.Equal(t, schema.CongestionSevere, c.CongestionLevel)
	// retiming, adaptive control, capacity, queue storage
	assert.Len(t, c.Recommendations, 4)
}

func TestAnalyzeTrafficUnknownCapacity(t *testing.T) {
	c := AnalyzeTraffic(schema.ControlStop, 0, schema.TrafficObservation{
		PeakHourVolume:   500,
		AverageDelaySecs: 12,
	})

	assert.Equal(t, float64(0), c.VolumeCapacityRatio)
	assert.Equal(t, schema.LOSB, c.LevelOfService)
}
