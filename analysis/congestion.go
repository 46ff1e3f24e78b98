package analysis

import (
	"github.com/bitmark-inc/cityworks-api/schema"
)

type losThreshold struct {
	maxDelay float64
	los      schema.LevelOfService
}

// delay thresholds in seconds per vehicle
var (
	signalizedLOS = []losThreshold{
		{10, schema.LOSA},
		{20, schema.LOSB},
		{35, schema.LOSC},
		{55, schema.LOSD},
		{80, schema.LOSE},
	}
	unsignalizedLOS = []losThreshold{
		{10, schema.LOSA},
		{15, schema.LOSB},
		{25, schema.LOSC},
		{35, schema.LOSD},
		{50, schema.LOSE},
	}
)

const longQueue = 15

// Congestion is the computed part of an intersection analysis
type Congestion struct {
	VolumeCapacityRatio float64
	LevelOfService      schema.LevelOfService
	CongestionIndex     float64
	CongestionLevel     schema.CongestionLevel
	Recommendations     []string
}

// VolumeCapacityRatio returns 0 when the capacity is unknown
func VolumeCapacityRatio(volume, capacity int) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(volume) / float64(capacity)
}

// LevelOfService grades the average control delay. Demand above capacity is
// always graded F.
func LevelOfService(control schema.ControlType, delaySecs, vc float64) schema.LevelOfService {
	if vc > 1 {
		return schema.LOSF
	}

	thresholds := unsignalizedLOS
	if control.Signalized() {
		thresholds = signalizedLOS
	}

	for _, t := range thresholds {
		if delaySecs <= t.maxDelay {
			return t.los
		}
	}
	return schema.LOSF
}

// CongestionIndex blends the saturation (60%) and the delay (40%) into a 0..100 score
func CongestionIndex(vc, delaySecs float64) float64 {
	saturation := 60 * clamp(vc, 0, 1.5) / 1.5
	delay := 40 * clamp(delaySecs/100, 0, 1)
	return round(clamp(saturation+delay, 0, 100), 2)
}

func CongestionLevel(index float64) schema.CongestionLevel {
	switch {
	case index < 25:
		return schema.CongestionLow
	case index < 50:
		return schema.CongestionModerate
	case index < 75:
		return schema.CongestionHigh
	default:
		return schema.CongestionSevere
	}
}

// AnalyzeTraffic computes the congestion figures of an observation
func AnalyzeTraffic(control schema.ControlType, capacity int, obs schema.TrafficObservation) Congestion {
	vc := VolumeCapacityRatio(obs.PeakHourVolume, capacity)
	los := LevelOfService(control, obs.AverageDelaySecs, vc)
	index := CongestionIndex(vc, obs.AverageDelaySecs)

	return Congestion{
		VolumeCapacityRatio: round(vc, 3),
		LevelOfService:      los,
		CongestionIndex:     index,
		CongestionLevel:     CongestionLevel(index),
		Recommendations:     recommend(control, los, vc, obs.QueueLength),
	}
}

func recommend(control schema.ControlType, los schema.LevelOfService, vc float64, queue int) []string {
	r := make([]string, 0)

	if los.AtLeast(schema.LOSE) {
		switch control {
		case schema.ControlSignal:
			r = append(r, "Retime signal phases to match peak-hour demand")
			if vc > 0.9 {
				r = append(r, "Consider adaptive signal control")
			}
		case schema.ControlRoundabout:
			r = append(r, "Add a right-turn bypass lane to the busiest approach")
		default:
			r = append(r, "Evaluate a signal warrant or a roundabout conversion")
		}
	} else if los == schema.LOSD {
		r = append(r, "Monitor peak-hour demand; the intersection is nearing capacity")
	}

	if vc > 1 {
		r = append(r, "Demand exceeds capacity; add approach capacity or divert traffic")
	}

	if queue > longQueue {
		r = append(r, "Long queues observed; extend turn-lane storage")
	}

	if len(r) == 0 {
		r = append(r, "No action required; continue routine monitoring")
	}

	return r
}
