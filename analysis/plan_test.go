package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func TestPlanTotals(t *testing.T) {
	cost, reduction := PlanTotals([]schema.Intervention{
		{EstimatedCost: 15000, ExpectedDelayReduction: 10},
		{EstimatedCost: 120000, ExpectedDelayReduction: 20},
	})

	assert.Equal(t, float64(135000), cost)
	assert.Equal(t, float64(28), reduction)
}

func TestPlanTotalsEmpty(t *testing.T) {
	cost, reduction := PlanTotals(nil)

	assert.Equal(t, float64(0), cost)
	assert.Equal(t, float64(0), reduction)
}

func TestPlanTotalsFullReduction(t *testing.T) {
	_, reduction := PlanTotals([]schema.Intervention{
		{ExpectedDelayReduction: 100},
		{ExpectedDelayReduction: 30},
	})

	assert.Equal(t, float64(100), reduction)
}

func TestSuggestInterventionsSignalized(t *testing.T) {
	interventions := SuggestInterventions(schema.ControlSignal, schema.IntersectionAnalysis{
		LevelOfService: schema.LOSF,
	})

	assert.Len(t, interventions, 3)
	assert.Equal(t, schema.InterventionAdaptiveSignal, interventions[0].Type)
	assert.Equal(t, schema.InterventionTurnLane, interventions[1].Type)
	assert.Equal(t, schema.InterventionTransitPriority, interventions[2].Type)
}

func TestSuggestInterventionsLongQueue(t *testing.T) {
	interventions := SuggestInterventions(schema.ControlSignal, schema.IntersectionAnalysis{
		LevelOfService: schema.LOSD,
		Observation:    schema.TrafficObservation{QueueLength: 20},
	})

	assert.Len(t, interventions, 3)
	assert.Equal(t, schema.InterventionTurnLane, interventions[2].Type)
}

func TestSuggestInterventionsUnsignalized(t *testing.T) {
	interventions := SuggestInterventions(schema.ControlStop, schema.IntersectionAnalysis{
		LevelOfService: schema.LOSF,
		Observation:    schema.TrafficObservation{QueueLength: 20},
	})

	assert.Len(t, interventions, 2)
	assert.Equal(t, schema.InterventionRoundabout, interventions[0].Type)
	assert.Equal(t, schema.InterventionTurnLane, interventions[1].Type)
}

func TestSuggestInterventionsGoodService(t *testing.T) {
	interventions := SuggestInterventions(schema.ControlSignal, schema.IntersectionAnalysis{
		LevelOfService: schema.LOSB,
	})

	assert.Empty(t, interventions)
}
