package analysis

import (
	"github.com/bitmark-inc/cityworks-api/schema"
)

// PlanTotals returns the total cost and the combined delay reduction of a set
// of interventions. Reductions compound: 1 - Π(1 - rᵢ/100).
func PlanTotals(interventions []schema.Intervention) (float64, float64) {
	cost := 0.0
	remaining := 1.0
	for _, i := range interventions {
		cost += i.EstimatedCost
		remaining *= 1 - clamp(i.ExpectedDelayReduction, 0, 100)/100
	}

	return round(cost, 2), round((1-remaining)*100, 2)
}

var interventionCatalog = map[schema.InterventionType]schema.Intervention{
	schema.InterventionSignalRetiming: {
		Type:                   schema.InterventionSignalRetiming,
		Description:            "Retime signal phases and cycle length for peak-hour demand",
		EstimatedCost:          15000,
		ExpectedDelayReduction: 10,
	},
	schema.InterventionAdaptiveSignal: {
		Type:                   schema.InterventionAdaptiveSignal,
		Description:            "Install adaptive signal control",
		EstimatedCost:          120000,
		ExpectedDelayReduction: 20,
	},
	schema.InterventionTurnLane: {
		Type:                   schema.InterventionTurnLane,
		Description:            "Add a dedicated turn lane on the busiest approach",
		EstimatedCost:          250000,
		ExpectedDelayReduction: 15,
	},
	schema.InterventionRoundabout: {
		Type:                   schema.InterventionRoundabout,
		Description:            "Convert the intersection to a roundabout",
		EstimatedCost:          1200000,
		ExpectedDelayReduction: 35,
	},
	schema.InterventionTransitPriority: {
		Type:                   schema.InterventionTransitPriority,
		Description:            "Give transit vehicles signal priority",
		EstimatedCost:          80000,
		ExpectedDelayReduction: 8,
	},
	schema.InterventionPedestrianPhase: {
		Type:                   schema.InterventionPedestrianPhase,
		Description:            "Add a leading pedestrian interval",
		EstimatedCost:          20000,
		ExpectedDelayReduction: 5,
	},
	schema.InterventionNewSignal: {
		Type:                   schema.InterventionNewSignal,
		Description:            "Install a traffic signal",
		EstimatedCost:          300000,
		ExpectedDelayReduction: 25,
	},
}

// SuggestInterventions picks catalog interventions for an analyzed intersection
func SuggestInterventions(control schema.ControlType, analysis schema.IntersectionAnalysis) []schema.Intervention {
	var picks []schema.InterventionType

	los := analysis.LevelOfService
	switch {
	case control.Signalized():
		switch los {
		case schema.LOSD:
			picks = []schema.InterventionType{schema.InterventionSignalRetiming, schema.InterventionPedestrianPhase}
		case schema.LOSE:
			picks = []schema.InterventionType{schema.InterventionSignalRetiming, schema.InterventionAdaptiveSignal, schema.InterventionTransitPriority}
		case schema.LOSF:
			picks = []schema.InterventionType{schema.InterventionAdaptiveSignal, schema.InterventionTurnLane, schema.InterventionTransitPriority}
		}
	case control == schema.ControlRoundabout:
		switch los {
		case schema.LOSE:
			picks = []schema.InterventionType{schema.InterventionTurnLane}
		case schema.LOSF:
			picks = []schema.InterventionType{schema.InterventionTurnLane, schema.InterventionAdaptiveSignal}
		}
	default:
		switch los {
		case schema.LOSD:
			picks = []schema.InterventionType{schema.InterventionTurnLane}
		case schema.LOSE:
			picks = []schema.InterventionType{schema.InterventionNewSignal, schema.InterventionTurnLane}
		case schema.LOSF:
			picks = []schema.InterventionType{schema.InterventionRoundabout, schema.InterventionTurnLane}
		}
	}

	if analysis.Observation.QueueLength > longQueue && !containsType(picks, schema.InterventionTurnLane) {
		picks = append(picks, schema.InterventionTurnLane)
	}

	interventions := make([]schema.Intervention, 0, len(picks))
	for _, t := range picks {
		interventions = append(interventions, interventionCatalog[t])
	}
	return interventions
}

func containsType(types []schema.InterventionType, t schema.InterventionType) bool {
	for _, v := range types {
		if v == t {
			return true
		}
	}
	return false
}
