package analysis

import "github.com/bitmark-inc/cityworks-api/schema"

// RoadCondition grades a 0..100 condition score
func RoadCondition(score float64) schema.RoadCondition {
	switch {
	case score >= 85:
		return schema.ConditionExcellent
	case score >= 70:
		return schema.ConditionGood
	case score >= 50:
		return schema.ConditionFair
	case score >= 25:
		return schema.ConditionPoor
	default:
		return schema.ConditionCritical
	}
}
