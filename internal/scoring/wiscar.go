package scoring

import "github.com/abhisek/careerfit/internal/catalog"

// Dimension names one axis of the WISCAR readiness model.
type Dimension string

const (
	DimensionWill               Dimension = "Will"
	DimensionInterest           Dimension = "Interest"
	DimensionSkill              Dimension = "Skill"
	DimensionCognitiveReadiness Dimension = "Cognitive Readiness"
	DimensionAbilityToLearn     Dimension = "Ability to Learn"
	DimensionRealWorldAlignment Dimension = "Real-World Alignment"
)

// AllDimensions returns the WISCAR dimensions in display order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionWill,
		DimensionInterest,
		DimensionSkill,
		DimensionCognitiveReadiness,
		DimensionAbilityToLearn,
		DimensionRealWorldAlignment,
	}
}

// WISCAR derives the six dimension scores from category scores.
func WISCAR(s Scores) []DimensionScore {
	motivation := s.Get(catalog.TypeMotivation)
	cognitive := s.Get(catalog.TypeCognitive)

	return []DimensionScore{
		{Dimension: DimensionWill, Score: motivation},
		{Dimension: DimensionInterest, Score: s.Get(catalog.TypeInterest)},
		{Dimension: DimensionSkill, Score: s.Technical.Overall},
		{Dimension: DimensionCognitiveReadiness, Score: cognitive},
		{Dimension: DimensionAbilityToLearn, Score: roundInt(float64(motivation+cognitive) / 2)},
		{Dimension: DimensionRealWorldAlignment, Score: s.Get(catalog.TypeDomain)},
	}
}

// AverageWISCAR returns the unrounded mean of the dimension scores.
func AverageWISCAR(dims []DimensionScore) float64 {
	if len(dims) == 0 {
		return 0
	}
	sum := 0
	for _, d := range dims {
		sum += d.Score
	}
	return float64(sum) / float64(len(dims))
}
