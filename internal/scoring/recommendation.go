package scoring

import "fmt"

// Recommendation is the categorical outcome of an assessment.
type Recommendation string

const (
	RecommendAffirmative Recommendation = "affirmative"
	RecommendConditional Recommendation = "conditional"
	RecommendNegative    Recommendation = "negative"
)

// Band thresholds. Both bounds are inclusive.
const (
	affirmativeOverall = 75
	affirmativeWISCAR  = 70
	conditionalOverall = 60
	conditionalWISCAR  = 55
)

// Label returns the short badge text for the recommendation.
func (r Recommendation) Label() string {
	switch r {
	case RecommendAffirmative:
		return "Yes"
	case RecommendConditional:
		return "Maybe"
	case RecommendNegative:
		return "No"
	default:
		return string(r)
	}
}

// Headline returns the results-page heading for the recommendation.
func (r Recommendation) Headline() string {
	switch r {
	case RecommendAffirmative:
		return "Strong fit"
	case RecommendConditional:
		return "Potential fit"
	case RecommendNegative:
		return "Not a fit yet"
	default:
		return string(r)
	}
}

// Recommend bands an overall score and WISCAR average.
func Recommend(overall int, avgWISCAR float64) Recommendation {
	switch {
	case overall >= affirmativeOverall && avgWISCAR >= affirmativeWISCAR:
		return RecommendAffirmative
	case overall >= conditionalOverall && avgWISCAR >= conditionalWISCAR:
		return RecommendConditional
	default:
		return RecommendNegative
	}
}

// OverallScore weights the psychometric and technical overalls 60/40.
func OverallScore(s Scores) int {
	return roundInt(float64(s.Psychometric.Overall)*0.6 + float64(s.Technical.Overall)*0.4)
}

// Summary returns the narrative summary for a recommendation.
func Summary(r Recommendation, overall int) string {
	switch r {
	case RecommendAffirmative:
		return fmt.Sprintf("Excellent! You demonstrate strong aptitude and alignment for a career as a "+
			"Compliance Automation Specialist. Your score of %d%% indicates you have the right combination "+
			"of technical skills, regulatory interest, and personality traits to thrive in this role.", overall)
	case RecommendConditional:
		return fmt.Sprintf("Good potential! Your score of %d%% shows you have foundational strengths for "+
			"compliance automation work. With focused development in key areas, you could become "+
			"well-suited for this career path.", overall)
	case RecommendNegative:
		return fmt.Sprintf("While your current score of %d%% suggests this may not be your optimal career "+
			"path right now, consider exploring related roles or building foundational skills before "+
			"reassessing your fit for compliance automation.", overall)
	default:
		return ""
	}
}
