package scoring

// prerequisiteCutoff is the technical overall below which the
// Prerequisites phase is added regardless of recommendation.
const prerequisiteCutoff = 40

var prerequisitesPhase = LearningPhase{
	Phase:  "Prerequisites (1-2 months)",
	Skills: []string{"Basic computer literacy", "Analytical thinking development", "Regulatory awareness building"},
}

var basePhases = []LearningPhase{
	{
		Phase:  "Foundation (1-3 months)",
		Skills: []string{"Compliance fundamentals", "Basic Python programming", "Introduction to RPA concepts"},
	},
	{
		Phase:  "Intermediate (3-6 months)",
		Skills: []string{"Advanced automation tools", "GRC software training", "Real-world compliance projects"},
	},
	{
		Phase:  "Advanced (6-12 months)",
		Skills: []string{"Industry certifications", "Portfolio development", "Practical experience/internship"},
	},
}

// LearningPath returns the phased learning path. A Prerequisites phase is
// prepended for a negative recommendation or a weak technical overall.
func LearningPath(r Recommendation, technicalOverall int) []LearningPhase {
	var path []LearningPhase
	if r == RecommendNegative || technicalOverall < prerequisiteCutoff {
		path = append(path, clonePhase(prerequisitesPhase))
	}
	for _, p := range basePhases {
		path = append(path, clonePhase(p))
	}
	return path
}

// clonePhase copies the skill list so callers cannot alter the templates.
func clonePhase(p LearningPhase) LearningPhase {
	skills := make([]string, len(p.Skills))
	copy(skills, p.Skills)
	return LearningPhase{Phase: p.Phase, Skills: skills}
}
