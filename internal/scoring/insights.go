package scoring

import "github.com/abhisek/careerfit/internal/catalog"

// insightRule appends text when its predicate holds for the category score.
type insightRule struct {
	typ  catalog.QuestionType
	test func(score int) bool
	text string
}

func atLeast(n int) func(int) bool { return func(s int) bool { return s >= n } }
func below(n int) func(int) bool   { return func(s int) bool { return s < n } }

// Checked in order; every matching rule contributes.
var strengthRules = []insightRule{
	{catalog.TypeInterest, atLeast(80), "Strong genuine interest in compliance and automation"},
	{catalog.TypePersonality, atLeast(75), "Excellent personality fit for detail-oriented compliance work"},
	{catalog.TypeLogical, atLeast(80), "Outstanding logical reasoning and problem-solving abilities"},
	{catalog.TypeDomain, atLeast(70), "Good foundational knowledge of compliance concepts"},
	{catalog.TypeMotivation, atLeast(75), "High motivation and persistence for challenging work"},
}

var improvementRules = []insightRule{
	{catalog.TypeProgramming, below(60), "Develop stronger programming and automation skills"},
	{catalog.TypeDomain, below(50), "Build deeper knowledge of compliance frameworks and regulations"},
	{catalog.TypeCognitive, below(60), "Enhance analytical thinking and structured problem-solving approaches"},
	{catalog.TypeNumerical, below(60), "Strengthen numerical analysis and quantitative reasoning skills"},
	{catalog.TypeMotivation, below(60), "Build resilience and persistence for long-term skill development"},
}

const (
	defaultStrength    = "Willingness to learn and grow in a new field"
	defaultImprovement = "Continue building on your existing foundation"

	nextStepsReady = "Consider enrolling in compliance automation courses and seeking entry-level " +
		"opportunities or internships in the field."
	nextStepsBuild = "Focus on building foundational skills through online courses, practice projects, " +
		"and networking with professionals in compliance and automation."

	nextStepsCutoff = 70
)

// Strengths lists the strengths indicated by the category scores.
func Strengths(s Scores) []string {
	return applyRules(strengthRules, s, defaultStrength)
}

// Improvements lists the development areas indicated by the category scores.
func Improvements(s Scores) []string {
	return applyRules(improvementRules, s, defaultImprovement)
}

// NextSteps picks the next-steps narrative for an overall score.
func NextSteps(overall int) string {
	if overall >= nextStepsCutoff {
		return nextStepsReady
	}
	return nextStepsBuild
}

func applyRules(rules []insightRule, s Scores, fallback string) []string {
	var out []string
	for _, r := range rules {
		if r.test(s.Get(r.typ)) {
			out = append(out, r.text)
		}
	}
	if len(out) == 0 {
		out = append(out, fallback)
	}
	return out
}
