// Package scoring turns a set of recorded answers into an assessment report.
//
// Every function here is pure: the same answers and catalog always produce
// the same report, and nothing is read from or written to the outside.
package scoring

import "github.com/abhisek/careerfit/internal/catalog"

// Calculate builds the full report for answers scored against cat.
func Calculate(answers catalog.AnswerMap, cat *catalog.Catalog) *Report {
	scores := CategoryScores(answers, cat)
	wiscar := WISCAR(scores)
	overall := OverallScore(scores)
	rec := Recommend(overall, AverageWISCAR(wiscar))

	return &Report{
		OverallScore:   overall,
		Recommendation: rec,
		Summary:        Summary(rec, overall),
		WISCAR:         wiscar,
		Breakdown:      Breakdown(scores),
		CareerPaths:    CareerPaths(overall, scores),
		LearningPath:   LearningPath(rec, scores.Technical.Overall),
		Strengths:      Strengths(scores),
		Improvements:   Improvements(scores),
		NextSteps:      NextSteps(overall),
		Scores:         scores,
	}
}

// Breakdown returns the category rows shown alongside the WISCAR profile.
func Breakdown(s Scores) []CategoryScore {
	return []CategoryScore{
		{Category: "Interest & Motivation", Score: s.Get(catalog.TypeInterest)},
		{Category: "Personality Fit", Score: s.Get(catalog.TypePersonality)},
		{Category: "Cognitive Style", Score: s.Get(catalog.TypeCognitive)},
		{Category: "Technical Aptitude", Score: s.Technical.Overall},
		{Category: "Domain Knowledge", Score: s.Get(catalog.TypeDomain)},
	}
}
