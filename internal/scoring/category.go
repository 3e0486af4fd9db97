package scoring

import (
	"math"

	"github.com/abhisek/careerfit/internal/catalog"
)

// percentScale maps the 1-5 raw option scale onto 0-100.
const percentScale = 20

// SectionScores holds the per-type category scores of one section.
type SectionScores struct {
	ByType  map[catalog.QuestionType]int `json:"byType"`
	Overall int                          `json:"overall"`
}

// Get returns the category score for a type, 0 if absent.
func (s SectionScores) Get(t catalog.QuestionType) int {
	return s.ByType[t]
}

// Scores holds the category scores of both sections.
type Scores struct {
	Psychometric SectionScores `json:"psychometric"`
	Technical    SectionScores `json:"technical"`
}

// Get returns the category score for a type from whichever section owns it.
func (s Scores) Get(t catalog.QuestionType) int {
	if t.Section() == catalog.SectionTechnical {
		return s.Technical.Get(t)
	}
	return s.Psychometric.Get(t)
}

// CategoryScores computes the category scores of both sections.
func CategoryScores(answers catalog.AnswerMap, cat *catalog.Catalog) Scores {
	return Scores{
		Psychometric: sectionScores(answers, cat, catalog.SectionPsychometric),
		Technical:    sectionScores(answers, cat, catalog.SectionTechnical),
	}
}

// sectionScores averages the resolved option scores per question type.
// Answers whose value matches no option, or an option without a score,
// contribute nothing: they count neither toward the total nor the count.
func sectionScores(answers catalog.AnswerMap, cat *catalog.Catalog, sec catalog.Section) SectionScores {
	totals := make(map[catalog.QuestionType]int)
	counts := make(map[catalog.QuestionType]int)

	for i, q := range cat.Questions(sec) {
		value, ok := answers[catalog.AnswerKey(sec, i)]
		if !ok || value == "" {
			continue
		}
		opt, ok := q.Option(value)
		if !ok {
			continue
		}
		score, ok := opt.Scored()
		if !ok {
			continue
		}
		totals[q.Type] += score
		counts[q.Type]++
	}

	types := catalog.TypesFor(sec)
	byType := make(map[catalog.QuestionType]int, len(types))
	sum := 0
	for _, t := range types {
		byType[t] = averagePercent(totals[t], counts[t])
		sum += byType[t]
	}

	return SectionScores{
		ByType:  byType,
		Overall: roundInt(float64(sum) / float64(len(types))),
	}
}

// averagePercent returns round(total/count × 20), or 0 when count is 0.
func averagePercent(total, count int) int {
	if count == 0 {
		return 0
	}
	return roundInt(float64(total) / float64(count) * percentScale)
}

// roundInt rounds half away from zero. All scores here are non-negative.
func roundInt(x float64) int {
	return int(math.Round(x))
}
