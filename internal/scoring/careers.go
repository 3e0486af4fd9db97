package scoring

import (
	"sort"

	"github.com/abhisek/careerfit/internal/catalog"
)

// careerDef defines a career path and how its match is computed.
type careerDef struct {
	title       string
	description string
	ceiling     int
	match       func(overall int, s Scores) int
}

// careerDefs is the fixed set of career paths, in tie-break order.
var careerDefs = []careerDef{
	{
		title:       "Compliance Automation Specialist",
		description: "Automate regulatory reporting and compliance monitoring",
		ceiling:     95,
		match: func(overall int, _ Scores) int {
			return overall + 5
		},
	},
	{
		title:       "Risk Analyst with Automation Focus",
		description: "Analyze risks using automated tools and frameworks",
		ceiling:     90,
		match: func(_ int, s Scores) int {
			return roundInt(float64(s.Get(catalog.TypeLogical)+s.Get(catalog.TypeCognitive)) * 0.9)
		},
	},
	{
		title:       "RegTech Consultant",
		description: "Advise organizations on regulatory technology solutions",
		ceiling:     85,
		match: func(_ int, s Scores) int {
			return roundInt(float64(s.Get(catalog.TypeDomain)+s.Psychometric.Overall) * 0.8)
		},
	},
	{
		title:       "Process Automation Engineer",
		description: "Design and implement automated business processes",
		ceiling:     80,
		match: func(_ int, s Scores) int {
			return roundInt(float64(s.Get(catalog.TypeProgramming)+s.Get(catalog.TypeLogical)) * 0.8)
		},
	},
}

// CareerPaths scores every career path and sorts them by match, highest
// first. Equal matches keep definition order.
func CareerPaths(overall int, s Scores) []CareerPath {
	paths := make([]CareerPath, 0, len(careerDefs))
	for _, d := range careerDefs {
		paths = append(paths, CareerPath{
			Title:       d.title,
			Description: d.description,
			Match:       min(d.ceiling, d.match(overall, s)),
		})
	}
	sort.SliceStable(paths, func(i, j int) bool {
		return paths[i].Match > paths[j].Match
	})
	return paths
}
