package scoring

// DimensionScore is one axis of the WISCAR profile.
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     int       `json:"score"`
}

// CategoryScore is one row of the category breakdown.
type CategoryScore struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// CareerPath is a role the respondent is matched against.
type CareerPath struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Match       int    `json:"match"`
}

// LearningPhase is one step of the recommended learning path.
type LearningPhase struct {
	Phase  string   `json:"phase"`
	Skills []string `json:"skills"`
}

// Report is the full derived result of an assessment. Renderers treat it
// as read-only.
type Report struct {
	OverallScore   int              `json:"overallScore"`
	Recommendation Recommendation   `json:"recommendation"`
	Summary        string           `json:"summary"`
	WISCAR         []DimensionScore `json:"wiscar"`
	Breakdown      []CategoryScore  `json:"breakdown"`
	CareerPaths    []CareerPath     `json:"careerPaths"`
	LearningPath   []LearningPhase  `json:"learningPath"`
	Strengths      []string         `json:"strengths"`
	Improvements   []string         `json:"improvements"`
	NextSteps      string           `json:"nextSteps"`

	// Scores carries the intermediate category scores the report was built from.
	Scores Scores `json:"scores"`
}
