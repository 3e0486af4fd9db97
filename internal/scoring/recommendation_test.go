package scoring

import (
	"strings"
	"testing"
)

func TestRecommend(t *testing.T) {
	tests := []struct {
		name    string
		overall int
		avg     float64
		want    Recommendation
	}{
		{"affirmative boundary", 75, 70, RecommendAffirmative},
		{"overall just below", 74, 70, RecommendConditional},
		{"wiscar just below", 75, 69.99, RecommendConditional},
		{"conditional boundary", 60, 55, RecommendConditional},
		{"conditional overall below", 59, 90, RecommendNegative},
		{"conditional wiscar below", 90, 54.5, RecommendNegative},
		{"zero", 0, 0, RecommendNegative},
		{"perfect", 100, 100, RecommendAffirmative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Recommend(tt.overall, tt.avg); got != tt.want {
				t.Errorf("Recommend(%d, %v) = %q, want %q", tt.overall, tt.avg, got, tt.want)
			}
		})
	}
}

func TestOverallScore(t *testing.T) {
	s := Scores{
		Psychometric: SectionScores{Overall: 80},
		Technical:    SectionScores{Overall: 65},
	}
	got := OverallScore(s)
	if got != 74 {
		t.Fatalf("OverallScore = %d, want 74", got)
	}
	if rec := Recommend(got, 60); rec != RecommendConditional {
		t.Errorf("Recommend(74, 60) = %q, want conditional", rec)
	}
}

func TestRecommendationLabel(t *testing.T) {
	tests := []struct {
		r    Recommendation
		want string
	}{
		{RecommendAffirmative, "Yes"},
		{RecommendConditional, "Maybe"},
		{RecommendNegative, "No"},
		{Recommendation("other"), "other"},
	}
	for _, tt := range tests {
		if got := tt.r.Label(); got != tt.want {
			t.Errorf("%q.Label() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestSummary(t *testing.T) {
	for _, r := range []Recommendation{RecommendAffirmative, RecommendConditional, RecommendNegative} {
		s := Summary(r, 67)
		if !strings.Contains(s, "67%") {
			t.Errorf("summary for %q does not mention score: %q", r, s)
		}
	}
	if Summary(Recommendation("other"), 50) != "" {
		t.Error("unknown recommendation should have empty summary")
	}
	if Summary(RecommendAffirmative, 80) == Summary(RecommendNegative, 80) {
		t.Error("summaries should differ by recommendation")
	}
}
