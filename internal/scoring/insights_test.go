package scoring

import (
	"testing"

	"github.com/abhisek/careerfit/internal/catalog"
)

func TestStrengths_Order(t *testing.T) {
	s := scoresWith(0, map[catalog.QuestionType]int{
		catalog.TypeMotivation: 75,
		catalog.TypeInterest:   80,
	})
	got := Strengths(s)
	want := []string{
		"Strong genuine interest in compliance and automation",
		"High motivation and persistence for challenging work",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("strength %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStrengths_Thresholds(t *testing.T) {
	tests := []struct {
		typ  catalog.QuestionType
		hit  int
		miss int
	}{
		{catalog.TypeInterest, 80, 79},
		{catalog.TypePersonality, 75, 74},
		{catalog.TypeLogical, 80, 79},
		{catalog.TypeDomain, 70, 69},
		{catalog.TypeMotivation, 75, 74},
	}
	for _, tt := range tests {
		hit := Strengths(scoresWith(0, map[catalog.QuestionType]int{tt.typ: tt.hit}))
		if len(hit) != 1 || hit[0] == defaultStrength {
			t.Errorf("%s=%d should produce one strength, got %v", tt.typ, tt.hit, hit)
		}
		miss := Strengths(scoresWith(0, map[catalog.QuestionType]int{tt.typ: tt.miss}))
		if len(miss) != 1 || miss[0] != defaultStrength {
			t.Errorf("%s=%d should fall back to default, got %v", tt.typ, tt.miss, miss)
		}
	}
}

func TestImprovements_Thresholds(t *testing.T) {
	all := map[catalog.QuestionType]int{
		catalog.TypeProgramming: 60,
		catalog.TypeDomain:      50,
		catalog.TypeCognitive:   60,
		catalog.TypeNumerical:   60,
		catalog.TypeMotivation:  60,
	}
	got := Improvements(scoresWith(0, all))
	if len(got) != 1 || got[0] != defaultImprovement {
		t.Errorf("scores at the thresholds should yield the default, got %v", got)
	}

	all[catalog.TypeDomain] = 49
	all[catalog.TypeMotivation] = 59
	got = Improvements(scoresWith(0, all))
	want := []string{
		"Build deeper knowledge of compliance frameworks and regulations",
		"Build resilience and persistence for long-term skill development",
	}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestStrengthsAndImprovementsCoOccur(t *testing.T) {
	s := scoresWith(0, map[catalog.QuestionType]int{
		catalog.TypeInterest:    100,
		catalog.TypeProgramming: 20,
		catalog.TypeDomain:      100,
		catalog.TypeCognitive:   100,
		catalog.TypeNumerical:   100,
		catalog.TypeMotivation:  100,
	})
	if len(Strengths(s)) != 3 {
		t.Errorf("Strengths = %v", Strengths(s))
	}
	if imp := Improvements(s); len(imp) != 1 || imp[0] != "Develop stronger programming and automation skills" {
		t.Errorf("Improvements = %v", imp)
	}
}

func TestNextSteps(t *testing.T) {
	if NextSteps(70) != nextStepsReady {
		t.Error("70 should get the ready template")
	}
	if NextSteps(69) != nextStepsBuild {
		t.Error("69 should get the build template")
	}
}
