// Package assessment implements the answer collector: a finite-state
// machine over (section, question index) that records one selected option
// per question and only advances past questions that have an answer.
package assessment

import (
	"errors"
	"fmt"

	"github.com/abhisek/careerfit/internal/catalog"
)

var (
	// ErrUnanswered is returned by Next when the current question has no answer.
	ErrUnanswered = errors.New("current question has no answer")

	// ErrComplete is returned when the assessment has already been completed.
	ErrComplete = errors.New("assessment already complete")
)

// Phase is the coarse state of the collector.
type Phase int

const (
	PhaseAnswering Phase = iota // Paging through questions
	PhaseComplete               // Final question answered and advanced past
)

// Transition describes what a successful Next did.
type Transition int

const (
	TransitionQuestion Transition = iota // Moved to the next question in the section
	TransitionSection                    // Moved to the first question of the next section
	TransitionComplete                   // Finished the last question
)

// Position identifies a question within the catalog.
type Position struct {
	Section catalog.Section
	Index   int
}

// Key returns the answer key for the position.
func (p Position) Key() string {
	return catalog.AnswerKey(p.Section, p.Index)
}

// State tracks the collector's position and recorded answers.
type State struct {
	cat     *catalog.Catalog
	pos     Position
	answers catalog.AnswerMap
	phase   Phase
}

// New creates a collector positioned at the first psychometric question.
func New(cat *catalog.Catalog) *State {
	return &State{
		cat:     cat,
		pos:     Position{Section: catalog.SectionPsychometric},
		answers: make(catalog.AnswerMap),
		phase:   PhaseAnswering,
	}
}

// Phase returns the current phase.
func (s *State) Phase() Phase { return s.phase }

// Position returns the current position.
func (s *State) Position() Position { return s.pos }

// Current returns the question at the current position.
func (s *State) Current() catalog.Question {
	q, _ := s.cat.Question(s.pos.Section, s.pos.Index)
	return q
}

// SectionLen returns the number of questions in the current section.
func (s *State) SectionLen() int {
	return len(s.cat.Questions(s.pos.Section))
}

// Select records value as the answer to the current question, replacing
// any earlier choice. The value must name one of the question's options.
func (s *State) Select(value string) error {
	if s.phase == PhaseComplete {
		return ErrComplete
	}
	q := s.Current()
	if _, ok := q.Option(value); !ok {
		return fmt.Errorf("question %q has no option %q", q.ID, value)
	}
	s.answers[s.pos.Key()] = value
	return nil
}

// Selected returns the recorded answer for the current question.
func (s *State) Selected() (string, bool) {
	v, ok := s.answers[s.pos.Key()]
	return v, ok
}

// CanAdvance reports whether Next would succeed.
func (s *State) CanAdvance() bool {
	if s.phase == PhaseComplete {
		return false
	}
	_, ok := s.Selected()
	return ok
}

// CanGoBack reports whether Prev would move.
func (s *State) CanGoBack() bool {
	if s.phase == PhaseComplete {
		return false
	}
	return s.pos.Index > 0 || s.pos.Section != catalog.SectionPsychometric
}

// IsLast reports whether the current question is the final one.
func (s *State) IsLast() bool {
	last := catalog.AllSections()[len(catalog.AllSections())-1]
	return s.pos.Section == last && s.pos.Index == s.SectionLen()-1
}

// Next advances past the current question.
func (s *State) Next() (Transition, error) {
	if s.phase == PhaseComplete {
		return 0, ErrComplete
	}
	if !s.CanAdvance() {
		return 0, ErrUnanswered
	}

	if s.pos.Index < s.SectionLen()-1 {
		s.pos.Index++
		return TransitionQuestion, nil
	}

	if next, ok := s.nextSection(); ok {
		s.pos = Position{Section: next}
		return TransitionSection, nil
	}

	s.phase = PhaseComplete
	return TransitionComplete, nil
}

// Prev moves back one question, crossing into the previous section when
// at the start of one. Returns false if already at the first question.
func (s *State) Prev() bool {
	if !s.CanGoBack() {
		return false
	}
	if s.pos.Index > 0 {
		s.pos.Index--
		return true
	}
	prev, ok := s.prevSection()
	if !ok {
		return false
	}
	s.pos = Position{Section: prev, Index: len(s.cat.Questions(prev)) - 1}
	return true
}

// Answered returns the number of recorded answers.
func (s *State) Answered() int { return len(s.answers) }

// Total returns the number of questions in the assessment.
func (s *State) Total() int { return s.cat.Len() }

// Progress returns answered/total in [0, 1].
func (s *State) Progress() float64 {
	if s.Total() == 0 {
		return 0
	}
	return float64(s.Answered()) / float64(s.Total())
}

// Answers returns a copy of the recorded answers.
func (s *State) Answers() catalog.AnswerMap {
	return s.answers.Clone()
}

func (s *State) nextSection() (catalog.Section, bool) {
	sections := catalog.AllSections()
	for i, sec := range sections {
		if sec == s.pos.Section && i+1 < len(sections) {
			return sections[i+1], true
		}
	}
	return "", false
}

func (s *State) prevSection() (catalog.Section, bool) {
	sections := catalog.AllSections()
	for i, sec := range sections {
		if sec == s.pos.Section && i > 0 {
			return sections[i-1], true
		}
	}
	return "", false
}
