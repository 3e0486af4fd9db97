package catalog

import "fmt"

// Section is one of the two ordered parts of the assessment.
type Section string

const (
	SectionPsychometric Section = "psychometric"
	SectionTechnical    Section = "technical"
)

// AllSections returns the sections in the order they are presented.
func AllSections() []Section {
	return []Section{SectionPsychometric, SectionTechnical}
}

// DisplayName returns the heading shown while a section is in progress.
func (s Section) DisplayName() string {
	switch s {
	case SectionPsychometric:
		return "Psychometric Assessment"
	case SectionTechnical:
		return "Technical & Aptitude Assessment"
	default:
		return string(s)
	}
}

// QuestionType tags a question with the category score it feeds.
type QuestionType string

const (
	TypeInterest    QuestionType = "interest"
	TypePersonality QuestionType = "personality"
	TypeCognitive   QuestionType = "cognitive"
	TypeMotivation  QuestionType = "motivation"

	TypeLogical     QuestionType = "logical"
	TypeNumerical   QuestionType = "numerical"
	TypeProgramming QuestionType = "programming"
	TypeDomain      QuestionType = "domain"
)

// PsychometricTypes returns the psychometric question types in report order.
func PsychometricTypes() []QuestionType {
	return []QuestionType{TypeInterest, TypePersonality, TypeCognitive, TypeMotivation}
}

// TechnicalTypes returns the technical question types in report order.
func TechnicalTypes() []QuestionType {
	return []QuestionType{TypeLogical, TypeNumerical, TypeProgramming, TypeDomain}
}

// TypesFor returns the question types that belong to a section.
func TypesFor(s Section) []QuestionType {
	switch s {
	case SectionPsychometric:
		return PsychometricTypes()
	case SectionTechnical:
		return TechnicalTypes()
	default:
		return nil
	}
}

// Section returns the section a question type belongs to, or "" if the
// type is unknown.
func (t QuestionType) Section() Section {
	switch t {
	case TypeInterest, TypePersonality, TypeCognitive, TypeMotivation:
		return SectionPsychometric
	case TypeLogical, TypeNumerical, TypeProgramming, TypeDomain:
		return SectionTechnical
	default:
		return ""
	}
}

// Option is one selectable answer to a question.
type Option struct {
	Value string `json:"value"`
	Text  string `json:"text"`

	// Score is the raw 1-5 weight. Nil means the option carries no weight.
	Score *int `json:"score,omitempty"`
}

// Scored returns the option's score and whether it has one.
func (o Option) Scored() (int, bool) {
	if o.Score == nil {
		return 0, false
	}
	return *o.Score, true
}

// Question is a single multiple-choice item.
type Question struct {
	ID       string       `json:"id"`
	Prompt   string       `json:"prompt"`
	Category string       `json:"category"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options"`
}

// Option looks up an option by value.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// BestOption returns the highest-scored option. Ties go to the first one.
func (q Question) BestOption() (Option, bool) {
	var best Option
	found := false
	for _, o := range q.Options {
		s, ok := o.Scored()
		if !ok {
			continue
		}
		if b, _ := best.Scored(); !found || s > b {
			best = o
			found = true
		}
	}
	return best, found
}

// AnswerMap maps an answer key to the selected option value.
type AnswerMap map[string]string

// AnswerKey returns the key under which the answer to the question at
// index within section is recorded, e.g. "technical_3".
func AnswerKey(s Section, index int) string {
	return fmt.Sprintf("%s_%d", s, index)
}

// Clone returns a copy of the map.
func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
