package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/careerfit/internal/schema"
)

//go:embed questions.json
var defaultData []byte

// Catalog holds the two ordered question lists. It is read-only after
// Load returns; callers must not modify the slices it hands out.
type Catalog struct {
	Psychometric []Question `json:"psychometric"`
	Technical    []Question `json:"technical"`
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It panics if the embedded data is
// invalid, which can only happen through a bad edit to questions.json.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Load(defaultData)
		if err != nil {
			panic(fmt.Sprintf("built-in catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Load parses and validates a catalog document.
func Load(raw []byte) (*Catalog, error) {
	if err := schema.Validate(CatalogSchema, raw); err != nil {
		return nil, err
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if err := validateCatalog(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Questions returns the ordered questions of a section.
func (c *Catalog) Questions(s Section) []Question {
	switch s {
	case SectionPsychometric:
		return c.Psychometric
	case SectionTechnical:
		return c.Technical
	default:
		return nil
	}
}

// Question returns the question at index within a section.
func (c *Catalog) Question(s Section, index int) (Question, bool) {
	qs := c.Questions(s)
	if index < 0 || index >= len(qs) {
		return Question{}, false
	}
	return qs[index], true
}

// Len returns the total number of questions across both sections.
func (c *Catalog) Len() int {
	return len(c.Psychometric) + len(c.Technical)
}
