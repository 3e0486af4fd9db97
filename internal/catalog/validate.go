package catalog

import (
	"fmt"
	"strings"
)

const (
	MinScore = 1
	MaxScore = 5
)

// validateCatalog performs all structural checks on the question lists.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(c *Catalog) error {
	var errs []string

	idSet := make(map[string]bool)
	for _, sec := range AllSections() {
		questions := c.Questions(sec)
		if len(questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", sec))
		}

		for i, q := range questions {
			prefix := fmt.Sprintf("%s question %d (%q)", sec, i, q.ID)

			if idSet[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			idSet[q.ID] = true

			if q.Type.Section() != sec {
				errs = append(errs, fmt.Sprintf("%s: type %q does not belong to section %q", prefix, q.Type, sec))
			}

			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("%s: needs at least 2 options, got %d", prefix, len(q.Options)))
			}

			values := make(map[string]bool, len(q.Options))
			for _, o := range q.Options {
				if values[o.Value] {
					errs = append(errs, fmt.Sprintf("%s: duplicate option value %q", prefix, o.Value))
				}
				values[o.Value] = true

				if s, ok := o.Scored(); ok && (s < MinScore || s > MaxScore) {
					errs = append(errs, fmt.Sprintf("%s: option %q score must be in [%d, %d], got %d",
						prefix, o.Value, MinScore, MaxScore, s))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
