package results

import "github.com/abhisek/careerfit/internal/store"

// loadedMsg carries the stored record, or nil if there is none.
type loadedMsg struct {
	Record *store.Record
	Err    error
}

// exportedMsg reports the outcome of writing the Markdown report.
type exportedMsg struct {
	Path string
	Err  error
}
