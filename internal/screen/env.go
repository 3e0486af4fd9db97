package screen

import (
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/store"
)

// Env carries the dependencies screens share.
type Env struct {
	Catalog *catalog.Catalog
	Store   store.AnswerStore
	Log     *zap.Logger

	// ReportDir is where saved Markdown reports are written.
	ReportDir string
}

// Logger returns Log, or a no-op logger if none is set.
func (e Env) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}
