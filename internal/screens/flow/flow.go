// Package flow wires the assessment and results screens to each other.
package flow

import (
	"github.com/abhisek/careerfit/internal/screen"
	"github.com/abhisek/careerfit/internal/screens/assessment"
	"github.com/abhisek/careerfit/internal/screens/results"
	"github.com/abhisek/careerfit/internal/store"
)

// Assessment returns a fresh assessment that shows results once saved.
func Assessment(env screen.Env) screen.Screen {
	return assessment.New(env, func(rec *store.Record) screen.Screen {
		return results.New(env, rec, retake(env))
	})
}

// Results returns a results screen that loads the stored record.
func Results(env screen.Env) screen.Screen {
	return results.New(env, nil, retake(env))
}

func retake(env screen.Env) func() screen.Screen {
	return func() screen.Screen { return Assessment(env) }
}
