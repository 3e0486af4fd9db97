package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/scoring"
	"github.com/abhisek/careerfit/internal/store"
)

// isolate points every user directory at a temp dir and returns the
// database path tests should use.
func isolate(t *testing.T) (dbPath, logPath string) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return filepath.Join(dir, "careerfit.db"), filepath.Join(dir, "careerfit.log")
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T, dbPath string) {
	t.Helper()
	ctx := context.Background()
	st, err := store.Open(ctx, store.Options{Backend: store.BackendSQLite, Path: dbPath})
	require.NoError(t, err)
	defer st.Close()

	cat := catalog.Default()
	answers := make(catalog.AnswerMap)
	for _, sec := range catalog.AllSections() {
		for i, q := range cat.Questions(sec) {
			o, ok := q.BestOption()
			require.True(t, ok)
			answers[catalog.AnswerKey(sec, i)] = o.Value
		}
	}
	_, err = st.Save(ctx, answers)
	require.NoError(t, err)
}

func TestResultsWithoutRecord(t *testing.T) {
	db, logFile := isolate(t)

	out, err := execute(t, "results", "--db", db, "--log-file", logFile)
	require.NoError(t, err)
	assert.Contains(t, out, noResultsHint)
}

func TestResultsJSON(t *testing.T) {
	db, logFile := isolate(t)
	seed(t, db)

	out, err := execute(t, "results", "--json", "--db", db, "--log-file", logFile)
	require.NoError(t, err)

	var r scoring.Report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 100, r.OverallScore)
	assert.Equal(t, scoring.RecommendAffirmative, r.Recommendation)
	assert.Len(t, r.WISCAR, 6)
	assert.Len(t, r.CareerPaths, 4)

	logData, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logData), "scored assessment")
}

func TestResultsMarkdownOutput(t *testing.T) {
	db, logFile := isolate(t)
	seed(t, db)
	mdPath := filepath.Join(t.TempDir(), "report.md")

	out, err := execute(t, "results", "-o", mdPath, "--db", db, "--log-file", logFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")
	assert.Contains(t, out, "Overall Recommendation")

	data, err := os.ReadFile(mdPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "#"))
}

func TestResetClearsRecord(t *testing.T) {
	db, logFile := isolate(t)
	seed(t, db)

	out, err := execute(t, "reset", "--db", db, "--log-file", logFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Stored answers cleared.")

	out, err = execute(t, "results", "--db", db, "--log-file", logFile)
	require.NoError(t, err)
	assert.Contains(t, out, noResultsHint)
}

func TestUnknownStoreBackend(t *testing.T) {
	db, logFile := isolate(t)

	_, err := execute(t, "results", "--store", "etcd", "--db", db, "--log-file", logFile)
	require.Error(t, err)
}

func TestQuestionsListsCatalog(t *testing.T) {
	isolate(t)

	out, err := execute(t, "questions", "--scores")
	require.NoError(t, err)

	cat := catalog.Default()
	for _, sec := range catalog.AllSections() {
		assert.Contains(t, out, sec.DisplayName())
		for _, q := range cat.Questions(sec) {
			assert.Contains(t, out, q.Prompt)
		}
	}
	assert.Contains(t, out, "(5)")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "careerfit (devel)\n", out)
}
