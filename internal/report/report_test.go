package report_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/plagcheck/internal/batch"
	"github.com/knowledge-engine/plagcheck/internal/report"
)

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score    float64
		expected string
	}{
		{1, "1.00"},
		{0, "0.00"},
		{0.7349, "0.73"},
		{0.999, "1.00"},
		{0.5, "0.50"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, report.FormatScore(tt.score))
	}
}

func TestFormat(t *testing.T) {
	results := []batch.Result{
		{Path: "/tmp/essay_03.txt", Name: "essay_03.txt", Score: 0.7412},
		{Path: "/tmp/essay_04.txt", Name: "essay_04.txt", Score: 0},
	}

	assert.Equal(t, "essay_03.txt:0.74\nessay_04.txt:0.00", report.Format(results))
	assert.Equal(t, "", report.Format(nil))
}

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "out.txt")

	err := report.Write(path, []batch.Result{{Name: "a.txt", Score: 1}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a.txt:1.00", string(data))
}

func TestSummary(t *testing.T) {
	out := report.Summary([]batch.Result{
		{Name: "a.txt", Score: 0.5},
		{Name: "b.txt", Err: errors.New("permission denied")},
	})

	assert.Contains(t, strings.ToUpper(out), "CANDIDATE")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "0.50")
	assert.Contains(t, out, "permission denied")
}
