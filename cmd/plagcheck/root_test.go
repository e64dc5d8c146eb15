package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knowledge-engine/plagcheck/internal/batch"
	"github.com/knowledge-engine/plagcheck/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Log.Level = "error"
	cfg.Tokenizer.MinTokenLen = 2
	return cfg
}

func runCommand(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(cfg)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCommandWritesScores(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "orig.txt", "人工智能技术发展迅速")
	writeFile(t, dir, "plag_1.txt", "人工智能技术发展迅速")
	writeFile(t, dir, "plag_2.txt", "apple banana cherry")
	writeFile(t, dir, "plag_3.txt", "……！！？？")
	out := filepath.Join(dir, "output.txt")

	_, err := runCommand(t, testConfig(), ref, filepath.Join(dir, "plag_*"), out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "plag_1.txt:1.00\nplag_2.txt:0.00\nplag_3.txt:0.00", string(data))
}

func TestRootCommandDisjointVocabulary(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "orig.txt", "apple banana cherry")
	writeFile(t, dir, "cand.txt", "xyz qrs tuv")
	out := filepath.Join(dir, "output.txt")

	_, err := runCommand(t, testConfig(), ref, filepath.Join(dir, "cand.txt"), out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "cand.txt:0.00", string(data))
}

func TestRootCommandSummary(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "orig.txt", "apple banana")
	writeFile(t, dir, "cand.txt", "apple banana")

	stdout, err := runCommand(t, testConfig(), ref, filepath.Join(dir, "cand.txt"), filepath.Join(dir, "out.txt"), "--summary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "cand.txt")
	assert.Contains(t, stdout, "1.00")
}

func TestRootCommandFailures(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "orig.txt", "apple banana")
	writeFile(t, dir, "cand.txt", "apple")

	tests := []struct {
		name  string
		args  func(out string) []string
		check func(t *testing.T, err error)
	}{
		{
			name: "Wrong argument count",
			args: func(out string) []string { return []string{ref, out} },
			check: func(t *testing.T, err error) {
				assert.True(t, strings.HasPrefix(err.Error(), "usage:"))
			},
		},
		{
			name: "Missing reference",
			args: func(out string) []string {
				return []string{filepath.Join(dir, "missing.txt"), filepath.Join(dir, "cand.txt"), out}
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, os.ErrNotExist)
			},
		},
		{
			name: "No candidates",
			args: func(out string) []string {
				return []string{ref, filepath.Join(dir, "none_*"), out}
			},
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, batch.ErrNoCandidates)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "output.txt")

			_, err := runCommand(t, testConfig(), tt.args(out)...)
			require.Error(t, err)
			tt.check(t, err)

			_, statErr := os.Stat(out)
			assert.ErrorIs(t, statErr, os.ErrNotExist)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(config.LogConfig{Level: "bogus", Format: "json"}, &buf)

	log.Debug("hidden")
	log.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"service":"plagcheck"`)
}

func TestRootCommandCustomDictionaries(t *testing.T) {
	dir := t.TempDir()
	ref := writeFile(t, dir, "orig.txt", "人工智能发展迅速")
	writeFile(t, dir, "cand.txt", "发展迅速")
	first := writeFile(t, dir, "first.dict", "人工智能 1000 n\n")
	second := writeFile(t, dir, "second.dict", "发展迅速 1000 n\n")
	out := filepath.Join(dir, "output.txt")

	cfg := testConfig()
	cfg.Tokenizer.DictFiles = []string{first, second}

	_, err := runCommand(t, cfg, ref, filepath.Join(dir, "cand.txt"), out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Regexp(t, `^cand\.txt:0\.\d\d$`, string(data))

	cfg.Tokenizer.DictFiles = []string{filepath.Join(dir, "missing.dict")}
	_, err = runCommand(t, cfg, ref, filepath.Join(dir, "cand.txt"), filepath.Join(dir, "other.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
