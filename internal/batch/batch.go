// Package batch scores a set of candidate files against one reference file.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/knowledge-engine/plagcheck/internal/config"
	"github.com/knowledge-engine/plagcheck/internal/similarity"
)

// ErrNoCandidates is returned when the candidate pattern matches no files
var ErrNoCandidates = errors.New("no candidate files matched")

// TextLoader reads a document's text
type TextLoader interface {
	Load(path string) (string, error)
}

// Normalizer reduces text to a space-joined token stream
type Normalizer interface {
	Normalize(text string) string
}

// Result is the score of one candidate against the reference
type Result struct {
	Path  string
	Name  string
	Score float64
	// Err is set when the candidate was zero-scored instead of compared
	Err error
}

// Driver runs the load, normalize and score pipeline for each candidate
type Driver struct {
	Loader         TextLoader
	Normalizer     Normalizer
	Scorer         similarity.Scorer
	Logger         *logrus.Entry
	SkipUnreadable bool
}

func NewDriver(cfg config.BatchConfig, logger *logrus.Entry, loader TextLoader, normalizer Normalizer, scorer similarity.Scorer) *Driver {
	return &Driver{
		Loader:         loader,
		Normalizer:     normalizer,
		Scorer:         scorer,
		Logger:         logger,
		SkipUnreadable: cfg.SkipUnreadable,
	}
}

// Candidates expands pattern into a lexicographically sorted list of paths
func Candidates(pattern string) ([]string, error) {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid candidate pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoCandidates, pattern)
	}
	sort.Strings(matches)
	return matches, nil
}

// Run scores every file matched by pattern against the reference file.
// Results follow the sorted candidate order. Any read failure aborts the run
// unless SkipUnreadable is set, in which case the candidate scores 0.
func (d *Driver) Run(ctx context.Context, referencePath, pattern string) ([]Result, error) {
	refText, err := d.Loader.Load(referencePath)
	if err != nil {
		return nil, fmt.Errorf("reference: %w", err)
	}
	reference := d.Normalizer.Normalize(refText)
	d.Logger.WithField("path", referencePath).Debug("Reference loaded")

	paths, err := Candidates(pattern)
	if err != nil {
		return nil, err
	}
	d.Logger.WithField("count", len(paths)).Info("Scoring candidates")

	results := make([]Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result, err := d.scoreCandidate(reference, path)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (d *Driver) scoreCandidate(reference, path string) (Result, error) {
	result := Result{Path: path, Name: filepath.Base(path)}
	log := d.Logger.WithField("candidate", path)

	text, err := d.Loader.Load(path)
	if err != nil {
		if !d.SkipUnreadable {
			return result, fmt.Errorf("candidate: %w", err)
		}
		log.WithError(err).Warn("Skipping unreadable candidate")
		result.Err = err
		return result, nil
	}

	score, err := d.Scorer.Score(reference, d.Normalizer.Normalize(text))
	if err != nil {
		log.WithError(err).Warn("Similarity computation failed, scoring 0")
		result.Err = err
		return result, nil
	}

	result.Score = similarity.Clamp(score)
	log.WithField("score", result.Score).Debug("Candidate scored")
	return result, nil
}
