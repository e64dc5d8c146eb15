package tokenizer

import (
	"fmt"
	"os"

	"github.com/go-ego/gse"
)

// GSESegmenter segments Han text with a gse dictionary and its HMM model
// for words the dictionary does not know.
type GSESegmenter struct {
	seg gse.Segmenter
}

// NewGSESegmenter loads the given dictionary files, or the Chinese
// dictionary compiled into the binary when none are given.
func NewGSESegmenter(dictFiles ...string) (*GSESegmenter, error) {
	s := &GSESegmenter{}
	s.seg.SkipLog = true
	if err := s.load(dictFiles); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *GSESegmenter) load(dictFiles []string) error {
	if len(dictFiles) == 0 {
		if err := s.seg.LoadDictEmbed(); err != nil {
			return fmt.Errorf("failed to load embedded segmenter dictionary: %w", err)
		}
		return nil
	}

	// gse logs its own message for unreadable files, so check them first
	for _, file := range dictFiles {
		if _, err := os.Stat(file); err != nil {
			return fmt.Errorf("segmenter dictionary: %w", err)
		}
	}

	// LoadDict only reads its first argument; later calls add to the same dictionary
	for _, file := range dictFiles {
		if err := s.seg.LoadDict(file); err != nil {
			return fmt.Errorf("failed to load segmenter dictionary %s: %w", file, err)
		}
	}
	return nil
}

func (s *GSESegmenter) Segment(text string) []string {
	return s.seg.Cut(text, true)
}
