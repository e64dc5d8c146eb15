// Package loader reads document text from disk for comparison.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/knowledge-engine/plagcheck/internal/config"
)

// ErrEmptyPath is returned when Load is called without a path
var ErrEmptyPath = errors.New("empty file path")

// blankReplacer maps visually blank non-ASCII spaces to a plain space
var blankReplacer = strings.NewReplacer(
	"\u3000", " ", // ideographic space
	"\u00a0", " ", // no-break space
)

// Loader reads documents and applies whitespace fixups
type Loader struct {
	extractHTML bool
}

func NewLoader(cfg config.LoaderConfig) *Loader {
	return &Loader{extractHTML: cfg.ExtractHTML}
}

// Load returns the text content of path. Invalid UTF-8 is replaced rather
// than rejected; only open/read failures are reported.
func (l *Loader) Load(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := Decode(data)
	if l.extractHTML && isHTML(path) {
		extracted, err := ExtractText(strings.NewReader(text))
		if err != nil {
			return "", fmt.Errorf("failed to parse %s: %w", path, err)
		}
		text = extracted
	}

	return blankReplacer.Replace(text), nil
}

// Decode converts raw bytes to a string, replacing invalid UTF-8 sequences
// with U+FFFD.
func Decode(data []byte) string {
	// the UTF-8 decoder substitutes invalid input instead of failing
	decoded, _, _ := transform.Bytes(unicode.UTF8.NewDecoder(), data)
	return string(decoded)
}

func isHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// ExtractText returns the visible text of an HTML document, skipping
// script and style bodies.
func ExtractText(body io.Reader) (string, error) {
	tokenizer := html.NewTokenizer(body)
	var textBuilder strings.Builder
	inScript := false
	inStyle := false

	for {
		tokenType := tokenizer.Next()

		switch tokenType {
		case html.ErrorToken:
			if tokenizer.Err() == io.EOF {
				return cleanText(textBuilder.String()), nil
			}
			return "", tokenizer.Err()

		case html.StartTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = true
			case "style":
				inStyle = true
			}

		case html.EndTagToken:
			switch tokenizer.Token().Data {
			case "script":
				inScript = false
			case "style":
				inStyle = false
			}

		case html.TextToken:
			if !inScript && !inStyle {
				text := strings.TrimSpace(tokenizer.Token().Data)
				if text != "" {
					textBuilder.WriteString(text + " ")
				}
			}
		}
	}
}

// cleanText removes excessive whitespace
func cleanText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}
