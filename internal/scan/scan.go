// Package scan extracts source comments from a directory tree and groups
// them by detected natural language.
package scan

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/comlang/comlang/internal/config"
	"github.com/comlang/comlang/internal/fs"
	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/search"
)

// ErrNotFound is returned when the scan directory does not exist.
var ErrNotFound = errors.New("directory not found")

// Searcher finds candidate comment lines in a directory tree.
// search.Tool satisfies it.
type Searcher interface {
	Search(ctx context.Context, dir, pattern string) ([]search.Match, error)
}

// Scanner runs the scan pipeline: search, extract, classify, bucket.
type Scanner struct {
	cfg      *config.Config
	searcher Searcher
	detector language.Detector
	comment  *regexp.Regexp
}

// New creates a scanner from a validated configuration.
func New(cfg *config.Config, searcher Searcher, detector language.Detector) *Scanner {
	// The search pattern is a literal delimiter. The comment text is
	// whatever follows its first occurrence on the line.
	comment := regexp.MustCompile(regexp.QuoteMeta(cfg.Search.Pattern) + `\s*(.*)`)

	return &Scanner{
		cfg:      cfg,
		searcher: searcher,
		detector: detector,
		comment:  comment,
	}
}

// Scan searches dir for comment lines and returns them grouped by detected
// language. Comments the detector cannot classify land in the "unknown"
// bucket rather than failing the scan.
func (s *Scanner) Scan(ctx context.Context, dir string) (*Report, error) {
	if !fs.DirExists(dir) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
	}

	matches, err := s.searcher.Search(ctx, dir, s.cfg.Search.Pattern)
	if err != nil {
		return nil, err
	}

	rep := NewReport(dir)

	for _, m := range matches {
		if s.excluded(m.File) {
			continue
		}

		sub := s.comment.FindStringSubmatch(m.Content)
		if sub == nil {
			continue
		}

		text := strings.TrimSpace(sub[1])
		if utf8.RuneCountInString(text) < s.cfg.Detect.MinLength {
			// Too short to classify reliably.
			continue
		}

		c := Comment{
			File:    m.File,
			Line:    m.Line,
			Content: strings.TrimSpace(m.Content),
			Text:    text,
		}

		det, err := s.detector.Detect(text)
		switch {
		case err == nil:
			c.Language = det.Code
			c.Confidence = det.Confidence
		case errors.Is(err, language.ErrUndetermined):
			c.Language = language.Unknown
		default:
			c.Language = language.Unknown
			c.DetectErr = err.Error()
		}

		rep.add(c)
	}

	return rep, nil
}

// excluded reports whether a match's file path hits any exclude glob.
// Paths are compared in slash form, as the search tools emit them.
func (s *Scanner) excluded(file string) bool {
	path := filepath.ToSlash(file)
	for _, glob := range s.cfg.Exclude {
		if ok, err := doublestar.Match(glob, path); err == nil && ok {
			return true
		}
	}
	return false
}
