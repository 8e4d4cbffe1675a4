// Package language classifies the natural language of short text snippets.
// It wraps the lingua statistical detector behind a small interface so the
// scan pipeline can be tested without loading language models.
package language

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Unknown is the bucket code for comments whose language could not be
// classified.
const Unknown = "unknown"

// ErrUndetermined is returned by Detect when the detector cannot settle on
// any of its candidate languages. This is an expected outcome for symbol
// soup and very short text, not a failure of the detector itself.
var ErrUndetermined = errors.New("language could not be determined")

// Detection is a classified language with its ISO 639-1 code, English name
// and the detector's confidence in [0, 1].
type Detection struct {
	Code       string
	Name       string
	Confidence float64
}

// Detector classifies the natural language of a piece of text.
type Detector interface {
	Detect(text string) (Detection, error)
}

// LinguaDetector classifies text against a fixed candidate set of languages.
type LinguaDetector struct {
	detector  lingua.LanguageDetector
	languages []lingua.Language
}

// NewDetector builds a detector for the given ISO 639-1 codes.
// At least two candidate languages are required; classification against a
// single candidate has nothing to compare to.
func NewDetector(codes []string) (*LinguaDetector, error) {
	if len(codes) < 2 {
		return nil, fmt.Errorf("need at least 2 candidate languages, got %d", len(codes))
	}

	languages := make([]lingua.Language, 0, len(codes))
	for _, code := range codes {
		lang, ok := languageFor(code)
		if !ok {
			return nil, fmt.Errorf("unsupported language code %q", code)
		}
		languages = append(languages, lang)
	}

	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()

	return &LinguaDetector{detector: detector, languages: languages}, nil
}

// Detect classifies text against the candidate set.
// Returns ErrUndetermined when no candidate is a plausible match.
func (d *LinguaDetector) Detect(text string) (Detection, error) {
	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return Detection{}, ErrUndetermined
	}

	return Detection{
		Code:       codeOf(lang),
		Name:       lang.String(),
		Confidence: d.detector.ComputeLanguageConfidence(text, lang),
	}, nil
}

// Codes returns the detector's candidate codes in sorted order.
func (d *LinguaDetector) Codes() []string {
	codes := make([]string, 0, len(d.languages))
	for _, lang := range d.languages {
		codes = append(codes, codeOf(lang))
	}
	sort.Strings(codes)
	return codes
}

// SupportedCodes returns every ISO 639-1 code the detector can be built
// with, in sorted order.
func SupportedCodes() []string {
	all := lingua.AllLanguages()
	codes := make([]string, 0, len(all))
	for _, lang := range all {
		codes = append(codes, codeOf(lang))
	}
	sort.Strings(codes)
	return codes
}

// NameFor returns the English name for an ISO 639-1 code, or "" if the
// code is not supported.
func NameFor(code string) string {
	lang, ok := languageFor(code)
	if !ok {
		return ""
	}
	return lang.String()
}

func languageFor(code string) (lingua.Language, bool) {
	for _, lang := range lingua.AllLanguages() {
		if strings.EqualFold(lang.IsoCode639_1().String(), code) {
			return lang, true
		}
	}
	return lingua.Unknown, false
}

func codeOf(lang lingua.Language) string {
	return strings.ToLower(lang.IsoCode639_1().String())
}
