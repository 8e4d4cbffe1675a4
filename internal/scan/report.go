package scan

import (
	"encoding/json"
	"sort"
)

// Comment is one matched comment line with its classification.
type Comment struct {
	File       string  `json:"file"`
	Line       int     `json:"line"`
	Content    string  `json:"content"`
	Text       string  `json:"text"`
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence,omitempty"`
	// DetectErr records a detector failure for comments routed to the
	// unknown bucket. Empty for comments that were merely undetermined.
	DetectErr string `json:"detect_error,omitempty"`
}

// Report holds the scan results grouped by language code.
// Within each bucket, comments keep scan order.
type Report struct {
	Dir       string               `json:"dir"`
	Languages map[string][]Comment `json:"languages"`
}

// FileCount is the number of comments found in one file.
type FileCount struct {
	File  string `json:"file"`
	Count int    `json:"count"`
}

// NewReport creates an empty report for a scanned directory.
func NewReport(dir string) *Report {
	return &Report{
		Dir:       dir,
		Languages: make(map[string][]Comment),
	}
}

func (r *Report) add(c Comment) {
	r.Languages[c.Language] = append(r.Languages[c.Language], c)
}

// Comments returns the bucket for a language code, in scan order.
func (r *Report) Comments(code string) []Comment {
	return r.Languages[code]
}

// Codes returns the language codes present in the report, sorted.
func (r *Report) Codes() []string {
	codes := make([]string, 0, len(r.Languages))
	for code := range r.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Total returns the number of comments across all buckets.
func (r *Report) Total() int {
	total := 0
	for _, comments := range r.Languages {
		total += len(comments)
	}
	return total
}

// FileCounts groups a language's comments by file, in the order files were
// first seen during the scan.
func (r *Report) FileCounts(code string) []FileCount {
	index := make(map[string]int)
	var counts []FileCount

	for _, c := range r.Languages[code] {
		i, ok := index[c.File]
		if !ok {
			i = len(counts)
			index[c.File] = i
			counts = append(counts, FileCount{File: c.File})
		}
		counts[i].Count++
	}

	return counts
}

// JSON returns the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
