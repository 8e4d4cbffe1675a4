package report

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/scan"
)

func testReport() *scan.Report {
	return &scan.Report{
		Dir: ".",
		Languages: map[string][]scan.Comment{
			"es": {
				{File: "main.rs", Line: 3, Content: "// hola que tal", Text: "hola que tal", Language: "es"},
				{File: "main.rs", Line: 12, Content: "// cierra la conexión", Text: "cierra la conexión", Language: "es"},
				{File: "lib.rs", Line: 7, Content: "// lee el archivo", Text: "lee el archivo", Language: "es"},
			},
			"unknown": {
				{File: "lib.rs", Line: 9, Content: "// zzzz", Text: "zzzz", Language: "unknown", DetectErr: "model exploded"},
			},
		},
	}
}

func TestFormatComments(t *testing.T) {
	color.NoColor = true

	got := FormatComments(testReport(), "es")
	want := `=== Spanish Comments (es) ===

File: main.rs
Line: 3
Content: // hola que tal

File: main.rs
Line: 12
Content: // cierra la conexión

File: lib.rs
Line: 7
Content: // lee el archivo
`

	if got != want {
		t.Errorf("FormatComments() = %q, want %q", got, want)
	}
}

func TestFormatCommentsEmpty(t *testing.T) {
	color.NoColor = true

	got := FormatComments(&scan.Report{Dir: "."}, "es")
	if !strings.Contains(got, "=== Spanish Comments (es) ===") {
		t.Errorf("FormatComments() = %q, want heading", got)
	}
	if !strings.Contains(got, "No comments detected.") {
		t.Errorf("FormatComments() = %q, want empty notice", got)
	}
}

func TestFormatCommentsUnknown(t *testing.T) {
	color.NoColor = true

	got := FormatComments(testReport(), language.Unknown)
	if !strings.Contains(got, "=== Unidentified ===") {
		t.Errorf("FormatComments() = %q, want Unidentified heading", got)
	}
	if !strings.Contains(got, "Error: model exploded") {
		t.Errorf("FormatComments() = %q, want detector error shown", got)
	}
}

func TestFormatCommentsUnnamedCode(t *testing.T) {
	color.NoColor = true

	got := FormatComments(&scan.Report{Dir: "."}, "xx")
	if !strings.Contains(got, "=== XX Comments (xx) ===") {
		t.Errorf("FormatComments() = %q, want upper-cased fallback heading", got)
	}
}

func TestFormatSummary(t *testing.T) {
	color.NoColor = true

	got := FormatSummary(testReport(), "es")
	want := `=== Files to Translate Summary ===

main.rs: 2 Spanish comments

lib.rs: 1 Spanish comments
`

	if got != want {
		t.Errorf("FormatSummary() = %q, want %q", got, want)
	}
}

func TestFormatSummaryEmpty(t *testing.T) {
	color.NoColor = true

	got := FormatSummary(&scan.Report{Dir: "."}, "es")
	if !strings.Contains(got, "Nothing to translate.") {
		t.Errorf("FormatSummary() = %q, want empty notice", got)
	}
}
