// Package report renders scan results for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/scan"
)

var (
	heading  = color.New(color.FgGreen, color.Bold).SprintFunc()
	filePath = color.New(color.FgCyan).SprintFunc()
)

// FormatComments renders one language's bucket in full, with file, line
// and the complete matched line for each comment.
func FormatComments(rep *scan.Report, code string) string {
	var b strings.Builder

	if code == language.Unknown {
		fmt.Fprintf(&b, "%s\n", heading("=== Unidentified ==="))
	} else {
		fmt.Fprintf(&b, "%s\n", heading(fmt.Sprintf("=== %s Comments (%s) ===", displayName(code), code)))
	}

	comments := rep.Comments(code)
	if len(comments) == 0 {
		b.WriteString("\nNo comments detected.\n")
		return b.String()
	}

	for _, c := range comments {
		fmt.Fprintf(&b, "\nFile: %s\n", filePath(c.File))
		fmt.Fprintf(&b, "Line: %d\n", c.Line)
		fmt.Fprintf(&b, "Content: %s\n", c.Content)
		if c.DetectErr != "" {
			fmt.Fprintf(&b, "Error: %s\n", c.DetectErr)
		}
	}

	return b.String()
}

// FormatSummary renders the per-file count of one language's comments,
// files in the order they were first seen.
func FormatSummary(rep *scan.Report, code string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", heading("=== Files to Translate Summary ==="))

	counts := rep.FileCounts(code)
	if len(counts) == 0 {
		b.WriteString("\nNothing to translate.\n")
		return b.String()
	}

	name := displayName(code)
	for _, fc := range counts {
		fmt.Fprintf(&b, "\n%s: %d %s comments\n", filePath(fc.File), fc.Count, name)
	}

	return b.String()
}

func displayName(code string) string {
	if name := language.NameFor(code); name != "" {
		return name
	}
	return strings.ToUpper(code)
}
