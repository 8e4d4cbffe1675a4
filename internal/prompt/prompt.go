// Package prompt generates AI prompts for translating detected comments.
package prompt

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/comlang/comlang/internal/language"
	"github.com/comlang/comlang/internal/scan"
)

const translatePromptTemplate = `# Comment Translation Request

The following source comments under {{.Dir}} were detected as {{.Name}} ({{.Code}}).

## Comments

{{range .Comments -}}
- ` + "`{{.File}}:{{.Line}}`" + `: {{.Text}}
{{end}}
## Request

Translate each comment into English. Preserve identifiers, technical terms
and code fragments exactly as written; translate only the natural-language
prose. Keep each translation as terse as the original.

## Output Format

Return one line per comment:

` + "```" + `
file:line: translated text
` + "```" + `
`

type view struct {
	Dir      string
	Code     string
	Name     string
	Comments []scan.Comment
}

// Generate creates a translation prompt for one language's comments.
func Generate(rep *scan.Report, code string) (string, error) {
	tmpl, err := template.New("translate").Parse(translatePromptTemplate)
	if err != nil {
		return "", err
	}

	name := language.NameFor(code)
	if name == "" {
		name = strings.ToUpper(code)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, view{
		Dir:      rep.Dir,
		Code:     code,
		Name:     name,
		Comments: rep.Comments(code),
	}); err != nil {
		return "", err
	}

	return strings.TrimSpace(buf.String()), nil
}
