package infrastructure

import (
	"bytes"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// GoTemplateEngine implements domain.TemplatePort using text/template
type GoTemplateEngine struct {
	funcs template.FuncMap
}

func NewGoTemplateEngine() *GoTemplateEngine {
	return &GoTemplateEngine{
		funcs: template.FuncMap{
			// title turns an artifact id such as "my-project" into "My Project".
			"title": func(s string) string {
				return titleCase(strings.NewReplacer("-", " ", "_", " ").Replace(s))
			},
			"lower": strings.ToLower,
			"pascal": func(s string) string {
				words := strings.FieldsFunc(s, func(r rune) bool { return r == '_' || r == '-' || r == '.' })
				for i := range words {
					words[i] = titleCase(words[i])
				}
				return strings.Join(words, "")
			},
		},
	}
}

func (t *GoTemplateEngine) Render(name, tmpl string, data interface{}) ([]byte, error) {
	tObj, err := template.New(name).Option("missingkey=error").Funcs(t.funcs).Parse(tmpl)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tObj.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// titleCase builds a Caser per call; Casers are stateful and not safe to share.
func titleCase(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}
