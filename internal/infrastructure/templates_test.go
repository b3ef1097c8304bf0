package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoTemplateEngineHelpers(t *testing.T) {
	engine := NewGoTemplateEngine()

	tests := []struct {
		name string
		tmpl string
		data interface{}
		want string
	}{
		{"title", `{{title .}}`, "test-project", "Test Project"},
		{"title underscores", `{{title .}}`, "service_execution", "Service Execution"},
		{"lower", `{{lower .}}`, "ORG.Example", "org.example"},
		{"pascal", `{{pascal .}}`, "versioned_entities", "VersionedEntities"},
		{"pascal dotted", `{{pascal .}}`, "org.finos-legend", "OrgFinosLegend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := engine.Render(tt.name, tt.tmpl, tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestGoTemplateEngineMissingKey(t *testing.T) {
	_, err := NewGoTemplateEngine().Render("missing", `{{.Absent}}`, map[string]interface{}{"Present": 1})
	assert.Error(t, err)
}

func TestGoTemplateEngineParseError(t *testing.T) {
	_, err := NewGoTemplateEngine().Render("broken", `{{if}}`, nil)
	assert.Error(t, err)
}
