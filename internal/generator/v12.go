package generator

import "github.com/eduardo/structgen/internal/domain"

const readmeTemplate = `# {{title .ArtifactID}}

Group: {{.GroupID}}
Project structure version: {{.Version}}

## Modules
{{range .Modules}}
- {{.FullName}} ({{.ArtifactType}})
{{- end}}
`

func newV12(v11 *Definition) *Definition {
	return NewDefinition(12, v11).
		Property("platform.legend-engine.version", "4.4.3").
		Property("platform.legend-sdlc.version", "0.117.0").
		Manage(domain.NewDependency(legendSDLCGroup, "legend-sdlc-test-utils", legendSDLCVersion)).
		RootFile("/README.md", Template("readme", readmeTemplate))
}
