// Package plugins builds build-plugin declarations for the Legend generation
// plugin families. Helpers own the configuration shape and phase bindings of
// a family; coordinates and upstream dependencies are supplied by the caller.
package plugins

import "github.com/eduardo/structgen/internal/domain"

// Context is the project information a helper needs to configure a plugin.
type Context interface {
	GroupID() string
	EntitiesModuleName() string
	ModuleFullName(name string) string
}

// Coordinates locate a plugin artifact. Version is usually a property
// reference such as "${platform.legend-sdlc.version}".
type Coordinates struct {
	GroupID    string
	ArtifactID string
	Version    string
}

// Helper produces the primary declaration of a plugin family.
type Helper interface {
	Plugin(ctx Context) domain.Plugin
}

// AuxiliaryHelper is implemented by families that need a second packaging declaration.
type AuxiliaryHelper interface {
	Helper
	AuxiliaryPlugin(ctx Context) domain.Plugin
}

type base struct {
	coordinates  Coordinates
	dependencies []domain.Dependency
}

func newBase(c Coordinates, deps []domain.Dependency) base {
	return base{coordinates: c, dependencies: append([]domain.Dependency(nil), deps...)}
}

func (b base) declare(executions ...domain.Execution) domain.Plugin {
	return domain.Plugin{
		GroupID:      b.coordinates.GroupID,
		ArtifactID:   b.coordinates.ArtifactID,
		Version:      b.coordinates.Version,
		Executions:   executions,
		Dependencies: append([]domain.Dependency(nil), b.dependencies...),
	}
}

func execution(phase, goal string, config ...domain.ConfigNode) domain.Execution {
	return domain.Execution{Phase: phase, Goals: []string{goal}, Configuration: config}
}

func inclusions(directory string) domain.ConfigNode {
	return domain.Group("inclusions",
		domain.Group("directories",
			domain.Value("directory", directory),
		),
	)
}

// entitiesOutput is where the entities module's compiled entities land,
// as seen from a sibling module.
func entitiesOutput(ctx Context) string {
	return "${project.parent.basedir}/" + ctx.EntitiesModuleName() + "/target/classes"
}
