package generator

import (
	"encoding/json"
	"strconv"

	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/manifest"
	"github.com/eduardo/structgen/internal/plugins"
)

const (
	legendSDLCGroup   = "org.finos.legend.sdlc"
	legendEngineGroup = "org.finos.legend.engine"

	legendSDLCVersion   = "${platform.legend-sdlc.version}"
	legendEngineVersion = "${platform.legend-engine.version}"
)

const gitignore = `target/
*.iml
.idea/
`

// newV11 is the first multi-module structure: an entities module plus one
// module per generation artifact type.
func newV11() *Definition {
	generation := domain.NewDependency(legendEngineGroup, "legend-engine-language-pure-dsl-generation", legendEngineVersion)
	serializer := domain.NewDependency(legendSDLCGroup, "legend-sdlc-serialization", legendSDLCVersion)
	junit := domain.NewDependency("junit", "junit", "4.13.2")

	shade := plugins.Coordinates{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-shade-plugin", Version: "${maven.shade.plugin.version}"}

	return NewDefinition(11, nil).
		Property("project.build.sourceEncoding", "UTF-8").
		Property("maven.compiler.release", "11").
		Property("maven.shade.plugin.version", "3.2.4").
		Property("platform.legend-engine.version", "3.22.0").
		Property("platform.legend-sdlc.version", "0.103.0").
		Root(structureVersionProperty).
		Manage(junit).
		Root(manageProjectModules).
		RootFile("/project.json", projectJSON).
		RootFile("/.gitignore", Literal(gitignore)).
		Register(domain.Entities, Plugins, AddPlugins(
			plugins.NewEntityHelper(sdlcPlugin("legend-sdlc-entity-maven-plugin"), serializer),
			plugins.NewModelGenerationHelper(sdlcPlugin("legend-sdlc-generation-model-maven-plugin"), generation),
			plugins.NewJUnitTestGenerationHelper(sdlcPlugin("legend-sdlc-test-generation-maven-plugin"), generation),
		)).
		Register(domain.Entities, Dependencies, AddDependencies(junit.WithoutVersion().WithScope("test"))).
		Register(domain.VersionedEntities, Dependencies, dependOn(domain.Entities)).
		Register(domain.ServiceExecution, Plugins, AddPlugins(
			plugins.NewServiceExecutionHelper(sdlcPlugin("legend-sdlc-generation-service-maven-plugin"), shade, generation),
		)).
		Register(domain.ServiceExecution, Dependencies, dependOn(domain.Entities)).
		Register(domain.FileGeneration, Plugins, AddPlugins(
			plugins.NewFileGenerationHelper(sdlcPlugin("legend-sdlc-generation-file-maven-plugin"), generation),
		)).
		Register(domain.FileGeneration, Dependencies, dependOn(domain.Entities))
}

func sdlcPlugin(artifactID string) plugins.Coordinates {
	return plugins.Coordinates{GroupID: legendSDLCGroup, ArtifactID: artifactID, Version: legendSDLCVersion}
}

func structureVersionProperty(s *Structure, acc *manifest.Accumulator) error {
	acc.SetProperty(StructureVersionProperty, strconv.Itoa(s.Version()))
	return nil
}

// manageProjectModules pins every module of the project to the project version.
func manageProjectModules(s *Structure, acc *manifest.Accumulator) error {
	for _, ref := range s.Modules() {
		if err := acc.AddDependencyManagement(domain.NewDependency(s.GroupID(), ref.FullName, "${project.version}")); err != nil {
			return err
		}
	}
	return nil
}

func dependOn(t domain.ArtifactType) ModuleContribution {
	return func(s *Structure, acc *manifest.Accumulator) error {
		return acc.AddDependency(s.ModuleDependency(t))
	}
}

type projectDescriptor struct {
	ProjectID               string           `json:"projectId"`
	GroupID                 string           `json:"groupId"`
	ArtifactID              string           `json:"artifactId"`
	ProjectStructureVersion structureVersion `json:"projectStructureVersion"`
}

type structureVersion struct {
	Version int `json:"version"`
}

func projectJSON(s *Structure) ([]byte, error) {
	p := s.Project()
	data, err := json.MarshalIndent(projectDescriptor{
		ProjectID:               p.ProjectID,
		GroupID:                 p.GroupID,
		ArtifactID:              p.ArtifactID,
		ProjectStructureVersion: structureVersion{Version: s.Version()},
	}, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
