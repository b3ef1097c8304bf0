package plugins

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/structgen/internal/domain"
)

type testContext struct{}

func (testContext) GroupID() string                   { return "org.example" }
func (testContext) EntitiesModuleName() string        { return "model" }
func (testContext) ModuleFullName(name string) string { return "demo-" + name }

var (
	sdlc       = Coordinates{GroupID: "org.finos.legend.sdlc", ArtifactID: "some-plugin", Version: "${sdlc}"}
	generation = domain.NewDependency("org.finos.legend.engine", "generation", "${engine}")
)

func TestHelpersUseCallerCoordinates(t *testing.T) {
	helpers := map[string]Helper{
		"entity":   NewEntityHelper(sdlc, generation),
		"model":    NewModelGenerationHelper(sdlc, generation),
		"junit":    NewJUnitTestGenerationHelper(sdlc, generation),
		"file":     NewFileGenerationHelper(sdlc, generation),
		"services": NewServiceExecutionHelper(sdlc, Coordinates{GroupID: "s", ArtifactID: "shade", Version: "1"}, generation),
	}
	for name, h := range helpers {
		p := h.Plugin(testContext{})
		assert.Equal(t, "org.finos.legend.sdlc:some-plugin", p.Key(), name)
		assert.Equal(t, "${sdlc}", p.Version, name)
		assert.Equal(t, []domain.Dependency{generation}, p.Dependencies, name)
		require.Len(t, p.Executions, 1, name)
		assert.NotEmpty(t, p.Executions[0].Phase, name)
	}
}

func TestEntityHelperKeepsDependencyOrder(t *testing.T) {
	serializer := domain.NewDependency("org.finos.legend.sdlc", "serializer", "${sdlc}")
	p := NewEntityHelper(sdlc, generation, serializer).Plugin(testContext{})

	assert.Equal(t, []domain.Dependency{generation, serializer}, p.Dependencies)
	assert.Equal(t, []string{"process-entities"}, p.Executions[0].Goals)
}

func TestJUnitHelperUsesProjectPackagePrefix(t *testing.T) {
	p := NewJUnitTestGenerationHelper(sdlc).Plugin(testContext{})
	assert.Contains(t, p.Executions[0].Configuration, domain.Value("packagePrefix", "org.example"))
}

func TestFileGenerationReadsEntitiesModuleOutput(t *testing.T) {
	p := NewFileGenerationHelper(sdlc).Plugin(testContext{})
	want := inclusions("${project.parent.basedir}/model/target/classes")
	assert.True(t, p.Executions[0].Configuration[0].Equal(want))
}

func TestServiceExecutionAuxiliaryIsShade(t *testing.T) {
	shade := Coordinates{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-shade-plugin", Version: "3.2.4"}
	var h AuxiliaryHelper = NewServiceExecutionHelper(sdlc, shade, generation)

	primary := h.Plugin(testContext{})
	aux := h.AuxiliaryPlugin(testContext{})

	assert.Equal(t, []string{"generate-service-executions"}, primary.Executions[0].Goals)
	assert.Equal(t, "org.apache.maven.plugins:maven-shade-plugin:3.2.4", aux.String())
	assert.Equal(t, "package", aux.Executions[0].Phase)
	assert.Equal(t, []string{"shade"}, aux.Executions[0].Goals)
	assert.Empty(t, aux.Dependencies)
}

func TestHelpersCopyDependencies(t *testing.T) {
	deps := []domain.Dependency{generation}
	h := NewModelGenerationHelper(sdlc, deps...)
	deps[0] = domain.NewDependency("x", "y", "z")

	assert.Equal(t, generation, h.Plugin(testContext{}).Dependencies[0])
}
