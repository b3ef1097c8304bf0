package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArtifactType(t *testing.T) {
	tests := []struct {
		in   string
		want ArtifactType
	}{
		{in: "entities", want: Entities},
		{in: "versioned_entities", want: VersionedEntities},
		{in: "service-execution", want: ServiceExecution},
		{in: " FILE_GENERATION ", want: FileGeneration},
	}
	for _, tt := range tests {
		got, err := ParseArtifactType(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseArtifactType("spreadsheets")
	assert.ErrorIs(t, err, ErrUnknownArtifactType)
}

func TestDefaultModuleName(t *testing.T) {
	assert.Equal(t, "entities", Entities.DefaultModuleName())
	assert.Equal(t, "versioned-entities", VersionedEntities.DefaultModuleName())
	assert.Equal(t, "service-execution", ServiceExecution.DefaultModuleName())
	assert.Equal(t, "file-generation", FileGeneration.DefaultModuleName())
}

func TestSortArtifactTypesUsesDeclarationOrder(t *testing.T) {
	types := []ArtifactType{FileGeneration, Entities, ServiceExecution, VersionedEntities}
	SortArtifactTypes(types)
	assert.Equal(t, []ArtifactType{Entities, VersionedEntities, ServiceExecution, FileGeneration}, types)
}

func TestProjectConfigModuleNames(t *testing.T) {
	cfg := ProjectConfig{
		ArtifactID:  "demo",
		ModuleNames: map[ArtifactType]string{ServiceExecution: "services"},
	}
	assert.Equal(t, "services", cfg.ModuleName(ServiceExecution))
	assert.Equal(t, "file-generation", cfg.ModuleName(FileGeneration))
	assert.Equal(t, "demo-services", cfg.ModuleFullName(cfg.ModuleName(ServiceExecution)))
	assert.True(t, cfg.HasArtifactType(Entities))
	assert.False(t, cfg.HasArtifactType(FileGeneration))
}

func TestDependencyEqualityIsStructural(t *testing.T) {
	d := NewDependency("org.example", "lib", "1.0")

	assert.True(t, d.Equal(d.WithScope("compile")), "default scope is compile")
	assert.False(t, d.Equal(d.WithScope("test")))
	assert.False(t, d.Equal(d.WithoutVersion()))
	assert.Equal(t, "org.example:lib", d.WithoutVersion().Key())
	assert.Equal(t, "org.example:lib:<managed>:test", d.WithoutVersion().WithScope("test").String())
}

func TestPluginEqualComparesConfiguration(t *testing.T) {
	p := Plugin{
		GroupID:    "g",
		ArtifactID: "a",
		Version:    "1",
		Executions: []Execution{{Phase: "compile", Goals: []string{"run"}, Configuration: []ConfigNode{Value("x", "1")}}},
	}
	q := p
	q.Executions = []Execution{{Phase: "compile", Goals: []string{"run"}, Configuration: []ConfigNode{Value("x", "2")}}}

	assert.True(t, p.Equal(p))
	assert.False(t, p.Equal(q))
	assert.Equal(t, "g:a", q.Key())
}

func TestEffectivePropertiesOverlayRoot(t *testing.T) {
	tree := &ModuleTree{
		Root: &ModuleDescriptor{Properties: map[string]string{"a": "root", "b": "root"}},
		Modules: []*ModuleDescriptor{
			{Name: "entities", ArtifactType: Entities, Properties: map[string]string{"b": "module"}},
		},
	}
	assert.Equal(t, map[string]string{"a": "root", "b": "module"}, tree.EffectiveProperties("entities"))
	assert.Equal(t, "/entities/src/x.java", ModuleFilePath("entities", "/src/x.java"))
}
