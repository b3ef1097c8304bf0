package manifest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/structgen/internal/domain"
)

func TestAssembleRunsContributionsInOrder(t *testing.T) {
	m, err := Assemble("entities",
		func(acc *Accumulator) error {
			acc.SetProperty("engine", "1")
			return acc.AddDependency(domain.NewDependency("g", "a", "1"))
		},
		func(acc *Accumulator) error {
			acc.SetProperty("engine", "2")
			return acc.AddDependency(domain.NewDependency("g", "b", ""))
		},
	)
	require.NoError(t, err)

	assert.Equal(t, "entities", m.Name)
	assert.Equal(t, map[string]string{"engine": "2"}, m.Properties)
	assert.Equal(t, []domain.Dependency{
		domain.NewDependency("g", "a", "1"),
		domain.NewDependency("g", "b", ""),
	}, m.Dependencies)
}

func TestAddDependencyIdenticalIsNoop(t *testing.T) {
	acc := NewAccumulator("m")
	d := domain.NewDependency("g", "a", "1")

	require.NoError(t, acc.AddDependency(d))
	require.NoError(t, acc.AddDependency(d.WithScope("compile")))
	assert.Len(t, acc.Descriptor().Dependencies, 1)
}

func TestAddDependencyConflict(t *testing.T) {
	tests := []struct {
		name  string
		other domain.Dependency
	}{
		{name: "different version", other: domain.NewDependency("g", "a", "2")},
		{name: "different scope", other: domain.NewDependency("g", "a", "1").WithScope("test")},
		{name: "managed version", other: domain.NewDependency("g", "a", "")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			acc := NewAccumulator("m")
			require.NoError(t, acc.AddDependency(domain.NewDependency("g", "a", "1")))
			err := acc.AddDependency(tt.other)
			assert.ErrorIs(t, err, domain.ErrConflictingDependency)
			assert.Contains(t, err.Error(), "module m")
		})
	}
}

func TestAddDependencyManagementConflict(t *testing.T) {
	acc := NewAccumulator("root")
	require.NoError(t, acc.AddDependencyManagement(domain.NewDependency("g", "a", "1")))
	assert.ErrorIs(t, acc.AddDependencyManagement(domain.NewDependency("g", "a", "2")), domain.ErrConflictingDependency)
}

func TestAddPluginOverridesInPlace(t *testing.T) {
	acc := NewAccumulator("m")
	acc.AddPlugin(domain.Plugin{GroupID: "g", ArtifactID: "first", Version: "1"})
	acc.AddPlugin(domain.Plugin{GroupID: "g", ArtifactID: "second", Version: "1"})
	acc.AddPlugin(domain.Plugin{GroupID: "g", ArtifactID: "first", Version: "2"})

	plugins := acc.Descriptor().Plugins
	require.Len(t, plugins, 2)
	assert.Equal(t, "g:first:2", plugins[0].String())
	assert.Equal(t, "g:second:1", plugins[1].String())
}

func TestFilesAreSortedAndOverridable(t *testing.T) {
	acc := NewAccumulator("m")
	acc.AddFile("z.txt", []byte("z"))
	acc.AddFile("/a.txt", []byte("old"))
	acc.AddFile("/a.txt", []byte("new"))

	files := acc.Descriptor().Files
	require.Len(t, files, 2)
	assert.Equal(t, "/a.txt", files[0].Path)
	assert.Equal(t, "new", string(files[0].Content))
	assert.Equal(t, "/z.txt", files[1].Path)
}

func TestAssembleStopsAtFirstError(t *testing.T) {
	boom := errors.New("boom")
	ran := false
	m, err := Assemble("m",
		func(*Accumulator) error { return boom },
		func(*Accumulator) error { ran = true; return nil },
	)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, m)
	assert.False(t, ran)
}

func TestDescriptorIsASnapshot(t *testing.T) {
	acc := NewAccumulator("m")
	acc.SetProperty("k", "v")
	d := acc.Descriptor()
	acc.SetProperty("k", "changed")
	assert.Equal(t, "v", d.Properties["k"])
}
