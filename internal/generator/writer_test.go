package generator

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/infrastructure"
)

func TestWrite(t *testing.T) {
	tree := composeVersion(t, testProject(13, domain.ServiceExecution))
	out := t.TempDir()

	require.NoError(t, Write(tree, out, infrastructure.NewOSFileSystem()))

	projectDir := filepath.Join(out, "test-project")
	data, err := os.ReadFile(filepath.Join(projectDir, "project.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 13`)

	for _, name := range []string{".gitignore", "README.md"} {
		assert.FileExists(t, filepath.Join(projectDir, name))
	}

	test, err := os.ReadFile(filepath.Join(projectDir, "entities", filepath.FromSlash(EntityValidationTestFilePath)))
	require.NoError(t, err)
	assert.Equal(t, EntityValidationTestCode(), string(test))

	assert.DirExists(t, filepath.Join(projectDir, "service-execution"))
	assert.NoDirExists(t, filepath.Join(projectDir, "file-generation"))
}

type failingFS struct {
	*infrastructure.OSFileSystem
}

func (failingFS) WriteFile(path string, data []byte) error {
	return os.ErrPermission
}

func TestWriteReportsFailures(t *testing.T) {
	tree := composeVersion(t, testProject(11))
	err := Write(tree, t.TempDir(), failingFS{infrastructure.NewOSFileSystem()})
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.ErrorContains(t, err, "/.gitignore")
}
