package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduardo/structgen/internal/conformance"
	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/generator"
	"github.com/eduardo/structgen/internal/infrastructure"
)

func writeRequest(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestParseMarkdownYAMLBlock(t *testing.T) {
	path := writeRequest(t, "structure.md", "# My project\n\nSome prose.\n\n```yaml\n"+
		"group_id: org.example\n"+
		"artifact_id: demo\n"+
		"project_structure_version: 12\n"+
		"artifact_types:\n"+
		"  - service-execution\n"+
		"  - entities\n"+
		"module_names:\n"+
		"  service_execution: services\n"+
		"```\n")

	config, err := NewMarkdownParser(infrastructure.NewOSFileSystem()).Parse(path)
	require.NoError(t, err)

	assert.Equal(t, "org.example", config.GroupID)
	assert.Equal(t, "demo", config.ArtifactID)
	assert.Equal(t, 12, config.Version)
	assert.Equal(t, []domain.ArtifactType{domain.ServiceExecution, domain.Entities}, config.ArtifactTypes)
	assert.Equal(t, "services", config.ModuleName(domain.ServiceExecution))
}

func TestParseMarkdownJSONBlock(t *testing.T) {
	path := writeRequest(t, "structure.md", "```json\n"+
		`{"group_id": "org.example", "artifact_id": "demo", "artifact_types": ["file_generation"]}`+
		"\n```\n")

	config, err := NewMarkdownParser(infrastructure.NewOSFileSystem()).Parse(path)
	require.NoError(t, err)
	assert.Equal(t, []domain.ArtifactType{domain.FileGeneration}, config.ArtifactTypes)
	assert.Zero(t, config.Version)
}

func TestParseYAMLFile(t *testing.T) {
	path := writeRequest(t, "request.yml", "group_id: org.example\nartifact_id: demo\n")

	config, err := NewMarkdownParser(infrastructure.NewOSFileSystem()).Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", config.ArtifactID)
	assert.Empty(t, config.ArtifactTypes)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"no block", "structure.md", "# Nothing here\n", "no yaml or json block found"},
		{"missing group", "structure.md", "```yaml\nartifact_id: demo\n```\n", "group_id is required"},
		{"missing artifact", "request.yaml", "group_id: org.example\n", "artifact_id is required"},
		{"negative version", "request.yaml", "group_id: g\nartifact_id: a\nproject_structure_version: -1\n", "must not be negative"},
		{"unknown type", "request.yaml", "group_id: g\nartifact_id: a\nartifact_types: [widgets]\n", "unknown artifact type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRequest(t, tt.file, tt.content)
			_, err := NewMarkdownParser(infrastructure.NewOSFileSystem()).Parse(path)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseMissingFile(t *testing.T) {
	_, err := NewMarkdownParser(infrastructure.NewOSFileSystem()).Parse(filepath.Join(t.TempDir(), "absent.md"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestExpectedRoundTrip(t *testing.T) {
	project := domain.ProjectConfig{
		ProjectID:     "PROD-7",
		GroupID:       "org.example",
		ArtifactID:    "demo",
		Version:       13,
		ArtifactTypes: []domain.ArtifactType{domain.Entities, domain.ServiceExecution, domain.FileGeneration},
	}
	tree, err := generator.NewComposer(generator.DefaultRegistry(), infrastructure.NewGoTemplateEngine()).Compose(project)
	require.NoError(t, err)

	data, err := MarshalExpected(conformance.ExpectedFromTree(tree))
	require.NoError(t, err)
	assert.Contains(t, string(data), "platform.project-structure.version: \"13\"")

	path := writeRequest(t, "expected.yaml", string(data))
	exp, err := ParseExpected(infrastructure.NewOSFileSystem(), path)
	require.NoError(t, err)

	assert.Equal(t, 13, exp.Version)
	assert.Equal(t, []string{"demo-service-execution"}, exp.ArtifactModules[domain.ServiceExecution])
	assert.Empty(t, conformance.Verify(tree, exp))
}

func TestUnmarshalExpectedRejectsUnknownType(t *testing.T) {
	_, err := UnmarshalExpected([]byte("version: 13\nsupported_artifact_types: [gadgets]\n"))
	assert.ErrorContains(t, err, "unknown artifact type")
}
