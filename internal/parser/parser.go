package parser

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/eduardo/structgen/internal/domain"
)

// fencedBlock finds the first ```yaml, ```yml or ```json block of a request.
var fencedBlock = regexp.MustCompile("(?s)```(?:ya?ml|json)\\s*(.*?)\\s*```")

// MarkdownParser implements domain.ParserPort for markdown structure requests
type MarkdownParser struct {
	fs domain.FileSystemPort
}

func NewMarkdownParser(fs domain.FileSystemPort) *MarkdownParser {
	return &MarkdownParser{fs: fs}
}

// Parse reads the markdown file and decodes its fenced configuration block.
// Files ending in .yaml or .yml are decoded whole.
func (p *MarkdownParser) Parse(filename string) (*domain.ProjectConfig, error) {
	content, err := p.fs.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	raw := content
	if !isYAMLFile(filename) {
		matches := fencedBlock.FindSubmatch(content)
		if len(matches) < 2 {
			return nil, fmt.Errorf("no yaml or json block found in %s", filename)
		}
		raw = matches[1]
	}

	config, err := ParseConfig(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return config, nil
}

// ParseConfig decodes and validates a request body. JSON is accepted as YAML.
func ParseConfig(raw []byte) (*domain.ProjectConfig, error) {
	var config domain.ProjectConfig
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return nil, fmt.Errorf("failed to parse request: %w", err)
	}

	if strings.TrimSpace(config.GroupID) == "" {
		return nil, fmt.Errorf("group_id is required")
	}
	if strings.TrimSpace(config.ArtifactID) == "" {
		return nil, fmt.Errorf("artifact_id is required")
	}
	if config.Version < 0 {
		return nil, fmt.Errorf("project_structure_version must not be negative, got %d", config.Version)
	}
	return &config, nil
}

func isYAMLFile(filename string) bool {
	lower := strings.ToLower(filename)
	return strings.HasSuffix(lower, ".yaml") || strings.HasSuffix(lower, ".yml")
}
