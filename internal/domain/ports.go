package domain

import "context"

// FileSystemPort defines the interface for file and directory operations
type FileSystemPort interface {
	MkdirAll(path string) error
	WriteFile(path string, data []byte) error
	ReadFile(path string) ([]byte, error)
}

// TemplatePort defines the interface for rendering templates
type TemplatePort interface {
	Render(name, tmpl string, data interface{}) ([]byte, error)
}

// ParserPort defines the interface for reading generation requests
type ParserPort interface {
	Parse(filename string) (*ProjectConfig, error)
}

// StructureServicePort defines the interface for the generation use cases
type StructureServicePort interface {
	Generate(ctx context.Context, requestPath, outputDir string) (*ModuleTree, error)
}
