package generator

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eduardo/structgen/internal/domain"
)

// Write materializes a tree's generated files under outputDir. Root files go
// to the project directory, module files into one directory per module.
func Write(tree *domain.ModuleTree, outputDir string, fs domain.FileSystemPort) error {
	projectPath := filepath.Join(outputDir, tree.Project.ArtifactID)
	if err := fs.MkdirAll(projectPath); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	if err := writeFiles(projectPath, tree.Root.Files, fs); err != nil {
		return err
	}

	for _, m := range tree.Modules {
		modulePath := filepath.Join(projectPath, m.Name)
		if err := fs.MkdirAll(modulePath); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", m.Name, err)
		}
		if err := writeFiles(modulePath, m.Files, fs); err != nil {
			return err
		}
	}
	return nil
}

func writeFiles(dir string, files []domain.GeneratedFile, fs domain.FileSystemPort) error {
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(f.Path, "/")))
		if err := fs.MkdirAll(filepath.Dir(path)); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.Path, err)
		}
		if err := fs.WriteFile(path, f.Content); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Path, err)
		}
	}
	return nil
}
