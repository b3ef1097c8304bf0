package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/eduardo/structgen/internal/domain"
)

var _ domain.FileSystemPort = (*OSFileSystem)(nil)

const (
	dirMode  os.FileMode = 0755
	fileMode os.FileMode = 0644
)

// OSFileSystem implements domain.FileSystemPort using the os package.
// Regenerating over an existing project replaces each file atomically.
type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

func (fs *OSFileSystem) MkdirAll(path string) error {
	return os.MkdirAll(path, dirMode)
}

// WriteFile writes data to a temporary sibling and renames it over path.
func (fs *OSFileSystem) WriteFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return os.Rename(tmp.Name(), path)
}

func (fs *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
