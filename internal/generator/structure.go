package generator

import (
	"errors"

	"github.com/eduardo/structgen/internal/domain"
)

// ModuleRef names a module that will be part of the generated tree.
type ModuleRef struct {
	ArtifactType domain.ArtifactType
	Name         string
	FullName     string
}

// Structure is the per-request view contributions and plugin helpers see.
// It implements plugins.Context.
type Structure struct {
	project   domain.ProjectConfig
	version   int
	modules   []ModuleRef
	templates domain.TemplatePort
}

// NewStructure builds a context for project at version. Modules are resolved
// from the project's artifact types without checking version support.
func NewStructure(project domain.ProjectConfig, version int, templates domain.TemplatePort) *Structure {
	s := &Structure{project: project, version: version, templates: templates}
	for _, t := range activeArtifactTypes(project) {
		name := project.ModuleName(t)
		s.modules = append(s.modules, ModuleRef{ArtifactType: t, Name: name, FullName: project.ModuleFullName(name)})
	}
	return s
}

func (s *Structure) Project() domain.ProjectConfig {
	return s.project
}

func (s *Structure) Version() int {
	return s.version
}

func (s *Structure) GroupID() string {
	return s.project.GroupID
}

func (s *Structure) ArtifactID() string {
	return s.project.ArtifactID
}

func (s *Structure) EntitiesModuleName() string {
	return s.project.ModuleName(domain.Entities)
}

func (s *Structure) ModuleName(t domain.ArtifactType) string {
	return s.project.ModuleName(t)
}

func (s *Structure) ModuleFullName(name string) string {
	return s.project.ModuleFullName(name)
}

// Modules lists the project's modules in declaration order.
func (s *Structure) Modules() []ModuleRef {
	return append([]ModuleRef(nil), s.modules...)
}

// ModuleDependency is a dependency on a sibling module of this project,
// versioned through root dependency management.
func (s *Structure) ModuleDependency(t domain.ArtifactType) domain.Dependency {
	return domain.NewDependency(s.GroupID(), s.ModuleFullName(s.ModuleName(t)), "")
}

// TemplateData is the value generated-file templates are executed against.
func (s *Structure) TemplateData() map[string]interface{} {
	return map[string]interface{}{
		"ProjectID":  s.project.ProjectID,
		"GroupID":    s.project.GroupID,
		"ArtifactID": s.project.ArtifactID,
		"Version":    s.version,
		"Modules":    s.modules,
	}
}

func (s *Structure) Render(name, tmpl string, data interface{}) ([]byte, error) {
	if s.templates == nil {
		return nil, errors.New("no template engine configured")
	}
	return s.templates.Render(name, tmpl, data)
}

// activeArtifactTypes is entities plus the requested types, deduplicated, in
// declaration order.
func activeArtifactTypes(project domain.ProjectConfig) []domain.ArtifactType {
	seen := map[domain.ArtifactType]bool{domain.Entities: true}
	types := []domain.ArtifactType{domain.Entities}
	for _, t := range project.ArtifactTypes {
		if seen[t] {
			continue
		}
		seen[t] = true
		types = append(types, t)
	}
	domain.SortArtifactTypes(types)
	return types
}
