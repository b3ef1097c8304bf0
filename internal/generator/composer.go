package generator

import (
	"fmt"

	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/manifest"
)

// Composer builds module trees for any version in its registry.
type Composer struct {
	registry  *Registry
	templates domain.TemplatePort
}

func NewComposer(registry *Registry, templates domain.TemplatePort) *Composer {
	return &Composer{registry: registry, templates: templates}
}

// Compose generates the tree for project at the version it is pinned to.
func (c *Composer) Compose(project domain.ProjectConfig) (*domain.ModuleTree, error) {
	def, err := c.registry.Get(project.Version)
	if err != nil {
		return nil, err
	}
	return Compose(def, project, c.templates)
}

// Compose generates the module tree for project under def. It fails without
// returning a partial tree.
func Compose(def *Definition, project domain.ProjectConfig, templates domain.TemplatePort) (*domain.ModuleTree, error) {
	project.Version = def.Version()
	s := NewStructure(project, def.Version(), templates)

	if err := checkModules(def, s); err != nil {
		return nil, err
	}

	root, err := manifest.Assemble(project.ArtifactID, def.rootContributions(s)...)
	if err != nil {
		return nil, fmt.Errorf("compose root manifest: %w", err)
	}
	root.FullName = project.ArtifactID

	tree := &domain.ModuleTree{
		Version:                def.Version(),
		Project:                project,
		Root:                   root,
		SupportedArtifactTypes: def.SupportedArtifactTypes(),
	}
	for _, ref := range s.Modules() {
		module, err := manifest.Assemble(ref.Name, def.moduleContributions(s, ref.ArtifactType)...)
		if err != nil {
			return nil, fmt.Errorf("compose module %s: %w", ref.Name, err)
		}
		module.FullName = ref.FullName
		module.ArtifactType = ref.ArtifactType
		tree.Modules = append(tree.Modules, module)
	}

	if err := checkManagedVersions(tree); err != nil {
		return nil, err
	}
	return tree, nil
}

func checkModules(def *Definition, s *Structure) error {
	names := make(map[string]domain.ArtifactType)
	for _, ref := range s.Modules() {
		if !def.Supports(ref.ArtifactType) {
			return fmt.Errorf("%w: %s in project structure version %d",
				domain.ErrUnsupportedArtifactType, ref.ArtifactType, def.Version())
		}
		if err := domain.ValidateModuleName(ref.Name); err != nil {
			return fmt.Errorf("module for %s: %w", ref.ArtifactType, err)
		}
		if other, ok := names[ref.Name]; ok {
			return fmt.Errorf("%w: %q used by %s and %s",
				domain.ErrDuplicateModuleName, ref.Name, other, ref.ArtifactType)
		}
		names[ref.Name] = ref.ArtifactType
	}
	return nil
}

// checkManagedVersions enforces that a dependency on a managed coordinate
// leaves its version to dependency management.
func checkManagedVersions(tree *domain.ModuleTree) error {
	managed := make(map[string]bool, len(tree.Root.DependencyManagement))
	for _, d := range tree.Root.DependencyManagement {
		managed[d.Key()] = true
	}
	for _, m := range append([]*domain.ModuleDescriptor{tree.Root}, tree.Modules...) {
		for _, d := range m.Dependencies {
			if d.Version != "" && managed[d.Key()] {
				return fmt.Errorf("%w: module %s declares %s with an explicit version but it is managed",
					domain.ErrConflictingDependency, m.Name, d)
			}
		}
	}
	return nil
}
