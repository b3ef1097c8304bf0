// Package manifest assembles module descriptors from ordered contributions.
package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/eduardo/structgen/internal/domain"
)

// Contribution appends properties, dependencies, plugins or files to a module
// under construction.
type Contribution func(acc *Accumulator) error

// Accumulator collects a module's manifest content. Entries are only ever
// added or overridden in place, never removed.
type Accumulator struct {
	module  string
	props   map[string]string
	deps    []domain.Dependency
	managed []domain.Dependency
	plugins []domain.Plugin
	files   []domain.GeneratedFile
}

func NewAccumulator(module string) *Accumulator {
	return &Accumulator{module: module, props: make(map[string]string)}
}

// Module is the name of the module being assembled.
func (a *Accumulator) Module() string {
	return a.module
}

// SetProperty records a property; a later value for the same name wins.
func (a *Accumulator) SetProperty(name, value string) {
	a.props[name] = value
}

// AddDependency adds d unless an identical entry is already present.
func (a *Accumulator) AddDependency(d domain.Dependency) error {
	deps, err := a.add(a.deps, d, "dependency")
	if err != nil {
		return err
	}
	a.deps = deps
	return nil
}

// AddDependencyManagement adds a managed coordinate with the same rules as AddDependency.
func (a *Accumulator) AddDependencyManagement(d domain.Dependency) error {
	managed, err := a.add(a.managed, d, "dependency management")
	if err != nil {
		return err
	}
	a.managed = managed
	return nil
}

func (a *Accumulator) add(list []domain.Dependency, d domain.Dependency, kind string) ([]domain.Dependency, error) {
	for _, existing := range list {
		if existing.Key() != d.Key() {
			continue
		}
		if existing.Equal(d) {
			return list, nil
		}
		return nil, fmt.Errorf("%w: module %s %s %s conflicts with %s",
			domain.ErrConflictingDependency, a.module, kind, d, existing)
	}
	return append(list, d), nil
}

// AddPlugin appends p. A plugin with the same coordinate replaces the earlier
// declaration in place.
func (a *Accumulator) AddPlugin(p domain.Plugin) {
	for i, existing := range a.plugins {
		if existing.Key() == p.Key() {
			a.plugins[i] = p
			return
		}
	}
	a.plugins = append(a.plugins, p)
}

// AddFile records generated content at a module-relative path.
func (a *Accumulator) AddFile(path string, content []byte) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for i, existing := range a.files {
		if existing.Path == path {
			a.files[i].Content = content
			return
		}
	}
	a.files = append(a.files, domain.GeneratedFile{Path: path, Content: content})
}

// Descriptor snapshots the accumulated content.
func (a *Accumulator) Descriptor() *domain.ModuleDescriptor {
	props := make(map[string]string, len(a.props))
	for k, v := range a.props {
		props[k] = v
	}
	files := make([]domain.GeneratedFile, len(a.files))
	copy(files, a.files)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	return &domain.ModuleDescriptor{
		Name:                 a.module,
		Properties:           props,
		Dependencies:         append([]domain.Dependency(nil), a.deps...),
		DependencyManagement: append([]domain.Dependency(nil), a.managed...),
		Plugins:              append([]domain.Plugin(nil), a.plugins...),
		Files:                files,
	}
}

// Assemble runs contributions in order against a fresh accumulator and
// returns the resulting descriptor. The first failing contribution aborts.
func Assemble(module string, contributions ...Contribution) (*domain.ModuleDescriptor, error) {
	acc := NewAccumulator(module)
	for _, contribute := range contributions {
		if contribute == nil {
			continue
		}
		if err := contribute(acc); err != nil {
			return nil, err
		}
	}
	return acc.Descriptor(), nil
}
