package generator

import (
	"fmt"

	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/manifest"
)

// StructureVersionProperty is the root manifest property recording the
// structure version a project was generated with.
const StructureVersionProperty = "platform.project-structure.version"

// ContributionKind separates the per-module contributions a version registers.
type ContributionKind int

const (
	Plugins ContributionKind = iota
	Dependencies
	Files
)

var contributionKinds = []ContributionKind{Plugins, Dependencies, Files}

func (k ContributionKind) String() string {
	switch k {
	case Plugins:
		return "plugins"
	case Dependencies:
		return "dependencies"
	case Files:
		return "files"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ModuleContribution adds content to one module for one project.
type ModuleContribution func(s *Structure, acc *manifest.Accumulator) error

// FileRenderer produces generated file content. It must be deterministic.
type FileRenderer func(s *Structure) ([]byte, error)

type contributionKey struct {
	artifactType domain.ArtifactType
	kind         ContributionKind
}

// Definition is one project structure version. It holds a reference to the
// version it extends and only the delta this version adds on top.
type Definition struct {
	version int
	prior   *Definition
	root    []ModuleContribution
	modules map[contributionKey][]ModuleContribution
}

// NewDefinition starts a version extending prior. A nil prior starts a chain.
func NewDefinition(version int, prior *Definition) *Definition {
	return &Definition{
		version: version,
		prior:   prior,
		modules: make(map[contributionKey][]ModuleContribution),
	}
}

func (d *Definition) Version() int {
	return d.version
}

func (d *Definition) Prior() *Definition {
	return d.prior
}

// Lineage lists the chain of definitions ending in d, oldest first.
func (d *Definition) Lineage() []*Definition {
	var chain []*Definition
	for def := d; def != nil; def = def.prior {
		chain = append([]*Definition{def}, chain...)
	}
	return chain
}

// Root adds a contribution to the root project manifest.
func (d *Definition) Root(c ModuleContribution) *Definition {
	d.root = append(d.root, c)
	return d
}

// Property sets a root property. Later versions override earlier values.
func (d *Definition) Property(name, value string) *Definition {
	return d.Root(func(_ *Structure, acc *manifest.Accumulator) error {
		acc.SetProperty(name, value)
		return nil
	})
}

// Manage adds root dependency management entries.
func (d *Definition) Manage(deps ...domain.Dependency) *Definition {
	return d.Root(func(_ *Structure, acc *manifest.Accumulator) error {
		for _, dep := range deps {
			if err := acc.AddDependencyManagement(dep); err != nil {
				return err
			}
		}
		return nil
	})
}

// RootFile adds a generated file to the project root.
func (d *Definition) RootFile(path string, render FileRenderer) *Definition {
	return d.Root(fileContribution(path, render))
}

// Register binds a contribution to the modules of one artifact type.
func (d *Definition) Register(t domain.ArtifactType, kind ContributionKind, c ModuleContribution) *Definition {
	key := contributionKey{artifactType: t, kind: kind}
	d.modules[key] = append(d.modules[key], c)
	return d
}

// ModuleFile registers a generated file for the modules of one artifact type.
func (d *Definition) ModuleFile(t domain.ArtifactType, path string, render FileRenderer) *Definition {
	return d.Register(t, Files, fileContribution(path, render))
}

// Supports reports whether t has module contributions in this version or
// any version it extends. Entities is always supported.
func (d *Definition) Supports(t domain.ArtifactType) bool {
	if t == domain.Entities {
		return true
	}
	for def := d; def != nil; def = def.prior {
		for _, kind := range contributionKinds {
			if len(def.modules[contributionKey{artifactType: t, kind: kind}]) > 0 {
				return true
			}
		}
	}
	return false
}

// SupportedArtifactTypes lists supported types in declaration order.
func (d *Definition) SupportedArtifactTypes() []domain.ArtifactType {
	var out []domain.ArtifactType
	for _, t := range domain.ArtifactTypes() {
		if d.Supports(t) {
			out = append(out, t)
		}
	}
	return out
}

func (d *Definition) rootContributions(s *Structure) []manifest.Contribution {
	var out []manifest.Contribution
	for _, def := range d.Lineage() {
		out = append(out, bind(s, def.root)...)
	}
	return out
}

// moduleContributions visits versions oldest first and, within a version,
// plugins before dependencies before files.
func (d *Definition) moduleContributions(s *Structure, t domain.ArtifactType) []manifest.Contribution {
	var out []manifest.Contribution
	for _, def := range d.Lineage() {
		for _, kind := range contributionKinds {
			out = append(out, bind(s, def.modules[contributionKey{artifactType: t, kind: kind}])...)
		}
	}
	return out
}

func bind(s *Structure, contributions []ModuleContribution) []manifest.Contribution {
	out := make([]manifest.Contribution, len(contributions))
	for i, c := range contributions {
		c := c
		out[i] = func(acc *manifest.Accumulator) error { return c(s, acc) }
	}
	return out
}

func fileContribution(path string, render FileRenderer) ModuleContribution {
	return func(s *Structure, acc *manifest.Accumulator) error {
		content, err := render(s)
		if err != nil {
			return fmt.Errorf("%w: %s in module %s: %w", domain.ErrFileGeneration, path, acc.Module(), err)
		}
		acc.AddFile(path, content)
		return nil
	}
}

// Literal renders fixed content.
func Literal(content string) FileRenderer {
	return func(*Structure) ([]byte, error) {
		return []byte(content), nil
	}
}

// Template renders content through the structure's template engine.
func Template(name, tmpl string) FileRenderer {
	return func(s *Structure) ([]byte, error) {
		return s.Render(name, tmpl, s.TemplateData())
	}
}

// AddDependencies is a module contribution adding deps in order.
func AddDependencies(deps ...domain.Dependency) ModuleContribution {
	return func(_ *Structure, acc *manifest.Accumulator) error {
		for _, dep := range deps {
			if err := acc.AddDependency(dep); err != nil {
				return err
			}
		}
		return nil
	}
}
