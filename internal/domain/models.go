package domain

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// ProjectConfig is the generation request: which project, which structure
// version and which artifact types it builds.
type ProjectConfig struct {
	ProjectID     string                  `yaml:"project_id" json:"project_id"`
	GroupID       string                  `yaml:"group_id" json:"group_id"`
	ArtifactID    string                  `yaml:"artifact_id" json:"artifact_id"`
	Version       int                     `yaml:"project_structure_version" json:"project_structure_version"`
	ArtifactTypes []ArtifactType          `yaml:"artifact_types" json:"artifact_types"`
	ModuleNames   map[ArtifactType]string `yaml:"module_names,omitempty" json:"module_names,omitempty"`
}

// ModuleName resolves the module name for t, honoring overrides.
func (c ProjectConfig) ModuleName(t ArtifactType) string {
	if name := strings.TrimSpace(c.ModuleNames[t]); name != "" {
		return name
	}
	return t.DefaultModuleName()
}

// ValidateModuleName checks that name can be used as a module directory and
// artifact id suffix: one non-empty path segment with no relative elements.
func ValidateModuleName(name string) error {
	switch {
	case name == "", name == ".":
		return fmt.Errorf("%w: %q", ErrInvalidModuleName, name)
	case strings.ContainsAny(name, `/\`), strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q must be a single directory name", ErrInvalidModuleName, name)
	case filepath.Clean(name) != name:
		return fmt.Errorf("%w: %q is not a clean path", ErrInvalidModuleName, name)
	}
	return nil
}

// ModuleFullName namespaces a module name with the project's artifact id.
func (c ProjectConfig) ModuleFullName(name string) string {
	return c.ArtifactID + "-" + name
}

// HasArtifactType reports whether the request includes t. Entities is always included.
func (c ProjectConfig) HasArtifactType(t ArtifactType) bool {
	if t == Entities {
		return true
	}
	for _, at := range c.ArtifactTypes {
		if at == t {
			return true
		}
	}
	return false
}

// Dependency is a build dependency coordinate. An empty Version defers to
// dependency management; an empty Scope is the default (compile) scope.
type Dependency struct {
	GroupID    string `yaml:"group_id" json:"group_id"`
	ArtifactID string `yaml:"artifact_id" json:"artifact_id"`
	Version    string `yaml:"version,omitempty" json:"version,omitempty"`
	Scope      string `yaml:"scope,omitempty" json:"scope,omitempty"`
}

func NewDependency(groupID, artifactID, version string) Dependency {
	return Dependency{GroupID: groupID, ArtifactID: artifactID, Version: version}
}

// WithScope returns a copy of d with the given scope.
func (d Dependency) WithScope(scope string) Dependency {
	d.Scope = scope
	return d
}

// WithoutVersion returns a copy of d that relies on dependency management.
func (d Dependency) WithoutVersion() Dependency {
	d.Version = ""
	return d
}

// Key identifies the coordinate independent of version and scope.
func (d Dependency) Key() string {
	return d.GroupID + ":" + d.ArtifactID
}

func (d Dependency) EffectiveScope() string {
	if d.Scope == "" {
		return "compile"
	}
	return d.Scope
}

func (d Dependency) Equal(o Dependency) bool {
	return d.GroupID == o.GroupID &&
		d.ArtifactID == o.ArtifactID &&
		d.Version == o.Version &&
		d.EffectiveScope() == o.EffectiveScope()
}

func (d Dependency) String() string {
	version := d.Version
	if version == "" {
		version = "<managed>"
	}
	return fmt.Sprintf("%s:%s:%s:%s", d.GroupID, d.ArtifactID, version, d.EffectiveScope())
}

// ConfigNode is one element of a plugin configuration tree. Order of
// children is significant.
type ConfigNode struct {
	Name     string       `yaml:"name" json:"name"`
	Value    string       `yaml:"value,omitempty" json:"value,omitempty"`
	Children []ConfigNode `yaml:"children,omitempty" json:"children,omitempty"`
}

// Value builds a leaf node.
func Value(name, value string) ConfigNode {
	return ConfigNode{Name: name, Value: value}
}

// Group builds a node holding child nodes.
func Group(name string, children ...ConfigNode) ConfigNode {
	return ConfigNode{Name: name, Children: children}
}

func (n ConfigNode) Equal(o ConfigNode) bool {
	return n.Name == o.Name && n.Value == o.Value && configEqual(n.Children, o.Children)
}

func configEqual(a, b []ConfigNode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Execution binds plugin goals to a build phase.
type Execution struct {
	ID            string       `yaml:"id,omitempty" json:"id,omitempty"`
	Phase         string       `yaml:"phase,omitempty" json:"phase,omitempty"`
	Goals         []string     `yaml:"goals" json:"goals"`
	Configuration []ConfigNode `yaml:"configuration,omitempty" json:"configuration,omitempty"`
}

func (e Execution) Equal(o Execution) bool {
	if e.ID != o.ID || e.Phase != o.Phase || len(e.Goals) != len(o.Goals) {
		return false
	}
	for i := range e.Goals {
		if e.Goals[i] != o.Goals[i] {
			return false
		}
	}
	return configEqual(e.Configuration, o.Configuration)
}

// Plugin is a build plugin declaration. Dependencies are the plugin's own
// classpath, not the owning module's.
type Plugin struct {
	GroupID       string       `yaml:"group_id" json:"group_id"`
	ArtifactID    string       `yaml:"artifact_id" json:"artifact_id"`
	Version       string       `yaml:"version,omitempty" json:"version,omitempty"`
	Executions    []Execution  `yaml:"executions,omitempty" json:"executions,omitempty"`
	Configuration []ConfigNode `yaml:"configuration,omitempty" json:"configuration,omitempty"`
	Dependencies  []Dependency `yaml:"dependencies,omitempty" json:"dependencies,omitempty"`
}

func (p Plugin) Key() string {
	return p.GroupID + ":" + p.ArtifactID
}

func (p Plugin) String() string {
	return p.Key() + ":" + p.Version
}

func (p Plugin) Equal(o Plugin) bool {
	if p.GroupID != o.GroupID || p.ArtifactID != o.ArtifactID || p.Version != o.Version {
		return false
	}
	if len(p.Executions) != len(o.Executions) || len(p.Dependencies) != len(o.Dependencies) {
		return false
	}
	for i := range p.Executions {
		if !p.Executions[i].Equal(o.Executions[i]) {
			return false
		}
	}
	for i := range p.Dependencies {
		if !p.Dependencies[i].Equal(o.Dependencies[i]) {
			return false
		}
	}
	return configEqual(p.Configuration, o.Configuration)
}

// GeneratedFile is a scaffolded file keyed by its path relative to the
// owning module, always starting with "/".
type GeneratedFile struct {
	Path    string
	Content []byte
}

// ModuleDescriptor is the render-ready model of one module manifest.
type ModuleDescriptor struct {
	Name                 string
	FullName             string
	ArtifactType         ArtifactType
	Properties           map[string]string
	Dependencies         []Dependency
	DependencyManagement []Dependency
	Plugins              []Plugin
	Files                []GeneratedFile
}

func (m *ModuleDescriptor) File(path string) (GeneratedFile, bool) {
	for _, f := range m.Files {
		if f.Path == path {
			return f, true
		}
	}
	return GeneratedFile{}, false
}

// PluginsByKey returns the module's plugins with the given coordinate, in order.
func (m *ModuleDescriptor) PluginsByKey(key string) []Plugin {
	var out []Plugin
	for _, p := range m.Plugins {
		if p.Key() == key {
			out = append(out, p)
		}
	}
	return out
}

// DependenciesByKey returns the module's dependencies with the given coordinate.
func (m *ModuleDescriptor) DependenciesByKey(key string) []Dependency {
	var out []Dependency
	for _, d := range m.Dependencies {
		if d.Key() == key {
			out = append(out, d)
		}
	}
	return out
}

// ModuleTree is a generated project: the root manifest plus one child module
// per active artifact type, entities first.
type ModuleTree struct {
	Version                int
	Project                ProjectConfig
	Root                   *ModuleDescriptor
	Modules                []*ModuleDescriptor
	SupportedArtifactTypes []ArtifactType
}

func (t *ModuleTree) Module(name string) (*ModuleDescriptor, bool) {
	for _, m := range t.Modules {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

func (t *ModuleTree) ModuleFor(at ArtifactType) (*ModuleDescriptor, bool) {
	for _, m := range t.Modules {
		if m.ArtifactType == at {
			return m, true
		}
	}
	return nil, false
}

// ModuleNames lists child module names in manifest order.
func (t *ModuleTree) ModuleNames() []string {
	names := make([]string, len(t.Modules))
	for i, m := range t.Modules {
		names[i] = m.Name
	}
	return names
}

// ArtifactModules maps every artifact type to the full names of the modules producing it.
func (t *ModuleTree) ArtifactModules() map[ArtifactType][]string {
	out := make(map[ArtifactType][]string, len(t.Modules))
	for _, m := range t.Modules {
		out[m.ArtifactType] = append(out[m.ArtifactType], m.FullName)
	}
	return out
}

// EffectiveProperties is the property set a child manifest sees: the root's
// properties overlaid with the module's own.
func (t *ModuleTree) EffectiveProperties(name string) map[string]string {
	props := make(map[string]string)
	if t.Root != nil {
		for k, v := range t.Root.Properties {
			props[k] = v
		}
	}
	if m, ok := t.Module(name); ok {
		for k, v := range m.Properties {
			props[k] = v
		}
	}
	return props
}

// ModuleFilePath is the project-relative path of a file inside a module.
func ModuleFilePath(module, path string) string {
	return "/" + module + "/" + strings.TrimPrefix(path, "/")
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
