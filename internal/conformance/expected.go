package conformance

import "github.com/eduardo/structgen/internal/domain"

// RootModule is the Module value used for discrepancies in the root manifest.
const RootModule = "."

// Expected is the shape a generated tree must have. Modules are keyed by
// their short name; files by module-relative path.
type Expected struct {
	Version                int                              `yaml:"version"`
	Root                   ExpectedModule                   `yaml:"root"`
	Modules                map[string]ExpectedModule        `yaml:"modules"`
	ArtifactModules        map[domain.ArtifactType][]string `yaml:"artifact_modules"`
	SupportedArtifactTypes []domain.ArtifactType            `yaml:"supported_artifact_types"`
	IgnoreFiles            []string                         `yaml:"ignore_files,omitempty"`
	UnexpectedFiles        []string                         `yaml:"unexpected_files,omitempty"`
}

// ExpectedModule is the expected manifest content of one module.
type ExpectedModule struct {
	Properties           map[string]string   `yaml:"properties,omitempty"`
	Dependencies         []domain.Dependency `yaml:"dependencies,omitempty"`
	DependencyManagement []domain.Dependency `yaml:"dependency_management,omitempty"`
	Plugins              []domain.Plugin     `yaml:"plugins,omitempty"`
	Files                map[string]string   `yaml:"files,omitempty"`
}

// ExpectedFromTree freezes a generated tree into an expectation, so a later
// generation can be checked against it.
func ExpectedFromTree(tree *domain.ModuleTree) Expected {
	exp := Expected{
		Version:                tree.Version,
		Root:                   expectModule(tree.Root),
		Modules:                make(map[string]ExpectedModule, len(tree.Modules)),
		ArtifactModules:        tree.ArtifactModules(),
		SupportedArtifactTypes: append([]domain.ArtifactType(nil), tree.SupportedArtifactTypes...),
	}
	for _, m := range tree.Modules {
		exp.Modules[m.Name] = expectModule(m)
	}
	return exp
}

func expectModule(m *domain.ModuleDescriptor) ExpectedModule {
	if m == nil {
		return ExpectedModule{}
	}
	em := ExpectedModule{
		Properties:           make(map[string]string, len(m.Properties)),
		Dependencies:         append([]domain.Dependency(nil), m.Dependencies...),
		DependencyManagement: append([]domain.Dependency(nil), m.DependencyManagement...),
		Plugins:              append([]domain.Plugin(nil), m.Plugins...),
		Files:                make(map[string]string, len(m.Files)),
	}
	for k, v := range m.Properties {
		em.Properties[k] = v
	}
	for _, f := range m.Files {
		em.Files[f.Path] = string(f.Content)
	}
	return em
}
