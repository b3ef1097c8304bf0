package conformance

import (
	"sort"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/eduardo/structgen/internal/domain"
)

// Verify compares actual against expected. Properties, dependencies and
// dependency management compare as sets; plugins compare as a sequence;
// files compare by path with byte-exact content.
func Verify(actual *domain.ModuleTree, expected Expected) Discrepancies {
	v := &verifier{expected: expected}

	if actual.Version != expected.Version {
		v.add(Discrepancy{
			Kind:     VersionMismatch,
			Expected: strconv.Itoa(expected.Version),
			Actual:   strconv.Itoa(actual.Version),
		})
	}

	root := actual.Root
	if root == nil {
		root = &domain.ModuleDescriptor{}
	}
	v.module(RootModule, root, expected.Root)

	actualNames := make(map[string]*domain.ModuleDescriptor, len(actual.Modules))
	for _, m := range actual.Modules {
		actualNames[m.Name] = m
	}
	for _, name := range sortedModuleNames(expected.Modules) {
		m, ok := actualNames[name]
		if !ok {
			v.add(Discrepancy{Kind: MissingModule, Module: name})
			continue
		}
		v.module(name, m, expected.Modules[name])
	}
	for _, m := range actual.Modules {
		if _, ok := expected.Modules[m.Name]; !ok {
			v.add(Discrepancy{Kind: UnexpectedModule, Module: m.Name})
		}
	}

	v.artifactModules(actual.ArtifactModules(), expected.ArtifactModules)
	v.supportedTypes(actual.SupportedArtifactTypes, expected.SupportedArtifactTypes)
	return v.out
}

// Diff reports what regenerating from into to changes. Missing entries are
// dropped by to; unexpected entries are introduced by it.
func Diff(from, to *domain.ModuleTree) Discrepancies {
	return Verify(to, ExpectedFromTree(from))
}

type verifier struct {
	expected Expected
	out      Discrepancies
}

func (v *verifier) add(d Discrepancy) {
	v.out = append(v.out, d)
}

func (v *verifier) module(name string, actual *domain.ModuleDescriptor, expected ExpectedModule) {
	v.properties(name, actual.Properties, expected.Properties)
	v.dependencies(name, actual.Dependencies, expected.Dependencies, MissingDependency, UnexpectedDependency)
	v.dependencies(name, actual.DependencyManagement, expected.DependencyManagement, MissingDependencyManagement, UnexpectedDependencyManagement)
	v.plugins(name, actual.Plugins, expected.Plugins)
	v.files(name, actual.Files, expected.Files)
}

func (v *verifier) properties(module string, actual, expected map[string]string) {
	for _, k := range domain.SortedKeys(expected) {
		got, ok := actual[k]
		switch {
		case !ok:
			v.add(Discrepancy{Kind: MissingProperty, Module: module, Subject: k, Expected: expected[k]})
		case got != expected[k]:
			v.add(Discrepancy{Kind: PropertyMismatch, Module: module, Subject: k, Expected: expected[k], Actual: got})
		}
	}
	for _, k := range domain.SortedKeys(actual) {
		if _, ok := expected[k]; !ok {
			v.add(Discrepancy{Kind: UnexpectedProperty, Module: module, Subject: k, Actual: actual[k]})
		}
	}
}

func (v *verifier) dependencies(module string, actual, expected []domain.Dependency, missing, unexpected Kind) {
	for _, d := range expected {
		if !containsDependency(actual, d) {
			v.add(Discrepancy{Kind: missing, Module: module, Subject: d.String()})
		}
	}
	for _, d := range actual {
		if !containsDependency(expected, d) {
			v.add(Discrepancy{Kind: unexpected, Module: module, Subject: d.String()})
		}
	}
}

func containsDependency(list []domain.Dependency, d domain.Dependency) bool {
	for _, candidate := range list {
		if candidate.Equal(d) {
			return true
		}
	}
	return false
}

func (v *verifier) plugins(module string, actual, expected []domain.Plugin) {
	actualByKey := indexPlugins(actual)
	expectedByKey := indexPlugins(expected)

	var expectedOrder, actualOrder []string
	for _, p := range expected {
		got, ok := actualByKey[p.Key()]
		if !ok {
			v.add(Discrepancy{Kind: MissingPlugin, Module: module, Subject: p.String()})
			continue
		}
		expectedOrder = append(expectedOrder, p.Key())
		if !got.Equal(p) {
			v.add(Discrepancy{Kind: PluginMismatch, Module: module, Subject: p.Key()})
		}
	}
	for _, p := range actual {
		if _, ok := expectedByKey[p.Key()]; !ok {
			v.add(Discrepancy{Kind: UnexpectedPlugin, Module: module, Subject: p.String()})
			continue
		}
		actualOrder = append(actualOrder, p.Key())
	}

	if strings.Join(expectedOrder, ",") != strings.Join(actualOrder, ",") {
		v.add(Discrepancy{
			Kind:     PluginOrderMismatch,
			Module:   module,
			Expected: strings.Join(expectedOrder, ", "),
			Actual:   strings.Join(actualOrder, ", "),
		})
	}
}

func indexPlugins(list []domain.Plugin) map[string]domain.Plugin {
	out := make(map[string]domain.Plugin, len(list))
	for _, p := range list {
		if _, ok := out[p.Key()]; !ok {
			out[p.Key()] = p
		}
	}
	return out
}

func (v *verifier) files(module string, actual []domain.GeneratedFile, expected map[string]string) {
	got := make(map[string]string, len(actual))
	for _, f := range actual {
		if v.ignored(module, f.Path) {
			continue
		}
		got[f.Path] = string(f.Content)
	}

	for _, path := range domain.SortedKeys(expected) {
		if v.ignored(module, path) {
			continue
		}
		content, ok := got[path]
		switch {
		case !ok:
			v.add(Discrepancy{Kind: MissingFile, Module: module, Subject: path})
		case content != expected[path]:
			v.add(Discrepancy{Kind: FileContentMismatch, Module: module, Subject: path})
		}
	}
	for _, path := range domain.SortedKeys(got) {
		if _, ok := expected[path]; !ok || v.forbidden(module, path) {
			v.add(Discrepancy{Kind: UnexpectedFile, Module: module, Subject: path})
		}
	}
}

func (v *verifier) ignored(module, path string) bool {
	return matchAny(v.expected.IgnoreFiles, projectPath(module, path))
}

func (v *verifier) forbidden(module, path string) bool {
	return matchAny(v.expected.UnexpectedFiles, projectPath(module, path))
}

// projectPath is the path of a file relative to the project directory,
// without a leading slash, as glob patterns are written.
func projectPath(module, path string) string {
	if module == RootModule {
		return strings.TrimPrefix(path, "/")
	}
	return strings.TrimPrefix(domain.ModuleFilePath(module, path), "/")
}

func matchAny(patterns []string, path string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(strings.TrimPrefix(pattern, "/"), path); ok {
			return true
		}
	}
	return false
}

func (v *verifier) artifactModules(actual, expected map[domain.ArtifactType][]string) {
	types := make(map[domain.ArtifactType]bool)
	for t := range actual {
		types[t] = true
	}
	for t := range expected {
		types[t] = true
	}
	ordered := make([]domain.ArtifactType, 0, len(types))
	for t := range types {
		ordered = append(ordered, t)
	}
	domain.SortArtifactTypes(ordered)

	for _, t := range ordered {
		want, got := sortedCopy(expected[t]), sortedCopy(actual[t])
		if strings.Join(want, ",") != strings.Join(got, ",") {
			v.add(Discrepancy{
				Kind:     ArtifactModuleMismatch,
				Subject:  t.String(),
				Expected: strings.Join(want, ", "),
				Actual:   strings.Join(got, ", "),
			})
		}
	}
}

func (v *verifier) supportedTypes(actual, expected []domain.ArtifactType) {
	want, got := typeNames(expected), typeNames(actual)
	if want != got {
		v.add(Discrepancy{Kind: SupportedArtifactTypesMismatch, Expected: want, Actual: got})
	}
}

func typeNames(types []domain.ArtifactType) string {
	sorted := append([]domain.ArtifactType(nil), types...)
	domain.SortArtifactTypes(sorted)
	names := make([]string, len(sorted))
	for i, t := range sorted {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}

func sortedModuleNames(modules map[string]ExpectedModule) []string {
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
