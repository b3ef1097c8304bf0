package generator

import (
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/eduardo/structgen/internal/domain"
)

// Registry holds the known structure versions. It is populated once and
// read-only afterwards.
type Registry struct {
	definitions map[int]*Definition
}

// NewRegistry registers definitions. Every definition's prior must be
// registered too and be an older version.
func NewRegistry(definitions ...*Definition) (*Registry, error) {
	r := &Registry{definitions: make(map[int]*Definition, len(definitions))}
	for _, def := range definitions {
		if _, ok := r.definitions[def.Version()]; ok {
			return nil, fmt.Errorf("project structure version %d registered twice", def.Version())
		}
		r.definitions[def.Version()] = def
	}
	for _, def := range definitions {
		prior := def.Prior()
		if prior == nil {
			continue
		}
		if prior.Version() >= def.Version() {
			return nil, fmt.Errorf("project structure version %d extends newer version %d", def.Version(), prior.Version())
		}
		if r.definitions[prior.Version()] != prior {
			return nil, fmt.Errorf("project structure version %d extends unregistered version %d", def.Version(), prior.Version())
		}
	}
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	v11 := newV11()
	v12 := newV12(v11)
	v13 := newV13(v12)
	r, err := NewRegistry(v11, v12, v13)
	if err != nil {
		panic(err)
	}
	return r
})

// DefaultRegistry returns the built-in versions.
func DefaultRegistry() *Registry {
	return defaultRegistry()
}

func (r *Registry) Get(version int) (*Definition, error) {
	def, ok := r.definitions[version]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnknownVersion, version)
	}
	return def, nil
}

// Versions lists registered versions in ascending order.
func (r *Registry) Versions() []int {
	versions := make([]int, 0, len(r.definitions))
	for v := range r.definitions {
		versions = append(versions, v)
	}
	sort.Ints(versions)
	return versions
}

func (r *Registry) Latest() *Definition {
	versions := r.Versions()
	if len(versions) == 0 {
		return nil
	}
	return r.definitions[versions[len(versions)-1]]
}

// IdentifyVersion reads back the structure version a tree was generated with.
func IdentifyVersion(tree *domain.ModuleTree) (int, error) {
	if tree == nil || tree.Root == nil {
		return 0, fmt.Errorf("%w: tree has no root manifest", domain.ErrUnknownVersion)
	}
	raw, ok := tree.Root.Properties[StructureVersionProperty]
	if !ok {
		return 0, fmt.Errorf("%w: property %s not set", domain.ErrUnknownVersion, StructureVersionProperty)
	}
	version, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", domain.ErrUnknownVersion, StructureVersionProperty, raw)
	}
	return version, nil
}
