package generator

import (
	"github.com/eduardo/structgen/internal/manifest"
	"github.com/eduardo/structgen/internal/plugins"
)

// AddPlugins declares each helper's plugin in order, followed directly by its
// auxiliary declaration when the family has one.
func AddPlugins(helpers ...plugins.Helper) ModuleContribution {
	return func(s *Structure, acc *manifest.Accumulator) error {
		for _, h := range helpers {
			acc.AddPlugin(h.Plugin(s))
			if aux, ok := h.(plugins.AuxiliaryHelper); ok {
				acc.AddPlugin(aux.AuxiliaryPlugin(s))
			}
		}
		return nil
	}
}
