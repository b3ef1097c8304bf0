package plugins

import "github.com/eduardo/structgen/internal/domain"

// FileGenerationHelper declares the file generation plugin.
type FileGenerationHelper struct {
	base
}

func NewFileGenerationHelper(c Coordinates, deps ...domain.Dependency) *FileGenerationHelper {
	return &FileGenerationHelper{base: newBase(c, deps)}
}

func (h *FileGenerationHelper) Plugin(ctx Context) domain.Plugin {
	return h.declare(execution("generate-sources", "generate-file-generations",
		inclusions(entitiesOutput(ctx)),
		domain.Value("outputDirectory", "${project.build.outputDirectory}"),
	))
}

// ServiceExecutionHelper declares the service execution generation plugin
// and the shade step that bundles the generated executions.
type ServiceExecutionHelper struct {
	base
	shade Coordinates
}

func NewServiceExecutionHelper(c Coordinates, shade Coordinates, deps ...domain.Dependency) *ServiceExecutionHelper {
	return &ServiceExecutionHelper{base: newBase(c, deps), shade: shade}
}

func (h *ServiceExecutionHelper) Plugin(ctx Context) domain.Plugin {
	return h.declare(execution("generate-sources", "generate-service-executions",
		inclusions(entitiesOutput(ctx)),
		domain.Value("javaSourceOutputDirectory", "${project.build.directory}/generated-sources"),
		domain.Value("resourceOutputDirectory", "${project.build.outputDirectory}"),
		domain.Value("packagePrefix", ctx.GroupID()),
	))
}

func (h *ServiceExecutionHelper) AuxiliaryPlugin(ctx Context) domain.Plugin {
	return domain.Plugin{
		GroupID:    h.shade.GroupID,
		ArtifactID: h.shade.ArtifactID,
		Version:    h.shade.Version,
		Executions: []domain.Execution{
			execution("package", "shade",
				domain.Value("shadedArtifactAttached", "true"),
				domain.Value("shadedClassifierName", "shaded"),
				domain.Group("transformers",
					domain.ConfigNode{
						Name:  "transformer",
						Value: "org.apache.maven.plugins.shade.resource.ServicesResourceTransformer",
					},
				),
			),
		},
	}
}
