package plugins

import "github.com/eduardo/structgen/internal/domain"

// EntityHelper declares the entity processing plugin.
type EntityHelper struct {
	base
}

func NewEntityHelper(c Coordinates, deps ...domain.Dependency) *EntityHelper {
	return &EntityHelper{base: newBase(c, deps)}
}

func (h *EntityHelper) Plugin(ctx Context) domain.Plugin {
	return h.declare(execution("compile", "process-entities",
		domain.Group("sourceDirectories",
			domain.Group("sourceDirectory",
				domain.Value("directory", "${project.basedir}/src/main/pure"),
				domain.Value("serializer", "pure"),
			),
		),
	))
}

// ModelGenerationHelper declares the model generation plugin.
type ModelGenerationHelper struct {
	base
}

func NewModelGenerationHelper(c Coordinates, deps ...domain.Dependency) *ModelGenerationHelper {
	return &ModelGenerationHelper{base: newBase(c, deps)}
}

func (h *ModelGenerationHelper) Plugin(ctx Context) domain.Plugin {
	return h.declare(execution("generate-sources", "generate-model-generations",
		inclusions("${project.build.outputDirectory}"),
		domain.Value("outputDirectory", "${project.build.directory}/generated-sources"),
	))
}

// JUnitTestGenerationHelper declares the plugin generating JUnit tests from entity tests.
type JUnitTestGenerationHelper struct {
	base
}

func NewJUnitTestGenerationHelper(c Coordinates, deps ...domain.Dependency) *JUnitTestGenerationHelper {
	return &JUnitTestGenerationHelper{base: newBase(c, deps)}
}

func (h *JUnitTestGenerationHelper) Plugin(ctx Context) domain.Plugin {
	return h.declare(execution("generate-test-sources", "generate-junit-tests",
		domain.Value("entitiesDirectory", "${project.build.outputDirectory}"),
		domain.Value("outputDirectory", "${project.build.directory}/generated-test-sources"),
		domain.Value("packagePrefix", ctx.GroupID()),
	))
}
