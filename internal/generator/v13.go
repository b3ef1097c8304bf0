package generator

import (
	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/plugins"
)

// EntityValidationTestFilePath is where version 13 places the entity
// validation test inside the entities module.
const EntityValidationTestFilePath = "/src/test/java/org/finos/legend/sdlc/EntityValidationTest.java"

const entityValidationTestCode = `package org.finos.legend.sdlc;

import org.finos.legend.engine.language.pure.compiler.toPureGraph.PureModel;
import org.finos.legend.engine.protocol.pure.v1.model.context.PureModelContextData;
import org.finos.legend.sdlc.serialization.EntityLoader;
import org.finos.legend.sdlc.test.PureModelBuilder;
import org.junit.Assert;
import org.junit.Test;

public class EntityValidationTest
{
    @Test
    public void testEntitiesCompile() throws Exception
    {
        try (EntityLoader entityLoader = EntityLoader.newEntityLoader(Thread.currentThread().getContextClassLoader()))
        {
            PureModelBuilder.PureModelWithContextData result = PureModelBuilder.newBuilder()
                    .withEntitiesIfPossible(entityLoader.getAllEntities())
                    .build(Thread.currentThread().getContextClassLoader());
            PureModel pureModel = result.getPureModel();
            PureModelContextData data = result.getPureModelContextData();
            Assert.assertNotNull(pureModel);
            Assert.assertNotNull(data.getElements());
        }
    }
}
`

// EntityValidationTestCode is the literal test source version 13 generates.
func EntityValidationTestCode() string {
	return entityValidationTestCode
}

func newV13(v12 *Definition) *Definition {
	execution := domain.NewDependency(legendEngineGroup, "legend-engine-extensions-collection-execution", legendEngineVersion)
	generation := domain.NewDependency(legendEngineGroup, "legend-engine-extensions-collection-generation", legendEngineVersion)
	serializer := domain.NewDependency(legendSDLCGroup, "legend-sdlc-extensions-collection-entity-serializer", legendSDLCVersion)
	testUtils := domain.NewDependency(legendSDLCGroup, "legend-sdlc-test-utils", "")

	shade := plugins.Coordinates{GroupID: "org.apache.maven.plugins", ArtifactID: "maven-shade-plugin", Version: "${maven.shade.plugin.version}"}

	return NewDefinition(13, v12).
		Property("platform.legend-engine.version", "4.12.1").
		Property("platform.legend-sdlc.version", "0.129.0").
		Manage(execution, generation).
		Register(domain.Entities, Plugins, AddPlugins(
			plugins.NewEntityHelper(sdlcPlugin("legend-sdlc-entity-maven-plugin"), generation, serializer),
			plugins.NewModelGenerationHelper(sdlcPlugin("legend-sdlc-generation-model-maven-plugin"), generation),
			plugins.NewJUnitTestGenerationHelper(sdlcPlugin("legend-sdlc-test-generation-maven-plugin"), generation),
		)).
		Register(domain.Entities, Dependencies, AddDependencies(
			testUtils.WithScope("test"),
			execution.WithoutVersion().WithScope("test"),
			generation.WithoutVersion().WithScope("test"),
		)).
		ModuleFile(domain.Entities, EntityValidationTestFilePath, Literal(entityValidationTestCode)).
		Register(domain.ServiceExecution, Plugins, AddPlugins(
			plugins.NewServiceExecutionHelper(sdlcPlugin("legend-sdlc-generation-service-maven-plugin"), shade, generation),
		)).
		Register(domain.ServiceExecution, Dependencies, AddDependencies(execution.WithoutVersion())).
		Register(domain.FileGeneration, Plugins, AddPlugins(
			plugins.NewFileGenerationHelper(sdlcPlugin("legend-sdlc-generation-file-maven-plugin"), generation),
		))
}
