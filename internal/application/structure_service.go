package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/eduardo/structgen/internal/conformance"
	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/generator"
	"github.com/eduardo/structgen/internal/parser"
)

var _ domain.StructureServicePort = (*StructureService)(nil)

// StructureService implements domain.StructureServicePort
type StructureService struct {
	fs             domain.FileSystemPort
	parser         domain.ParserPort
	registry       *generator.Registry
	composer       *generator.Composer
	defaultVersion int
	log            *slog.Logger
}

func NewStructureService(fs domain.FileSystemPort, template domain.TemplatePort, parser domain.ParserPort, registry *generator.Registry, defaultVersion int, log *slog.Logger) *StructureService {
	return &StructureService{
		fs:             fs,
		parser:         parser,
		registry:       registry,
		composer:       generator.NewComposer(registry, template),
		defaultVersion: defaultVersion,
		log:            log,
	}
}

// Load parses a request and fills in defaults.
func (s *StructureService) Load(requestPath string) (*domain.ProjectConfig, error) {
	config, err := s.parser.Parse(requestPath)
	if err != nil {
		return nil, err
	}
	s.enrichConfig(config)
	return config, nil
}

// Generate composes the request's tree and writes its generated files under outputDir.
func (s *StructureService) Generate(ctx context.Context, requestPath, outputDir string) (*domain.ModuleTree, error) {
	log := s.runLogger("generate")
	tree, err := s.compose(ctx, log, requestPath)
	if err != nil {
		return nil, err
	}

	if err := generator.Write(tree, outputDir, s.fs); err != nil {
		return nil, err
	}
	log.Info("project generated", "artifact_id", tree.Project.ArtifactID, "version", tree.Version, "modules", tree.ModuleNames(), "output_dir", outputDir)
	return tree, nil
}

// Snapshot writes the request's generated shape as a conformance fixture.
func (s *StructureService) Snapshot(ctx context.Context, requestPath, fixturePath string) error {
	log := s.runLogger("snapshot")
	tree, err := s.compose(ctx, log, requestPath)
	if err != nil {
		return err
	}

	data, err := parser.MarshalExpected(conformance.ExpectedFromTree(tree))
	if err != nil {
		return err
	}
	if err := s.fs.WriteFile(fixturePath, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	log.Info("snapshot written", "path", fixturePath, "version", tree.Version)
	return nil
}

// Verify regenerates the request and checks it against a fixture.
func (s *StructureService) Verify(ctx context.Context, requestPath, fixturePath string) (conformance.Discrepancies, error) {
	log := s.runLogger("verify")
	tree, err := s.compose(ctx, log, requestPath)
	if err != nil {
		return nil, err
	}

	expected, err := parser.ParseExpected(s.fs, fixturePath)
	if err != nil {
		return nil, err
	}

	discrepancies := conformance.Verify(tree, expected)
	log.Info("structure verified", "fixture", fixturePath, "discrepancies", len(discrepancies))
	return discrepancies, nil
}

// Upgrade reports what regenerating the request at toVersion changes
// compared to the version it is pinned to.
func (s *StructureService) Upgrade(ctx context.Context, requestPath string, toVersion int) (conformance.Discrepancies, error) {
	log := s.runLogger("upgrade")
	config, err := s.Load(requestPath)
	if err != nil {
		return nil, err
	}
	if toVersion < config.Version {
		return nil, fmt.Errorf("cannot upgrade from project structure version %d to older version %d", config.Version, toVersion)
	}

	current, err := s.Compose(ctx, *config)
	if err != nil {
		return nil, err
	}
	target := *config
	target.Version = toVersion
	upgraded, err := s.Compose(ctx, target)
	if err != nil {
		return nil, err
	}

	changes := conformance.Diff(current, upgraded)
	log.Info("upgrade computed", "from", config.Version, "to", toVersion, "changes", len(changes))
	return changes, nil
}

// Compose builds the module tree for an already loaded configuration.
func (s *StructureService) Compose(ctx context.Context, config domain.ProjectConfig) (*domain.ModuleTree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.composer.Compose(config)
}

func (s *StructureService) compose(ctx context.Context, log *slog.Logger, requestPath string) (*domain.ModuleTree, error) {
	config, err := s.Load(requestPath)
	if err != nil {
		return nil, err
	}
	log.Debug("request loaded", "request", requestPath, "artifact_types", config.ArtifactTypes, "version", config.Version)

	tree, err := s.Compose(ctx, *config)
	if err != nil {
		log.Error("composition failed", "error", err)
		return nil, err
	}
	return tree, nil
}

func (s *StructureService) runLogger(useCase string) *slog.Logger {
	return s.log.With("run_id", uuid.NewString(), "use_case", useCase)
}

func (s *StructureService) enrichConfig(config *domain.ProjectConfig) {
	if config.Version == 0 {
		config.Version = s.defaultVersion
	}
	if config.ProjectID == "" {
		config.ProjectID = config.GroupID + ":" + config.ArtifactID
	}
	if !s.hasArtifactType(config, domain.Entities) {
		config.ArtifactTypes = append([]domain.ArtifactType{domain.Entities}, config.ArtifactTypes...)
	}
	domain.SortArtifactTypes(config.ArtifactTypes)
}

func (s *StructureService) hasArtifactType(config *domain.ProjectConfig, t domain.ArtifactType) bool {
	for _, at := range config.ArtifactTypes {
		if at == t {
			return true
		}
	}
	return false
}
