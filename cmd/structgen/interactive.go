package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/eduardo/structgen/internal/domain"
	"github.com/eduardo/structgen/internal/generator"
)

func runInteractiveMode(registry *generator.Registry) (string, error) {
	var action string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Project Structure Generator").
				Options(
					huh.NewOption("Create new structure request", "create"),
					huh.NewOption("Select existing structure request", "select"),
				).
				Value(&action),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	switch action {
	case "create":
		return createNewRequest(registry)
	case "select":
		return selectExistingRequest()
	default:
		return "", fmt.Errorf("invalid option")
	}
}

func createNewRequest(registry *generator.Registry) (string, error) {
	var (
		groupID    string
		artifactID string
		version    int
	)

	required := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	var versionOptions []huh.Option[int]
	for _, v := range registry.Versions() {
		versionOptions = append(versionOptions, huh.NewOption("Version "+strconv.Itoa(v), v))
	}
	if latest := registry.Latest(); latest != nil {
		version = latest.Version()
	}

	// 1. Project coordinates and structure version
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group ID").
				Value(&groupID).
				Validate(required("group id")),
			huh.NewInput().
				Title("Artifact ID").
				Value(&artifactID).
				Validate(required("artifact id")),
			huh.NewSelect[int]().
				Title("Project Structure Version").
				Options(versionOptions...).
				Value(&version),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}

	def, err := registry.Get(version)
	if err != nil {
		return "", err
	}

	// 2. Artifact types supported by the chosen version
	var typeOptions []huh.Option[string]
	for _, t := range def.SupportedArtifactTypes() {
		if t == domain.Entities {
			continue
		}
		typeOptions = append(typeOptions, huh.NewOption(t.DefaultModuleName(), t.String()))
	}
	var selected []string
	if len(typeOptions) > 0 {
		if err := huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Artifact Types (entities is always generated)").
					Options(typeOptions...).
					Value(&selected),
			),
		).Run(); err != nil {
			return "", err
		}
	}

	config := domain.ProjectConfig{
		GroupID:       strings.TrimSpace(groupID),
		ArtifactID:    strings.TrimSpace(artifactID),
		Version:       version,
		ArtifactTypes: []domain.ArtifactType{domain.Entities},
	}
	for _, s := range selected {
		t, err := domain.ParseArtifactType(s)
		if err != nil {
			return "", err
		}
		config.ArtifactTypes = append(config.ArtifactTypes, t)
	}

	content, err := renderRequest(config)
	if err != nil {
		return "", err
	}
	filename := "structure.md"

	if err := os.WriteFile(filename, content, 0644); err != nil {
		return "", fmt.Errorf("failed to create structure request: %w", err)
	}

	fmt.Printf("Created %s\n", filename)
	return filename, nil
}

// renderRequest wraps a request in the markdown form the parser reads.
func renderRequest(config domain.ProjectConfig) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(config)
	if err != nil {
		return nil, err
	}
	return []byte(fmt.Sprintf("# %s Structure\n\n```yaml\n%s```\n", config.ArtifactID, yamlBytes)), nil
}

func selectExistingRequest() (string, error) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		return "", err
	}

	if len(files) == 0 {
		return "", fmt.Errorf("no .md files found in current directory")
	}

	var options []huh.Option[string]
	for _, f := range files {
		options = append(options, huh.NewOption(f, f))
	}

	var selectedFile string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select a structure request").
				Options(options...).
				Value(&selectedFile),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}

	return selectedFile, nil
}
