package domain

import (
	"fmt"
	"strings"
)

// ArtifactType tags a category of generated module.
type ArtifactType string

const (
	Entities          ArtifactType = "entities"
	VersionedEntities ArtifactType = "versioned_entities"
	ServiceExecution  ArtifactType = "service_execution"
	FileGeneration    ArtifactType = "file_generation"
	ProtocolBuffers   ArtifactType = "protocol_buffers"
)

// artifactTypes is the declaration order. Module trees and manifests list
// modules in this order regardless of how a request lists them.
var artifactTypes = []ArtifactType{
	Entities,
	VersionedEntities,
	ServiceExecution,
	FileGeneration,
	ProtocolBuffers,
}

// ArtifactTypes returns every known artifact type in declaration order.
func ArtifactTypes() []ArtifactType {
	out := make([]ArtifactType, len(artifactTypes))
	copy(out, artifactTypes)
	return out
}

// ParseArtifactType resolves a tag such as "service_execution". Dashes are
// accepted in place of underscores.
func ParseArtifactType(s string) (ArtifactType, error) {
	tag := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, t := range artifactTypes {
		if string(t) == tag {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownArtifactType, s)
}

// Ordinal is the position of t in declaration order, or -1 if unknown.
func (t ArtifactType) Ordinal() int {
	for i, known := range artifactTypes {
		if known == t {
			return i
		}
	}
	return -1
}

// DefaultModuleName derives the module name for an artifact type.
func (t ArtifactType) DefaultModuleName() string {
	return strings.ReplaceAll(string(t), "_", "-")
}

func (t ArtifactType) String() string {
	return string(t)
}

// UnmarshalText lets requests and fixtures name artifact types as plain strings.
func (t *ArtifactType) UnmarshalText(text []byte) error {
	parsed, err := ParseArtifactType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// SortArtifactTypes orders types by declaration order in place.
func SortArtifactTypes(types []ArtifactType) {
	for i := 1; i < len(types); i++ {
		for j := i; j > 0 && types[j].Ordinal() < types[j-1].Ordinal(); j-- {
			types[j], types[j-1] = types[j-1], types[j]
		}
	}
}
