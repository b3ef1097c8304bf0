package domain

import "errors"

var (
	// ErrUnsupportedArtifactType is returned when a request names an artifact
	// type the selected structure version has no module contributions for.
	ErrUnsupportedArtifactType = errors.New("unsupported artifact type")

	// ErrConflictingDependency is returned when two contributions declare the
	// same group and artifact with a different version, scope or type.
	ErrConflictingDependency = errors.New("conflicting dependency declaration")

	// ErrDuplicateModuleName is returned when two artifact types resolve to
	// the same module name.
	ErrDuplicateModuleName = errors.New("duplicate module name")

	// ErrFileGeneration wraps failures rendering generated file content.
	ErrFileGeneration = errors.New("file generation failure")

	// ErrInvalidModuleName is returned when a module name override is not a
	// single plain path segment.
	ErrInvalidModuleName = errors.New("invalid module name")

	// ErrUnknownVersion is returned when no structure version is registered
	// under the requested number, or a tree does not record one.
	ErrUnknownVersion = errors.New("unknown project structure version")

	// ErrUnknownArtifactType is returned when a request names a tag outside
	// the artifact type registry.
	ErrUnknownArtifactType = errors.New("unknown artifact type")
)
