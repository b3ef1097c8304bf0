// Package conformance compares a generated module tree against the shape a
// structure version promises. It reports every deviation instead of
// stopping at the first one.
package conformance

import (
	"fmt"
	"strings"
)

// Kind classifies a discrepancy.
type Kind string

const (
	VersionMismatch                Kind = "VersionMismatch"
	MissingModule                  Kind = "MissingModule"
	UnexpectedModule               Kind = "UnexpectedModule"
	MissingProperty                Kind = "MissingProperty"
	UnexpectedProperty             Kind = "UnexpectedProperty"
	PropertyMismatch               Kind = "PropertyMismatch"
	MissingDependency              Kind = "MissingDependency"
	UnexpectedDependency           Kind = "UnexpectedDependency"
	MissingDependencyManagement    Kind = "MissingDependencyManagement"
	UnexpectedDependencyManagement Kind = "UnexpectedDependencyManagement"
	MissingPlugin                  Kind = "MissingPlugin"
	UnexpectedPlugin               Kind = "UnexpectedPlugin"
	PluginMismatch                 Kind = "PluginMismatch"
	PluginOrderMismatch            Kind = "PluginOrderMismatch"
	MissingFile                    Kind = "MissingFile"
	UnexpectedFile                 Kind = "UnexpectedFile"
	FileContentMismatch            Kind = "FileContentMismatch"
	ArtifactModuleMismatch         Kind = "ArtifactModuleMismatch"
	SupportedArtifactTypesMismatch Kind = "SupportedArtifactTypesMismatch"
)

// Discrepancy is one difference between the actual and expected structure.
// Module is empty for project-level discrepancies and "." for the root manifest.
type Discrepancy struct {
	Kind     Kind
	Module   string
	Subject  string
	Expected string
	Actual   string
}

func (d Discrepancy) String() string {
	var b strings.Builder
	b.WriteString(string(d.Kind))
	if d.Module != "" {
		fmt.Fprintf(&b, " [%s]", d.Module)
	}
	if d.Subject != "" {
		fmt.Fprintf(&b, " %s", d.Subject)
	}
	if d.Expected != "" || d.Actual != "" {
		fmt.Fprintf(&b, ": expected %q, got %q", d.Expected, d.Actual)
	}
	return b.String()
}

// Discrepancies is the result of a conformance check.
type Discrepancies []Discrepancy

// OfKind filters discrepancies by kind.
func (ds Discrepancies) OfKind(kind Kind) Discrepancies {
	var out Discrepancies
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Err folds the discrepancies into an error, or nil when there are none.
func (ds Discrepancies) Err() error {
	if len(ds) == 0 {
		return nil
	}
	return &NonConformanceError{Discrepancies: ds}
}

// NonConformanceError aggregates discrepancies for callers that need an error.
type NonConformanceError struct {
	Discrepancies Discrepancies
}

func (e *NonConformanceError) Error() string {
	lines := make([]string, len(e.Discrepancies))
	for i, d := range e.Discrepancies {
		lines[i] = d.String()
	}
	return fmt.Sprintf("structure does not conform (%d discrepancies): %s", len(lines), strings.Join(lines, "; "))
}
