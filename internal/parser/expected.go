package parser

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/eduardo/structgen/internal/conformance"
	"github.com/eduardo/structgen/internal/domain"
)

// ParseExpected reads a conformance fixture written by MarshalExpected.
func ParseExpected(fs domain.FileSystemPort, filename string) (conformance.Expected, error) {
	content, err := fs.ReadFile(filename)
	if err != nil {
		return conformance.Expected{}, fmt.Errorf("failed to read file: %w", err)
	}
	return UnmarshalExpected(content)
}

func UnmarshalExpected(raw []byte) (conformance.Expected, error) {
	var exp conformance.Expected
	if err := yaml.Unmarshal(raw, &exp); err != nil {
		return conformance.Expected{}, fmt.Errorf("failed to parse expected structure: %w", err)
	}
	return exp, nil
}

// MarshalExpected encodes a fixture with two-space indentation.
func MarshalExpected(exp conformance.Expected) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(exp); err != nil {
		return nil, fmt.Errorf("failed to encode expected structure: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
