package yaml

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/0xalexb/pathlaunch/config"

	"github.com/goccy/go-yaml"
)

// Parser implements config.Parser for YAML data.
// It uses goccy/go-yaml PathString for path navigation.
type Parser struct {
	decodeOptions []yaml.DecodeOption
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects fields that the target struct does not declare.
func WithStrict() Option {
	return func(p *Parser) {
		p.decodeOptions = append(p.decodeOptions, yaml.Strict())
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return config.ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, p.decodeOptions...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", config.ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, p.decodeOptions...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "Launcher" -> "$.Launcher"
//   - "launcher:options" -> "$.launcher.options"
func convertToYAMLPath(path string) string {
	return "$." + strings.ReplaceAll(path, ":", ".")
}
