package ini

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/pathlaunch/config"

	goini "gopkg.in/ini.v1"
)

// ErrNestedPath is returned when a path navigates deeper than a single section.
var ErrNestedPath = errors.New("INI documents only support section paths")

// ErrUnsupportedTarget is returned when the whole document is requested into a type other than a section map.
var ErrUnsupportedTarget = errors.New("unsupported target for whole document")

// Parser implements config.Parser for INI data.
type Parser struct {
	options goini.LoadOptions
}

// NewParser creates an INI parser with keys matched case-insensitively. Inline
// comment markers and trailing backslashes are kept as part of values.
func NewParser() *Parser {
	return &Parser{
		options: goini.LoadOptions{
			InsensitiveKeys:     true,
			IgnoreInlineComment: true,
			IgnoreContinuation:  true,
		},
	}
}

// Parse decodes INI data into the target.
//
// An empty path requires a *map[string]map[string]any target and fills it with
// every section; keys of the DEFAULT section are inherited by all other sections.
// Otherwise path names a section that is mapped onto the target struct using
// `ini` field tags.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return config.ErrEmptyData
	}

	file, err := goini.LoadSources(p.options, data)
	if err != nil {
		return fmt.Errorf("loading INI: %w", err)
	}

	if path == "" {
		sections, ok := target.(*map[string]map[string]any)
		if !ok {
			return fmt.Errorf("%w: %T", ErrUnsupportedTarget, target)
		}

		*sections = collectSections(file)

		return nil
	}

	if strings.Contains(path, ":") {
		return fmt.Errorf("%w: %q", ErrNestedPath, path)
	}

	section, err := file.GetSection(path)
	if err != nil {
		return fmt.Errorf("%w: %s", config.ErrPathNotFound, path)
	}

	err = section.MapTo(target)
	if err != nil {
		return fmt.Errorf("mapping section %q: %w", path, err)
	}

	return nil
}

func collectSections(file *goini.File) map[string]map[string]any {
	defaults := file.Section(goini.DefaultSection).KeysHash()
	result := make(map[string]map[string]any, len(file.Sections()))

	for _, section := range file.Sections() {
		name := section.Name()
		if name == goini.DefaultSection && len(defaults) == 0 {
			continue
		}

		values := make(map[string]any, len(defaults)+len(section.Keys()))

		for key, value := range defaults {
			values[key] = value
		}

		for _, key := range section.Keys() {
			values[key.Name()] = key.Value()
		}

		result[name] = values
	}

	return result
}
