package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrLoad is returned when the configuration document cannot be read or parsed into a Store.
var ErrLoad = errors.New("loading configuration")

// ErrSectionNotFound is returned when a requested section does not exist.
var ErrSectionNotFound = errors.New("section not found")

// ErrKeyNotFound is returned when a requested key does not exist in its section.
var ErrKeyNotFound = errors.New("key not found")

// Store holds raw string values grouped into named sections.
//
// Section names are case-sensitive and keys are case-insensitive. A Store is
// never modified after construction, so it may be shared between goroutines.
type Store struct {
	sections map[string]map[string]string
}

// NewStore fetches the whole document and parses it into a Store.
// Its signature makes it usable directly as an Fx constructor.
func NewStore(parser Parser, fetcher DataFetcher) (*Store, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: reading data: %w", ErrLoad, err)
	}

	var raw map[string]map[string]any

	err = parser.Parse(data, &raw, "")
	if err != nil {
		return nil, fmt.Errorf("%w: parsing: %w", ErrLoad, err)
	}

	sections := make(map[string]map[string]string, len(raw))

	for name, values := range raw {
		section := make(map[string]string, len(values))

		for key, value := range values {
			section[strings.ToLower(key)] = stringify(value)
		}

		sections[name] = section
	}

	return &Store{sections: sections}, nil
}

// NewStoreFromMap builds a Store from already decoded sections.
func NewStoreFromMap(sections map[string]map[string]string) *Store {
	copied := make(map[string]map[string]string, len(sections))

	for name, values := range sections {
		section := make(map[string]string, len(values))

		for key, value := range values {
			section[strings.ToLower(key)] = value
		}

		copied[name] = section
	}

	return &Store{sections: copied}
}

// Get returns the raw value stored under section and key.
func (s *Store) Get(section, key string) (string, error) {
	values, ok := s.sections[section]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}

	value, ok := values[strings.ToLower(key)]
	if !ok {
		return "", fmt.Errorf("%w: %q in section %q", ErrKeyNotFound, key, section)
	}

	return value, nil
}

// Sections returns the section names in lexical order.
func (s *Store) Sections() []string {
	return slices.Sorted(maps.Keys(s.sections))
}

// Keys returns the keys of a section in lexical order.
func (s *Store) Keys(section string) ([]string, error) {
	values, ok := s.sections[section]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSectionNotFound, section)
	}

	return slices.Sorted(maps.Keys(values)), nil
}

func stringify(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	default:
		return fmt.Sprint(typed)
	}
}
