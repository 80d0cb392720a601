package config

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrPathNotFound is returned by parsers when the requested path does not exist in the document.
var ErrPathNotFound = errors.New("path not found")

// ErrEmptyData is returned by parsers when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter names the part of the document to decode. For INI data it is
// a section name; for YAML it may be nested using colon (:) as the separator, e.g.
// "launcher:options". An empty path means the entire document.
//
// Parsers report a missing path by wrapping ErrPathNotFound.
type Parser interface {
	Parse(data []byte, target any, path string) error
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads, parses, sets defaults, and validates configuration data.
func Provider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		err = parser.Parse(data, target, path)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		return finalize(target, path)
	}
}

// OptionalProvider behaves like Provider, except that a path missing from the
// document is not an error: the target keeps its zero value and only defaults
// and validation are applied.
func OptionalProvider[T any](target *T, path string) func(Parser, DataFetcher) (*T, error) {
	strict := Provider(target, path)

	return func(parser Parser, dataSourcer DataFetcher) (*T, error) {
		result, err := strict(parser, dataSourcer)
		if err == nil || !errors.Is(err, ErrPathNotFound) {
			return result, err
		}

		slog.Debug("configuration path absent, using defaults", slog.String("path", path))

		return finalize(target, path)
	}
}

func finalize[T any](target *T, path string) (*T, error) {
	targetDefaulter, isDefaulter := any(target).(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := any(target).(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}
	}

	return target, nil
}
