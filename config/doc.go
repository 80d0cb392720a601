// Package config provides configuration management functionalities and interfaces.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a target, with path navigation support
//   - DataFetcher: retrieves raw config data (file, env, etc.)
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// Two consumers are built on top of them. Provider and OptionalProvider decode
// one part of a document into a typed struct. Store decodes the whole document
// into sections of raw string values, which is what the path resolver reads.
//
// # Path Navigation
//
// The path parameter selects the part of the document to decode. INI parsers
// treat it as a section name; the YAML parser accepts colon separated paths:
//
//	"Launcher"                  -> [Launcher] section / config["Launcher"]
//	"launcher:options"          -> config["launcher"]["options"] (YAML only)
//	""                          -> entire document
//
// # Example
//
//	type LaunchConfig struct {
//	    Section string `ini:"section" yaml:"section"`
//	}
//
//	provider := config.OptionalProvider(&LaunchConfig{}, "Launcher")
//	cfg, err := provider(iniparser.NewParser(), fetcher)
//
//	store, err := config.NewStore(iniparser.NewParser(), fetcher)
//	value, err := store.Get("Roblox", "versions")
package config
