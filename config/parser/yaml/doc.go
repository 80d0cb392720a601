// Package yaml provides a YAML parser implementation for the config package.
//
// It lets the paths file be written as YAML instead of INI: top-level mappings
// are sections and their scalar entries are keys. Values that start with the
// reference marker must be quoted, since a leading '|' introduces a YAML block
// scalar.
//
//	Roblox:
//	  versions: "|Windows|LocalAppData|/Roblox/Versions"
//
// Path conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "Launcher" -> "$.Launcher"
//   - Nested path "launcher:options" -> "$.launcher.options"
package yaml
