// Package ini provides an INI parser implementation for the config package.
//
// It is built on gopkg.in/ini.v1 and follows the conventions of the launcher's
// paths file: section names are case-sensitive, keys are not, and characters
// such as '#', ';', '?' and '|' are ordinary value characters.
//
// Usage:
//
//	parser := ini.NewParser()
//	store, err := config.NewStore(parser, fetcher)
//
//	var opts launcher.Config
//	err = parser.Parse(data, &opts, "Launcher")
package ini
