// Package logging builds the launcher's structured slog logger, writing JSON
// by default or logfmt-style text when asked to.
package logging
