package dynpath

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// Lookup returns the raw configuration value stored under section and key.
// *config.Store satisfies it.
type Lookup interface {
	Get(section, key string) (string, error)
}

// Resolver turns configuration entries into Paths, expanding references to
// other entries recursively.
type Resolver struct {
	lookup Lookup
	fs     afero.Fs
	logger *slog.Logger
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithFs sets the filesystem that resolved Paths query. Defaults to the OS filesystem.
func WithFs(fsys afero.Fs) ResolverOption {
	return func(r *Resolver) {
		r.fs = fsys
	}
}

// WithLogger sets the logger used for resolution traces. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a Resolver reading values from lookup.
func NewResolver(lookup Lookup, opts ...ResolverOption) *Resolver {
	resolver := &Resolver{
		lookup: lookup,
		fs:     afero.NewOsFs(),
		logger: slog.Default(),
	}

	for _, apply := range opts {
		apply(resolver)
	}

	return resolver
}

// entry identifies a configuration value. Keys are compared case-insensitively.
type entry struct {
	section string
	key     string
}

func newEntry(section, key string) entry {
	return entry{section: section, key: strings.ToLower(key)}
}

func (e entry) String() string {
	return e.section + "." + e.key
}

// Resolve builds the Path for the value stored under section and key.
//
// Inline ?name? variables of the value are rewritten to <name> first; then every
// |section|key| reference is replaced with the referenced entry's own resolved
// template. The Path's variables are listed in the order their <name> tokens
// first appear in the expanded template.
func (r *Resolver) Resolve(section, key string) (Path, error) {
	template, err := r.resolve(newEntry(section, key), nil)
	if err != nil {
		return Path{}, err
	}

	path := newPath(r.fs, template)

	r.logger.Debug("resolved path",
		slog.String("entry", newEntry(section, key).String()),
		slog.String("template", template),
		slog.Any("variables", path.variables),
	)

	return path, nil
}

// resolve returns the expanded template of current. chain holds the entries
// whose resolution is still in progress.
func (r *Resolver) resolve(current entry, chain []entry) (string, error) {
	if slices.Contains(chain, current) {
		return "", fmt.Errorf("%w: %s", ErrCycle, describeChain(append(chain, current)))
	}

	chain = append(chain, current)

	raw, err := r.lookup.Get(current.section, current.key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfig, err)
	}

	value, err := extractVariables(raw)
	if err != nil {
		return "", fmt.Errorf("%s: %w", current, err)
	}

	for {
		ref, found, err := nextReference(value)
		if err != nil {
			return "", fmt.Errorf("%s: %w", current, err)
		}

		if !found {
			break
		}

		r.logger.Debug("expanding reference",
			slog.String("entry", current.String()),
			slog.String("section", ref.section),
			slog.String("key", ref.key),
		)

		expanded, err := r.resolve(newEntry(ref.section, ref.key), slices.Clip(chain))
		if err != nil {
			return "", err
		}

		value = value[:ref.start] + unquote(expanded) + value[ref.end:]
	}

	value = unquote(value)

	r.logger.Debug("resolved entry",
		slog.String("entry", current.String()),
		slog.String("template", value),
	)

	return value, nil
}

func describeChain(chain []entry) string {
	parts := make([]string, len(chain))

	for i, e := range chain {
		parts[i] = e.String()
	}

	return strings.Join(parts, " -> ")
}
