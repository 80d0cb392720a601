package dynpath

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/spf13/afero"
)

// Path is a filesystem path template together with the names of the variables
// it still needs. A Path with no variables is concrete.
//
// Path is an immutable value: binding returns a new Path and leaves the
// receiver untouched.
type Path struct {
	template  string
	variables []string
	fs        afero.Fs
}

// New parses a template written with inline ?name? variables. It does not
// expand references; use a Resolver for configuration values.
func New(fsys afero.Fs, template string) (Path, error) {
	value, err := extractVariables(template)
	if err != nil {
		return Path{}, err
	}

	return newPath(fsys, unquote(value)), nil
}

// newPath takes the variables from the <name> tokens of template, so a token
// written literally in a configuration value is a variable too.
func newPath(fsys afero.Fs, template string) Path {
	return Path{
		template:  template,
		variables: templateVariables(template),
		fs:        fsys,
	}
}

// Raw returns the template, with unbound variables written as <name>.
func (p Path) Raw() string {
	return p.template
}

// String returns the template; for a concrete Path this is the filesystem path.
func (p Path) String() string {
	return p.template
}

// Variables returns the unbound variable names in order of first appearance.
func (p Path) Variables() []string {
	return slices.Clone(p.variables)
}

// Missing returns the number of unbound variables.
func (p Path) Missing() int {
	return len(p.variables)
}

// IsConcrete reports whether every variable has been bound.
func (p Path) IsConcrete() bool {
	return len(p.variables) == 0
}

// Concrete returns the filesystem path, or ErrNotFound while variables remain unbound.
func (p Path) Concrete() (string, error) {
	if !p.IsConcrete() {
		return "", p.unboundError()
	}

	return p.template, nil
}

// Bind substitutes every outstanding variable by name. The key set of values
// must equal Variables(). Binding a concrete Path is a no-op.
func (p Path) Bind(values map[string]string) (Path, error) {
	if p.IsConcrete() {
		return p, nil
	}

	if len(values) != len(p.variables) || !p.hasAll(slices.Collect(maps.Keys(values))) {
		return p, fmt.Errorf("%w: got %v, want %v",
			ErrArgument, slices.Sorted(maps.Keys(values)), p.variables)
	}

	return p.substitute(values), nil
}

// BindPositional assigns values to the outstanding variables in the order
// returned by Variables(). Calling it with no values on a concrete Path returns
// the Path unchanged.
func (p Path) BindPositional(values ...string) (Path, error) {
	if len(values) != len(p.variables) {
		return p, fmt.Errorf("%w: got %d values for %d variables %v",
			ErrArgument, len(values), len(p.variables), p.variables)
	}

	if p.IsConcrete() {
		return p, nil
	}

	named := make(map[string]string, len(values))

	for i, name := range p.variables {
		named[name] = values[i]
	}

	return p.substitute(named), nil
}

// With binds a single outstanding variable and keeps the rest unbound.
func (p Path) With(name, value string) (Path, error) {
	if !p.hasAll([]string{name}) {
		return p, fmt.Errorf("%w: %q is not among %v", ErrArgument, name, p.variables)
	}

	return p.substitute(map[string]string{name: value}), nil
}

func (p Path) hasAll(names []string) bool {
	for _, name := range names {
		if !slices.Contains(p.variables, name) {
			return false
		}
	}

	return true
}

// substitute replaces the tokens of the given variables in a single pass, so
// a value that looks like a token is never substituted again nor treated as
// a variable.
func (p Path) substitute(values map[string]string) Path {
	pairs := make([]string, 0, 2*len(values))
	remaining := make([]string, 0, len(p.variables))

	for _, name := range p.variables {
		value, ok := values[name]
		if !ok {
			remaining = append(remaining, name)

			continue
		}

		pairs = append(pairs, token(name), value)
	}

	return Path{
		template:  strings.NewReplacer(pairs...).Replace(p.template),
		variables: slices.Clip(remaining),
		fs:        p.fs,
	}
}

func (p Path) unboundError() error {
	return fmt.Errorf("%w: %q has unbound variables %v, bind them first", ErrNotFound, p.template, p.variables)
}
