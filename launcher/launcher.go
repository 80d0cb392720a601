package launcher

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/0xalexb/pathlaunch/dynpath"

	"github.com/bmatcuk/doublestar/v4"
	"go.uber.org/fx"
)

// ErrNoVersions is returned when the versions directory is missing or holds no matching version.
var ErrNoVersions = errors.New("no versions found")

// ErrExecutableNotFound is returned when the executable of the newest version does not exist.
var ErrExecutableNotFound = errors.New("executable not found")

// Resolver produces path templates for configuration entries.
type Resolver interface {
	Resolve(section, key string) (dynpath.Path, error)
}

// Params are the dependencies of a Launcher.
type Params struct {
	fx.In

	Config   *Config
	Resolver Resolver
	Starter  Starter
	Output   io.Writer
	Logger   *slog.Logger
}

// Launcher selects the newest version directory and starts its executable.
type Launcher struct {
	config   Config
	resolver Resolver
	starter  Starter
	out      io.Writer
	logger   *slog.Logger
}

// New creates a Launcher. Nil Output and Logger fall back to io.Discard and slog.Default().
func New(params Params) *Launcher {
	out := params.Output
	if out == nil {
		out = io.Discard
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Launcher{
		config:   *params.Config,
		resolver: params.Resolver,
		starter:  params.Starter,
		out:      out,
		logger:   logger,
	}
}

// Result describes a launch.
type Result struct {
	Version    string
	Executable string
	Started    bool
}

// Launch resolves the versions directory and executable template, binds the
// newest version and starts the executable unless the launcher runs dry.
func (l *Launcher) Launch() (Result, error) {
	versions, err := l.resolver.Resolve(l.config.Section, l.config.VersionsKey)
	if err != nil {
		return Result{}, fmt.Errorf("resolving versions directory: %w", err)
	}

	executable, err := l.resolver.Resolve(l.config.Section, l.config.ExecutableKey)
	if err != nil {
		return Result{}, fmt.Errorf("resolving executable: %w", err)
	}

	newest, err := l.newestVersion(versions)
	if err != nil {
		if errors.Is(err, ErrNoVersions) {
			_, _ = fmt.Fprintf(l.out, "No %s versions found.\n", l.config.Section)
			l.logger.Warn("no versions found", slog.String("directory", versions.String()), slog.Any("error", err))
		}

		return Result{}, err
	}

	result := Result{Version: newest.Name()}

	_, _ = fmt.Fprintf(l.out, "Newest %s version: %s\n", l.config.Section, result.Version)

	bound, err := executable.Bind(map[string]string{l.config.VersionVariable: result.Version})
	if err != nil {
		return result, fmt.Errorf("binding %s: %w", l.config.VersionVariable, err)
	}

	result.Executable = bound.String()

	if !bound.Exists() {
		_, _ = fmt.Fprintf(l.out, "%s not found at: %s\n", l.config.ExecutableKey, result.Executable)
		l.logger.Warn("executable not found", slog.String("path", result.Executable))

		return result, fmt.Errorf("%w: %s", ErrExecutableNotFound, result.Executable)
	}

	if l.config.DryRun {
		_, _ = fmt.Fprintf(l.out, "Would start %s from: %s\n", l.config.ExecutableKey, result.Executable)

		return result, nil
	}

	_, _ = fmt.Fprintf(l.out, "Starting %s from: %s\n", l.config.ExecutableKey, result.Executable)

	err = l.starter.Start(result.Executable, l.config.Args)
	if err != nil {
		return result, err
	}

	result.Started = true

	l.logger.Info("executable started",
		slog.String("version", result.Version),
		slog.String("path", result.Executable),
	)

	return result, nil
}

// newestVersion returns the matching version directory with the latest
// modification time. Ties go to the lexically greatest name.
func (l *Launcher) newestVersion(versions dynpath.Path) (dynpath.Entry, error) {
	dirs, err := versions.Dirs()
	if err != nil {
		if errors.Is(err, dynpath.ErrNotFound) {
			return dynpath.Entry{}, fmt.Errorf("%w: %w", ErrNoVersions, err)
		}

		return dynpath.Entry{}, fmt.Errorf("listing versions: %w", err)
	}

	dirs = slices.DeleteFunc(dirs, func(dir dynpath.Entry) bool {
		matched, _ := doublestar.Match(l.config.VersionPattern, dir.Name())

		return !matched
	})

	if len(dirs) == 0 {
		return dynpath.Entry{}, fmt.Errorf("%w in %s matching %q", ErrNoVersions, versions, l.config.VersionPattern)
	}

	return slices.MaxFunc(dirs, func(a, b dynpath.Entry) int {
		return cmp.Or(a.ModTime().Compare(b.ModTime()), cmp.Compare(a.Name(), b.Name()))
	}), nil
}
