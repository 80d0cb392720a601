package launcher

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/0xalexb/pathlaunch/config"
	filefetcher "github.com/0xalexb/pathlaunch/config/fetcher/file"
	iniparser "github.com/0xalexb/pathlaunch/config/parser/ini"
	yamlparser "github.com/0xalexb/pathlaunch/config/parser/yaml"
	"github.com/0xalexb/pathlaunch/dynpath"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

// ErrUnknownFormat is returned when the paths file extension maps to no parser.
var ErrUnknownFormat = errors.New("unknown configuration format")

type moduleOptions struct {
	fs        afero.Fs
	starter   Starter
	out       io.Writer
	overrides []func(*Config)
}

// Option configures the launcher module.
type Option func(*moduleOptions)

// WithFs sets the filesystem used for the paths file and every resolved path.
func WithFs(fsys afero.Fs) Option {
	return func(opts *moduleOptions) {
		opts.fs = fsys
	}
}

// WithStarter replaces the process starter.
func WithStarter(starter Starter) Option {
	return func(opts *moduleOptions) {
		opts.starter = starter
	}
}

// WithOutput sets where user-facing progress messages are written.
func WithOutput(w io.Writer) Option {
	return func(opts *moduleOptions) {
		opts.out = w
	}
}

// WithDryRun reports the executable instead of starting it.
func WithDryRun(dryRun bool) Option {
	return func(opts *moduleOptions) {
		opts.overrides = append(opts.overrides, func(cfg *Config) {
			cfg.DryRun = dryRun
		})
	}
}

// WithArgs appends arguments passed to the executable after those from the paths file.
func WithArgs(args ...string) Option {
	return func(opts *moduleOptions) {
		opts.overrides = append(opts.overrides, func(cfg *Config) {
			cfg.Args = append(cfg.Args, args...)
		})
	}
}

// NewModule creates an Fx module that loads the paths file at configPath and
// provides the configuration Store, the dynpath Resolver and the Launcher.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(configPath string, opts ...Option) fx.Option {
	options := moduleOptions{
		fs:      afero.NewOsFs(),
		starter: ExecStarter{},
		out:     os.Stdout,
	}

	for _, apply := range opts {
		apply(&options)
	}

	parser, err := ParserFor(configPath)
	if err != nil {
		return fx.Error(err)
	}

	return fx.Module("launcher",
		fx.Supply(
			fx.Annotate(options.fs, fx.As(new(afero.Fs))),
			fx.Annotate(options.starter, fx.As(new(Starter))),
			fx.Annotate(options.out, fx.As(new(io.Writer))),
			fx.Annotate(parser, fx.As(new(config.Parser))),
		),
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(configPath),
				fx.As(new(config.DataFetcher)),
			),
			config.NewStore,
			func(parser config.Parser, fetcher config.DataFetcher) (*Config, error) {
				cfg, err := config.OptionalProvider(new(Config), SectionName)(parser, fetcher)
				if err != nil {
					return nil, err
				}

				for _, override := range options.overrides {
					override(cfg)
				}

				return cfg, nil
			},
			fx.Annotate(newResolver, fx.As(new(Resolver))),
			New,
		),
	)
}

func newResolver(store *config.Store, fsys afero.Fs, logger *slog.Logger) *dynpath.Resolver {
	return dynpath.NewResolver(store, dynpath.WithFs(fsys), dynpath.WithLogger(logger))
}

// ParserFor selects a parser from the paths file extension.
//
//nolint:ireturn // the parser implementation depends on the file format
func ParserFor(configPath string) (config.Parser, error) {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".ini", ".cfg", ".conf":
		return iniparser.NewParser(), nil
	case ".yaml", ".yml":
		return yamlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, configPath)
	}
}
