package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xalexb/pathlaunch"
	"github.com/0xalexb/pathlaunch/launcher"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// Environment variables read as flag defaults.
const (
	envConfig    = "PATHLAUNCH_CONFIG"
	envLogLevel  = "PATHLAUNCH_LOG_LEVEL"
	envLogFormat = "PATHLAUNCH_LOG_FORMAT"
)

type flags struct {
	configPath string
	logLevel   string
	logFormat  string
	dryRun     bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts flags

	cmd := &cobra.Command{
		Use:   "pathlaunch [flags] [-- executable args...]",
		Short: "Start the newest installed version of an application",
		Long: `pathlaunch reads the paths file, picks the most recently modified version
directory and starts the executable found in it.

Without flags the paths file is res/paths.ini next to the pathlaunch binary.
A .env file in the working directory may set PATHLAUNCH_CONFIG,
PATHLAUNCH_LOG_LEVEL and PATHLAUNCH_LOG_FORMAT.`,
		Version:       pathlaunch.VersionString(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, args, stdout, stderr)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		err := godotenv.Load()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}

		return applyEnvDefaults(cmd, map[string]string{
			"config":     envConfig,
			"log-level":  envLogLevel,
			"log-format": envLogFormat,
		})
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath(), "paths file (.ini, .cfg, .conf, .yaml, .yml)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "text", "log format: json or text")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "report the executable without starting it")

	return cmd
}

// applyEnvDefaults sets flags the user did not pass from their environment variables.
func applyEnvDefaults(cmd *cobra.Command, env map[string]string) error {
	for name, variable := range env {
		value, ok := os.LookupEnv(variable)
		if !ok || cmd.Flags().Changed(name) {
			continue
		}

		err := cmd.Flags().Set(name, value)
		if err != nil {
			return fmt.Errorf("%s: %w", variable, err)
		}
	}

	return nil
}

// defaultConfigPath returns res/paths.ini next to the running binary.
func defaultConfigPath() string {
	executable, err := os.Executable()
	if err != nil {
		return filepath.Join("res", "paths.ini")
	}

	return filepath.Join(filepath.Dir(executable), "res", "paths.ini")
}

func run(opts flags, args []string, stdout, stderr io.Writer) error {
	var l *launcher.Launcher

	app := pathlaunch.NewApp(
		pathlaunch.WithLogLevel(opts.logLevel),
		pathlaunch.WithLogFormat(opts.logFormat),
		pathlaunch.WithLogOutput(stderr),
		pathlaunch.WithLauncher(opts.configPath,
			launcher.WithOutput(stdout),
			launcher.WithDryRun(opts.dryRun),
			launcher.WithArgs(args...),
		),
		pathlaunch.WithModules(fx.Populate(&l)),
	)

	err := app.Start()
	if err != nil {
		return err
	}

	defer func() { _ = app.Stop() }()

	_, err = l.Launch()

	return err
}
