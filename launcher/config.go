package launcher

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-playground/validator/v10"
)

// SectionName is the optional section of the paths file holding launcher settings.
const SectionName = "Launcher"

// Defaults for Config.
const (
	DefaultSection         = "Roblox"
	DefaultVersionsKey     = "versions"
	DefaultExecutableKey   = "RobloxPlayerBeta"
	DefaultVersionVariable = "version"
	DefaultVersionPattern  = "*"
)

// ErrInvalidPattern is returned when VersionPattern is not a valid glob.
var ErrInvalidPattern = errors.New("invalid version pattern")

//nolint:gochecknoglobals // validator caches struct metadata and is safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Config describes which configuration entries the launcher uses.
type Config struct {
	// Section holds both entries below.
	Section string `ini:"section" yaml:"section" validate:"required"`
	// VersionsKey names the directory that contains one subdirectory per installed version.
	VersionsKey string `ini:"versions_key" yaml:"versions_key" validate:"required"`
	// ExecutableKey names the executable template; it must contain VersionVariable.
	ExecutableKey string `ini:"executable_key" yaml:"executable_key" validate:"required"`
	// VersionVariable is the template variable bound to the chosen version directory name.
	VersionVariable string `ini:"version_variable" yaml:"version_variable" validate:"required,excludesall=?<>0x7C"`
	// VersionPattern filters version directory names, e.g. "version-*".
	VersionPattern string `ini:"version_pattern" yaml:"version_pattern"`
	// Args are passed to the executable.
	Args []string `ini:"args" yaml:"args" delim:","`
	// DryRun reports the executable without starting it.
	DryRun bool `ini:"-" yaml:"-"`
}

// SetDefaults fills every empty field with the Roblox player defaults.
func (c *Config) SetDefaults() bool {
	changed := false

	for _, field := range []struct {
		value    *string
		fallback string
	}{
		{&c.Section, DefaultSection},
		{&c.VersionsKey, DefaultVersionsKey},
		{&c.ExecutableKey, DefaultExecutableKey},
		{&c.VersionVariable, DefaultVersionVariable},
		{&c.VersionPattern, DefaultVersionPattern},
	} {
		if *field.value == "" {
			*field.value = field.fallback
			changed = true
		}
	}

	return changed
}

// Validate checks required fields and the version pattern syntax.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err != nil {
		return fmt.Errorf("launcher config: %w", err)
	}

	if !doublestar.ValidatePattern(c.VersionPattern) {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, c.VersionPattern)
	}

	return nil
}
