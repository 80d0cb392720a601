package pathlaunch

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the launcher version, set via ldflags.
	Version = "dev"
	// Commit is the source revision, set via ldflags.
	Commit = "none"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// VersionString formats the build information for --version output.
func VersionString() string {
	return Version + " (" + Commit + ", built " + CompiledAt + ")"
}
