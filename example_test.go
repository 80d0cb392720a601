package pathlaunch_test

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/0xalexb/pathlaunch"
	"github.com/0xalexb/pathlaunch/launcher"

	"github.com/spf13/afero"
	"go.uber.org/fx"
)

const examplePaths = `
[Windows]
LocalAppData = "/home/player/.local/share"

[Roblox]
versions = |Windows|LocalAppData|/Roblox/Versions
RobloxPlayerBeta = |Roblox|versions|/?version?/RobloxPlayerBeta.exe

[Launcher]
version_pattern = version-*
`

// Example_dryRunLaunch wires the launcher module into an App and reports which
// executable would be started.
func Example_dryRunLaunch() {
	// Step 1: Lay out a paths file and two installed versions on an in-memory filesystem.
	fsys := afero.NewMemMapFs()
	_ = afero.WriteFile(fsys, "/app/res/paths.ini", []byte(examplePaths), 0o644)

	versions := "/home/player/.local/share/Roblox/Versions"
	released := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i, name := range []string{"version-aaa", "version-bbb"} {
		dir := versions + "/" + name
		_ = fsys.MkdirAll(dir, 0o755)
		_ = afero.WriteFile(fsys, dir+"/RobloxPlayerBeta.exe", []byte("MZ"), 0o755)
		_ = fsys.Chtimes(dir, released.AddDate(0, 0, i), released.AddDate(0, 0, i))
	}

	// Step 2: Build the App with the launcher module and pull out the Launcher.
	var l *launcher.Launcher

	app := pathlaunch.NewApp(
		pathlaunch.WithLogOutput(io.Discard),
		pathlaunch.WithLauncher("/app/res/paths.ini",
			launcher.WithFs(fsys),
			launcher.WithOutput(os.Stdout),
			launcher.WithDryRun(true),
		),
		pathlaunch.WithModules(fx.Populate(&l)),
	)

	err := app.Start()
	if err != nil {
		fmt.Printf("Error starting app: %v\n", err)

		return
	}

	defer func() { _ = app.Stop() }()

	// Step 3: Launch.
	_, err = l.Launch()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	}
	// Output:
	// Newest Roblox version: version-bbb
	// Would start RobloxPlayerBeta from: /home/player/.local/share/Roblox/Versions/version-bbb/RobloxPlayerBeta.exe
}
