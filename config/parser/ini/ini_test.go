package ini

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/pathlaunch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pathsINI = `
[DEFAULT]
drive = C:

[Windows]
LocalAppData = "C:/Users/Player/AppData/Local"

[Roblox]
root = |Windows|LocalAppData|/Roblox   ; not a comment
versions = |Roblox|root|/Versions
RobloxPlayerBeta = |Roblox|versions|/?version?/RobloxPlayerBeta.exe

[Launcher]
section = Roblox
version_variable = version
args = --app, --fast
`

func TestParser_Parse_WholeDocument(t *testing.T) {
	t.Parallel()

	var sections map[string]map[string]any

	err := NewParser().Parse([]byte(pathsINI), &sections, "")
	require.NoError(t, err)

	require.Contains(t, sections, "Roblox")
	require.Contains(t, sections, "Windows")
	require.Contains(t, sections, "DEFAULT")

	roblox := sections["Roblox"]
	assert.Equal(t, "|Roblox|versions|/?version?/RobloxPlayerBeta.exe", roblox["robloxplayerbeta"])
	assert.Equal(t, "|Windows|LocalAppData|/Roblox   ; not a comment", roblox["root"])
	assert.Equal(t, "C:", roblox["drive"], "DEFAULT keys are inherited")

	assert.Equal(t, "C:/Users/Player/AppData/Local", sections["Windows"]["localappdata"])
}

func TestParser_Parse_WholeDocumentWithoutDefaults(t *testing.T) {
	t.Parallel()

	var sections map[string]map[string]any

	err := NewParser().Parse([]byte("[A]\nX = /base/?ver?/app.exe\n"), &sections, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]any{
		"A": {"x": "/base/?ver?/app.exe"},
	}, sections)
}

func TestParser_Parse_TrailingBackslash(t *testing.T) {
	t.Parallel()

	var sections map[string]map[string]any

	data := "[Roblox]\nroot = C:\\Roblox\\\nversions = |Roblox|root|Versions\n"

	err := NewParser().Parse([]byte(data), &sections, "")
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]any{
		"Roblox": {
			"root":     `C:\Roblox\`,
			"versions": "|Roblox|root|Versions",
		},
	}, sections)
}

func TestParser_Parse_Section(t *testing.T) {
	t.Parallel()

	var result struct {
		Section         string   `ini:"section"`
		VersionVariable string   `ini:"version_variable"`
		Args            []string `ini:"args" delim:","`
	}

	err := NewParser().Parse([]byte(pathsINI), &result, "Launcher")

	require.NoError(t, err)
	assert.Equal(t, "Roblox", result.Section)
	assert.Equal(t, "version", result.VersionVariable)
	assert.Equal(t, []string{"--app", "--fast"}, result.Args)
}

func TestParser_Parse_MissingSection(t *testing.T) {
	t.Parallel()

	var result struct{}

	err := NewParser().Parse([]byte(pathsINI), &result, "Studio")

	require.ErrorIs(t, err, config.ErrPathNotFound)
	assert.Contains(t, err.Error(), "Studio")
}

func TestParser_Parse_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		target  any
		path    string
		wantErr error
	}{
		{
			name:    "empty data",
			data:    "  \n",
			target:  &map[string]map[string]any{},
			wantErr: config.ErrEmptyData,
		},
		{
			name:    "nested path",
			data:    pathsINI,
			target:  &struct{}{},
			path:    "Roblox:versions",
			wantErr: ErrNestedPath,
		},
		{
			name:    "whole document into struct",
			data:    pathsINI,
			target:  &struct{}{},
			wantErr: ErrUnsupportedTarget,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			err := NewParser().Parse([]byte(testCase.data), testCase.target, testCase.path)
			require.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestParser_Parse_Malformed(t *testing.T) {
	t.Parallel()

	var sections map[string]map[string]any

	err := NewParser().Parse([]byte("[Roblox\nversions = x\n"), &sections, "")

	require.Error(t, err)
}

func TestParser_Parse_BundledPathsFile(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("..", "..", "..", "res", "paths.ini"))
	require.NoError(t, err)

	var sections map[string]map[string]any

	err = NewParser().Parse(data, &sections, "")
	require.NoError(t, err)

	assert.Equal(t, `C:\Users\Player\AppData\Local`, sections["Windows"]["localappdata"])
	assert.Equal(t, `|Roblox|versions|\?version?\RobloxPlayerBeta.exe`, sections["Roblox"]["robloxplayerbeta"])
	assert.Equal(t, "version-*", sections["Launcher"]["version_pattern"])
}
