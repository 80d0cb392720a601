package config_test

import (
	"errors"
	"testing"

	"github.com/0xalexb/pathlaunch/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapParser struct {
	sections map[string]map[string]any
	err      error
}

func (p *mapParser) Parse(_ []byte, target any, _ string) error {
	if p.err != nil {
		return p.err
	}

	raw, ok := target.(*map[string]map[string]any)
	if !ok {
		return errors.New("unexpected target")
	}

	*raw = p.sections

	return nil
}

type bytesFetcher struct {
	data []byte
	err  error
}

func (f *bytesFetcher) Fetch() ([]byte, error) {
	return f.data, f.err
}

func TestNewStore_Get(t *testing.T) {
	t.Parallel()

	parser := &mapParser{sections: map[string]map[string]any{
		"Roblox": {
			"versions":         "C:/Roblox/Versions",
			"RobloxPlayerBeta": "|Roblox|versions|/?version?/RobloxPlayerBeta.exe",
			"retries":          3,
			"empty":            nil,
		},
	}}

	store, err := config.NewStore(parser, &bytesFetcher{data: []byte("x")})
	require.NoError(t, err)

	value, err := store.Get("Roblox", "versions")
	require.NoError(t, err)
	assert.Equal(t, "C:/Roblox/Versions", value)

	value, err = store.Get("Roblox", "robloxplayerbeta")
	require.NoError(t, err)
	assert.Equal(t, "|Roblox|versions|/?version?/RobloxPlayerBeta.exe", value)

	value, err = store.Get("Roblox", "retries")
	require.NoError(t, err)
	assert.Equal(t, "3", value)

	value, err = store.Get("Roblox", "empty")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	store := config.NewStoreFromMap(map[string]map[string]string{
		"Roblox": {"versions": "/opt/roblox"},
	})

	_, err := store.Get("Studio", "versions")
	require.ErrorIs(t, err, config.ErrSectionNotFound)

	_, err = store.Get("roblox", "versions")
	require.ErrorIs(t, err, config.ErrSectionNotFound, "sections are case-sensitive")

	_, err = store.Get("Roblox", "player")
	require.ErrorIs(t, err, config.ErrKeyNotFound)
}

func TestNewStore_Errors(t *testing.T) {
	t.Parallel()

	fetchErr := errors.New("disk gone")
	parseErr := errors.New("bad syntax")

	_, err := config.NewStore(&mapParser{}, &bytesFetcher{err: fetchErr})
	require.ErrorIs(t, err, config.ErrLoad)
	require.ErrorIs(t, err, fetchErr)

	_, err = config.NewStore(&mapParser{err: parseErr}, &bytesFetcher{data: []byte("x")})
	require.ErrorIs(t, err, config.ErrLoad)
	require.ErrorIs(t, err, parseErr)
}

func TestStore_SectionsAndKeys(t *testing.T) {
	t.Parallel()

	store := config.NewStoreFromMap(map[string]map[string]string{
		"Windows": {"LocalAppData": "C:/Users/me/AppData/Local"},
		"Roblox":  {"versions": "a", "Root": "b"},
	})

	assert.Equal(t, []string{"Roblox", "Windows"}, store.Sections())

	keys, err := store.Keys("Roblox")
	require.NoError(t, err)
	assert.Equal(t, []string{"root", "versions"}, keys)

	_, err = store.Keys("Missing")
	require.ErrorIs(t, err, config.ErrSectionNotFound)
}

func TestNewStoreFromMap_CopiesInput(t *testing.T) {
	t.Parallel()

	input := map[string]map[string]string{"A": {"x": "1"}}
	store := config.NewStoreFromMap(input)

	input["A"]["x"] = "2"

	value, err := store.Get("A", "x")
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}
