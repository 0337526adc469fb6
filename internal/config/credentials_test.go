package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.URL)
	assert.Empty(t, creds.Token)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	saved := Credentials{URL: "http://hub.example.com:8090", Token: "tok-abc"}
	require.NoError(t, store.Save(saved))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveFileMode(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreWithDir(dir)

	require.NoError(t, store.Save(Credentials{URL: "http://hub.example.com", Token: "secret"}))

	path, err := store.Path()
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm(), "credential file must be owner read/write only")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreWithDir(dir)

	require.NoError(t, store.Save(Credentials{URL: "http://hub.example.com", Token: "tok"}))
	require.NoError(t, store.Save(Credentials{URL: "http://hub.example.com", Token: "tok2"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "credentials.json", entries[0].Name())
}

func TestSaveOmitsEmptyToken(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreWithDir(dir)

	require.NoError(t, store.Save(Credentials{URL: "http://hub.example.com"}))

	path, err := store.Path()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.NotContains(t, raw, "token")
}

func TestEnvOverridesShadowWithoutMutating(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreWithDir(dir)
	require.NoError(t, store.Save(Credentials{URL: "http://stored.example.com", Token: "tok-stored"}))

	t.Setenv(EnvURL, "http://env.example.com")
	t.Setenv(EnvToken, "tok-env")

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", creds.URL)
	assert.Equal(t, "tok-env", creds.Token)

	// LoadFile stays raw so mutating commands never persist env values.
	raw, err := store.LoadFile()
	require.NoError(t, err)
	assert.Equal(t, "http://stored.example.com", raw.URL)
	assert.Equal(t, "tok-stored", raw.Token)

	path, err := store.Path()
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "tok-env")
}

func TestEnvOverridesWorkWithoutFile(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())

	t.Setenv(EnvURL, "http://env.example.com")
	t.Setenv(EnvToken, "tok-env")

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://env.example.com", creds.URL)
	assert.Equal(t, "tok-env", creds.Token)
}

func TestClearIsIdempotent(t *testing.T) {
	store := NewStoreWithDir(t.TempDir())
	require.NoError(t, store.Save(Credentials{URL: "http://hub.example.com", Token: "tok"}))

	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear(), "clearing an already-empty store must succeed")

	creds, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, creds.Token)
}

func TestLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewStoreWithDir(dir)

	path := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := store.Load()
	require.Error(t, err)
}
