package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastwrite/internal/config"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	dir := t.TempDir()
	cfg.Database.Path = filepath.Join(dir, "fastwrite.db")
	cfg.Session.Backend = backend
	cfg.Session.TTL = time.Hour
	cfg.Keyring.Backend = "file"
	cfg.Keyring.FileDir = filepath.Join(dir, "keyring")
	cfg.Keyring.FilePassword = "test-password"
	return cfg
}

func startApp(t *testing.T, cfg *config.Config, session string) *App {
	t.Helper()
	app := NewApp(cfg, session)
	require.NoError(t, app.startup(context.Background()))
	t.Cleanup(func() { app.shutdown(context.Background()) })
	return app
}

func TestApp_DatabaseSessionSurvivesRestart(t *testing.T) {
	cfg := testConfig(t, config.BackendDatabase)

	first := NewApp(cfg, "s-1")
	require.NoError(t, first.startup(context.Background()))
	first.Form.SetRepositoryURL("https://github.com/org/repo")
	first.shutdown(context.Background())

	second := startApp(t, cfg, "s-1")
	assert.Equal(t, "https://github.com/org/repo", second.Form.State().RepositoryURL)

	other := startApp(t, cfg, "s-2")
	assert.Empty(t, other.Form.State().RepositoryURL)
}

func TestApp_ClearSession(t *testing.T) {
	cfg := testConfig(t, config.BackendDatabase)
	app := startApp(t, cfg, "s-1")
	app.Form.SetDescription("to be forgotten")
	require.NoError(t, app.ClearSession())

	fresh := startApp(t, cfg, "s-1")
	assert.Empty(t, fresh.Form.State().Description)
}

func TestApp_MemoryBackend(t *testing.T) {
	app := startApp(t, testConfig(t, config.BackendMemory), "s-1")
	app.Form.SetDescription("in memory")
	assert.Equal(t, "in memory", app.Form.State().Description)
}

func TestApp_UnknownBackend(t *testing.T) {
	app := NewApp(testConfig(t, "etcd"), "s-1")
	err := app.startup(context.Background())
	assert.Error(t, err)
	app.shutdown(context.Background())
}

func TestApp_FileKeyring(t *testing.T) {
	app := startApp(t, testConfig(t, config.BackendMemory), "s-1")

	keys, err := app.Keys()
	require.NoError(t, err)
	require.NoError(t, keys.Set("google", "sk-file"))

	secret, found, err := keys.Get("google")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "sk-file", secret)

	again, err := app.Keys()
	require.NoError(t, err)
	assert.Same(t, keys, again)

	_, err = app.Submissions()
	assert.NoError(t, err)
}
