package unit_tests

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastwrite/internal/llm/client"
	"fastwrite/internal/services"
)

func writeZip(t *testing.T, path string) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	w, err := zw.Create("main.go")
	require.NoError(t, err)
	_, err = w.Write([]byte("package main\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestCheckArchive_AcceptsZipByContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.bin")
	writeZip(t, path)

	handle, err := services.NewSourceService().CheckArchive(path)
	require.NoError(t, err)
	assert.Equal(t, "project.bin", handle.Name)
	assert.Equal(t, "application/zip", handle.MIMEType)
	assert.Positive(t, handle.Size)
}

func TestCheckArchive_AcceptsZipExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "project.ZIP")
	require.NoError(t, os.WriteFile(path, []byte("not really a zip"), 0o644))

	handle, err := services.NewSourceService().CheckArchive(path)
	require.NoError(t, err)
	assert.Equal(t, "project.ZIP", handle.Name)
}

func TestCheckArchive_Rejects(t *testing.T) {
	dir := t.TempDir()
	text := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(text, []byte("hello"), 0o644))

	for _, path := range []string{"", text, dir, filepath.Join(dir, "missing.zip")} {
		_, err := services.NewSourceService().CheckArchive(path)
		var verr *client.ValidationError
		require.ErrorAs(t, err, &verr, path)
		assert.Equal(t, "archive", verr.Field)
	}
}

func TestProbeRepository_LocalRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# demo\n"), 0o644))
	w, err := repo.Worktree()
	require.NoError(t, err)
	_, err = w.Add("README.md")
	require.NoError(t, err)
	hash, err := w.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()},
	})
	require.NoError(t, err)
	_, err = repo.CreateTag("v0.1.0", hash, nil)
	require.NoError(t, err)

	probe, err := services.NewSourceService().ProbeRepository(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, dir, probe.URL)
	assert.Equal(t, "master", probe.DefaultBranch)
	assert.Equal(t, 1, probe.Branches)
	assert.Equal(t, 1, probe.Tags)
}

func TestProbeRepository_RequiresURL(t *testing.T) {
	_, err := services.NewSourceService().ProbeRepository(context.Background(), " ")
	var verr *client.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Please enter a GitHub repository URL", verr.Message)
}

func TestProbeRepository_NotARepository(t *testing.T) {
	_, err := services.NewSourceService().ProbeRepository(context.Background(), t.TempDir())
	assert.Error(t, err)
}
