package fsys

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0600))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "nested.txt"), []byte("n"), 0600))
	return dir
}

func TestService_Exists(t *testing.T) {
	dir := setupDir(t)
	svc := New()
	ctx := context.Background()

	tests := []struct {
		name     string
		path     string
		expected bool
	}{
		{"directory", dir, true},
		{"file", filepath.Join(dir, "a.txt"), true},
		{"nested directory", filepath.Join(dir, "sub"), true},
		{"missing", filepath.Join(dir, "missing"), false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exists, err := svc.Exists(ctx, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, exists)
		})
	}
}

func TestService_ListDir(t *testing.T) {
	dir := setupDir(t)
	svc := New()

	entries, err := svc.ListDir(context.Background(), dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		dir + "/a.txt",
		dir + "/b.txt",
		dir + "/sub",
	}, entries)
}

func TestService_ListDir_TrailingSlash(t *testing.T) {
	dir := setupDir(t)
	svc := New()

	entries, err := svc.ListDir(context.Background(), dir+"/")
	require.NoError(t, err)
	assert.Contains(t, entries, dir+"/sub")
	assert.NotContains(t, entries, dir+"//sub")
}

func TestService_ListDir_Empty(t *testing.T) {
	svc := New()

	entries, err := svc.ListDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestService_ListDir_Errors(t *testing.T) {
	dir := setupDir(t)
	svc := New()
	ctx := context.Background()

	_, err := svc.ListDir(ctx, filepath.Join(dir, "missing"))
	assert.Error(t, err)

	_, err = svc.ListDir(ctx, filepath.Join(dir, "a.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a directory")

	_, err = svc.ListDir(ctx, "")
	assert.Error(t, err)
}

func TestJoinEntry(t *testing.T) {
	assert.Equal(t, "/var/log", joinEntry("/var", "log"))
	assert.Equal(t, "/var/log", joinEntry("/var/", "log"))
	assert.Equal(t, "/log", joinEntry("/", "log"))
	assert.Equal(t, "rel/x", joinEntry("rel", "x"))
}
