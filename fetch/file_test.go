package fetch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte("net.ipv4.ip_forward = 1\ndebug = true\n")

	tmpDir := t.TempDir()
	confPath := filepath.Join(tmpDir, "app.conf")

	err := os.WriteFile(confPath, content, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFile(confPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFile_Fetch_FileNotFound(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFile("/nonexistent/path/app.conf")()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	assert.Contains(t, err.Error(), "stat file")
}

func TestFile_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	confPath := filepath.Join(tmpDir, "empty.conf")

	err := os.WriteFile(confPath, []byte{}, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFile(confPath)()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFile_Fetch_DirectoryPath(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	fetcher, err := NewFile(tmpDir)()

	require.Error(t, err)
	assert.Nil(t, fetcher)
	require.ErrorIs(t, err, ErrPathIsDirectory)
}

func TestNewFile_ReturnsValidConstructor(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	confPath := filepath.Join(tmpDir, "app.conf")

	err := os.WriteFile(confPath, []byte("a = 1"), 0o600)
	require.NoError(t, err)

	constructor := NewFile(confPath)
	assert.NotNil(t, constructor)

	fetcher, err := constructor()
	require.NoError(t, err)
	require.NotNil(t, fetcher)
	assert.Equal(t, confPath, fetcher.path)
}

func TestFile_Fetch_FileModifiedAfterConstruction_ReturnsCachedData(t *testing.T) {
	t.Parallel()

	original := []byte("a = 1\n")
	modified := []byte("a = 2\n")

	tmpDir := t.TempDir()
	confPath := filepath.Join(tmpDir, "app.conf")

	err := os.WriteFile(confPath, original, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFile(confPath)()
	require.NoError(t, err)

	err = os.WriteFile(confPath, modified, 0o600)
	require.NoError(t, err)

	data, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, original, data, "Fetch should return cached data, not current file content")
}

func TestFile_Fetch_ReturnsCopy_MutationSafe(t *testing.T) {
	t.Parallel()

	content := []byte("original = value")

	tmpDir := t.TempDir()
	confPath := filepath.Join(tmpDir, "app.conf")

	err := os.WriteFile(confPath, content, 0o600)
	require.NoError(t, err)

	fetcher, err := NewFile(confPath)()
	require.NoError(t, err)

	data1, err := fetcher.Fetch()
	require.NoError(t, err)

	data1[0] = 'X'

	data2, err := fetcher.Fetch()
	require.NoError(t, err)

	assert.Equal(t, content, data2, "Fetch should return unmodified cached data")
}
