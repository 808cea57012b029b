package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteURLSource(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("https://example.com/recipes/tacos-al-pastor", []byte("{}"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "example_com_recipes_tacos_al_pastor.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteFileSource(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("/home/u/scans/Grandma's Pie.txt", []byte("x"), ".md")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Grandma_s_Pie.md"), path)
}

func TestWriteEmptySourceFallsBack(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("", []byte("x"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recipe.json"), path)
}

func TestWriteBatchMirrorsURLPath(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteBatch("https://example.com/recipes/soups/minestrone/", []byte("x"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recipes", "soups", "minestrone.json"), path)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteBatchRootPath(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.WriteBatch("https://example.com/", []byte("x"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "index.json"), path)
}

func TestNewCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
