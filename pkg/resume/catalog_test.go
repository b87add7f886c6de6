package resume

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	c := NewCatalog([]string{" Go ", "go", "Python", "", "  "})
	assert.Equal(t, []string{"go", "python"}, c.Entries())
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has("GO"))
	assert.False(t, c.Has("rust"))
}

func TestLoadCatalog(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Go","SQL","go"]`), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "sql"}, c.Entries())

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadCatalog(filepath.Join(dir, "absent.json"))
		require.Error(t, err)
	})

	t.Run("malformed json", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{"not":"an array"}`), 0o644))
		_, err := LoadCatalog(bad)
		require.Error(t, err)
	})
}

func TestUpdateCatalogFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "skills.json")
	require.NoError(t, os.WriteFile(path, []byte(`["go","sql"]`), 0o644))

	total, err := UpdateCatalogFile(path, []string{"Rust", "go", "  "})
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var skills []string
	require.NoError(t, json.Unmarshal(data, &skills))
	assert.Equal(t, []string{"go", "rust", "sql"}, skills)

	t.Run("creates the file when absent", func(t *testing.T) {
		fresh := filepath.Join(dir, "fresh.json")
		total, err := UpdateCatalogFile(fresh, []string{"go"})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		_, err = os.Stat(fresh)
		require.NoError(t, err)
	})
}
