package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attire-labs/outfit-cli/internal/core/domain"
)

func TestSetSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	store.Set(KeyCatalogPath, "catalog.json")
	store.Set(KeyRetrieveTopK, 25)
	store.Set(KeySimilarityThreshold, 0.35)
	require.NoError(t, store.Save())

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "catalog.json", reloaded.GetString(KeyCatalogPath))
	assert.Equal(t, 25, reloaded.GetInt(KeyRetrieveTopK))
	assert.InDelta(t, 0.35, reloaded.GetFloat(KeySimilarityThreshold), 1e-9)
}

func TestFlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `
[catalog]
driver = "sqlite"
path = "items.db"

[retrieve]
top_k = 10
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", store.GetString(KeyCatalogDriver))
	assert.Equal(t, "items.db", store.GetString(KeyCatalogPath))
	assert.Equal(t, 10, store.GetInt(KeyRetrieveTopK))
}

func TestMissingKeysReturnZeroValues(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("absent"))
	assert.Equal(t, 0, store.GetInt("absent"))
	assert.Equal(t, 0.0, store.GetFloat("absent"))
	assert.False(t, store.GetBool("absent"))
}

func TestLoadSettingsMergesOverDefaults(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	store.Set(KeyCatalogDriver, "sqlite")
	store.Set(KeyCatalogPath, "items.db")
	store.Set(KeyTopN, 5)

	settings := LoadSettings(store)
	assert.Equal(t, "sqlite", settings.CatalogDriver)
	assert.Equal(t, "items.db", settings.CatalogPath)
	assert.Equal(t, 5, settings.TopN)
	assert.Equal(t, domain.DefaultRetrieveTopK, settings.RetrieveTopK)
	assert.InDelta(t, domain.DefaultSimilarityThreshold, settings.SimilarityThreshold, 1e-9)
	assert.Equal(t, domain.DefaultAssembleCap, settings.AssembleCap)
}
