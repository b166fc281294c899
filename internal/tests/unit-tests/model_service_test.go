package unit_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastwrite/internal/assets"
	"fastwrite/internal/services"
)

func newCatalog(t *testing.T) services.ModelCatalogService {
	t.Helper()
	catalog, err := services.NewModelCatalogService(assets.ModelsData)
	require.NoError(t, err)
	return catalog
}

func TestModelCatalog_EmbeddedAsset(t *testing.T) {
	catalog := newCatalog(t)

	groups := catalog.ListModelGroups()
	require.NotEmpty(t, groups)
	assert.Equal(t, "google", groups[0].ProviderID)
	assert.Equal(t, "gemini-2.0-flash", catalog.DefaultModel("google"))
	assert.Equal(t, "GPT-4o", catalog.DefaultModel("openai"))
	assert.True(t, catalog.HasProvider("groq"))
	assert.False(t, catalog.HasProvider("anthropic"))
	assert.Equal(t, "", catalog.DefaultModel("anthropic"))
	assert.Equal(t, "https://aistudio.google.com/app/apikey", catalog.KeyURL("google"))
}

func TestModelCatalog_GetModel(t *testing.T) {
	catalog := newCatalog(t)

	model, err := catalog.GetModel("google", "gemma-3-27b-it")
	require.NoError(t, err)
	assert.Equal(t, "Gemma 3 (27B)", model.DisplayName)
	assert.Equal(t, "Google", model.ProviderName)

	_, err = catalog.GetModel("google", "GPT-4o")
	assert.Error(t, err)
	_, err = catalog.GetModel("", "GPT-4o")
	assert.Error(t, err)
}

func TestModelCatalog_DisplayNameFallsBackToID(t *testing.T) {
	catalog := newCatalog(t)
	assert.Equal(t, "Gemini 2.0 Flash", catalog.DisplayName("gemini-2.0-flash"))
	assert.Equal(t, "mystery-model", catalog.DisplayName("mystery-model"))
}

func TestModelCatalog_RejectsDuplicateProvider(t *testing.T) {
	raw := []byte(`{"providers":[{"id":"a","models":[]},{"id":"a","models":[]}]}`)
	_, err := services.NewModelCatalogService(raw)
	assert.Error(t, err)
}

func TestModelCatalog_RejectsMalformedAsset(t *testing.T) {
	_, err := services.NewModelCatalogService([]byte(`{"providers":`))
	assert.Error(t, err)
}
