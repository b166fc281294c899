package unit_tests

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fastwrite/internal/services"
)

func newTestKeyring() *services.KeyringService {
	return services.NewKeyringService(keyring.NewArrayKeyring(nil))
}

func TestKeyringService_SetGetRemove(t *testing.T) {
	store := newTestKeyring()

	require.NoError(t, store.Set("google", "  sk-google  "))
	secret, found, err := store.Get("google")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "sk-google", secret)
	assert.True(t, store.Has("google"))

	require.NoError(t, store.Remove("google"))
	_, found, err = store.Get("google")
	require.NoError(t, err)
	assert.False(t, found)
	assert.False(t, store.Has("google"))
}

func TestKeyringService_RejectsEmptySecret(t *testing.T) {
	store := newTestKeyring()

	for _, secret := range []string{"", "   ", "\t\n"} {
		err := store.Set("openai", secret)
		assert.ErrorIs(t, err, services.ErrEmptySecret)
	}
	assert.False(t, store.Has("openai"))
}

func TestKeyringService_RequiresProvider(t *testing.T) {
	store := newTestKeyring()

	assert.ErrorIs(t, store.Set(" ", "secret"), services.ErrProviderRequired)
	_, _, err := store.Get("")
	assert.ErrorIs(t, err, services.ErrProviderRequired)
	assert.ErrorIs(t, store.Remove(""), services.ErrProviderRequired)
}

func TestKeyringService_ProvidersAreIsolated(t *testing.T) {
	store := newTestKeyring()

	require.NoError(t, store.Set("google", "g-secret"))
	require.NoError(t, store.Set("groq", "q-secret"))

	g, _, err := store.Get("google")
	require.NoError(t, err)
	q, _, err := store.Get("groq")
	require.NoError(t, err)
	assert.Equal(t, "g-secret", g)
	assert.Equal(t, "q-secret", q)

	require.NoError(t, store.Remove("google"))
	assert.False(t, store.Has("google"))
	assert.True(t, store.Has("groq"))
}

func TestKeyringService_RemoveMissingIsNoop(t *testing.T) {
	store := newTestKeyring()
	assert.NoError(t, store.Remove("openrouter"))
}

func TestKeyringService_List(t *testing.T) {
	store := newTestKeyring()
	require.NoError(t, store.Set("openai", "o-secret"))
	require.NoError(t, store.Set("custom", "c-secret"))

	infos, err := store.List([]string{"google", "openai"})
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, "google", infos[0].ProviderID)
	assert.False(t, infos[0].Configured)
	assert.Equal(t, "openai", infos[1].ProviderID)
	assert.True(t, infos[1].Configured)
	assert.Equal(t, "custom", infos[2].ProviderID)
	assert.True(t, infos[2].Configured)
}
