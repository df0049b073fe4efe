package credstore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boothdesk/config"
	"boothdesk/infras/credstore"
)

func newStore(t *testing.T) credstore.Store {
	t.Helper()

	cfg := &config.Config{}
	cfg.Credentials.File = filepath.Join(t.TempDir(), "credentials.json")

	return credstore.New(cfg)
}

func TestStore_SaveReadClear(t *testing.T) {
	store := newStore(t)

	// Nothing stored yet.
	creds := store.Read()
	assert.Empty(t, creds.Username)
	assert.Empty(t, creds.Password)

	store.Save("admin", "s3cret")

	creds = store.Read()
	assert.Equal(t, "admin", creds.Username)
	assert.Equal(t, "s3cret", creds.Password)

	// Save overwrites the existing pair.
	store.Save("other", "pw")
	creds = store.Read()
	assert.Equal(t, "other", creds.Username)
	assert.Equal(t, "pw", creds.Password)

	store.Clear()
	creds = store.Read()
	assert.Empty(t, creds.Username)
	assert.Empty(t, creds.Password)
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	store := newStore(t)

	// Clearing with nothing stored succeeds and leaves storage empty.
	store.Clear()
	store.Clear()

	creds := store.Read()
	assert.True(t, creds.Blank())
}

func TestStore_Language(t *testing.T) {
	store := newStore(t)

	assert.Equal(t, "en", store.Language())

	store.SaveLanguage("ar")
	assert.Equal(t, "ar", store.Language())

	// Language survives a credential clear.
	store.Save("admin", "pw")
	store.Clear()
	assert.Equal(t, "ar", store.Language())
}

func TestStore_UnreadableFile(t *testing.T) {
	cfg := &config.Config{}
	cfg.Credentials.File = filepath.Join(t.TempDir(), "credentials.json")

	require.NoError(t, os.WriteFile(cfg.Credentials.File, []byte("not json"), 0o600))

	store := credstore.New(cfg)

	creds := store.Read()
	assert.True(t, creds.Blank())
	assert.Equal(t, "en", store.Language())
}
