package media

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStore_SaveBase64(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:8080/media/")
	require.NoError(t, err)

	data := base64.StdEncoding.EncodeToString([]byte("signed ballot"))
	rel, err := store.SaveBase64(DirSignedVotes, "ballot.pdf", data)
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(rel, DirSignedVotes+"/"))
	require.True(t, strings.HasSuffix(rel, ".pdf"))

	raw, err := os.ReadFile(filepath.Join(store.Root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	require.Equal(t, "signed ballot", string(raw))
}

func TestStore_SaveBase64Invalid(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)

	_, err = store.SaveBase64(DirUserPhotos, "me.jpg", "not base64!!")
	require.Error(t, err)
}

func TestStore_SaveDefaultsExtension(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:8080/media")
	require.NoError(t, err)

	rel, err := store.Save(DirMaterials, "noext", []byte{0x01})
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(rel, ".bin"))
}

func TestStore_URL(t *testing.T) {
	store, err := NewStore(t.TempDir(), "http://localhost:8080/media/")
	require.NoError(t, err)

	// Trailing slash on the base URL is normalised away.
	require.Equal(t, "http://localhost:8080/media/user_photos/x.jpg", store.URL("user_photos/x.jpg"))
}
