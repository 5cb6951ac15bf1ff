package photos

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dataURI(mime string, payload []byte) string {
	return "data:image/" + mime + ";base64," + base64.StdEncoding.EncodeToString(payload)
}

func TestDecode(t *testing.T) {
	staged, err := Decode([]string{
		dataURI("jpeg", []byte("jpeg-bytes")),
		dataURI("png", []byte("png-bytes")),
		dataURI("gif", []byte("gif-bytes")),
	})
	require.NoError(t, err)
	require.Len(t, staged, 3)
	assert.Equal(t, "jpg", staged[0].Ext)
	assert.Equal(t, []byte("jpeg-bytes"), staged[0].Data)
	assert.Equal(t, "png", staged[1].Ext)
	assert.Equal(t, "gif", staged[2].Ext)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]string{"https://example.com/photo.jpg"})
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Decode([]string{"data:image/png;base64,???not-base64???"})
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestSaveAndRemoveDir(t *testing.T) {
	root := t.TempDir()

	staged, err := Decode([]string{dataURI("png", []byte("png-bytes"))})
	require.NoError(t, err)

	paths, err := Save(root, 7, staged)
	require.NoError(t, err)
	require.Len(t, paths, 1)

	data, err := os.ReadFile(filepath.FromSlash(paths[0]))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), data)

	require.NoError(t, RemoveDir(root, 7))
	_, err = os.Stat(filepath.Join(root, "7"))
	assert.True(t, os.IsNotExist(err))
}

func TestStringRoundTrip(t *testing.T) {
	assert.Equal(t, "[]", ToString(nil))
	assert.Empty(t, FromString(""))
	assert.Equal(t, []string{"a.jpg", "b.png"}, FromString(ToString([]string{"a.jpg", "b.png"})))
}
