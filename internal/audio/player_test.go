package audio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRejectsUnknownExtension(t *testing.T) {
	_, _, _, err := Decode("track.ogg")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodeMissingFile(t *testing.T) {
	_, _, _, err := Decode(filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecodeGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noise.wav")
	require.NoError(t, os.WriteFile(path, []byte("not a wave file"), 0o644))

	_, _, _, err := Decode(path)
	assert.Error(t, err)
}

func TestIdlePlayer(t *testing.T) {
	p := NewPlayer()
	assert.False(t, p.Loaded())
	assert.False(t, p.Playing())
	assert.Nil(t, p.Samples(16))
	assert.NotPanics(t, p.TogglePause)
	assert.NotPanics(t, p.Close)
}
