package backend

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRemoteWritesPortToHandshakeFileAndMintsSessionID(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRemote(dir, 80, 24)
	require.NoError(t, err)
	defer r.Deinit()

	require.NotEmpty(t, r.SessionID)

	data, err := os.ReadFile(filepath.Join(dir, "ggui-handshake"))
	require.NoError(t, err)
	port, err := strconv.Atoi(string(data))
	require.NoError(t, err)
	assert.Greater(t, port, 0)

	w, h := r.Dimensions()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}

func TestNewRemoteSessionIDsAreUnique(t *testing.T) {
	dir := t.TempDir()
	a, err := NewRemote(dir, 10, 10)
	require.NoError(t, err)
	defer a.Deinit()
	b, err := NewRemote(dir, 10, 10)
	require.NoError(t, err)
	defer b.Deinit()

	assert.NotEqual(t, a.SessionID, b.SessionID)
}

func TestRemoteResizeFiresCallback(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRemote(dir, 80, 24)
	require.NoError(t, err)
	defer r.Deinit()

	var gotW, gotH int
	r.OnResize(func(w, h int) { gotW, gotH = w, h })
	r.Resize(100, 40)

	assert.Equal(t, 100, gotW)
	assert.Equal(t, 40, gotH)
	w, h := r.Dimensions()
	assert.Equal(t, 100, w)
	assert.Equal(t, 40, h)
}

func TestNewWebSocketMintsSessionID(t *testing.T) {
	s := NewWebSocket(":0", 80, 24)
	assert.NotEmpty(t, s.SessionID)
	w, h := s.Dimensions()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)
}
