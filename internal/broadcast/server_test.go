package broadcast

import (
	"net"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenFailsOnBusyPort(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	s, err := Listen(busy.Addr().String(), NewHub())
	assert.Error(t, err)
	assert.Nil(t, s)
}

func TestServerServesFrames(t *testing.T) {
	hub := NewHub()
	defer hub.Close()
	s, err := Listen("127.0.0.1:0", hub)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr().String()+FramesPath, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Close())
	select {
	case err, ok := <-s.Err():
		assert.False(t, ok, "unexpected serve error: %v", err)
	case <-time.After(time.Second):
		t.Fatal("Err not closed after Close")
	}
}
