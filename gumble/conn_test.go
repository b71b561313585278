package gumble

import (
	"encoding/binary"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// TestConnReadMessageByteByByte feeds a single framed message one byte at a
// time and asserts ReadMessage only returns once the full frame has arrived.
func TestConnReadMessageByteByByte(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()

	payload := []byte("hello, mumble")
	var header [6]byte
	binary.BigEndian.PutUint16(header[0:2], 3)
	binary.BigEndian.PutUint32(header[2:6], uint32(len(payload)))
	framed := append(append([]byte{}, header[:]...), payload...)

	conn := NewConn(client)

	type result struct {
		msg packetMessage
		err error
	}
	done := make(chan result, 1)
	go func() {
		msg, err := conn.ReadMessage()
		done <- result{msg, err}
	}()

	for i, b := range framed {
		_, err := server.Write([]byte{b})
		require.NoError(t, err)

		if i < len(framed)-1 {
			select {
			case r := <-done:
				t.Fatalf("ReadMessage returned early after %d/%d bytes: %+v", i+1, len(framed), r)
			case <-time.After(20 * time.Millisecond):
			}
		}
	}

	select {
	case r := <-done:
		require.NoError(t, r.err)
		assert.Equal(t, MumbleProto.MessageKind(3), r.msg.kind)
		assert.Equal(t, payload, r.msg.payload)
	case <-time.After(2 * time.Second):
		t.Fatal("ReadMessage did not return after the full frame arrived")
	}
}
