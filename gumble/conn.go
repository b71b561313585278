package gumble

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/golang/protobuf/proto"
	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// packetMessage is one framed reliable-channel message: a 2-byte type code
// plus a payload of the accompanying 4-byte length. The
// UDPTunnel kind carries raw bytes instead of a protobuf payload.
type packetMessage struct {
	kind    MumbleProto.MessageKind
	payload []byte
}

// Conn wraps a net.Conn (ordinarily a *tls.Conn) with Mumble's length-
// prefixed framing. Reads happen on the caller's goroutine via ReadMessage;
// writes are serialized with a mutex so concurrent senders never interleave
// a header with another message's payload.
type Conn struct {
	conn   net.Conn
	reader *bufio.Reader

	writeMu sync.Mutex
}

// NewConn wraps conn for framed reading and writing.
func NewConn(conn net.Conn) *Conn {
	return &Conn{conn: conn, reader: bufio.NewReaderSize(conn, 4096)}
}

// Close closes the underlying connection.
func (c *Conn) Close() error { return c.conn.Close() }

// ReadMessage blocks until one full frame has arrived, then returns its
// type code and payload. Partial reads are normal and transparent to the
// caller.
func (c *Conn) ReadMessage() (packetMessage, error) {
	var header [6]byte
	if _, err := io.ReadFull(c.reader, header[:]); err != nil {
		return packetMessage{}, err
	}
	kind := MumbleProto.MessageKind(binary.BigEndian.Uint16(header[0:2]))
	length := binary.BigEndian.Uint32(header[2:6])

	payload := make([]byte, length)
	if _, err := io.ReadFull(c.reader, payload); err != nil {
		return packetMessage{}, err
	}
	return packetMessage{kind: kind, payload: payload}, nil
}

// WriteProto marshals msg and writes it as one framed message. msg must be
// either a proto.Message recognized by MumbleProto.MessageType, or a []byte
// tunnelled audio frame (sent under the UDPTunnel type code).
func (c *Conn) WriteProto(msg interface{}) error {
	if raw, ok := msg.([]byte); ok {
		return c.writeFrame(MumbleProto.KindUDPTunnel, raw)
	}

	pb, ok := msg.(proto.Message)
	if !ok {
		return fmt.Errorf("gumble: %T is not a proto.Message", msg)
	}
	kind, err := MumbleProto.MessageType(msg)
	if err != nil {
		return err
	}
	payload, err := proto.Marshal(pb)
	if err != nil {
		return err
	}
	return c.writeFrame(kind, payload)
}

func (c *Conn) writeFrame(kind MumbleProto.MessageKind, payload []byte) error {
	var header [6]byte
	binary.BigEndian.PutUint16(header[0:2], uint16(kind))
	binary.BigEndian.PutUint32(header[2:6], uint32(len(payload)))

	framed := make([]byte, 0, 6+len(payload))
	framed = append(framed, header[:]...)
	framed = append(framed, payload...)

	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	_, err := c.conn.Write(framed)
	return err
}
