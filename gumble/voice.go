package gumble

import (
	"encoding/binary"
	"fmt"
	"math"
	"net"
	"sync"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// WireVariant selects the datagram payload shape a peer speaks, chosen
// from the negotiated server version.
type WireVariant int

const (
	// WireVariantLegacy is used for server versions below 1.5.0: a
	// bit-packed type/target byte, Mumble varints, and raw Opus framing.
	WireVariantLegacy WireVariant = iota
	// WireVariantModern is used for 1.5.0 and later: a single kind byte
	// followed by a length-delimited protobuf-shaped message.
	WireVariantModern
)

// legacyVersionCeiling is the packed version below which the legacy
// datagram wire format is used (1.5.0).
const legacyVersionCeiling = 1<<16 | 5<<8 | 0

// VariantForVersion returns the datagram wire variant to use against a
// server advertising the given packed version.
func VariantForVersion(serverVersion uint32) WireVariant {
	if serverVersion < legacyVersionCeiling {
		return WireVariantLegacy
	}
	return WireVariantModern
}

const (
	legacyAudioTypeCELTAlpha = 0
	legacyAudioTypePing      = 1
	legacyAudioTypeSpeex     = 2
	legacyAudioTypeCELTBeta  = 3
	legacyAudioTypeOpus      = 4

	udpKindAudio = 0
	udpKindPing  = 1
)

// audioFrame is one decoded inbound voice datagram, independent of which
// wire variant produced it.
type audioFrame struct {
	session    uint32
	sequence   uint64
	target     uint32
	opus       []byte
	positional []float32
}

// datagramKind distinguishes the two payloads a voice-channel packet can
// carry once decrypted (or untunnelled).
type datagramKind int

const (
	datagramAudio datagramKind = iota
	datagramPing
)

// datagram is one parsed voice-channel payload. The same parser serves both
// the UDP receive loop (after OCB2 decryption) and the UDPTunnel path,
// where frames arrive in plaintext inside the TLS stream.
type datagram struct {
	kind  datagramKind
	frame audioFrame
	nonce uint64
}

// parseDatagram decodes one plaintext voice-channel packet in the given
// wire variant. Non-Opus legacy audio returns ErrCodecNotSupported.
func parseDatagram(variant WireVariant, plaintext []byte) (datagram, error) {
	if variant == WireVariantModern {
		return parseModernDatagram(plaintext)
	}
	return parseLegacyDatagram(plaintext)
}

func parseModernDatagram(plaintext []byte) (datagram, error) {
	if len(plaintext) == 0 {
		return datagram{}, ErrShortPacket
	}
	body := plaintext[1:]
	switch plaintext[0] {
	case udpKindPing:
		msg := &MumbleProto.PingUDP{}
		if err := proto.Unmarshal(body, msg); err != nil {
			return datagram{}, err
		}
		return datagram{kind: datagramPing, nonce: msg.GetTimestamp()}, nil
	case udpKindAudio:
		msg := &MumbleProto.AudioUDP{}
		if err := proto.Unmarshal(body, msg); err != nil {
			return datagram{}, err
		}
		return datagram{kind: datagramAudio, frame: audioFrame{
			session:    msg.GetSenderSession(),
			sequence:   msg.GetFrameNumber(),
			target:     msg.GetTarget(),
			opus:       msg.OpusData,
			positional: msg.PositionalData,
		}}, nil
	default:
		return datagram{}, fmt.Errorf("gumble: unknown datagram kind %d", plaintext[0])
	}
}

func parseLegacyDatagram(plaintext []byte) (datagram, error) {
	if len(plaintext) < 1 {
		return datagram{}, ErrShortPacket
	}
	header := plaintext[0]
	audioType := header >> 5
	target := uint32(header & 0x1F)
	rest := plaintext[1:]

	if audioType == legacyAudioTypePing {
		nonce, _, ok := varintDecode(rest)
		if !ok {
			return datagram{}, ErrShortPacket
		}
		return datagram{kind: datagramPing, nonce: nonce}, nil
	}
	if audioType != legacyAudioTypeOpus {
		return datagram{}, ErrCodecNotSupported
	}

	session, n, ok := varintDecode(rest)
	if !ok {
		return datagram{}, ErrShortPacket
	}
	rest = rest[n:]
	sequence, n, ok := varintDecode(rest)
	if !ok {
		return datagram{}, ErrShortPacket
	}
	rest = rest[n:]

	opusLen, _, n := decodeOpusFrameHeader(rest)
	if n == 0 || opusLen > len(rest)-n {
		return datagram{}, ErrShortPacket
	}
	opusData := rest[n : n+opusLen]
	rest = rest[n+opusLen:]

	var positional []float32
	if len(rest) >= 12 {
		positional = make([]float32, 3)
		for i := range positional {
			positional[i] = math.Float32frombits(binary.LittleEndian.Uint32(rest[i*4:]))
		}
	}

	return datagram{kind: datagramAudio, frame: audioFrame{
		session:    uint32(session),
		sequence:   sequence,
		target:     target,
		opus:       opusData,
		positional: positional,
	}}, nil
}

// VoiceStack owns the UDP datagram socket, the OCB2 cipher, and the
// promotion/demotion bookkeeping. On demotion it
// forwards outbound frames back through a tunnel writer supplied at
// construction.
type VoiceStack struct {
	mu      sync.Mutex
	sock    net.Conn
	crypt   *CryptState
	ping    *pingState
	variant WireVariant

	tunnelWrite func([]byte) error
	onAudio     func(audioFrame)
	onPingEcho  func(now time.Time, rttMillis float64, promoted bool)

	stop chan struct{}
}

// NewVoiceStack dials a UDP socket to addr and wires it to an existing
// CryptState and pingState. tunnelWrite is called to send a frame over the
// control connection instead, when not promoted to the datagram transport.
func NewVoiceStack(addr string, crypt *CryptState, ping *pingState, variant WireVariant, tunnelWrite func([]byte) error) (*VoiceStack, error) {
	sock, err := net.Dial("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("gumble: dial udp: %w", err)
	}
	return &VoiceStack{
		sock:        sock,
		crypt:       crypt,
		ping:        ping,
		variant:     variant,
		tunnelWrite: tunnelWrite,
		stop:        make(chan struct{}),
	}, nil
}

// OnAudio sets the callback invoked for each decrypted inbound audio
// datagram, run on the receive goroutine.
func (v *VoiceStack) OnAudio(f func(audioFrame)) { v.onAudio = f }

// OnPingEcho sets the callback invoked whenever a datagram ping response
// arrives.
func (v *VoiceStack) OnPingEcho(f func(now time.Time, rttMillis float64, promoted bool)) {
	v.onPingEcho = f
}

// Close tears down the datagram socket and stops the receive loop.
func (v *VoiceStack) Close() error {
	select {
	case <-v.stop:
	default:
		close(v.stop)
	}
	return v.sock.Close()
}

// Run starts the receive loop; it returns when Close is called or the
// socket errors out.
func (v *VoiceStack) Run() {
	buf := make([]byte, 2048)
	for {
		n, err := v.sock.Read(buf)
		if err != nil {
			select {
			case <-v.stop:
				return
			default:
				continue
			}
		}
		v.handleDatagram(buf[:n])
	}
}

func (v *VoiceStack) handleDatagram(packet []byte) {
	plaintext, err := v.crypt.Decrypt(packet)
	if err != nil {
		if v.ping != nil {
			v.ping.onDatagramDropped(err == ErrReplay || err == ErrReplayOrReorder)
		}
		return
	}
	v.handlePlaintext(plaintext)
}

// handlePlaintext routes one already-decrypted voice-channel packet.
func (v *VoiceStack) handlePlaintext(plaintext []byte) {
	d, err := parseDatagram(v.variant, plaintext)
	if err != nil {
		return
	}
	switch d.kind {
	case datagramPing:
		now := time.Now()
		rtt := float64(uint64(now.UnixNano())-d.nonce) / 1e6
		promoted := false
		if v.ping != nil {
			promoted = v.ping.onDatagramPong(now, rtt)
		}
		if v.onPingEcho != nil {
			v.onPingEcho(now, rtt, promoted)
		}
	case datagramAudio:
		if v.onAudio != nil {
			v.onAudio(d.frame)
		}
	}
}

// SendPing transmits a datagram ping carrying a nanosecond nonce.
func (v *VoiceStack) SendPing() error {
	now := uint64(time.Now().UnixNano())
	var plaintext []byte
	switch v.variant {
	case WireVariantModern:
		msg := &MumbleProto.PingUDP{Timestamp: &now}
		body, err := proto.Marshal(msg)
		if err != nil {
			return err
		}
		plaintext = append([]byte{udpKindPing}, body...)
	default:
		header := byte(legacyAudioTypePing << 5)
		plaintext = append([]byte{header}, varintEncode(now)...)
	}
	return v.writeEncrypted(plaintext)
}

// encodeAudioPacket builds the plaintext voice-channel packet for one
// outbound Opus frame in the given wire variant. The same
// bytes travel either OCB2-encrypted over UDP or in the clear inside a
// UDPTunnel frame. Outbound legacy packets carry no speaker session;
// parseLegacyDatagram, which reads inbound packets, expects one right
// after the header byte.
func encodeAudioPacket(variant WireVariant, sequence uint64, target uint32, opusData []byte, positional []float32) ([]byte, error) {
	if variant == WireVariantModern {
		frameNo := sequence
		tgt := target
		msg := &MumbleProto.AudioUDP{
			FrameNumber: &frameNo,
			OpusData:    opusData,
			Target:      &tgt,
		}
		if len(positional) == 3 {
			msg.PositionalData = positional
		}
		body, err := proto.Marshal(msg)
		if err != nil {
			return nil, err
		}
		return append([]byte{udpKindAudio}, body...), nil
	}

	header := byte(legacyAudioTypeOpus<<5) | byte(target&0x1F)
	plaintext := append([]byte{header}, varintEncode(sequence)...)
	plaintext = append(plaintext, encodeOpusFrameHeader(len(opusData), false)...)
	plaintext = append(plaintext, opusData...)
	for _, f := range positional {
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
		plaintext = append(plaintext, b[:]...)
	}
	return plaintext, nil
}

// SendAudio transmits one encoded Opus frame, routing through the
// datagram socket when promoted or the tunnel otherwise.
func (v *VoiceStack) SendAudio(session uint32, sequence uint64, target uint32, opusData []byte, positional []float32) error {
	plaintext, err := encodeAudioPacket(v.variant, sequence, target, opusData, positional)
	if err != nil {
		return err
	}

	if v.ping != nil && v.ping.Transport() == TransportDatagram {
		if err := v.writeEncrypted(plaintext); err == nil {
			return nil
		}
	}
	return v.tunnelWrite(plaintext)
}

func (v *VoiceStack) writeEncrypted(plaintext []byte) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	packet := v.crypt.Encrypt(plaintext)
	_, err := v.sock.Write(packet)
	return err
}

// opusFrameMoreBit flags that more frames follow in the legacy Opus frame
// header; the low 13 bits carry the payload length.
const opusFrameMoreBit = 0x2000

// encodeOpusFrameHeader builds the varint the legacy wire variant places
// ahead of an Opus payload: the payload length with the "more frames
// follow" bit folded in.
func encodeOpusFrameHeader(length int, more bool) []byte {
	v := uint64(length) & (opusFrameMoreBit - 1)
	if more {
		v |= opusFrameMoreBit
	}
	return varintEncode(v)
}

// decodeOpusFrameHeader is the inverse of encodeOpusFrameHeader, returning
// the payload length, the "more" bit, and the number of header bytes
// consumed (0 on a short read).
func decodeOpusFrameHeader(b []byte) (length int, more bool, consumed int) {
	v, n, ok := varintDecode(b)
	if !ok {
		return 0, false, 0
	}
	return int(v & (opusFrameMoreBit - 1)), v&opusFrameMoreBit != 0, n
}
