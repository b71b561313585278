package gumble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariantForVersion(t *testing.T) {
	// The v1 version field clamps the patch number to 255.
	assert.Equal(t, WireVariantLegacy, VariantForVersion(1<<16|4<<8|255))
	assert.Equal(t, WireVariantModern, VariantForVersion(1<<16|5<<8|0))
	assert.Equal(t, WireVariantModern, VariantForVersion(1<<16|5<<8|255))
}

func TestAudioPacketRoundTripLegacy(t *testing.T) {
	opus := []byte{0x01, 0x02, 0x03, 0x04}
	pos := []float32{1.5, -2.25, 3.0}

	packet, err := encodeAudioPacket(WireVariantLegacy, 42, 7, opus, pos)
	require.NoError(t, err)

	// Inbound legacy audio carries the speaker session right after the
	// header byte; outbound packets omit it.
	inbound := append([]byte{packet[0]}, varintEncode(5)...)
	inbound = append(inbound, packet[1:]...)

	d, err := parseDatagram(WireVariantLegacy, inbound)
	require.NoError(t, err)
	assert.Equal(t, datagramAudio, d.kind)
	assert.EqualValues(t, 5, d.frame.session)
	assert.EqualValues(t, 42, d.frame.sequence)
	assert.EqualValues(t, 7, d.frame.target)
	assert.Equal(t, opus, d.frame.opus)
	assert.Equal(t, pos, d.frame.positional)
}

func TestAudioPacketRoundTripModern(t *testing.T) {
	opus := []byte{0xAA, 0xBB}

	packet, err := encodeAudioPacket(WireVariantModern, 100, 2, opus, nil)
	require.NoError(t, err)
	assert.Equal(t, byte(udpKindAudio), packet[0])

	d, err := parseDatagram(WireVariantModern, packet)
	require.NoError(t, err)
	assert.Equal(t, datagramAudio, d.kind)
	assert.EqualValues(t, 100, d.frame.sequence)
	assert.EqualValues(t, 2, d.frame.target)
	assert.Equal(t, opus, d.frame.opus)
	assert.Nil(t, d.frame.positional)
}

// The frame header is a Mumble varint over length|moreBit, not a fixed
// 16-bit field: pin the exact wire bytes so encode and decode cannot
// drift together.
func TestOpusFrameHeaderWireShape(t *testing.T) {
	// 2 < 0x80: shortest one-byte varint form.
	assert.Equal(t, []byte{0x02}, encodeOpusFrameHeader(2, false))

	// 200 needs the two-byte 10xxxxxx form.
	assert.Equal(t, []byte{0x80, 0xC8}, encodeOpusFrameHeader(200, false))

	// The "more frames follow" bit is 0x2000, folded into the value
	// before varint encoding.
	assert.Equal(t, []byte{0xA0, 0x04}, encodeOpusFrameHeader(4, true))

	length, more, consumed := decodeOpusFrameHeader([]byte{0xA0, 0x04})
	assert.Equal(t, 4, length)
	assert.True(t, more)
	assert.Equal(t, 2, consumed)

	length, more, consumed = decodeOpusFrameHeader([]byte{0x02, 0xFF})
	assert.Equal(t, 2, length)
	assert.False(t, more)
	assert.Equal(t, 1, consumed)
}

func TestParseLegacyPing(t *testing.T) {
	header := byte(legacyAudioTypePing << 5)
	packet := append([]byte{header}, varintEncode(123456789)...)

	d, err := parseDatagram(WireVariantLegacy, packet)
	require.NoError(t, err)
	assert.Equal(t, datagramPing, d.kind)
	assert.EqualValues(t, 123456789, d.nonce)
}

func TestParseLegacyNonOpusDropped(t *testing.T) {
	header := byte(legacyAudioTypeSpeex << 5)
	packet := append([]byte{header}, varintEncode(9)...)
	packet = append(packet, varintEncode(0)...)

	_, err := parseDatagram(WireVariantLegacy, packet)
	assert.ErrorIs(t, err, ErrCodecNotSupported)
}

func TestParseShortPackets(t *testing.T) {
	_, err := parseDatagram(WireVariantLegacy, nil)
	assert.ErrorIs(t, err, ErrShortPacket)

	_, err = parseDatagram(WireVariantModern, nil)
	assert.ErrorIs(t, err, ErrShortPacket)

	// Legacy opus frame truncated mid-payload (as received, with the
	// speaker session inserted after the header byte).
	packet, err := encodeAudioPacket(WireVariantLegacy, 0, 0, []byte{1, 2, 3, 4}, nil)
	require.NoError(t, err)
	packet = append(append([]byte{packet[0]}, varintEncode(5)...), packet[1:]...)
	_, err = parseDatagram(WireVariantLegacy, packet[:len(packet)-2])
	assert.Error(t, err)
}

func TestBitrateBudgetTransportOverhead(t *testing.T) {
	tunnel := bitrateBudget(72000, AudioDefaultInterval, TransportTunnel)
	datagram := bitrateBudget(72000, AudioDefaultInterval, TransportDatagram)

	// Tunnelled frames carry TCP + framing overhead the datagram path does
	// not, so the datagram budget is always the larger of the two.
	assert.Greater(t, datagram, tunnel)

	// 50 packets/s at 32 bytes overhead = 12800 bps below the ceiling.
	assert.Equal(t, 72000-50*32*8, datagram)
	assert.Equal(t, 72000-50*46*8, tunnel)

	// The budget never collapses below the Opus floor.
	assert.Equal(t, 6000, bitrateBudget(10000, AudioDefaultInterval, TransportTunnel))
}
