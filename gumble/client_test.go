package gumble

import (
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

type fakeEncoder struct{}

func (fakeEncoder) Encode(pcm []int16, maxBytes int) ([]byte, error) { return []byte{0xAA, 0xBB}, nil }
func (fakeEncoder) SetBitrate(bitsPerSecond int) error               { return nil }

// A single full frame of stereo silence queued through pcmQueue, at a 20ms
// packet interval, yields exactly one outbound voice packet carrying
// sequence 0 and one Opus payload.
func TestOneFullFrameProducesOneVoicePacketAtSequenceZero(t *testing.T) {
	config := NewConfig()
	config.Stereo = true

	pcm := newPCMQueue(audioChannels(config) * config.AudioFrameSize())
	samples := make([]int16, audioChannels(config)*config.AudioFrameSize())
	pcm.push(samples)

	frame, ok := pcm.popFrame()
	require.True(t, ok)
	assert.Len(t, frame, 1920)

	_, ok = pcm.popFrame()
	assert.False(t, ok, "only one full frame was queued")

	seq := newSequencer(config.AudioInterval)
	sequence := seq.next(time.Now())
	assert.EqualValues(t, 0, sequence)

	enc := fakeEncoder{}
	opusData, err := enc.Encode(frame, config.AudioDataBytes)
	require.NoError(t, err)

	var sent [][]byte
	voice := &VoiceStack{
		variant: WireVariantLegacy,
		ping:    nil,
		tunnelWrite: func(b []byte) error {
			sent = append(sent, append([]byte(nil), b...))
			return nil
		},
	}
	require.NoError(t, voice.SendAudio(0, sequence, 0, opusData, nil))

	require.Len(t, sent, 1)
	packet := sent[0]

	header := packet[0]
	assert.Equal(t, byte(legacyAudioTypeOpus<<5), header&0xE0)

	gotSeq, n, ok := varintDecode(packet[1:])
	require.True(t, ok)
	assert.EqualValues(t, 0, gotSeq)

	length, more, consumed := decodeOpusFrameHeader(packet[1+n:])
	assert.Equal(t, len(opusData), length)
	assert.False(t, more)
	assert.Equal(t, opusData, packet[1+n+consumed:])
}

// A CryptSetup carrying only server_nonce resyncs the decrypt IV and
// sends nothing back.
func TestHandleCryptSetupServerNonceOnlyResyncsDecryptIVNoReply(t *testing.T) {
	client := newClient(NewConfig())
	defer client.dispatcher.stop()

	key := make([]byte, aesBlockSize)
	encIV := make([]byte, aesBlockSize)
	decIV := make([]byte, aesBlockSize)
	require.NoError(t, client.crypt.SetKey(key, encIV, decIV))

	nonce := make([]byte, aesBlockSize)
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}

	m := &MumbleProto.CryptSetup{ServerNonce: nonce}
	payload, err := proto.Marshal(m)
	require.NoError(t, err)

	client.handleCryptSetup(payload)

	assert.Equal(t, nonce, client.crypt.decryptIV[:])
	assert.Nil(t, client.queue.pop(), "no outbound packet should be queued")
}
