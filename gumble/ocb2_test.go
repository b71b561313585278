package gumble

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCryptPair(t *testing.T) (enc, dec *CryptState) {
	t.Helper()
	key := make([]byte, aesBlockSize)
	encIV := make([]byte, aesBlockSize)
	decIV := make([]byte, aesBlockSize)
	_, err := rand.Read(key)
	require.NoError(t, err)
	_, err = rand.Read(encIV)
	require.NoError(t, err)
	_, err = rand.Read(decIV)
	require.NoError(t, err)

	enc = &CryptState{}
	require.NoError(t, enc.SetKey(key, encIV, decIV))
	dec = &CryptState{}
	// The decrypt side's decryptIV must start where the encrypt side's
	// encryptIV starts, matching the (client_nonce, server_nonce) exchange.
	require.NoError(t, dec.SetKey(key, decIV, encIV))
	return enc, dec
}

func TestCryptStateRoundTrip(t *testing.T) {
	enc, dec := newTestCryptPair(t)

	for _, plaintext := range [][]byte{
		{},
		[]byte("a"),
		bytes.Repeat([]byte{0x42}, 15),
		bytes.Repeat([]byte{0x42}, 16),
		bytes.Repeat([]byte{0x7f}, 123),
	} {
		packet := enc.Encrypt(plaintext)
		got, err := dec.Decrypt(packet)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestCryptStateDuplicateOfNewestPacketFails(t *testing.T) {
	enc, dec := newTestCryptPair(t)

	packet := enc.Encrypt([]byte("hello"))
	_, err := dec.Decrypt(packet)
	require.NoError(t, err)

	// An exact duplicate of the newest packet carries the current IV low
	// byte (diff == 0), which no reconstruction path accepts.
	savedIV := dec.decryptIV
	_, err = dec.Decrypt(packet)
	assert.ErrorIs(t, err, ErrReplayOrReorder)
	assert.Equal(t, savedIV, dec.decryptIV, "decrypt IV must be restored after a rejected packet")
}

func TestCryptStateReplayInReorderWindow(t *testing.T) {
	enc, dec := newTestCryptPair(t)

	var packets [][]byte
	for i := 0; i < 3; i++ {
		packets = append(packets, enc.Encrypt([]byte("frame")))
	}
	for _, p := range packets {
		_, err := dec.Decrypt(p)
		require.NoError(t, err)
	}

	// Replaying an older packet lands in the late-reorder window, but the
	// history entry recorded on its first decryption marks it as a replay.
	savedIV := dec.decryptIV
	_, err := dec.Decrypt(packets[1])
	assert.ErrorIs(t, err, ErrReplay)
	assert.Equal(t, savedIV, dec.decryptIV, "decrypt IV must be restored after a replay failure")
}

func TestCryptStateReorderWindow(t *testing.T) {
	enc, dec := newTestCryptPair(t)

	var packets [][]byte
	for i := 0; i < 32; i++ {
		packets = append(packets, enc.Encrypt([]byte("frame")))
	}

	// Decrypt the newest packet first, then feed one from 29 back in the
	// window: still within the 30-byte reorder window, counted as late.
	_, err := dec.Decrypt(packets[31])
	require.NoError(t, err)
	_, err = dec.Decrypt(packets[31-29])
	require.NoError(t, err)
	assert.EqualValues(t, 1, dec.Late)
}

func TestCryptStateReorderBeyondWindowFails(t *testing.T) {
	enc, dec := newTestCryptPair(t)

	var packets [][]byte
	for i := 0; i < 40; i++ {
		packets = append(packets, enc.Encrypt([]byte("frame")))
	}

	_, err := dec.Decrypt(packets[39])
	require.NoError(t, err)
	_, err = dec.Decrypt(packets[39-31])
	assert.ErrorIs(t, err, ErrReplayOrReorder)
}

func TestCryptStateLossCounting(t *testing.T) {
	enc, dec := newTestCryptPair(t)

	packets := make([][]byte, 0, 5)
	for i := 0; i < 5; i++ {
		packets = append(packets, enc.Encrypt([]byte("frame")))
	}

	// Decrypt packet 0, then skip straight to packet 3: two packets (1, 2)
	// were lost in between (k=3 ahead adds k-1=2 to Lost).
	_, err := dec.Decrypt(packets[0])
	require.NoError(t, err)
	_, err = dec.Decrypt(packets[3])
	require.NoError(t, err)
	assert.EqualValues(t, 2, dec.Lost)
}

func TestCryptStateAuthenticationFailure(t *testing.T) {
	enc, dec := newTestCryptPair(t)

	packet := enc.Encrypt([]byte("tamper me"))
	packet[len(packet)-1] ^= 0xFF

	savedIV := dec.decryptIV
	_, err := dec.Decrypt(packet)
	assert.ErrorIs(t, err, ErrAuthenticationFailure)
	assert.Equal(t, savedIV, dec.decryptIV)
}

func TestCryptStateShortPacket(t *testing.T) {
	_, dec := newTestCryptPair(t)
	_, err := dec.Decrypt([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrShortPacket)
}
