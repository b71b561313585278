package gumble

import (
	"fmt"

	"gopkg.in/hraban/opus.v2"
)

// opusApplication maps Config.OpusProfile to the libopus "application"
// constant.
func opusApplication(profile OpusProfile) opus.Application {
	switch profile {
	case OpusProfileAudio:
		return opus.AppAudio
	case OpusProfileRestrictedLowDelay:
		return opus.AppRestrictedLowdelay
	default:
		return opus.AppVoIP
	}
}

// opusEncoder adapts *opus.Encoder to the Encoder interface.
type opusEncoder struct {
	enc *opus.Encoder
}

// newOpusEncoder constructs an Opus encoder for the given sample rate,
// channel count, and encoder profile.
func newOpusEncoder(sampleRate, channels int, profile OpusProfile) (*opusEncoder, error) {
	enc, err := opus.NewEncoder(sampleRate, channels, opusApplication(profile))
	if err != nil {
		return nil, fmt.Errorf("gumble: opus encoder: %w", err)
	}
	return &opusEncoder{enc: enc}, nil
}

func (e *opusEncoder) Encode(pcm []int16, maxBytes int) ([]byte, error) {
	buf := make([]byte, maxBytes)
	n, err := e.enc.Encode(pcm, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

func (e *opusEncoder) SetBitrate(bitsPerSecond int) error {
	return e.enc.SetBitrate(bitsPerSecond)
}

// opusDecoder adapts *opus.Decoder to the Decoder interface. Decode returns
// the total interleaved sample count (libopus reports samples per channel).
type opusDecoder struct {
	dec      *opus.Decoder
	channels int
}

func newOpusDecoder(sampleRate, channels int) (*opusDecoder, error) {
	dec, err := opus.NewDecoder(sampleRate, channels)
	if err != nil {
		return nil, fmt.Errorf("gumble: opus decoder: %w", err)
	}
	return &opusDecoder{dec: dec, channels: channels}, nil
}

func (d *opusDecoder) Decode(data []byte, pcm []int16) (int, error) {
	// A nil frame asks libopus for packet loss concealment.
	n, err := d.dec.Decode(data, pcm)
	if err != nil {
		return 0, err
	}
	return n * d.channels, nil
}
