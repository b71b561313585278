package gumble

import (
	"sync"
	"time"
)

// AudioCodec identifies the codec a SoundChunk (or outbound frame) was
// carried in. Only Opus is implemented; the type exists so
// original-protocol CELT frames can be recognized and ignored rather than
// mistaken for Opus.
type AudioCodec int

const (
	AudioCodecOpus AudioCodec = iota
	AudioCodecCELTAlpha
	AudioCodecCELTBeta
	AudioCodecSpeex
)

const (
	// AudioSampleRate is the only PCM rate Mumble servers speak.
	AudioSampleRate = 48000
	// AudioDefaultInterval is the default framing interval (20ms).
	AudioDefaultInterval = 20 * time.Millisecond
	// AudioDefaultFrameSize is the sample count of one mono 20ms@48kHz frame.
	AudioDefaultFrameSize = AudioSampleRate / 50
	// AudioDefaultDataBytes bounds the Opus payload size per frame.
	AudioDefaultDataBytes = 960

	// sequenceResetInterval: idle period after which the sequence counter
	// restarts from zero.
	sequenceResetInterval = 5 * time.Second
	// sequenceUnit is the wall-clock unit, in milliseconds, one sequence
	// number represents.
	sequenceUnitMillis = 10

	// maxDecodeSamples sizes the inbound decode buffer for the largest frame
	// the wire allows: 60ms at 48kHz, stereo.
	maxDecodeSamples = 3 * AudioDefaultFrameSize * 2
)

// Encoder is the outbound half of an audio codec.
type Encoder interface {
	Encode(pcm []int16, maxBytes int) ([]byte, error)
	SetBitrate(bitsPerSecond int) error
}

// Decoder is the inbound half of an audio codec.
type Decoder interface {
	Decode(data []byte, pcm []int16) (int, error)
}

// sequencer implements the outbound sequence-counter update rule: reset
// after 5s idle, fast-forward after a 2x-frame gap, else increment by one
// frame's worth of 10ms units.
type sequencer struct {
	sequence   uint64
	started    time.Time
	lastSend   time.Time
	have       bool
	frameUnits uint64 // audio_per_packet / 10ms
}

func newSequencer(audioPerPacket time.Duration) *sequencer {
	return &sequencer{frameUnits: uint64(audioPerPacket / (sequenceUnitMillis * time.Millisecond))}
}

// next advances the sequence counter for a frame being sent at now and
// returns the sequence number to stamp it with.
func (s *sequencer) next(now time.Time) uint64 {
	if !s.have {
		s.started = now
		s.sequence = 0
		s.have = true
	} else if now.Sub(s.lastSend) >= sequenceResetInterval {
		s.sequence = 0
		s.started = now
	} else if now.Sub(s.lastSend) >= 2*time.Duration(s.frameUnits)*sequenceUnitMillis*time.Millisecond {
		elapsedUnits := uint64(now.Sub(s.started) / (sequenceUnitMillis * time.Millisecond))
		s.sequence = elapsedUnits
	} else {
		s.sequence += s.frameUnits
	}
	s.lastSend = now
	return s.sequence
}

// pcmQueue is the single-producer/single-consumer frame queue add_pcm
// writes into and the sender loop reads whole frames from.
type pcmQueue struct {
	mu        sync.Mutex
	notEmpty  chan struct{}
	buf       []int16
	frameSize int // samples per channel-interleaved frame
}

func newPCMQueue(frameSize int) *pcmQueue {
	return &pcmQueue{notEmpty: make(chan struct{}, 1), frameSize: frameSize}
}

// push appends raw little-endian PCM samples (already demultiplexed into
// int16s by the caller) to the queue.
func (q *pcmQueue) push(samples []int16) {
	q.mu.Lock()
	q.buf = append(q.buf, samples...)
	full := len(q.buf) >= q.frameSize
	q.mu.Unlock()
	if full {
		select {
		case q.notEmpty <- struct{}{}:
		default:
		}
	}
}

// popFrame removes and returns one full frame if available.
func (q *pcmQueue) popFrame() ([]int16, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.buf) < q.frameSize {
		return nil, false
	}
	frame := make([]int16, q.frameSize)
	copy(frame, q.buf[:q.frameSize])
	q.buf = q.buf[q.frameSize:]
	return frame, true
}

// bitrateBudget computes the Opus target bitrate given the configured/
// server bandwidth ceiling and the current transport's per-packet
// overhead.
func bitrateBudget(ceilingBPS int, audioPerPacket time.Duration, transport Transport) int {
	var overhead int
	switch transport {
	case TransportDatagram:
		overhead = 20 + 12 // IP + OCB2 header and per-frame varints, rounded
	default:
		overhead = 20 + 20 + 6 // IP + TCP + tunnel framing
	}
	packetsPerSecond := float64(time.Second) / float64(audioPerPacket)
	overheadBPS := int(float64(overhead*8) * packetsPerSecond)

	budget := ceilingBPS - overheadBPS
	if budget < 6000 {
		budget = 6000
	}
	return budget
}

// userDecodeQueue is the per-user inbound decode path: decode is called on
// the receiving goroutine for each encoded frame, decodes it, and derives
// each chunk's calculated time from a start time/sequence origin that
// resets whenever a talker begins a new burst.
type userDecodeQueue struct {
	mu            sync.Mutex
	newDecoder    func() (Decoder, error)
	decoder       Decoder
	startTime     time.Time
	startSequence uint64
	have          bool
}

func newUserDecodeQueue(newDecoder func() (Decoder, error)) *userDecodeQueue {
	return &userDecodeQueue{newDecoder: newDecoder}
}

// decode turns one inbound Opus frame into a SoundChunk, resetting the
// calculated_time origin whenever sequence regresses to or below the
// stored start. The decoder itself is created on the first
// frame so silent users never allocate libopus state.
func (q *userDecodeQueue) decode(data []byte, sequence uint64, codec AudioCodec, target uint32, receivedAt time.Time) (SoundChunk, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.decoder == nil {
		dec, err := q.newDecoder()
		if err != nil {
			return SoundChunk{}, err
		}
		q.decoder = dec
	}

	if !q.have || sequence <= q.startSequence {
		q.startTime = receivedAt
		q.startSequence = sequence
		q.have = true
	}

	pcm := make([]int16, maxDecodeSamples)
	n, err := q.decoder.Decode(data, pcm)
	if err != nil {
		return SoundChunk{}, err
	}

	elapsed := time.Duration(sequence-q.startSequence) * sequenceUnitMillis * time.Millisecond
	return SoundChunk{
		PCM:            pcm[:n],
		Sequence:       sequence,
		CalculatedTime: q.startTime.Add(elapsed),
		Type:           codec,
		Target:         target,
		Timestamp:      receivedAt,
	}, nil
}
