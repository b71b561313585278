package gumble

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSequencerStepsByTwoAt20ms(t *testing.T) {
	s := newSequencer(20 * time.Millisecond)

	start := time.Now()
	var got []uint64
	for i := 0; i < 100; i++ {
		now := start.Add(time.Duration(i) * 20 * time.Millisecond)
		got = append(got, s.next(now))
	}

	want := make([]uint64, 100)
	for i := range want {
		want[i] = uint64(i) * 2
	}
	assert.Equal(t, want, got)
}

func TestSequencerResetsAfterGap(t *testing.T) {
	s := newSequencer(20 * time.Millisecond)

	start := time.Now()
	assert.EqualValues(t, 0, s.next(start))
	assert.EqualValues(t, 2, s.next(start.Add(20*time.Millisecond)))

	after := start.Add(6 * time.Second)
	assert.EqualValues(t, 0, s.next(after))
}

func TestPCMQueueFullFramePopped(t *testing.T) {
	q := newPCMQueue(4)

	_, ok := q.popFrame()
	assert.False(t, ok)

	q.push([]int16{1, 2})
	_, ok = q.popFrame()
	assert.False(t, ok)

	q.push([]int16{3, 4})
	frame, ok := q.popFrame()
	assert.True(t, ok)
	assert.Equal(t, []int16{1, 2, 3, 4}, frame)

	_, ok = q.popFrame()
	assert.False(t, ok)
}

func TestUserDecodeQueueResetsOriginOnSequenceRegression(t *testing.T) {
	q := newUserDecodeQueue(func() (Decoder, error) { return &fakeDecoder{}, nil })

	t0 := time.Now()
	chunk, err := q.decode([]byte{1, 2, 3}, 10, AudioCodecOpus, 0, t0)
	assert.NoError(t, err)
	assert.Equal(t, t0, chunk.CalculatedTime)

	t1 := t0.Add(20 * time.Millisecond)
	chunk, err = q.decode([]byte{1, 2, 3}, 12, AudioCodecOpus, 0, t1)
	assert.NoError(t, err)
	assert.Equal(t, t0.Add(2*sequenceUnitMillis*time.Millisecond), chunk.CalculatedTime)

	// Sequence regresses (e.g. talker restarted): origin resets to now.
	t2 := t1.Add(20 * time.Millisecond)
	chunk, err = q.decode([]byte{1, 2, 3}, 3, AudioCodecOpus, 0, t2)
	assert.NoError(t, err)
	assert.Equal(t, t2, chunk.CalculatedTime)
}

type fakeDecoder struct{}

func (f *fakeDecoder) Decode(data []byte, pcm []int16) (int, error) {
	return len(data), nil
}
