package gumble

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReconnectBackoffDoublesAndCaps(t *testing.T) {
	assert.Equal(t, reconnectInitialBackoff, reconnectBackoff(0))
	assert.Equal(t, 2*time.Second, reconnectBackoff(1))
	assert.Equal(t, 4*time.Second, reconnectBackoff(2))
	assert.Equal(t, 8*time.Second, reconnectBackoff(3))
	assert.Equal(t, reconnectMaxBackoff, reconnectBackoff(10))
}

// Two datagram pings are sent, but only the response to the second one
// arrives; the transport promotes to datagram on that first successful
// pong.
func TestPingPromotionOnSecondDatagramPong(t *testing.T) {
	p := newPingState()
	assert.Equal(t, TransportTunnel, p.Transport())

	t0 := time.Now()
	p.beginProbe(t0)
	// The first probe's response never arrives; a second probe is sent
	// before the first one's 3s window has expired.
	p.beginProbe(t0.Add(500 * time.Millisecond))

	promoted := p.onDatagramPong(t0.Add(700*time.Millisecond), 12.5)
	assert.True(t, promoted)
	assert.Equal(t, TransportDatagram, p.Transport())

	snap := p.snapshot()
	assert.EqualValues(t, 1, snap.Good)
	assert.EqualValues(t, 1, snap.UDPPackets)
}

func TestPingDemotesAfterSilence(t *testing.T) {
	p := newPingState()
	now := time.Now()
	p.beginProbe(now)
	p.onDatagramPong(now, 5)
	assert.Equal(t, TransportDatagram, p.Transport())

	action := p.tick(now.Add(datagramDemoteAfter + time.Second))
	assert.Equal(t, pingActionDemoteToTunnel, action)
	assert.Equal(t, TransportTunnel, p.Transport())
}

func TestPingReconnectAfterTotalSilence(t *testing.T) {
	p := newPingState()
	now := time.Now()

	action := p.tick(now.Add(totalFailureAfter + time.Second))
	assert.Equal(t, pingActionReconnect, action)
}

func TestPingResetRewindsLivenessButKeepsCounters(t *testing.T) {
	p := newPingState()
	start := time.Now()
	p.beginProbe(start)
	p.onDatagramPong(start, 5)
	p.onDatagramDropped(false)
	assert.Equal(t, TransportDatagram, p.Transport())

	// A reconnect long after the last pong must not instantly re-trigger
	// the total-failure transition.
	later := start.Add(2 * totalFailureAfter)
	p.reset(later)
	assert.Equal(t, TransportTunnel, p.Transport())
	assert.Equal(t, pingActionNone, p.tick(later.Add(time.Second)))

	snap := p.snapshot()
	assert.EqualValues(t, 1, snap.Good)
	assert.EqualValues(t, 1, snap.Lost)
}

func TestPingDatagramDroppedAccounting(t *testing.T) {
	p := newPingState()
	p.onDatagramDropped(true)
	p.onDatagramDropped(false)
	p.onDatagramDropped(false)

	snap := p.snapshot()
	assert.EqualValues(t, 1, snap.Late)
	assert.EqualValues(t, 2, snap.Lost)
}
