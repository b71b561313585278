package gumble

import (
	"sync"
	"time"
)

// pingInterval is how often a Ping message is sent on each ready
// transport, matching the 10s cadence used throughout the Mumble
// ecosystem.
const pingInterval = 10 * time.Second

const (
	// datagramProbeTimeout bounds how long a promotion probe over UDP is
	// allowed to go unanswered before the attempt is abandoned.
	datagramProbeTimeout = 3 * time.Second
	// datagramDemoteAfter demotes an established datagram transport back to
	// the tunnelled fallback after this much silence.
	datagramDemoteAfter = 15 * time.Second
	// totalFailureAfter triggers a reconnect once neither transport has
	// produced a pong for this long.
	totalFailureAfter = 60 * time.Second

	reconnectInitialBackoff = 1 * time.Second
	reconnectMaxBackoff     = 60 * time.Second
)

// Transport identifies which path a client is currently using to send
// voice, per the ping/liveness state machine.
type Transport int

const (
	// TransportTunnel sends voice frames inside the control connection
	// (KindUDPTunnel), used until a datagram path is confirmed live.
	TransportTunnel Transport = iota
	// TransportDatagram sends voice directly over UDP.
	TransportDatagram
)

func (t Transport) String() string {
	if t == TransportDatagram {
		return "datagram"
	}
	return "tunnel"
}

// pingAccounting keeps a Welford-style running mean/variance of one
// transport's round-trip times.
type pingAccounting struct {
	count    uint32
	average  float64
	variance float64
}

// observe folds one new round-trip sample (in milliseconds) into the
// running mean and variance.
func (p *pingAccounting) observe(sampleMillis float64) {
	oldAverage := p.average
	n := float64(p.count)
	newAverage := (oldAverage*n + sampleMillis) / (n + 1)
	if p.count > 0 {
		p.variance = p.variance + (oldAverage-newAverage)*(oldAverage-newAverage) + (1/n)*(sampleMillis-newAverage)*(sampleMillis-newAverage)
	}
	p.average = newAverage
	p.count++
}

// pingState runs the ping/liveness/transport-selection state machine.
// One pingState is owned per Client.
type pingState struct {
	mu sync.Mutex

	transport Transport

	tcp pingAccounting
	udp pingAccounting

	udpGood, udpLate, udpLost uint32

	lastTCPPong time.Time
	lastUDPPong time.Time
	probeSentAt time.Time
	probing     bool

	started time.Time
}

func newPingState() *pingState {
	now := time.Now()
	return &pingState{
		transport:   TransportTunnel,
		lastTCPPong: now,
		started:     now,
	}
}

// reset rewinds the liveness clocks and demotes to the tunnelled transport,
// called when the connection manager begins a reconnect so stale pong
// timestamps cannot immediately re-trigger the total-failure transition.
// RTT accounting and the good/late/lost counters survive the reset.
func (p *pingState) reset(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.transport = TransportTunnel
	p.probing = false
	p.lastTCPPong = now
	p.lastUDPPong = time.Time{}
}

// Transport reports the transport currently selected for outbound voice.
func (p *pingState) Transport() Transport {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.transport
}

// beginProbe records that a UDP ping was just sent in an attempt to promote
// to the datagram transport, so a later onDatagramPong/timeout check can
// evaluate the 3s window.
func (p *pingState) beginProbe(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.probing = true
	p.probeSentAt = now
}

// onTCPPong records a control-channel Ping response and folds its round
// trip into the reliable-transport accounting.
func (p *pingState) onTCPPong(now time.Time, rttMillis float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tcp.observe(rttMillis)
	p.lastTCPPong = now
}

// onDatagramPong records a successful UDP PingUDP round trip. The first one
// after a probe promotes the transport to datagram; subsequent ones
// simply refresh liveness.
func (p *pingState) onDatagramPong(now time.Time, rttMillis float64) (promoted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.udp.observe(rttMillis)
	p.udpGood++
	p.lastUDPPong = now
	p.probing = false
	if p.transport != TransportDatagram {
		p.transport = TransportDatagram
		return true
	}
	return false
}

// onDatagramDropped accounts for a datagram CryptState.Decrypt rejected,
// feeding the late/lost counters the Ping message reports: the voice stack
// passes late=true for a replay or reorder rejection and late=false for any
// other decrypt failure.
func (p *pingState) onDatagramDropped(late bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if late {
		p.udpLate++
	} else {
		p.udpLost++
	}
}

// tick evaluates the promotion-timeout, demotion, and total-failure
// transitions against the current time, returning what the caller should
// do next. It must be called periodically (driven by the same ticker that
// sends Ping messages).
type pingAction int

const (
	pingActionNone pingAction = iota
	pingActionDemoteToTunnel
	pingActionReconnect
)

func (p *pingState) tick(now time.Time) pingAction {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.probing && p.transport != TransportDatagram && now.Sub(p.probeSentAt) > datagramProbeTimeout {
		p.probing = false
	}

	if p.transport == TransportDatagram && now.Sub(p.lastUDPPong) > datagramDemoteAfter {
		p.transport = TransportTunnel
		return pingActionDemoteToTunnel
	}

	lastGood := p.lastTCPPong
	if p.transport == TransportDatagram && p.lastUDPPong.After(lastGood) {
		lastGood = p.lastUDPPong
	}
	if now.Sub(lastGood) > totalFailureAfter {
		return pingActionReconnect
	}

	return pingActionNone
}

// Snapshot returns the fields needed to populate an outbound Ping message
// and the AudioUDP good/late/lost counters.
type pingSnapshot struct {
	TCPPingAvg, TCPPingVar float64
	TCPPackets             uint32
	UDPPingAvg, UDPPingVar float64
	UDPPackets             uint32
	Good, Late, Lost       uint32
}

func (p *pingState) snapshot() pingSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return pingSnapshot{
		TCPPingAvg: p.tcp.average,
		TCPPingVar: p.tcp.variance,
		TCPPackets: p.tcp.count,
		UDPPingAvg: p.udp.average,
		UDPPingVar: p.udp.variance,
		UDPPackets: p.udp.count,
		Good:       p.udpGood,
		Late:       p.udpLate,
		Lost:       p.udpLost,
	}
}

// reconnectBackoff computes the exponential backoff delay for the Nth
// reconnect attempt (0-indexed), doubling from reconnectInitialBackoff up
// to reconnectMaxBackoff.
func reconnectBackoff(attempt int) time.Duration {
	d := reconnectInitialBackoff
	for i := 0; i < attempt; i++ {
		d *= 2
		if d >= reconnectMaxBackoff {
			return reconnectMaxBackoff
		}
	}
	return d
}
