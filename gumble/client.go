package gumble

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// ClientVersion is the packed protocol version this package speaks absent
// a Config.VersionOverride.
const ClientVersion = 1<<16 | 3<<8 | 0

// State is the lifecycle stage of a Client, as returned by Client.State.
type State uint32

const (
	// StateDisconnected means the client is no longer connected to the server.
	StateDisconnected State = iota

	// stateConnecting means the control connection is up but ServerSync
	// has not yet arrived. It is an internal state that will never be
	// returned by Client.State().
	stateConnecting

	// StateSynced means the client is connected and the channel/user
	// tables reflect the server's current state.
	StateSynced
)

// packSemver turns "MAJOR.MINOR.PATCH" into the packed uint32 the Version
// message carries.
func packSemver(s string) (uint32, error) {
	parts := strings.SplitN(s, ".", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("gumble: invalid semver %q", s)
	}
	var nums [3]uint64
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("gumble: invalid semver %q: %w", s, err)
		}
		nums[i] = n
	}
	return uint32(nums[0])<<16 | uint32(nums[1])<<8 | uint32(nums[2]), nil
}

// Client is a connected (or disconnected) session against a Mumble server.
// It glues together the control stack (Conn, commandQueue), the voice
// stack (VoiceStack, CryptState), the ping/liveness state machine
// (pingState), and the state replicator (replicator).
type Client struct {
	Config *Config
	Conn   *Conn

	Channels *Channels
	Users    *Users

	// VoiceTarget is the whisper/shout target currently tagging outbound
	// audio, or nil for normal channel speech. Set it via SetWhisper.
	VoiceTarget *VoiceTarget

	crypt *CryptState
	ping  *pingState
	voice *VoiceStack

	queue      *commandQueue
	dispatcher *dispatcher
	replicator *replicator

	encoder  Encoder
	sequence *sequencer
	pcm      *pcmQueue

	posMu      sync.Mutex
	positional []float32

	serverVersion uint32
	variant       WireVariant

	// Dial parameters, retained so the connection manager can re-dial with
	// the same transport settings.
	addr    string
	dialer  *net.Dialer
	tlsBase *tls.Config

	state              uint32 // atomic State
	synced             uint32 // atomic; 1 once the first ServerSync lands
	reconnecting       uint32 // atomic CAS guard around reconnectLoop
	serverMaxBandwidth uint32 // atomic; ServerSync/ServerConfig advertised ceiling

	voiceMu sync.Mutex // guards the voice field across reader/reconnect

	connect chan *RejectError // fired at most once, on ServerSync or failure
	end     chan struct{}     // closed exactly once, by Stop

	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Dial is an alias of DialWithDialer(new(net.Dialer), addr, config, nil).
func Dial(addr string, config *Config) (*Client, error) {
	return DialWithDialer(new(net.Dialer), addr, config, nil)
}

// DialWithDialer connects to the Mumble server at addr, completes the TLS
// handshake (preferring TLS 1.2, falling back to TLS 1.0 once), sends
// the Version and Authenticate packets, and blocks
// until ServerSync completes or the dial deadline/timeout elapses.
func DialWithDialer(dialer *net.Dialer, addr string, config *Config, tlsConfig *tls.Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client := newClient(config)
	client.addr = addr
	client.dialer = dialer
	client.tlsBase = tlsConfig

	if err := client.connectTransport(); err != nil {
		client.Stop()
		return nil, err
	}

	client.wg.Add(3)
	go client.writeRoutine()
	go client.pingRoutine()
	go client.audioSendRoutine()

	deadline := dialer.Deadline
	if deadline.IsZero() && dialer.Timeout > 0 {
		deadline = time.Now().Add(dialer.Timeout)
	}

	var timeout <-chan time.Time
	if !deadline.IsZero() {
		timer := time.NewTimer(time.Until(deadline))
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case <-timeout:
		client.Stop()
		return nil, ErrSynchronizationTimeout
	case rej := <-client.connect:
		if rej != nil {
			client.Stop()
			return nil, rej
		}
		return client, nil
	}
}

func newClient(config *Config) *Client {
	channels := newChannels()
	users := newUsers(channels)
	d := newDispatcher(config.CallbackWorkers)

	blobs := config.BlobCache
	if blobs == nil {
		blobs = newMemoryBlobCache()
	}

	c := &Client{
		Config:     config,
		Channels:   channels,
		Users:      users,
		crypt:      &CryptState{},
		ping:       newPingState(),
		dispatcher: d,
		sequence:   newSequencer(config.AudioInterval),
		pcm:        newPCMQueue(audioChannels(config) * config.AudioFrameSize()),
		connect:    make(chan *RejectError, 1),
		end:        make(chan struct{}),
	}
	c.queue = newCommandQueue(nil, config.CommandRateLimit)
	c.replicator = newReplicator(channels, users, d, &config.Listeners, &config.AudioListeners, blobs, c.queue, config.logger(), config.GreedyBlobPrefetch)
	c.replicator.attachClient(c)
	return c
}

func audioChannels(config *Config) int {
	if config.Stereo {
		return 2
	}
	return 1
}

func clientTLSConfig(config *Config, base *tls.Config) (*tls.Config, error) {
	var tc *tls.Config
	if base != nil {
		tc = base.Clone()
	} else {
		tc = &tls.Config{}
	}
	if config.CertificateFile != "" {
		cert, err := tls.LoadX509KeyPair(config.CertificateFile, config.CertificateKeyFile)
		if err != nil {
			return nil, &ConfigurationError{Field: "CertificateFile", Err: err}
		}
		tc.Certificates = []tls.Certificate{cert}
	}
	if tc.RootCAs == nil {
		if pool, err := x509.SystemCertPool(); err == nil {
			tc.RootCAs = pool
		}
	}
	return tc, nil
}

// connectTransport performs one TLS dial (preferring TLS 1.2, falling back
// to TLS 1.0 once), installs the new Conn, starts the
// reader, and replays the Version + Authenticate handshake. Used by both
// the initial dial and every reconnect attempt.
func (c *Client) connectTransport() error {
	tc, err := clientTLSConfig(c.Config, c.tlsBase)
	if err != nil {
		return err
	}
	tc.MinVersion = tls.VersionTLS12

	conn, err := tls.DialWithDialer(c.dialer, "tcp", c.addr, tc)
	if err != nil {
		fallback := tc.Clone()
		fallback.MinVersion = tls.VersionTLS10
		conn, err = tls.DialWithDialer(c.dialer, "tcp", c.addr, fallback)
		if err != nil {
			return &TransportError{Err: err}
		}
	}

	c.Conn = NewConn(conn)
	c.queue.setConn(c.Conn)
	c.setState(stateConnecting)

	c.wg.Add(1)
	go c.readRoutine()

	if err := c.sendHandshake(); err != nil {
		c.Conn.Close()
		return err
	}
	return nil
}

// sendHandshake writes the Version and Authenticate packets directly,
// bypassing the command queue: the queue's rate limiter only governs
// traffic once ServerSync completes.
func (c *Client) sendHandshake() error {
	version := uint32(ClientVersion)
	release := "gumble"
	os := "unknown"
	osVersion := "unknown"

	if ov := c.Config.VersionOverride; ov != nil {
		if ov.Release != "" {
			release = ov.Release
		}
		if ov.OS != "" {
			os = ov.OS
		}
		if ov.OSVersion != "" {
			osVersion = ov.OSVersion
		}
		switch {
		case ov.VersionUint32 != nil:
			version = *ov.VersionUint32
		case ov.Semver != "":
			packed, err := packSemver(ov.Semver)
			if err != nil {
				return &ConfigurationError{Field: "VersionOverride.Semver", Err: err}
			}
			version = packed
		}
	}
	versionV2 := uint64(version) << 48

	versionMsg := &MumbleProto.Version{
		Version:   &version,
		Release:   &release,
		Os:        &os,
		OsVersion: &osVersion,
		VersionV2: &versionV2,
	}
	if err := c.Conn.WriteProto(versionMsg); err != nil {
		return &TransportError{Err: err}
	}

	opus := true
	clientType := int32(c.Config.ClientType)
	auth := &MumbleProto.Authenticate{
		Username:   &c.Config.Username,
		Tokens:     c.Config.Tokens,
		Opus:       &opus,
		ClientType: &clientType,
	}
	if c.Config.Password != "" {
		auth.Password = &c.Config.Password
	}
	if err := c.Conn.WriteProto(auth); err != nil {
		return &TransportError{Err: err}
	}
	return nil
}

// State returns the Client's current lifecycle stage.
func (c *Client) State() State {
	return State(atomic.LoadUint32(&c.state))
}

func (c *Client) setState(s State) { atomic.StoreUint32(&c.state, uint32(s)) }

// readRoutine is the reliable-channel reader: every framed message is
// dispatched exactly once, in receive order.
func (c *Client) readRoutine() {
	defer c.wg.Done()
	for {
		msg, err := c.Conn.ReadMessage()
		if err != nil {
			select {
			case <-c.end:
			default:
				c.replicator.fireDisconnect(DisconnectError, err.Error())
				if c.Config.Reconnect && atomic.LoadUint32(&c.synced) == 1 {
					go c.reconnectLoop()
				} else {
					c.selectReject(&RejectError{Type: "TransportFailed", Reason: err.Error()})
				}
			}
			return
		}

		switch msg.kind {
		case MumbleProto.KindUDPTunnel:
			c.handleTunnelledAudio(msg.payload)
			continue
		case MumbleProto.KindCryptSetup:
			c.handleCryptSetup(msg.payload)
			continue
		case MumbleProto.KindPing:
			c.handleTCPPing(msg.payload)
			continue
		case MumbleProto.KindVersion:
			c.handleServerVersion(msg.payload)
		}

		if err := c.replicator.handle(msg.kind, msg.payload); err != nil {
			if rej, ok := err.(*RejectError); ok {
				c.selectReject(rej)
				return
			}
			c.Config.logger().Warn("gumble: dispatch error", "kind", msg.kind, "error", err)
			continue
		}

		if msg.kind == MumbleProto.KindServerSync {
			c.setState(StateSynced)
			atomic.StoreUint32(&c.synced, 1)
			c.selectReject(nil)
			c.startVoiceStack()
		}
	}
}

// reconnectLoop re-dials the control transport with exponential backoff
// (1s doubling to 60s, reset on success), replaying the
// Version + Authenticate handshake each attempt. At most one loop runs at
// a time; the datagram path is torn down first and re-promoted by the
// fresh session's CryptSetup.
func (c *Client) reconnectLoop() {
	if !atomic.CompareAndSwapUint32(&c.reconnecting, 0, 1) {
		return
	}
	defer atomic.StoreUint32(&c.reconnecting, 0)

	c.teardownVoice()
	c.serverVersion = 0

	for attempt := 0; ; attempt++ {
		backoff := reconnectBackoff(attempt)
		c.Config.logger().Info("gumble: reconnecting", "attempt", attempt+1, "backoff", backoff)
		select {
		case <-c.end:
			return
		case <-time.After(backoff):
		}

		c.ping.reset(time.Now())
		if err := c.connectTransport(); err != nil {
			c.Config.logger().Warn("gumble: reconnect failed", "attempt", attempt+1, "error", err)
			continue
		}
		c.Config.logger().Info("gumble: reconnected", "attempts", attempt+1)
		return
	}
}

// teardownVoice closes and forgets the datagram stack; the next CryptSetup
// rebuilds it.
func (c *Client) teardownVoice() {
	c.voiceMu.Lock()
	voice := c.voice
	c.voice = nil
	c.voiceMu.Unlock()
	if voice != nil {
		voice.Close()
	}
}

// voiceStack returns the current datagram stack, or nil while tunnelled
// with no socket.
func (c *Client) voiceStack() *VoiceStack {
	c.voiceMu.Lock()
	defer c.voiceMu.Unlock()
	return c.voice
}

// selectReject delivers the one-shot readiness result.
func (c *Client) selectReject(rej *RejectError) {
	select {
	case c.connect <- rej:
	default:
	}
}

// handleServerVersion records the peer's protocol version so the voice
// stack can pick the matching wire variant.
func (c *Client) handleServerVersion(payload []byte) {
	m := &MumbleProto.Version{}
	if err := proto.Unmarshal(payload, m); err != nil {
		return
	}
	c.serverVersion = m.GetVersion()
	c.variant = VariantForVersion(c.serverVersion)
}

func (c *Client) handleTCPPing(payload []byte) {
	m := &MumbleProto.Ping{}
	if err := proto.Unmarshal(payload, m); err != nil {
		return
	}
	now := time.Now()
	rtt := float64(uint64(now.UnixNano())-m.GetTimestamp()) / 1e6
	c.ping.onTCPPong(now, rtt)
}

// handleCryptSetup dispatches the three CryptSetup shapes: full replace,
// decrypt-IV-only resync, or an empty "send your nonce back" request.
func (c *Client) handleCryptSetup(payload []byte) {
	m := &MumbleProto.CryptSetup{}
	if err := proto.Unmarshal(payload, m); err != nil {
		return
	}
	switch {
	case len(m.Key) > 0:
		if err := c.crypt.SetKey(m.Key, m.ClientNonce, m.ServerNonce); err != nil {
			c.Config.logger().Warn("gumble: crypt setup", "error", err)
			return
		}
		c.startVoiceStack()
	case len(m.ServerNonce) > 0:
		if err := c.crypt.SetDecryptIV(m.ServerNonce); err != nil {
			c.Config.logger().Warn("gumble: crypt resync", "error", err)
		}
	default:
		iv := c.crypt.EncryptIV()
		nonce := append([]byte(nil), iv[:]...)
		c.queue.push(&MumbleProto.CryptSetup{ClientNonce: nonce})
	}
}

// handleTunnelledAudio parses one voice frame received inside the TLS
// stream. Tunnelled frames are never OCB2-encrypted; the TLS layer already
// protects them.
func (c *Client) handleTunnelledAudio(payload []byte) {
	if len(payload) == 0 {
		return
	}
	d, err := parseDatagram(c.variant, payload)
	if err != nil {
		if errors.Is(err, ErrCodecNotSupported) {
			c.Config.logger().Debug("gumble: dropping non-Opus tunnelled frame")
		}
		return
	}
	if d.kind == datagramAudio {
		c.handleInboundAudio(d.frame)
	}
}

// startVoiceStack lazily brings up the UDP datagram socket once both the
// cipher key material and the server's negotiated version are known, then
// fires the initial promotion probe. Safe to call more
// than once.
func (c *Client) startVoiceStack() {
	c.voiceMu.Lock()
	if c.voice != nil || !c.crypt.Ready() || c.serverVersion == 0 {
		c.voiceMu.Unlock()
		return
	}

	voice, err := NewVoiceStack(c.Conn.conn.RemoteAddr().String(), c.crypt, c.ping, c.variant, func(frame []byte) error {
		c.queue.push(frame)
		return nil
	})
	if err != nil {
		c.voiceMu.Unlock()
		c.Config.logger().Warn("gumble: voice stack dial failed, staying tunnelled", "error", err)
		return
	}
	c.voice = voice
	c.voiceMu.Unlock()

	voice.OnAudio(c.handleInboundAudio)
	voice.OnPingEcho(func(now time.Time, rttMillis float64, promoted bool) {
		if promoted {
			c.Config.logger().Info("gumble: promoted to datagram voice", "rtt_ms", rttMillis)
			c.updateBitrate()
		}
	})

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		voice.Run()
	}()

	c.ping.beginProbe(time.Now())
	if err := voice.SendPing(); err != nil {
		c.Config.logger().Warn("gumble: initial datagram probe failed", "error", err)
	}
}

func (c *Client) handleInboundAudio(f audioFrame) {
	user := c.Users.Get(f.session)
	if user == nil {
		return
	}
	chunk, err := user.decodeQueue.decode(f.opus, f.sequence, AudioCodecOpus, f.target, time.Now())
	if err != nil {
		return
	}
	for _, l := range c.Config.AudioListeners.snapshot() {
		l.OnAudioStream(&AudioStreamEvent{User: user, Chunk: chunk})
	}
}

// writeRoutine drains the outbound command queue.
func (c *Client) writeRoutine() {
	defer c.wg.Done()
	c.queue.run(c.end)
}

// pingRoutine drives the periodic Ping/transport-selection state machine
//: it sends a control-channel ping every pingInterval,
// probes the datagram transport, and demotes or triggers a reconnect per
// pingState's transitions.
func (c *Client) pingRoutine() {
	defer c.wg.Done()
	t := time.NewTicker(pingInterval)
	defer t.Stop()
	for {
		select {
		case <-c.end:
			return
		case now := <-t.C:
			snap := c.ping.snapshot()
			ts := uint64(now.UnixNano())
			udpAvg := float32(snap.UDPPingAvg)
			udpVar := float32(snap.UDPPingVar)
			tcpAvg := float32(snap.TCPPingAvg)
			tcpVar := float32(snap.TCPPingVar)
			c.queue.push(&MumbleProto.Ping{
				Timestamp:      &ts,
				Good:           &snap.Good,
				Late:           &snap.Late,
				Lost:           &snap.Lost,
				UdpPacketsRecv: &snap.UDPPackets,
				TcpPacketsRecv: &snap.TCPPackets,
				UdpPingAvg:     &udpAvg,
				UdpPingVar:     &udpVar,
				TcpPingAvg:     &tcpAvg,
				TcpPingVar:     &tcpVar,
			})

			if voice := c.voiceStack(); voice != nil {
				c.ping.beginProbe(now)
				_ = voice.SendPing()
			}

			switch c.ping.tick(now) {
			case pingActionDemoteToTunnel:
				c.Config.logger().Info("gumble: demoting to tunnelled voice after silence")
				c.updateBitrate()
			case pingActionReconnect:
				if c.Config.Reconnect && atomic.LoadUint32(&c.synced) == 1 {
					// Closing the transport unblocks the reader, which fires
					// the disconnect event and owns the reconnect handoff.
					c.Conn.Close()
					continue
				}
				c.replicator.fireDisconnect(DisconnectError, "ping timeout")
				c.selectReject(&RejectError{Type: "TransportFailed", Reason: "ping timeout"})
				go c.Stop()
				return
			}
		}
	}
}

// audioSendRoutine is the outbound audio sender: it wakes on full
// frames, updates the sequence counter, encodes
// through Opus, and hands the result to the voice stack, sleeping until
// the next frame boundary rather than busy-looping.
func (c *Client) audioSendRoutine() {
	defer c.wg.Done()
	interval := c.Config.AudioInterval
	if interval <= 0 {
		interval = AudioDefaultInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-c.end:
			return
		case now := <-t.C:
			frame, ok := c.pcm.popFrame()
			if !ok || c.encoder == nil {
				continue
			}
			seq := c.sequence.next(now)
			encoded, err := c.encoder.Encode(frame, c.Config.AudioDataBytes)
			if err != nil {
				c.Config.logger().Warn("gumble: opus encode failed", "error", err)
				continue
			}
			target := uint32(0)
			if c.VoiceTarget != nil {
				target = c.VoiceTarget.ID
			}
			pos := c.positionalSnapshot()

			if voice := c.voiceStack(); voice != nil {
				err = voice.SendAudio(0, seq, target, encoded, pos)
			} else {
				// No datagram socket at all: tunnel the frame through the
				// control channel.
				var plaintext []byte
				plaintext, err = encodeAudioPacket(c.variant, seq, target, encoded, pos)
				if err == nil {
					c.queue.push(plaintext)
				}
			}
			if err != nil {
				c.Config.logger().Warn("gumble: send audio failed", "error", err)
			}
		}
	}
}

// SetPositional attaches a 3-coordinate listener position to every
// subsequent outbound audio packet; ClearPositional reverts
// to non-positional speech.
func (c *Client) SetPositional(x, y, z float32) {
	c.posMu.Lock()
	c.positional = []float32{x, y, z}
	c.posMu.Unlock()
}

// ClearPositional stops sending positional coordinates.
func (c *Client) ClearPositional() {
	c.posMu.Lock()
	c.positional = nil
	c.posMu.Unlock()
}

func (c *Client) positionalSnapshot() []float32 {
	c.posMu.Lock()
	defer c.posMu.Unlock()
	if c.positional == nil {
		return nil
	}
	return append([]float32(nil), c.positional...)
}

// setServerBandwidth records the server-advertised bitrate ceiling and
// re-budgets the encoder.
func (c *Client) setServerBandwidth(bps int) {
	if bps <= 0 {
		return
	}
	atomic.StoreUint32(&c.serverMaxBandwidth, uint32(bps))
	c.updateBitrate()
}

// updateBitrate recomputes the Opus bitrate from the effective bandwidth
// ceiling and the current transport's per-packet overhead; called on every
// promotion, demotion, and server-limit change.
func (c *Client) updateBitrate() {
	enc := c.encoder
	if enc == nil {
		return
	}
	ceiling := c.Config.AudioBandwidth
	if sb := int(atomic.LoadUint32(&c.serverMaxBandwidth)); sb > 0 && sb < ceiling {
		ceiling = sb
	}
	budget := bitrateBudget(ceiling, c.Config.AudioInterval, c.ping.Transport())
	if err := enc.SetBitrate(budget); err != nil {
		c.Config.logger().Warn("gumble: set bitrate", "bps", budget, "error", err)
	}
}

// AddPCM accepts interleaved 16-bit little-endian PCM samples at the
// configured sample rate and channel count, queuing them for the audio
// sender. It lazily constructs the
// Opus encoder on first use.
func (c *Client) AddPCM(samples []int16) error {
	if c.State() != StateSynced {
		return ErrNotConnected
	}
	if c.encoder == nil {
		channels := audioChannels(c.Config)
		enc, err := newOpusEncoder(c.Config.AudioSampleRate, channels, c.Config.OpusProfile)
		if err != nil {
			return err
		}
		c.encoder = enc
		c.updateBitrate()
	}
	c.pcm.push(samples)
	return nil
}

// SetWhisper registers a whisper/shout target set and starts tagging
// outbound audio packets with it, always as voice target id 2. Pass
// channel=true to target the listed channels themselves (their sub-channels
// and linked channels are not included), false to target individual user
// sessions.
func (c *Client) SetWhisper(ids []uint32, channel bool) error {
	if c.State() == StateDisconnected {
		return ErrNotConnected
	}
	vt, err := NewVoiceTarget(2)
	if err != nil {
		return err
	}
	if channel {
		for _, id := range ids {
			vt.AddChannel(id, false, false, "")
		}
	} else {
		vt.AddUser(ids...)
	}
	c.queue.push(vt.packet())
	c.VoiceTarget = vt
	return nil
}

// RemoveWhisper clears any active whisper target; outbound audio reverts
// to plain channel speech.
func (c *Client) RemoveWhisper() {
	c.VoiceTarget = nil
}

// RequestBlob queues an on-demand fetch for a comment, avatar, or channel
// description blob by entity id.
func (c *Client) RequestBlob(kind BlobKind, id uint32) {
	c.replicator.requestBlob(kind, id)
}

// Reauthenticate resends the access token list, e.g. after the server
// grants a new registered-user token mid-session.
func (c *Client) Reauthenticate(tokens AccessTokens) {
	c.Config.Tokens = tokens
	c.queue.push(&MumbleProto.Authenticate{Tokens: tokens})
}

// Move relocates a user (commonly Users.Myself()) to a different channel.
func (c *Client) Move(session, channelID uint32) {
	c.queue.push(newMoveCommand(session, channelID))
}

// ModifyUserState applies a subset of mute/deaf/comment/texture/etc.
// changes to a user.
func (c *Client) ModifyUserState(session uint32, delta UserStateDelta) {
	c.queue.push(newModifyUserStateCommand(session, delta))
}

// RemoveUser kicks (or, with ban=true, bans) a user from the server.
func (c *Client) RemoveUser(session uint32, reason string, ban bool) {
	c.queue.push(newRemoveUserCommand(session, reason, ban))
}

// CreateChannel asks the server to create a new channel under parent.
// The server assigns the new channel's id; it arrives via a subsequent
// ChannelState.
func (c *Client) CreateChannel(parent uint32, name string, temporary bool) {
	c.queue.push(newCreateChannelCommand(parent, name, temporary))
}

// RemoveChannel asks the server to delete a channel.
func (c *Client) RemoveChannel(id uint32) {
	c.queue.push(newRemoveChannelCommand(id))
}

// UpdateChannel applies a subset of name/parent/position/max-users/
// description/links changes to an existing channel.
func (c *Client) UpdateChannel(id uint32, delta ChannelStateDelta) {
	c.queue.push(newUpdateChannelCommand(id, delta))
}

// QueryACL requests the current ACL view for a channel; the response
// arrives asynchronously as an ACLEvent.
func (c *Client) QueryACL(channelID uint32) {
	c.queue.push(newQueryACLCommand(channelID))
}

// UpdateACL replaces a channel's ACL view wholesale.
func (c *Client) UpdateACL(channelID uint32, inherit bool, groups map[string]*ACLGroup, entries []*ACLEntry) {
	c.queue.push(newUpdateACLCommand(channelID, inherit, groups, entries))
}

// Send transmits a text message to the given channels and/or users,
// enforcing the server's advertised length limits client-side.
func (c *Client) Send(message string, channelIDs, userIDs []uint32) error {
	if strings.Contains(message, "<img") && strings.Contains(message, "src") {
		if err := validateImagePayload([]byte(message), c.replicator.imageLimit()); err != nil {
			return err
		}
	} else if err := validateTextMessage(message, c.replicator.textLimit()); err != nil {
		return err
	}
	c.queue.push(&MumbleProto.TextMessage{
		ChannelId: channelIDs,
		Session:   userIDs,
		Message:   &message,
	})
	return nil
}

// Stop tears the session down. It is idempotent and safe to call from any
// goroutine, any number of times: it sets a
// disconnect flag, releases the readiness latch, joins workers with a
// bounded timeout, and closes sockets. Callbacks already running complete;
// none are newly invoked.
func (c *Client) Stop() {
	c.stopOnce.Do(func() {
		close(c.end)
		c.selectReject(&RejectError{Type: "Disconnected", Reason: "stopped locally"})
		c.setState(StateDisconnected)

		if c.Conn != nil {
			c.Conn.Close()
		}
		c.teardownVoice()

		done := make(chan struct{})
		go func() {
			c.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(2 * pingInterval):
		}

		c.dispatcher.stop()
	})
}
