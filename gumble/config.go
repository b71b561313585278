package gumble

import (
	"log/slog"
	"time"
)

// AccessTokens is the list of server ACL tokens sent during authentication
// and resendable at any time via Client.Reauthenticate.
type AccessTokens []string

// VersionOverride controls the initial Version message sent during the TLS handshake.
// If fields are empty/nil, gumble's defaults are used.
type VersionOverride struct {
	Release   string // e.g. "my-bot/2.3"
	OS        string // e.g. "windows" or "linux"
	OSVersion string // e.g. "amd64"
	// One of Semver or VersionUint32 may be used to set Version:
	Semver        string  // "MAJOR.MINOR.PATCH" -> packed (maj<<16 | min<<8 | pat)
	VersionUint32 *uint32 // direct override, if you already have the packed value
}

// ClientType selects how the server should treat this connection.
type ClientType int32

const (
	ClientTypeUser ClientType = iota
	ClientTypeBot
)

// OpusProfile selects the Opus encoder application mode.
type OpusProfile int

const (
	OpusProfileAudio OpusProfile = iota
	OpusProfileVoip
	OpusProfileRestrictedLowDelay
)

// Config holds the Mumble configuration used by Client. A single Config should
// not be shared between multiple Client instances.
type Config struct {
	// Host and Port name the server to dial; DialWithDialer also accepts an
	// explicit "host:port" address, in which case these are informational.
	Host string
	Port int

	// User name used when authenticating with the server.
	Username string
	// Password used when authenticating with the server. A password is not
	// usually required to connect to a server.
	Password string

	// CertificateFile and CertificateKeyFile, if set, are loaded into the
	// TLS client certificate used for authentication.
	CertificateFile    string
	CertificateKeyFile string

	// If set, overrides the initial Version packet fields sent to the server.
	VersionOverride *VersionOverride

	// The initial access tokens to the send to the server. Access tokens can be
	// resent to the server using Client.Reauthenticate.
	Tokens AccessTokens

	// ClientType reported in the Authenticate packet.
	ClientType ClientType

	// Reconnect enables automatic reconnection with exponential backoff
	// after a recoverable TransportFailed/Timeout.
	Reconnect bool

	// Stereo selects 2-channel PCM; false selects mono.
	Stereo bool

	// AudioInterval is the interval at which audio packets are sent. Valid
	// values are: 10ms, 20ms, 40ms, and 60ms.
	AudioInterval time.Duration
	// AudioDataBytes is the number of bytes that an audio frame can use.
	AudioDataBytes int
	// OpusProfile selects the Opus encoder application mode.
	OpusProfile OpusProfile
	// AudioSampleRate is the PCM sample rate accepted by add_pcm; Mumble
	// servers speak 48kHz exclusively.
	AudioSampleRate int
	// AudioBandwidth is the configured bitrate ceiling in bits/second; the
	// effective ceiling is min(AudioBandwidth, server-advertised maximum).
	AudioBandwidth int

	// BlobCache stores comment/avatar/description blobs. Nil uses an
	// in-memory (non-persistent) cache; gumble/blobcache provides a
	// SQLite-backed implementation for embedders that want blobs to
	// survive a restart.
	BlobCache BlobCache
	// GreedyBlobPrefetch requests every advertised blob hash that misses
	// the cache immediately; without it, a missing blob is fetched only
	// when Client.RequestBlob is called for it.
	GreedyBlobPrefetch bool

	// CallbackWorkers sizes the dispatcher's fixed worker pool (default 1).
	CallbackWorkers int

	// CommandRateLimit caps outbound non-audio commands per second before
	// ServerSync; raised to the live user count once the roster is known
	CommandRateLimit int

	// Debug enables verbose logging of raw wire bytes and OCB2 IV deltas.
	Debug bool

	// Logger receives all library log output; defaults to slog.Default().
	Logger *slog.Logger

	// The event listeners used when client events are triggered.
	Listeners      Listeners
	AudioListeners AudioListeners
}

// NewConfig returns a new Config struct with default values set.
func NewConfig() *Config {
	return &Config{
		AudioInterval:    AudioDefaultInterval,
		AudioDataBytes:   AudioDefaultDataBytes,
		AudioSampleRate:  AudioSampleRate,
		AudioBandwidth:   72000,
		ClientType:       ClientTypeUser,
		OpusProfile:      OpusProfileVoip,
		CallbackWorkers:  1,
		CommandRateLimit: 5,
	}
}

// Attach is an alias of c.Listeners.Attach.
func (c *Config) Attach(l EventListener) Detacher {
	return c.Listeners.Attach(l)
}

// AttachAudio is an alias of c.AudioListeners.Attach.
func (c *Config) AttachAudio(l AudioListener) Detacher {
	return c.AudioListeners.Attach(l)
}

// AudioFrameSize returns the appropriate audio frame size, based off of the
// audio interval.
func (c *Config) AudioFrameSize() int {
	return int(c.AudioInterval * AudioSampleRate / time.Second)
}

// logger returns the configured logger, or the package default.
func (c *Config) logger() *slog.Logger {
	if c != nil && c.Logger != nil {
		return c.Logger
	}
	return defaultLogger()
}

// Validate checks the fields that can produce a ConfigurationError
// before any network traffic happens.
func (c *Config) Validate() error {
	if c.AudioBandwidth <= 0 {
		return &ConfigurationError{Field: "AudioBandwidth", Err: ErrInvalidBandwidth}
	}
	if (c.CertificateFile == "") != (c.CertificateKeyFile == "") {
		return &ConfigurationError{Field: "CertificateFile", Err: ErrMissingCertificate}
	}
	return nil
}
