package gumble

import "errors"

// Sentinel errors for the library's failure conditions. Dial and
// DialWithDialer return a *RejectError, a *ConfigurationError, a
// *TransportError (when the initial TLS dial fails) or
// ErrSynchronizationTimeout; once the session is up, recoverable
// conditions are absorbed by the connection manager.
var (
	// ErrSynchronizationTimeout is returned by Dial/DialWithDialer when the
	// server does not complete ServerSync before the dial deadline.
	ErrSynchronizationTimeout = errors.New("gumble: synchronization timeout")

	// ErrTextTooLong is returned synchronously from command construction
	// when an outbound TextMessage body exceeds the server's advertised
	// max-message-length and does not look like an <img> tag.
	ErrTextTooLong = errors.New("gumble: text message exceeds server maximum length")

	// ErrImageTooBig is returned synchronously from command construction
	// when an outbound TextMessage body contains an <img... src tag
	// exceeding the server's advertised max-image-length.
	ErrImageTooBig = errors.New("gumble: image message exceeds server maximum length")

	// ErrInvalidBandwidth is a ConfigurationError for a non-positive
	// configured audio bitrate ceiling.
	ErrInvalidBandwidth = errors.New("gumble: invalid bandwidth configuration")

	// ErrInvalidChannels is a ConfigurationError for an audio channel count
	// other than 1 (mono) or 2 (stereo).
	ErrInvalidChannels = errors.New("gumble: invalid channel count, must be 1 or 2")

	// ErrMissingCertificate is a ConfigurationError for a certificate file
	// configured without its key file, or a key file without its
	// certificate file.
	ErrMissingCertificate = errors.New("gumble: unable to load client certificate")

	// ErrNotConnected is returned by AddPCM while the Client is not in
	// StateSynced, and by SetWhisper while it is in StateDisconnected.
	ErrNotConnected = errors.New("gumble: not connected")

	// ErrVoiceTargetRange is returned by NewVoiceTarget for target ids
	// outside the valid 1..30 whisper-target range.
	ErrVoiceTargetRange = errors.New("gumble: voice target id must be in [1, 30]")

	// ErrCodecNotSupported marks an inbound voice packet carrying a legacy
	// CELT/Speex payload; the packet is logged and dropped.
	ErrCodecNotSupported = errors.New("gumble: unsupported audio codec")
)

// RejectError wraps a server-sent Reject message. It is fatal: the
// session is not retried.
type RejectError struct {
	// Type is the server's machine-readable rejection category, mirroring
	// MumbleProto.Reject_RejectType (e.g. "WrongServerPW", "ServerFull").
	Type string
	// Reason is the server's human-readable explanation, if any.
	Reason string
}

func (e *RejectError) Error() string {
	if e.Reason != "" {
		return "gumble: connection rejected: " + e.Type + ": " + e.Reason
	}
	return "gumble: connection rejected: " + e.Type
}

// TransportError wraps a recoverable TCP/TLS failure. The connection
// manager decides whether to retry based on Config.Reconnect.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string { return "gumble: transport failed: " + e.Err.Error() }
func (e *TransportError) Unwrap() error { return e.Err }

// ConfigurationError wraps one of the sentinel configuration errors above
// with the offending field name.
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return "gumble: configuration error: " + e.Field + ": " + e.Err.Error()
}
func (e *ConfigurationError) Unwrap() error { return e.Err }
