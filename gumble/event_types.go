package gumble

import "time"

// ConnectEvent is delivered once, via EventListener.OnConnect, when
// ServerSync completes and the staged callback commit has run.
type ConnectEvent struct {
	Client      *Client
	WelcomeText string
}

// DisconnectType categorizes why a session ended, for DisconnectEvent.
type DisconnectType int

const (
	// DisconnectError covers any transport failure or timeout.
	DisconnectError DisconnectType = iota
	// DisconnectKicked means the server removed the user explicitly.
	DisconnectKicked
	// DisconnectBanned means the server removed and banned the user.
	DisconnectBanned
	// DisconnectUser means the embedder called Client.Stop.
	DisconnectUser
)

// DisconnectEvent is delivered via EventListener.OnDisconnect.
type DisconnectEvent struct {
	Type   DisconnectType
	String string
}

// TextMessageEvent is delivered via EventListener.OnTextMessage.
type TextMessageEvent struct {
	Sender   *User // nil for a server-originated message
	Channels []*Channel
	Users    []*User
	Message  string
}

// PermissionDeniedEvent is delivered via EventListener.OnPermissionDenied.
// Permission errors are non-fatal to the session.
type PermissionDeniedEvent struct {
	Type    string
	Reason  string
	Channel *Channel
	User    *User
}

// UserListEvent is delivered via EventListener.OnUserList in response to a
// registered-user database query.
type UserListEvent struct {
	Users []UserListEntry
}

// UserListEntry is one registered-user record.
type UserListEntry struct {
	UserID      uint32
	Name        string
	LastSeen    string
	LastChannel uint32
}

// BanListEvent is delivered via EventListener.OnBanList.
type BanListEvent struct {
	Bans []BanEntry
}

// BanEntry is a single ban record.
type BanEntry struct {
	Address []byte
	Mask    uint32
	Reason  string
}

// ContextActionChangeType distinguishes add vs. remove in
// ContextActionChangeEvent.
type ContextActionChangeType int

const (
	ContextActionAdd ContextActionChangeType = iota
	ContextActionRemove
)

// ContextActionChangeEvent is delivered via
// EventListener.OnContextActionChange when the server registers or removes
// a context-menu action.
type ContextActionChangeEvent struct {
	Type   ContextActionChangeType
	Action string
	Text   string
}

// ServerConfigEvent is delivered via EventListener.OnServerConfig once per
// session, carrying the limits used by command size validation.
type ServerConfigEvent struct {
	MaxBandwidth       uint32
	MaxMessageLength   uint32
	MaxImageLength     uint32
	MaxUsers           uint32
	AllowHTML          bool
	WelcomeText        string
}

// AudioStreamEvent is delivered via AudioListener.OnAudioStream for each
// decoded chunk.
type AudioStreamEvent struct {
	User  *User
	Chunk SoundChunk
}

// SoundChunk is one decoded inbound audio chunk.
type SoundChunk struct {
	PCM            []int16
	Sequence       uint64
	CalculatedTime time.Time
	Type           AudioCodec
	Target         uint32
	Timestamp      time.Time
}
