package gumble

import "sync"

// UserChangeMask identifies which User fields changed in a UserChangeEvent.
type UserChangeMask uint32

const (
	UserChangeConnected UserChangeMask = 1 << iota
	UserChangeDisconnected
	UserChangeName
	UserChangeChannel
	UserChangeComment
	UserChangeAvatar
	UserChangeMute
	UserChangeSelfMute
	UserChangeDeaf
	UserChangeSelfDeaf
	UserChangeSuppress
	UserChangePrioritySpeaker
	UserChangeRecording
	UserChangeStats
)

// User is an entry in the server's connected-user roster.
type User struct {
	Session     uint32
	Name        string
	IdentityHash string

	channelID uint32

	Mute, SelfMute       bool
	Deaf, SelfDeaf       bool
	Suppressed           bool
	PrioritySpeaker      bool
	Recording            bool

	comment       string
	commentHash   []byte
	avatarHash    []byte

	// decodeQueue is this user's inbound audio decode queue; every user
	// created from a UserState owns exactly one, whose Opus decoder is
	// created on the first audio packet.
	decodeQueue *userDecodeQueue

	users *Users
}

// Channel resolves this user's current channel.
func (u *User) Channel() *Channel {
	if u.users == nil || u.users.channels == nil {
		return nil
	}
	return u.users.channels.Get(u.channelID)
}

// ChannelID returns the raw channel id the user currently occupies.
func (u *User) ChannelID() uint32 { return u.channelID }

// Comment returns the user's cached comment text.
func (u *User) Comment() string { return u.comment }

// CommentHash returns the opaque blob hash for the user's comment.
func (u *User) CommentHash() []byte { return u.commentHash }

// AvatarHash returns the opaque blob hash for the user's avatar/texture.
func (u *User) AvatarHash() []byte { return u.avatarHash }

type userSnapshot struct {
	Name        string
	ChannelID   uint32
	Comment     string
	CommentHash []byte
	AvatarHash  []byte
	Mute, SelfMute, Deaf, SelfDeaf bool
	Suppressed, PrioritySpeaker, Recording bool
}

func (u *User) snapshot() userSnapshot {
	return userSnapshot{
		Name: u.Name, ChannelID: u.channelID, Comment: u.comment,
		CommentHash: u.commentHash, AvatarHash: u.avatarHash,
		Mute: u.Mute, SelfMute: u.SelfMute, Deaf: u.Deaf, SelfDeaf: u.SelfDeaf,
		Suppressed: u.Suppressed, PrioritySpeaker: u.PrioritySpeaker, Recording: u.Recording,
	}
}

// Users is the Facade-owned, mutex-guarded user table keyed by session id.
type Users struct {
	mu       sync.Mutex
	bySession map[uint32]*User
	myself    uint32
	hasMyself bool
	channels  *Channels
}

func newUsers(channels *Channels) *Users {
	return &Users{bySession: make(map[uint32]*User), channels: channels}
}

// Get returns the user with the given session id, or nil.
func (us *Users) Get(session uint32) *User {
	us.mu.Lock()
	defer us.mu.Unlock()
	return us.bySession[session]
}

// Myself returns the entry for the locally-controlled user, or nil before
// ServerSync has been received.
func (us *Users) Myself() *User {
	us.mu.Lock()
	defer us.mu.Unlock()
	if !us.hasMyself {
		return nil
	}
	return us.bySession[us.myself]
}

// All returns every known user, order unspecified.
func (us *Users) All() []*User {
	us.mu.Lock()
	defer us.mu.Unlock()
	out := make([]*User, 0, len(us.bySession))
	for _, u := range us.bySession {
		out = append(out, u)
	}
	return out
}

func (us *Users) clear() {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.bySession = make(map[uint32]*User)
	us.hasMyself = false
}

func (us *Users) setMyself(session uint32) {
	us.mu.Lock()
	defer us.mu.Unlock()
	us.myself = session
	us.hasMyself = true
}

// UserChangeEvent is delivered via EventListener.OnUserChange.
type UserChangeEvent struct {
	User     *User
	Actor    *User
	Mask     UserChangeMask
	Previous userSnapshot
}
