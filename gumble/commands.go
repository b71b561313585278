package gumble

import (
	"container/list"
	"fmt"
	"sync"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// Command size limits enforced before a message ever reaches the wire.
// The server's own limits, once known from a ServerConfig message,
// replace these.
const (
	defaultMaxTextMessageLength  = 5000
	defaultMaxImageMessageLength = 131072
)

// newMoveCommand builds the UserState packet that relocates a user to a
// different channel.
func newMoveCommand(session, channelID uint32) proto.Message {
	return &MumbleProto.UserState{
		Session:   proto.Uint32(session),
		ChannelId: proto.Uint32(channelID),
	}
}

// UserStateDelta carries the subset of UserState fields a ModifyUserState
// command may change. Every field is
// left nil/empty unless the caller sets it; only set fields reach the wire.
type UserStateDelta struct {
	Mute, SelfMute bool
	Deaf, SelfDeaf bool
	Suppress       bool
	Recording      bool

	SetMute, SetSelfMute     bool
	SetDeaf, SetSelfDeaf     bool
	SetSuppress              bool
	SetRecording             bool

	Comment       *string
	Texture       []byte
	UserID        *uint32
	PluginContext []byte
	ListenAdd     []uint32
	ListenRemove  []uint32
}

// newModifyUserStateCommand builds the UserState command that applies d
// to session.
func newModifyUserStateCommand(session uint32, d UserStateDelta) proto.Message {
	m := &MumbleProto.UserState{Session: proto.Uint32(session)}
	if d.SetMute {
		m.Mute = proto.Bool(d.Mute)
	}
	if d.SetSelfMute {
		m.SelfMute = proto.Bool(d.SelfMute)
	}
	if d.SetDeaf {
		m.Deaf = proto.Bool(d.Deaf)
	}
	if d.SetSelfDeaf {
		m.SelfDeaf = proto.Bool(d.SelfDeaf)
	}
	if d.SetSuppress {
		m.SuppressField = proto.Bool(d.Suppress)
	}
	if d.SetRecording {
		m.Recording = proto.Bool(d.Recording)
	}
	if d.Comment != nil {
		m.Comment = d.Comment
	}
	if d.Texture != nil {
		m.Texture = d.Texture
	}
	if d.UserID != nil {
		m.UserId = d.UserID
	}
	if d.PluginContext != nil {
		m.PluginContext = d.PluginContext
	}
	if len(d.ListenAdd) > 0 {
		m.ListeningChannelAdd = d.ListenAdd
	}
	if len(d.ListenRemove) > 0 {
		m.ListeningChannelRemove = d.ListenRemove
	}
	return m
}

// newRemoveUserCommand builds the UserRemove packet that kicks or bans a
// user.
func newRemoveUserCommand(session uint32, reason string, ban bool) proto.Message {
	m := &MumbleProto.UserRemove{Session: proto.Uint32(session)}
	if reason != "" {
		m.Reason = proto.String(reason)
	}
	if ban {
		m.Ban = proto.Bool(true)
	}
	return m
}

// newCreateChannelCommand builds the ChannelState packet that creates a new
// channel.
func newCreateChannelCommand(parent uint32, name string, temporary bool) proto.Message {
	m := &MumbleProto.ChannelState{
		Parent: proto.Uint32(parent),
		Name:   proto.String(name),
	}
	if temporary {
		m.Temporary = proto.Bool(true)
	}
	return m
}

// newRemoveChannelCommand builds the ChannelRemove packet.
func newRemoveChannelCommand(id uint32) proto.Message {
	return &MumbleProto.ChannelRemove{ChannelId: proto.Uint32(id)}
}

// ChannelStateDelta carries the subset of ChannelState fields an
// UpdateChannel command may change.
type ChannelStateDelta struct {
	Name        *string
	Parent      *uint32
	Position    *int32
	MaxUsers    *uint32
	Description *string
	LinksAdd    []uint32
	LinksRemove []uint32
}

// newUpdateChannelCommand builds the ChannelState packet that applies d to
// channel id.
func newUpdateChannelCommand(id uint32, d ChannelStateDelta) proto.Message {
	m := &MumbleProto.ChannelState{ChannelId: proto.Uint32(id)}
	if d.Name != nil {
		m.Name = d.Name
	}
	if d.Parent != nil {
		m.Parent = d.Parent
	}
	if d.Position != nil {
		m.Position = d.Position
	}
	if d.MaxUsers != nil {
		m.MaxUsers = d.MaxUsers
	}
	if d.Description != nil {
		m.Description = d.Description
	}
	if len(d.LinksAdd) > 0 {
		m.LinksAdd = d.LinksAdd
	}
	if len(d.LinksRemove) > 0 {
		m.LinksRemove = d.LinksRemove
	}
	return m
}

// newQueryACLCommand builds the ACL request that asks the server for a
// channel's current ACL view. Mumble
// reuses the ACL message itself for both the request (Query=true) and the
// response.
func newQueryACLCommand(channelID uint32) proto.Message {
	return &MumbleProto.ACL{
		ChannelId: proto.Uint32(channelID),
		Query:     proto.Bool(true),
	}
}

// newUpdateACLCommand builds the full ACL replacement packet; the server
// treats this as a wholesale replace, matching the response shape.
func newUpdateACLCommand(channelID uint32, inherit bool, groups map[string]*ACLGroup, entries []*ACLEntry) proto.Message {
	m := &MumbleProto.ACL{
		ChannelId:   proto.Uint32(channelID),
		InheritAcls: proto.Bool(inherit),
	}
	for _, g := range groups {
		m.Groups = append(m.Groups, &MumbleProto.ACL_ChanGroup{
			Name:        proto.String(g.Name),
			Inherit:     proto.Bool(g.Inherited),
			Inheritable: proto.Bool(g.Inheritable),
			Add:         g.Add,
			Remove:      g.Remove,
		})
	}
	for _, e := range entries {
		m.Acls = append(m.Acls, &MumbleProto.ACL_ChanACL{
			ApplyHere: proto.Bool(e.ApplyHere),
			ApplySubs: proto.Bool(e.ApplySubs),
			Inherited: proto.Bool(e.Inherited),
			UserId:    proto.Int32(e.UserID),
			Group:     proto.String(e.Group),
			Grant:     proto.Uint32(e.Grant),
			Deny:      proto.Uint32(e.Deny),
		})
	}
	return m
}

// commandQueue serializes outbound control-channel writes in FIFO order
// per Conn: a single lock-guarded deque drained by one writer. A
// message that fails to write because of a transient error is re-enqueued
// at the head so ordering toward the caller is preserved.
type commandQueue struct {
	mu      sync.Mutex
	pending *list.List // of proto.Message (or []byte for tunnelled audio)
	notify  chan struct{}

	conn *Conn

	rateLimiter *rateLimiter
}

func newCommandQueue(conn *Conn, ratePerSecond int) *commandQueue {
	return &commandQueue{
		pending:     list.New(),
		notify:      make(chan struct{}, 1),
		conn:        conn,
		rateLimiter: newRateLimiter(ratePerSecond),
	}
}

// push appends msg to the tail of the queue and wakes the drain loop.
func (q *commandQueue) push(msg interface{}) {
	q.mu.Lock()
	q.pending.PushBack(msg)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// setConn swaps the Conn writes go to, used by the connection manager when
// a reconnect replaces the underlying transport.
func (q *commandQueue) setConn(c *Conn) {
	q.mu.Lock()
	q.conn = c
	q.mu.Unlock()
}

func (q *commandQueue) currentConn() *Conn {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.conn
}

// pushFront re-queues msg ahead of everything else, used to retry a write
// that failed for a reason that isn't fatal to the connection.
func (q *commandQueue) pushFront(msg interface{}) {
	q.mu.Lock()
	q.pending.PushFront(msg)
	q.mu.Unlock()
	select {
	case q.notify <- struct{}{}:
	default:
	}
}

// run drains the queue until stop is closed, writing one message at a
// time and honoring rateLimiter between non-audio commands.
func (q *commandQueue) run(stop <-chan struct{}) {
	for {
		msg := q.pop()
		if msg == nil {
			select {
			case <-q.notify:
				continue
			case <-stop:
				return
			}
		}

		if _, isTunnel := msg.([]byte); !isTunnel {
			q.rateLimiter.wait(stop)
		}

		conn := q.currentConn()
		if conn == nil {
			continue
		}
		if err := conn.WriteProto(msg); err != nil {
			// Tunnelled audio frames are time-valued: a failed write is
			// simply dropped, never retried.
			if _, isTunnel := msg.([]byte); !isTunnel && isTransientWriteError(err) {
				q.pushFront(msg)
			}
			select {
			case <-stop:
				return
			default:
			}
		}
	}
}

func (q *commandQueue) pop() interface{} {
	q.mu.Lock()
	defer q.mu.Unlock()
	front := q.pending.Front()
	if front == nil {
		return nil
	}
	q.pending.Remove(front)
	return front.Value
}

// isTransientWriteError reports whether a write failure is worth retrying
// rather than tearing down the connection. Only net.Error-style timeouts
// are transient; anything else (closed connection, marshal failure) is
// left for the caller's reconnect logic.
func isTransientWriteError(err error) bool {
	type temporary interface {
		Temporary() bool
	}
	te, ok := err.(temporary)
	return ok && te.Temporary()
}

// rateLimiter enforces CommandRateLimit non-audio commands per second
// before ServerSync; Raise replaces the limit once the live
// user count is known.
type rateLimiter struct {
	mu     sync.Mutex
	perSec int
}

func newRateLimiter(perSecond int) *rateLimiter {
	if perSecond <= 0 {
		perSecond = 5
	}
	return &rateLimiter{perSec: perSecond}
}

// wait blocks long enough to keep the long-run rate at or below perSec
// commands/second. A token-less limiter is sufficient for the command
// volumes a control channel sees; voice frames never go through here.
func (r *rateLimiter) wait(stop <-chan struct{}) {
	r.mu.Lock()
	perSec := r.perSec
	r.mu.Unlock()
	if perSec <= 0 {
		return
	}
	interval := time.Second / time.Duration(perSec)
	if interval <= 0 {
		return
	}
	t := time.NewTimer(interval)
	defer t.Stop()
	select {
	case <-t.C:
	case <-stop:
	}
}

// Raise updates the allowed rate, used once the server roster size is
// known.
func (r *rateLimiter) Raise(perSecond int) {
	if perSecond <= 0 {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.perSec = perSecond
}

func validateTextMessage(message string, limit int) error {
	if limit <= 0 {
		limit = defaultMaxTextMessageLength
	}
	if len(message) > limit {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrTextTooLong, len(message), limit)
	}
	return nil
}

func validateImagePayload(data []byte, limit int) error {
	if limit <= 0 {
		limit = defaultMaxImageMessageLength
	}
	if len(data) > limit {
		return fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrImageTooBig, len(data), limit)
	}
	return nil
}
