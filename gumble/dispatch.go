package gumble

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/golang/protobuf/proto"
	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// replicator owns the Channels/Users/ACL tables and turns each inbound
// control-channel message into a diff-and-fire sequence: apply the
// update, compare against the snapshot taken before
// applying it, and dispatch a callback only for the fields that actually
// changed. Every on* method below runs on the single reader goroutine; the
// tables' own mutexes only guard readers calling Get/All concurrently.
type replicator struct {
	client         *Client
	channels       *Channels
	users          *Users
	dispatch       *dispatcher
	listeners      *Listeners
	audioListeners *AudioListeners
	blobs          BlobCache
	blobBatch      *blobRequestBatch
	queue          *commandQueue
	logger         *slog.Logger

	mu                    sync.Mutex
	maxTextMessageLength  int
	maxImageMessageLength int
	greedyPrefetch        bool
}

func newReplicator(channels *Channels, users *Users, d *dispatcher, listeners *Listeners, audioListeners *AudioListeners, blobs BlobCache, queue *commandQueue, logger *slog.Logger, greedyPrefetch bool) *replicator {
	if logger == nil {
		logger = defaultLogger()
	}
	return &replicator{
		channels:              channels,
		users:                 users,
		dispatch:              d,
		listeners:             listeners,
		audioListeners:        audioListeners,
		blobs:                 blobs,
		blobBatch:             newBlobRequestBatch(),
		queue:                 queue,
		logger:                logger,
		maxTextMessageLength:  defaultMaxTextMessageLength,
		maxImageMessageLength: defaultMaxImageMessageLength,
		greedyPrefetch:        greedyPrefetch,
	}
}

// attachClient records the owning Client once constructed, for events that
// need to carry it (ConnectEvent.Client).
func (r *replicator) attachClient(c *Client) { r.client = c }

// newDecoder is the per-user decode queue's lazy decoder factory. A stereo
// decoder handles mono streams too (libopus upmixes), so one shape serves
// every speaker.
func (r *replicator) newDecoder() func() (Decoder, error) {
	return func() (Decoder, error) {
		return newOpusDecoder(AudioSampleRate, 2)
	}
}

func (r *replicator) textLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxTextMessageLength
}

func (r *replicator) imageLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.maxImageMessageLength
}

// handle decodes one framed message by kind and applies it. A *RejectError
// return is fatal to the session; a decode error is returned for the
// caller to log, and every other condition is absorbed here and only
// surfaced through callbacks.
func (r *replicator) handle(kind MumbleProto.MessageKind, payload []byte) error {
	msg := MumbleProto.New(kind)
	if msg == nil {
		r.logger.Debug("gumble: unhandled message kind", "kind", kind)
		return nil
	}
	if err := proto.Unmarshal(payload, msg); err != nil {
		return fmt.Errorf("gumble: decode kind %v: %w", kind, err)
	}

	switch m := msg.(type) {
	case *MumbleProto.Version:
		r.onVersion(m)
	case *MumbleProto.Reject:
		return r.onReject(m)
	case *MumbleProto.ServerSync:
		r.onServerSync(m)
	case *MumbleProto.ChannelState:
		r.onChannelState(m)
	case *MumbleProto.ChannelRemove:
		r.onChannelRemove(m)
	case *MumbleProto.UserState:
		r.onUserState(m)
	case *MumbleProto.UserRemove:
		r.onUserRemove(m)
	case *MumbleProto.TextMessage:
		r.onTextMessage(m)
	case *MumbleProto.PermissionDenied:
		r.onPermissionDenied(m)
	case *MumbleProto.ACL:
		r.onACL(m)
	case *MumbleProto.BanList:
		r.onBanList(m)
	case *MumbleProto.UserList:
		r.onUserList(m)
	case *MumbleProto.ContextActionModify:
		r.onContextActionModify(m)
	case *MumbleProto.ServerConfig:
		r.onServerConfig(m)
	case *MumbleProto.CryptSetup:
		r.onCryptSetup(m)
	case *MumbleProto.Ping:
		r.onTCPPing(m)
	}

	r.flushBlobRequests()
	return nil
}

// onVersion clears the user and channel tables: a Version packet only ever
// arrives once, at the start of a session, except when the connection
// manager has just reconnected and is replaying the handshake, in which
// case the prior session's state must not leak into the new one.
func (r *replicator) onVersion(m *MumbleProto.Version) {
	r.channels.clear()
	r.users.clear()
}

func (r *replicator) onReject(m *MumbleProto.Reject) error {
	return &RejectError{
		Type:   m.GetType().String(),
		Reason: m.GetReason(),
	}
}

// onServerSync marks the local session known and fires ConnectEvent once
// the dispatcher's staged callbacks are released.
func (r *replicator) onServerSync(m *MumbleProto.ServerSync) {
	r.users.setMyself(m.GetSession())

	if m.MaxBandwidth != nil && r.client != nil {
		r.client.setServerBandwidth(int(m.GetMaxBandwidth()))
	}

	if r.queue != nil {
		if n := len(r.users.All()); n > 0 {
			r.queue.rateLimiter.Raise(n)
		}
	}

	welcome := m.GetWelcomeText()
	r.dispatch.commit()
	r.fireConnect(welcome)
}

func (r *replicator) fireConnect(welcome string) {
	e := &ConnectEvent{Client: r.client, WelcomeText: welcome}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnConnect(e) })
	}
}

// onChannelState applies a create-or-update to the channel table, diffing
// against the pre-update snapshot and firing ChannelChangeEvent only for
// fields the message actually carried and that changed.
func (r *replicator) onChannelState(m *MumbleProto.ChannelState) {
	id := m.GetChannelId()
	channel := r.channels.get(id)
	created := channel == nil
	if created {
		channel = &Channel{ID: id, links: make(map[uint32]bool), channels: r.channels}
		r.channels.mu.Lock()
		r.channels.byID[id] = channel
		r.channels.mu.Unlock()
	}

	before := channel.snapshot()
	var mask ChannelChangeMask
	if created {
		mask |= ChannelChangeCreated
	}

	if m.Parent != nil {
		channel.parentID = m.GetParent()
		channel.hasParent = true
		if channel.parentID != before.ParentID || !before.HasParent {
			mask |= ChannelChangeParent
		}
	} else if created {
		channel.hasParent = id != 0
	}
	if m.Name != nil && m.GetName() != before.Name {
		channel.Name = m.GetName()
		mask |= ChannelChangeName
	}
	if m.Position != nil && m.GetPosition() != before.Position {
		channel.Position = m.GetPosition()
		mask |= ChannelChangePosition
	}
	if m.Description != nil && m.GetDescription() != before.Description {
		channel.description = m.GetDescription()
		mask |= ChannelChangeDescription
		if len(channel.descriptionHash) > 0 {
			if err := r.blobs.Put(BlobKindChannelDescription, id, channel.descriptionHash, []byte(channel.description)); err != nil {
				r.logger.Warn("gumble: blob cache put", "error", err)
			}
		}
	}
	if m.DescriptionHash != nil && !bytes.Equal(m.GetDescriptionHash(), before.DescriptionHash) {
		channel.descriptionHash = m.GetDescriptionHash()
		mask |= ChannelChangeDescription
		if payload, ok := r.blobs.Get(BlobKindChannelDescription, id, channel.descriptionHash); ok {
			channel.description = string(payload)
		} else {
			channel.description = ""
			if r.greedyPrefetch {
				r.blobBatch.add(BlobKindChannelDescription, id)
			}
		}
	}
	if m.MaxUsers != nil && m.GetMaxUsers() != before.MaxUsers {
		channel.MaxUsers = m.GetMaxUsers()
		mask |= ChannelChangeMaxUsers
	}
	if m.Temporary != nil {
		channel.Temporary = m.GetTemporary()
	}
	if len(m.Links) > 0 {
		links := make(map[uint32]bool, len(m.Links))
		for _, id := range m.Links {
			links[id] = true
		}
		changed := len(links) != len(channel.links)
		for id := range links {
			if !channel.links[id] {
				changed = true
			}
		}
		channel.links = links
		if changed {
			mask |= ChannelChangeLinks
		}
	}
	for _, id := range m.LinksAdd {
		if !channel.links[id] {
			channel.links[id] = true
			mask |= ChannelChangeLinks
		}
	}
	for _, id := range m.LinksRemove {
		if channel.links[id] {
			delete(channel.links, id)
			mask |= ChannelChangeLinks
		}
	}

	if mask == 0 {
		return
	}
	r.fireChannelChange(channel, mask, before)
}

func (r *replicator) fireChannelChange(channel *Channel, mask ChannelChangeMask, before channelSnapshot) {
	e := &ChannelChangeEvent{Channel: channel, Mask: mask, Previous: before}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnChannelChange(e) })
	}
}

func (r *replicator) onChannelRemove(m *MumbleProto.ChannelRemove) {
	id := m.GetChannelId()
	channel := r.channels.get(id)
	if channel == nil {
		r.logger.Warn("gumble: ChannelRemove for unknown channel", "channel_id", id)
		return
	}
	before := channel.snapshot()
	r.channels.mu.Lock()
	delete(r.channels.byID, id)
	r.channels.mu.Unlock()
	r.fireChannelChange(channel, ChannelChangeRemoved, before)
}

// onUserState applies a create-or-update to the user table. A Texture
// payload always sets UserChangeAvatar: the texture itself is not kept on
// the User, so it is not compared with the previous one.
// Session 0 is never used by servers, so a zero id cannot be mistaken for
// "field absent" the way it can for channel 0 (the root channel).
func (r *replicator) onUserState(m *MumbleProto.UserState) {
	session := m.GetSession()
	user := r.users.Get(session)
	created := user == nil
	if created {
		user = &User{Session: session, users: r.users, decodeQueue: newUserDecodeQueue(r.newDecoder())}
		r.users.mu.Lock()
		r.users.bySession[session] = user
		r.users.mu.Unlock()
	}

	before := user.snapshot()
	var mask UserChangeMask
	if created {
		mask |= UserChangeConnected
	}

	if m.Name != nil && m.GetName() != before.Name {
		user.Name = m.GetName()
		mask |= UserChangeName
	}
	if m.Hash != nil {
		user.IdentityHash = m.GetHash()
	}
	if m.ChannelId != nil && m.GetChannelId() != before.ChannelID {
		user.channelID = m.GetChannelId()
		mask |= UserChangeChannel
	}
	if m.Comment != nil {
		user.comment = m.GetComment()
		if user.comment != before.Comment {
			mask |= UserChangeComment
		}
		if len(user.commentHash) > 0 {
			if err := r.blobs.Put(BlobKindUserComment, session, user.commentHash, []byte(user.comment)); err != nil {
				r.logger.Warn("gumble: blob cache put", "error", err)
			}
		}
	}
	if m.CommentHash != nil && !bytes.Equal(m.GetCommentHash(), before.CommentHash) {
		user.commentHash = m.GetCommentHash()
		mask |= UserChangeComment
		if payload, ok := r.blobs.Get(BlobKindUserComment, session, user.commentHash); ok {
			user.comment = string(payload)
		} else {
			user.comment = ""
			if r.greedyPrefetch {
				r.blobBatch.add(BlobKindUserComment, session)
			}
		}
	}
	if m.Texture != nil {
		mask |= UserChangeAvatar
		if len(user.avatarHash) > 0 {
			if err := r.blobs.Put(BlobKindUserAvatar, session, user.avatarHash, m.Texture); err != nil {
				r.logger.Warn("gumble: blob cache put", "error", err)
			}
		}
	}
	if m.TextureHash != nil && !bytes.Equal(m.GetTextureHash(), before.AvatarHash) {
		user.avatarHash = m.GetTextureHash()
		mask |= UserChangeAvatar
		if _, ok := r.blobs.Get(BlobKindUserAvatar, session, user.avatarHash); !ok && r.greedyPrefetch {
			r.blobBatch.add(BlobKindUserAvatar, session)
		}
	}
	if m.Mute != nil && m.GetMute() != before.Mute {
		user.Mute = m.GetMute()
		mask |= UserChangeMute
	}
	if m.Deaf != nil && m.GetDeaf() != before.Deaf {
		user.Deaf = m.GetDeaf()
		mask |= UserChangeDeaf
	}
	if m.SelfMute != nil && m.GetSelfMute() != before.SelfMute {
		user.SelfMute = m.GetSelfMute()
		mask |= UserChangeSelfMute
	}
	if m.SelfDeaf != nil && m.GetSelfDeaf() != before.SelfDeaf {
		user.SelfDeaf = m.GetSelfDeaf()
		mask |= UserChangeSelfDeaf
	}
	if m.SuppressField != nil && m.GetSuppressField() != before.Suppressed {
		user.Suppressed = m.GetSuppressField()
		mask |= UserChangeSuppress
	}
	if m.PrioritySpeaker != nil && m.GetPrioritySpeaker() != before.PrioritySpeaker {
		user.PrioritySpeaker = m.GetPrioritySpeaker()
		mask |= UserChangePrioritySpeaker
	}
	if m.Recording != nil && m.GetRecording() != before.Recording {
		user.Recording = m.GetRecording()
		mask |= UserChangeRecording
	}

	if mask == 0 {
		return
	}
	var actor *User
	if m.Actor != nil {
		actor = r.users.Get(m.GetActor())
	}
	r.fireUserChange(user, actor, mask, before)
}

func (r *replicator) fireUserChange(user, actor *User, mask UserChangeMask, before userSnapshot) {
	e := &UserChangeEvent{User: user, Actor: actor, Mask: mask, Previous: before}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnUserChange(e) })
	}
}

func (r *replicator) onUserRemove(m *MumbleProto.UserRemove) {
	session := m.GetSession()
	user := r.users.Get(session)
	if user == nil {
		return
	}
	before := user.snapshot()
	r.users.mu.Lock()
	delete(r.users.bySession, session)
	r.users.mu.Unlock()

	mask := UserChangeDisconnected
	var actor *User
	if m.Actor != nil {
		actor = r.users.Get(m.GetActor())
	}
	r.fireUserChange(user, actor, mask, before)

	if session == r.myself() {
		if m.GetBan() {
			r.fireDisconnect(DisconnectBanned, m.GetReason())
		} else {
			r.fireDisconnect(DisconnectKicked, m.GetReason())
		}
	}
}

func (r *replicator) myself() uint32 {
	if u := r.users.Myself(); u != nil {
		return u.Session
	}
	return 0
}

func (r *replicator) fireDisconnect(kind DisconnectType, reason string) {
	e := &DisconnectEvent{Type: kind, String: reason}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnDisconnect(e) })
	}
}

func (r *replicator) onTextMessage(m *MumbleProto.TextMessage) {
	var sender *User
	if m.Actor != nil {
		sender = r.users.Get(m.GetActor())
	}
	channels := make([]*Channel, 0, len(m.ChannelId))
	for _, id := range m.ChannelId {
		if c := r.channels.Get(id); c != nil {
			channels = append(channels, c)
		}
	}
	users := make([]*User, 0, len(m.Session))
	for _, s := range m.Session {
		if u := r.users.Get(s); u != nil {
			users = append(users, u)
		}
	}
	e := &TextMessageEvent{Sender: sender, Channels: channels, Users: users, Message: m.GetMessage()}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnTextMessage(e) })
	}
}

func (r *replicator) onPermissionDenied(m *MumbleProto.PermissionDenied) {
	e := &PermissionDeniedEvent{
		Type:   m.GetType().String(),
		Reason: m.GetReason(),
	}
	if m.ChannelId != nil {
		e.Channel = r.channels.Get(m.GetChannelId())
	}
	if m.Session != nil {
		e.User = r.users.Get(m.GetSession())
	}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnPermissionDenied(e) })
	}
}

// onACL replaces the queried channel's ACL view wholesale: the server only
// ever sends a complete ACL snapshot, never a diff.
func (r *replicator) onACL(m *MumbleProto.ACL) {
	acl := &ACL{
		ChannelID: m.GetChannelId(),
		Inherit:   m.GetInheritAcls(),
		Groups:    make(map[string]*ACLGroup, len(m.Groups)),
		Entries:   make([]*ACLEntry, 0, len(m.Acls)),
	}
	for _, g := range m.Groups {
		acl.Groups[g.GetName()] = &ACLGroup{
			Name:             g.GetName(),
			Inherited:        g.GetInherit(),
			Inheritable:      g.GetInheritable(),
			Add:              g.Add,
			Remove:           g.Remove,
			InheritedMembers: g.InheritedMembers,
		}
	}
	for _, a := range m.Acls {
		acl.Entries = append(acl.Entries, &ACLEntry{
			ApplyHere: a.GetApplyHere(),
			ApplySubs: a.GetApplySubs(),
			Inherited: a.GetInherited(),
			UserID:    a.GetUserId(),
			Group:     a.GetGroup(),
			Grant:     a.GetGrant(),
			Deny:      a.GetDeny(),
		})
	}
	e := &ACLEvent{ACL: acl}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnACL(e) })
	}
}

func (r *replicator) onBanList(m *MumbleProto.BanList) {
	bans := make([]BanEntry, 0, len(m.Bans))
	for _, b := range m.Bans {
		var address []byte
		if b.Address != nil {
			address = *b.Address
		}
		bans = append(bans, BanEntry{Address: address, Mask: b.GetMask(), Reason: b.GetReason()})
	}
	e := &BanListEvent{Bans: bans}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnBanList(e) })
	}
}

func (r *replicator) onUserList(m *MumbleProto.UserList) {
	entries := make([]UserListEntry, 0, len(m.Users))
	for _, u := range m.Users {
		entries = append(entries, UserListEntry{
			UserID:      u.GetUserId(),
			Name:        u.GetName(),
			LastSeen:    u.GetLastSeen(),
			LastChannel: u.GetLastChannel(),
		})
	}
	e := &UserListEvent{Users: entries}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnUserList(e) })
	}
}

func (r *replicator) onContextActionModify(m *MumbleProto.ContextActionModify) {
	typ := ContextActionAdd
	if m.GetOperation() == MumbleProto.ContextActionModify_Remove {
		typ = ContextActionRemove
	}
	e := &ContextActionChangeEvent{Type: typ, Action: m.GetAction(), Text: m.GetText()}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnContextActionChange(e) })
	}
}

// onServerConfig updates the limits command validation enforces and fires
// ServerConfigEvent once.
func (r *replicator) onServerConfig(m *MumbleProto.ServerConfig) {
	r.mu.Lock()
	if m.MessageLength != nil {
		r.maxTextMessageLength = int(m.GetMessageLength())
	}
	if m.ImageMessageLength != nil {
		r.maxImageMessageLength = int(m.GetImageMessageLength())
	}
	r.mu.Unlock()

	if m.MaxBandwidth != nil && r.client != nil {
		r.client.setServerBandwidth(int(m.GetMaxBandwidth()))
	}

	e := &ServerConfigEvent{
		MaxBandwidth:     m.GetMaxBandwidth(),
		MaxMessageLength: m.GetMessageLength(),
		MaxImageLength:   m.GetImageMessageLength(),
		MaxUsers:         m.GetMaxUsers(),
		AllowHTML:        m.GetAllowHtml(),
		WelcomeText:      m.GetWelcomeText(),
	}
	for _, l := range r.listeners.snapshot() {
		l := l
		r.dispatch.dispatch(func() { l.OnServerConfig(e) })
	}
}

// onCryptSetup is handled by Client directly (it owns the CryptState used
// by the voice stack); the replicator does nothing with it. Left as a no-op
// hook so handle() has one call site per message kind.
func (r *replicator) onCryptSetup(m *MumbleProto.CryptSetup) {}

func (r *replicator) onTCPPing(m *MumbleProto.Ping) {}

// flushBlobRequests coalesces every blob request queued while processing
// one inbound message into a single RequestBlob command, bounding
// command-queue pressure during a state burst.
func (r *replicator) flushBlobRequests() {
	pending := r.blobBatch.drain()
	if len(pending) == 0 {
		return
	}
	req := &MumbleProto.RequestBlob{}
	for _, k := range pending {
		switch k.kind {
		case BlobKindUserComment:
			req.SessionComment = append(req.SessionComment, k.id)
		case BlobKindUserAvatar:
			req.SessionTexture = append(req.SessionTexture, k.id)
		case BlobKindChannelDescription:
			req.ChannelDescription = append(req.ChannelDescription, k.id)
		}
	}
	if r.queue != nil {
		r.queue.push(req)
	}
}

// requestBlob queues a single hash-addressed blob fetch, called by
// Client's on-demand fetch path.
func (r *replicator) requestBlob(kind BlobKind, id uint32) {
	r.blobBatch.add(kind, id)
}
