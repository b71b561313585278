// Package MumbleProto contains the generated Go bindings for the Mumble
// wire protocol messages exchanged over the reliable control channel and,
// for CryptSetup/VoiceTarget/etc, referenced by the datagram channel.
//
// This file mirrors the shape protoc-gen-go has always emitted for
// Mumble.proto: plain structs with optional pointer fields, tagged for
// github.com/golang/protobuf/proto's struct-tag reflection path, plus the
// usual Reset/String/ProtoMessage/GetXxx boilerplate. It is hand-maintained
// here in place of running protoc, but the shape is exactly what protoc
// would produce from Mumble's reference .proto file.
package MumbleProto

import (
	"fmt"

	"github.com/golang/protobuf/proto"
)

// Version carries the client or server's protocol version during the
// handshake that precedes authentication.
type Version struct {
	Version   *uint32 `protobuf:"varint,1,opt,name=version" json:"version,omitempty"`
	Release   *string `protobuf:"bytes,2,opt,name=release" json:"release,omitempty"`
	Os        *string `protobuf:"bytes,3,opt,name=os" json:"os,omitempty"`
	OsVersion *string `protobuf:"bytes,4,opt,name=os_version,json=osVersion" json:"os_version,omitempty"`
	VersionV2 *uint64 `protobuf:"varint,5,opt,name=version_v2,json=versionV2" json:"version_v2,omitempty"`
}

func (m *Version) Reset()         { *m = Version{} }
func (m *Version) String() string { return proto.CompactTextString(m) }
func (*Version) ProtoMessage()    {}

func (m *Version) GetVersion() uint32 {
	if m != nil && m.Version != nil {
		return *m.Version
	}
	return 0
}
func (m *Version) GetRelease() string {
	if m != nil && m.Release != nil {
		return *m.Release
	}
	return ""
}
func (m *Version) GetOs() string {
	if m != nil && m.Os != nil {
		return *m.Os
	}
	return ""
}
func (m *Version) GetOsVersion() string {
	if m != nil && m.OsVersion != nil {
		return *m.OsVersion
	}
	return ""
}
func (m *Version) GetVersionV2() uint64 {
	if m != nil && m.VersionV2 != nil {
		return *m.VersionV2
	}
	return 0
}

// Authenticate carries login credentials immediately after Version.
type Authenticate struct {
	Username *string  `protobuf:"bytes,1,opt,name=username" json:"username,omitempty"`
	Password *string  `protobuf:"bytes,2,opt,name=password" json:"password,omitempty"`
	Tokens   []string `protobuf:"bytes,3,rep,name=tokens" json:"tokens,omitempty"`
	CeltVersions []int32 `protobuf:"varint,4,rep,name=celt_versions,json=celtVersions" json:"celt_versions,omitempty"`
	Opus     *bool    `protobuf:"varint,5,opt,name=opus" json:"opus,omitempty"`
	ClientType *int32 `protobuf:"varint,6,opt,name=client_type,json=clientType" json:"client_type,omitempty"`
}

func (m *Authenticate) Reset()         { *m = Authenticate{} }
func (m *Authenticate) String() string { return proto.CompactTextString(m) }
func (*Authenticate) ProtoMessage()    {}

func (m *Authenticate) GetUsername() string {
	if m != nil && m.Username != nil {
		return *m.Username
	}
	return ""
}

// Ping is exchanged on both channels; the reliable-channel variant also
// carries datagram-channel accounting so either side can judge the other's
// link quality without an extra round trip.
type Ping struct {
	Timestamp        *uint64  `protobuf:"varint,1,opt,name=timestamp" json:"timestamp,omitempty"`
	Good             *uint32  `protobuf:"varint,2,opt,name=good" json:"good,omitempty"`
	Late             *uint32  `protobuf:"varint,3,opt,name=late" json:"late,omitempty"`
	Lost             *uint32  `protobuf:"varint,4,opt,name=lost" json:"lost,omitempty"`
	Resync           *uint32  `protobuf:"varint,5,opt,name=resync" json:"resync,omitempty"`
	UdpPacketsSent   *uint32  `protobuf:"varint,6,opt,name=udp_packets_sent,json=udpPacketsSent" json:"udp_packets_sent,omitempty"`
	UdpPacketsRecv   *uint32  `protobuf:"varint,7,opt,name=udp_packets_recv,json=udpPacketsRecv" json:"udp_packets_recv,omitempty"`
	UdpPingAvg       *float32 `protobuf:"fixed32,8,opt,name=udp_ping_avg,json=udpPingAvg" json:"udp_ping_avg,omitempty"`
	UdpPingVar       *float32 `protobuf:"fixed32,9,opt,name=udp_ping_var,json=udpPingVar" json:"udp_ping_var,omitempty"`
	TcpPacketsSent   *uint32  `protobuf:"varint,10,opt,name=tcp_packets_sent,json=tcpPacketsSent" json:"tcp_packets_sent,omitempty"`
	TcpPacketsRecv   *uint32  `protobuf:"varint,11,opt,name=tcp_packets_recv,json=tcpPacketsRecv" json:"tcp_packets_recv,omitempty"`
	TcpPingAvg       *float32 `protobuf:"fixed32,12,opt,name=tcp_ping_avg,json=tcpPingAvg" json:"tcp_ping_avg,omitempty"`
	TcpPingVar       *float32 `protobuf:"fixed32,13,opt,name=tcp_ping_var,json=tcpPingVar" json:"tcp_ping_var,omitempty"`
}

func (m *Ping) Reset()         { *m = Ping{} }
func (m *Ping) String() string { return proto.CompactTextString(m) }
func (*Ping) ProtoMessage()    {}

func (m *Ping) GetTimestamp() uint64 {
	if m != nil && m.Timestamp != nil {
		return *m.Timestamp
	}
	return 0
}

// Reject is sent by the server in place of ServerSync when authentication
// or the version handshake fails outright.
type Reject struct {
	Type   *Reject_RejectType `protobuf:"varint,1,opt,name=type,enum=MumbleProto.Reject_RejectType" json:"type,omitempty"`
	Reason *string            `protobuf:"bytes,2,opt,name=reason" json:"reason,omitempty"`
}

func (m *Reject) Reset()         { *m = Reject{} }
func (m *Reject) String() string { return proto.CompactTextString(m) }
func (*Reject) ProtoMessage()    {}

func (m *Reject) GetReason() string {
	if m != nil && m.Reason != nil {
		return *m.Reason
	}
	return ""
}
func (m *Reject) GetType() Reject_RejectType {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return Reject_None
}

// Reject_RejectType enumerates why the server refused the connection.
type Reject_RejectType int32

const (
	Reject_None             Reject_RejectType = 0
	Reject_WrongVersion     Reject_RejectType = 1
	Reject_InvalidUsername  Reject_RejectType = 2
	Reject_WrongUserPW      Reject_RejectType = 3
	Reject_WrongServerPW    Reject_RejectType = 4
	Reject_UsernameInUse    Reject_RejectType = 5
	Reject_ServerFull       Reject_RejectType = 6
	Reject_NoCertificate    Reject_RejectType = 7
	Reject_AuthenticatorFail Reject_RejectType = 8
)

func (t Reject_RejectType) Enum() *Reject_RejectType {
	v := t
	return &v
}

var rejectTypeNames = map[Reject_RejectType]string{
	Reject_None:              "None",
	Reject_WrongVersion:      "WrongVersion",
	Reject_InvalidUsername:   "InvalidUsername",
	Reject_WrongUserPW:       "WrongUserPW",
	Reject_WrongServerPW:     "WrongServerPW",
	Reject_UsernameInUse:     "UsernameInUse",
	Reject_ServerFull:        "ServerFull",
	Reject_NoCertificate:     "NoCertificate",
	Reject_AuthenticatorFail: "AuthenticatorFail",
}

func (t Reject_RejectType) String() string {
	if s, ok := rejectTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Reject_RejectType(%d)", int32(t))
}

// ServerSync marks the end of the initial state burst; myself's session id
// arrives here.
type ServerSync struct {
	Session        *uint32 `protobuf:"varint,1,opt,name=session" json:"session,omitempty"`
	MaxBandwidth   *uint32 `protobuf:"varint,2,opt,name=max_bandwidth,json=maxBandwidth" json:"max_bandwidth,omitempty"`
	WelcomeText    *string `protobuf:"bytes,3,opt,name=welcome_text,json=welcomeText" json:"welcome_text,omitempty"`
	PermissionsUint64 *uint64 `protobuf:"varint,4,opt,name=permissions" json:"permissions,omitempty"`
}

func (m *ServerSync) Reset()         { *m = ServerSync{} }
func (m *ServerSync) String() string { return proto.CompactTextString(m) }
func (*ServerSync) ProtoMessage()    {}

func (m *ServerSync) GetSession() uint32 {
	if m != nil && m.Session != nil {
		return *m.Session
	}
	return 0
}
func (m *ServerSync) GetMaxBandwidth() uint32 {
	if m != nil && m.MaxBandwidth != nil {
		return *m.MaxBandwidth
	}
	return 0
}
func (m *ServerSync) GetWelcomeText() string {
	if m != nil && m.WelcomeText != nil {
		return *m.WelcomeText
	}
	return ""
}

// ChannelRemove deletes a channel from the tree.
type ChannelRemove struct {
	ChannelId *uint32 `protobuf:"varint,1,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
}

func (m *ChannelRemove) Reset()         { *m = ChannelRemove{} }
func (m *ChannelRemove) String() string { return proto.CompactTextString(m) }
func (*ChannelRemove) ProtoMessage()    {}

func (m *ChannelRemove) GetChannelId() uint32 {
	if m != nil && m.ChannelId != nil {
		return *m.ChannelId
	}
	return 0
}

// ChannelState creates or updates a channel; only fields present on the
// wire are non-nil, which is what drives the State Replicator's
// diff-and-fire discipline.
type ChannelState struct {
	ChannelId       *uint32  `protobuf:"varint,1,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	Parent          *uint32  `protobuf:"varint,2,opt,name=parent" json:"parent,omitempty"`
	Name            *string  `protobuf:"bytes,3,opt,name=name" json:"name,omitempty"`
	Links           []uint32 `protobuf:"varint,4,rep,name=links" json:"links,omitempty"`
	Description     *string  `protobuf:"bytes,5,opt,name=description" json:"description,omitempty"`
	LinksAdd        []uint32 `protobuf:"varint,6,rep,name=links_add,json=linksAdd" json:"links_add,omitempty"`
	LinksRemove     []uint32 `protobuf:"varint,7,rep,name=links_remove,json=linksRemove" json:"links_remove,omitempty"`
	Temporary       *bool    `protobuf:"varint,8,opt,name=temporary" json:"temporary,omitempty"`
	Position        *int32   `protobuf:"varint,9,opt,name=position" json:"position,omitempty"`
	DescriptionHash []byte   `protobuf:"bytes,10,opt,name=description_hash,json=descriptionHash" json:"description_hash,omitempty"`
	MaxUsers        *uint32  `protobuf:"varint,11,opt,name=max_users,json=maxUsers" json:"max_users,omitempty"`
}

func (m *ChannelState) Reset()         { *m = ChannelState{} }
func (m *ChannelState) String() string { return proto.CompactTextString(m) }
func (*ChannelState) ProtoMessage()    {}

func (m *ChannelState) GetChannelId() uint32 {
	if m != nil && m.ChannelId != nil {
		return *m.ChannelId
	}
	return 0
}
func (m *ChannelState) GetParent() uint32 {
	if m != nil && m.Parent != nil {
		return *m.Parent
	}
	return 0
}
func (m *ChannelState) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}
func (m *ChannelState) GetDescription() string {
	if m != nil && m.Description != nil {
		return *m.Description
	}
	return ""
}
func (m *ChannelState) GetDescriptionHash() []byte {
	if m != nil {
		return m.DescriptionHash
	}
	return nil
}
func (m *ChannelState) GetMaxUsers() uint32 {
	if m != nil && m.MaxUsers != nil {
		return *m.MaxUsers
	}
	return 0
}
func (m *ChannelState) GetPosition() int32 {
	if m != nil && m.Position != nil {
		return *m.Position
	}
	return 0
}
func (m *ChannelState) GetTemporary() bool {
	if m != nil && m.Temporary != nil {
		return *m.Temporary
	}
	return false
}

// UserRemove disconnects, kicks, or bans a user.
type UserRemove struct {
	Session *uint32 `protobuf:"varint,1,opt,name=session" json:"session,omitempty"`
	Actor   *uint32 `protobuf:"varint,2,opt,name=actor" json:"actor,omitempty"`
	Reason  *string `protobuf:"bytes,3,opt,name=reason" json:"reason,omitempty"`
	Ban     *bool   `protobuf:"varint,4,opt,name=ban" json:"ban,omitempty"`
}

func (m *UserRemove) Reset()         { *m = UserRemove{} }
func (m *UserRemove) String() string { return proto.CompactTextString(m) }
func (*UserRemove) ProtoMessage()    {}

func (m *UserRemove) GetSession() uint32 {
	if m != nil && m.Session != nil {
		return *m.Session
	}
	return 0
}
func (m *UserRemove) GetActor() uint32 {
	if m != nil && m.Actor != nil {
		return *m.Actor
	}
	return 0
}
func (m *UserRemove) GetReason() string {
	if m != nil && m.Reason != nil {
		return *m.Reason
	}
	return ""
}
func (m *UserRemove) GetBan() bool {
	if m != nil && m.Ban != nil {
		return *m.Ban
	}
	return false
}

// UserState creates, updates, or echoes moderation actions for a user.
type UserState struct {
	Session         *uint32 `protobuf:"varint,1,opt,name=session" json:"session,omitempty"`
	Actor           *uint32 `protobuf:"varint,2,opt,name=actor" json:"actor,omitempty"`
	Name            *string `protobuf:"bytes,3,opt,name=name" json:"name,omitempty"`
	UserId          *uint32 `protobuf:"varint,4,opt,name=user_id,json=userId" json:"user_id,omitempty"`
	ChannelId       *uint32 `protobuf:"varint,5,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	Mute            *bool   `protobuf:"varint,6,opt,name=mute" json:"mute,omitempty"`
	Deaf            *bool   `protobuf:"varint,7,opt,name=deaf" json:"deaf,omitempty"`
	SuppressField   *bool   `protobuf:"varint,8,opt,name=suppress" json:"suppress,omitempty"`
	SelfMute        *bool   `protobuf:"varint,9,opt,name=self_mute,json=selfMute" json:"self_mute,omitempty"`
	SelfDeaf        *bool   `protobuf:"varint,10,opt,name=self_deaf,json=selfDeaf" json:"self_deaf,omitempty"`
	Texture         []byte  `protobuf:"bytes,11,opt,name=texture" json:"texture,omitempty"`
	PluginContext   []byte  `protobuf:"bytes,12,opt,name=plugin_context,json=pluginContext" json:"plugin_context,omitempty"`
	PluginIdentity  *string `protobuf:"bytes,13,opt,name=plugin_identity,json=pluginIdentity" json:"plugin_identity,omitempty"`
	Comment         *string `protobuf:"bytes,14,opt,name=comment" json:"comment,omitempty"`
	Hash            *string `protobuf:"bytes,15,opt,name=hash" json:"hash,omitempty"`
	CommentHash     []byte  `protobuf:"bytes,16,opt,name=comment_hash,json=commentHash" json:"comment_hash,omitempty"`
	TextureHash     []byte  `protobuf:"bytes,17,opt,name=texture_hash,json=textureHash" json:"texture_hash,omitempty"`
	PrioritySpeaker *bool   `protobuf:"varint,18,opt,name=priority_speaker,json=prioritySpeaker" json:"priority_speaker,omitempty"`
	Recording       *bool   `protobuf:"varint,19,opt,name=recording" json:"recording,omitempty"`
	ListeningChannelAdd    []uint32 `protobuf:"varint,20,rep,name=listening_channel_add,json=listeningChannelAdd" json:"listening_channel_add,omitempty"`
	ListeningChannelRemove []uint32 `protobuf:"varint,21,rep,name=listening_channel_remove,json=listeningChannelRemove" json:"listening_channel_remove,omitempty"`
}

func (m *UserState) Reset()         { *m = UserState{} }
func (m *UserState) String() string { return proto.CompactTextString(m) }
func (*UserState) ProtoMessage()    {}

func (m *UserState) GetSession() uint32 {
	if m != nil && m.Session != nil {
		return *m.Session
	}
	return 0
}
func (m *UserState) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}
func (m *UserState) GetChannelId() uint32 {
	if m != nil && m.ChannelId != nil {
		return *m.ChannelId
	}
	return 0
}
func (m *UserState) GetCommentHash() []byte {
	if m != nil {
		return m.CommentHash
	}
	return nil
}
func (m *UserState) GetTextureHash() []byte {
	if m != nil {
		return m.TextureHash
	}
	return nil
}
func (m *UserState) GetActor() uint32 {
	if m != nil && m.Actor != nil {
		return *m.Actor
	}
	return 0
}
func (m *UserState) GetComment() string {
	if m != nil && m.Comment != nil {
		return *m.Comment
	}
	return ""
}
func (m *UserState) GetMute() bool {
	if m != nil && m.Mute != nil {
		return *m.Mute
	}
	return false
}
func (m *UserState) GetDeaf() bool {
	if m != nil && m.Deaf != nil {
		return *m.Deaf
	}
	return false
}
func (m *UserState) GetSelfMute() bool {
	if m != nil && m.SelfMute != nil {
		return *m.SelfMute
	}
	return false
}
func (m *UserState) GetSelfDeaf() bool {
	if m != nil && m.SelfDeaf != nil {
		return *m.SelfDeaf
	}
	return false
}
func (m *UserState) GetSuppressField() bool {
	if m != nil && m.SuppressField != nil {
		return *m.SuppressField
	}
	return false
}
func (m *UserState) GetPrioritySpeaker() bool {
	if m != nil && m.PrioritySpeaker != nil {
		return *m.PrioritySpeaker
	}
	return false
}
func (m *UserState) GetRecording() bool {
	if m != nil && m.Recording != nil {
		return *m.Recording
	}
	return false
}

// BanList lists or replaces the server's ban entries.
type BanList struct {
	Bans  []*BanList_BanEntry `protobuf:"bytes,1,rep,name=bans" json:"bans,omitempty"`
	Query *bool               `protobuf:"varint,2,opt,name=query" json:"query,omitempty"`
}

func (m *BanList) Reset()         { *m = BanList{} }
func (m *BanList) String() string { return proto.CompactTextString(m) }
func (*BanList) ProtoMessage()    {}

// BanList_BanEntry is a single ban record.
type BanList_BanEntry struct {
	Address *[]byte `protobuf:"bytes,1,opt,name=address"`
	Mask    *uint32 `protobuf:"varint,2,opt,name=mask"`
	Reason  *string `protobuf:"bytes,5,opt,name=reason"`
}

func (m *BanList_BanEntry) GetMask() uint32 {
	if m != nil && m.Mask != nil {
		return *m.Mask
	}
	return 0
}
func (m *BanList_BanEntry) GetReason() string {
	if m != nil && m.Reason != nil {
		return *m.Reason
	}
	return ""
}

// TextMessage carries chat text directed at channels and/or users.
type TextMessage struct {
	Actor      *uint32  `protobuf:"varint,1,opt,name=actor" json:"actor,omitempty"`
	Session    []uint32 `protobuf:"varint,2,rep,name=session" json:"session,omitempty"`
	ChannelId  []uint32 `protobuf:"varint,3,rep,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	TreeId     []uint32 `protobuf:"varint,4,rep,name=tree_id,json=treeId" json:"tree_id,omitempty"`
	Message    *string  `protobuf:"bytes,5,opt,name=message" json:"message,omitempty"`
}

func (m *TextMessage) Reset()         { *m = TextMessage{} }
func (m *TextMessage) String() string { return proto.CompactTextString(m) }
func (*TextMessage) ProtoMessage()    {}

func (m *TextMessage) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}
func (m *TextMessage) GetActor() uint32 {
	if m != nil && m.Actor != nil {
		return *m.Actor
	}
	return 0
}

// PermissionDenied explains why a requested action was refused.
type PermissionDenied struct {
	Permission *uint32                       `protobuf:"varint,1,opt,name=permission" json:"permission,omitempty"`
	ChannelId  *uint32                       `protobuf:"varint,2,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	Session    *uint32                       `protobuf:"varint,3,opt,name=session" json:"session,omitempty"`
	Reason     *string                       `protobuf:"bytes,4,opt,name=reason" json:"reason,omitempty"`
	Type       *PermissionDenied_DenyType    `protobuf:"varint,5,opt,name=type,enum=MumbleProto.PermissionDenied_DenyType" json:"type,omitempty"`
	Name       *string                       `protobuf:"bytes,6,opt,name=name" json:"name,omitempty"`
}

func (m *PermissionDenied) Reset()         { *m = PermissionDenied{} }
func (m *PermissionDenied) String() string { return proto.CompactTextString(m) }
func (*PermissionDenied) ProtoMessage()    {}

func (m *PermissionDenied) GetReason() string {
	if m != nil && m.Reason != nil {
		return *m.Reason
	}
	return ""
}
func (m *PermissionDenied) GetPermission() uint32 {
	if m != nil && m.Permission != nil {
		return *m.Permission
	}
	return 0
}
func (m *PermissionDenied) GetChannelId() uint32 {
	if m != nil && m.ChannelId != nil {
		return *m.ChannelId
	}
	return 0
}
func (m *PermissionDenied) GetSession() uint32 {
	if m != nil && m.Session != nil {
		return *m.Session
	}
	return 0
}
func (m *PermissionDenied) GetType() PermissionDenied_DenyType {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return PermissionDenied_Text
}
func (m *PermissionDenied) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

// PermissionDenied_DenyType enumerates the reason categories for a denial.
type PermissionDenied_DenyType int32

const (
	PermissionDenied_Text               PermissionDenied_DenyType = 0
	PermissionDenied_Permission         PermissionDenied_DenyType = 1
	PermissionDenied_SuperUser          PermissionDenied_DenyType = 2
	PermissionDenied_ChannelName        PermissionDenied_DenyType = 3
	PermissionDenied_TextTooLong        PermissionDenied_DenyType = 4
	PermissionDenied_H9K                PermissionDenied_DenyType = 5
	PermissionDenied_TemporaryChannel   PermissionDenied_DenyType = 6
	PermissionDenied_MissingCertificate PermissionDenied_DenyType = 7
	PermissionDenied_UserName           PermissionDenied_DenyType = 8
	PermissionDenied_ChannelFull        PermissionDenied_DenyType = 9
	PermissionDenied_NestingLimit       PermissionDenied_DenyType = 10
)

func (t PermissionDenied_DenyType) Enum() *PermissionDenied_DenyType {
	v := t
	return &v
}

var permissionDeniedDenyTypeNames = map[PermissionDenied_DenyType]string{
	PermissionDenied_Text:               "Text",
	PermissionDenied_Permission:         "Permission",
	PermissionDenied_SuperUser:          "SuperUser",
	PermissionDenied_ChannelName:        "ChannelName",
	PermissionDenied_TextTooLong:        "TextTooLong",
	PermissionDenied_H9K:                "H9K",
	PermissionDenied_TemporaryChannel:   "TemporaryChannel",
	PermissionDenied_MissingCertificate: "MissingCertificate",
	PermissionDenied_UserName:           "UserName",
	PermissionDenied_ChannelFull:        "ChannelFull",
	PermissionDenied_NestingLimit:       "NestingLimit",
}

func (t PermissionDenied_DenyType) String() string {
	if s, ok := permissionDeniedDenyTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("PermissionDenied_DenyType(%d)", int32(t))
}

// ACL is both the query response and the update request for a channel's
// access control view.
type ACL struct {
	ChannelId    *uint32          `protobuf:"varint,1,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	InheritAcls  *bool            `protobuf:"varint,2,opt,name=inherit_acls,json=inheritAcls" json:"inherit_acls,omitempty"`
	Groups       []*ACL_ChanGroup `protobuf:"bytes,3,rep,name=groups" json:"groups,omitempty"`
	Acls         []*ACL_ChanACL   `protobuf:"bytes,4,rep,name=acls" json:"acls,omitempty"`
	Query        *bool            `protobuf:"varint,5,opt,name=query" json:"query,omitempty"`
}

func (m *ACL) Reset()         { *m = ACL{} }
func (m *ACL) String() string { return proto.CompactTextString(m) }
func (*ACL) ProtoMessage()    {}

func (m *ACL) GetChannelId() uint32 {
	if m != nil && m.ChannelId != nil {
		return *m.ChannelId
	}
	return 0
}
func (m *ACL) GetInheritAcls() bool {
	if m != nil && m.InheritAcls != nil {
		return *m.InheritAcls
	}
	return false
}

// ACL_ChanGroup describes one named group within a channel's ACL view.
type ACL_ChanGroup struct {
	Name             *string  `protobuf:"bytes,1,opt,name=name" json:"name,omitempty"`
	Inherit          *bool    `protobuf:"varint,2,opt,name=inherit" json:"inherit,omitempty"`
	Inheritable      *bool    `protobuf:"varint,3,opt,name=inheritable" json:"inheritable,omitempty"`
	Add              []uint32 `protobuf:"varint,4,rep,name=add" json:"add,omitempty"`
	Remove           []uint32 `protobuf:"varint,5,rep,name=remove" json:"remove,omitempty"`
	InheritedMembers []uint32 `protobuf:"varint,6,rep,name=inherited_members,json=inheritedMembers" json:"inherited_members,omitempty"`
}

func (m *ACL_ChanGroup) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}
func (m *ACL_ChanGroup) GetInherit() bool {
	if m != nil && m.Inherit != nil {
		return *m.Inherit
	}
	return false
}
func (m *ACL_ChanGroup) GetInheritable() bool {
	if m != nil && m.Inheritable != nil {
		return *m.Inheritable
	}
	return false
}

// ACL_ChanACL is one ordered access control entry.
type ACL_ChanACL struct {
	ApplyHere *bool   `protobuf:"varint,1,opt,name=apply_here,json=applyHere" json:"apply_here,omitempty"`
	ApplySubs *bool   `protobuf:"varint,2,opt,name=apply_subs,json=applySubs" json:"apply_subs,omitempty"`
	Inherited *bool   `protobuf:"varint,3,opt,name=inherited" json:"inherited,omitempty"`
	UserId    *int32  `protobuf:"varint,4,opt,name=user_id,json=userId" json:"user_id,omitempty"`
	Group     *string `protobuf:"bytes,5,opt,name=group" json:"group,omitempty"`
	Grant     *uint32 `protobuf:"varint,6,opt,name=grant" json:"grant,omitempty"`
	Deny      *uint32 `protobuf:"varint,7,opt,name=deny" json:"deny,omitempty"`
}

func (m *ACL_ChanACL) GetApplyHere() bool {
	if m != nil && m.ApplyHere != nil {
		return *m.ApplyHere
	}
	return false
}
func (m *ACL_ChanACL) GetApplySubs() bool {
	if m != nil && m.ApplySubs != nil {
		return *m.ApplySubs
	}
	return false
}
func (m *ACL_ChanACL) GetInherited() bool {
	if m != nil && m.Inherited != nil {
		return *m.Inherited
	}
	return false
}
func (m *ACL_ChanACL) GetUserId() int32 {
	if m != nil && m.UserId != nil {
		return *m.UserId
	}
	return 0
}
func (m *ACL_ChanACL) GetGroup() string {
	if m != nil && m.Group != nil {
		return *m.Group
	}
	return ""
}
func (m *ACL_ChanACL) GetGrant() uint32 {
	if m != nil && m.Grant != nil {
		return *m.Grant
	}
	return 0
}
func (m *ACL_ChanACL) GetDeny() uint32 {
	if m != nil && m.Deny != nil {
		return *m.Deny
	}
	return 0
}

// QueryUsers resolves user ids to names or vice versa.
type QueryUsers struct {
	Ids   []uint32 `protobuf:"varint,1,rep,name=ids" json:"ids,omitempty"`
	Names []string `protobuf:"bytes,2,rep,name=names" json:"names,omitempty"`
}

func (m *QueryUsers) Reset()         { *m = QueryUsers{} }
func (m *QueryUsers) String() string { return proto.CompactTextString(m) }
func (*QueryUsers) ProtoMessage()    {}

// CryptSetup carries the OCB2 key material and nonce (re)synchronization.
type CryptSetup struct {
	Key          []byte `protobuf:"bytes,1,opt,name=key" json:"key,omitempty"`
	ClientNonce  []byte `protobuf:"bytes,2,opt,name=client_nonce,json=clientNonce" json:"client_nonce,omitempty"`
	ServerNonce  []byte `protobuf:"bytes,3,opt,name=server_nonce,json=serverNonce" json:"server_nonce,omitempty"`
}

func (m *CryptSetup) Reset()         { *m = CryptSetup{} }
func (m *CryptSetup) String() string { return proto.CompactTextString(m) }
func (*CryptSetup) ProtoMessage()    {}

func (m *CryptSetup) GetKey() []byte {
	if m != nil {
		return m.Key
	}
	return nil
}
func (m *CryptSetup) GetClientNonce() []byte {
	if m != nil {
		return m.ClientNonce
	}
	return nil
}
func (m *CryptSetup) GetServerNonce() []byte {
	if m != nil {
		return m.ServerNonce
	}
	return nil
}

// ContextActionModify_Operation distinguishes registering a context action
// from removing a previously registered one.
type ContextActionModify_Operation int32

const (
	ContextActionModify_Add    ContextActionModify_Operation = 0
	ContextActionModify_Remove ContextActionModify_Operation = 1
)

// ContextActionModify registers (or removes) a server-defined context menu
// action.
type ContextActionModify struct {
	Action    *string                        `protobuf:"bytes,1,opt,name=action" json:"action,omitempty"`
	Text      *string                        `protobuf:"bytes,2,opt,name=text" json:"text,omitempty"`
	Context   *uint32                        `protobuf:"varint,3,opt,name=context" json:"context,omitempty"`
	Operation *ContextActionModify_Operation `protobuf:"varint,4,opt,name=operation,enum=MumbleProto.ContextActionModify_Operation" json:"operation,omitempty"`
}

func (m *ContextActionModify) Reset()         { *m = ContextActionModify{} }
func (m *ContextActionModify) String() string { return proto.CompactTextString(m) }
func (*ContextActionModify) ProtoMessage()    {}

func (m *ContextActionModify) GetAction() string {
	if m != nil && m.Action != nil {
		return *m.Action
	}
	return ""
}
func (m *ContextActionModify) GetText() string {
	if m != nil && m.Text != nil {
		return *m.Text
	}
	return ""
}
func (m *ContextActionModify) GetOperation() ContextActionModify_Operation {
	if m != nil && m.Operation != nil {
		return *m.Operation
	}
	return ContextActionModify_Add
}

// ContextAction is fired by the user invoking a registered context action.
type ContextAction struct {
	Session   *uint32 `protobuf:"varint,1,opt,name=session" json:"session,omitempty"`
	ChannelId *uint32 `protobuf:"varint,2,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	Action    *string `protobuf:"bytes,3,opt,name=action" json:"action,omitempty"`
}

func (m *ContextAction) Reset()         { *m = ContextAction{} }
func (m *ContextAction) String() string { return proto.CompactTextString(m) }
func (*ContextAction) ProtoMessage()    {}

// UserList lists (or edits) the server's registered-user database.
type UserList struct {
	Users []*UserList_UserListEntry `protobuf:"bytes,1,rep,name=users" json:"users,omitempty"`
}

func (m *UserList) Reset()         { *m = UserList{} }
func (m *UserList) String() string { return proto.CompactTextString(m) }
func (*UserList) ProtoMessage()    {}

// UserList_UserListEntry is one registered-user record.
type UserList_UserListEntry struct {
	UserId     *uint32 `protobuf:"varint,1,opt,name=user_id,json=userId"`
	Name       *string `protobuf:"bytes,2,opt,name=name"`
	LastSeen   *string `protobuf:"bytes,3,opt,name=last_seen,json=lastSeen"`
	LastChannel *uint32 `protobuf:"varint,4,opt,name=last_channel,json=lastChannel"`
}

func (m *UserList_UserListEntry) GetUserId() uint32 {
	if m != nil && m.UserId != nil {
		return *m.UserId
	}
	return 0
}
func (m *UserList_UserListEntry) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}
func (m *UserList_UserListEntry) GetLastSeen() string {
	if m != nil && m.LastSeen != nil {
		return *m.LastSeen
	}
	return ""
}
func (m *UserList_UserListEntry) GetLastChannel() uint32 {
	if m != nil && m.LastChannel != nil {
		return *m.LastChannel
	}
	return 0
}

// VoiceTarget registers a whisper/shout target set the speaker can select
// by id (1..30) in subsequent audio packets.
type VoiceTarget struct {
	Id      *uint32                `protobuf:"varint,1,opt,name=id" json:"id,omitempty"`
	Targets []*VoiceTarget_Target  `protobuf:"bytes,2,rep,name=targets" json:"targets,omitempty"`
}

func (m *VoiceTarget) Reset()         { *m = VoiceTarget{} }
func (m *VoiceTarget) String() string { return proto.CompactTextString(m) }
func (*VoiceTarget) ProtoMessage()    {}

// VoiceTarget_Target is one target-set entry: a channel, or a set of
// sessions, with optional sub-channel link traversal.
type VoiceTarget_Target struct {
	Session        []uint32 `protobuf:"varint,1,rep,name=session" json:"session,omitempty"`
	ChannelId      *uint32  `protobuf:"varint,2,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	Group          *string  `protobuf:"bytes,3,opt,name=group" json:"group,omitempty"`
	Links          *bool    `protobuf:"varint,4,opt,name=links" json:"links,omitempty"`
	Children       *bool    `protobuf:"varint,5,opt,name=children" json:"children,omitempty"`
}

// PermissionQuery asks for (or answers with) the effective permission mask
// on a channel.
type PermissionQuery struct {
	ChannelId   *uint32 `protobuf:"varint,1,opt,name=channel_id,json=channelId" json:"channel_id,omitempty"`
	Permissions *uint32 `protobuf:"varint,2,opt,name=permissions" json:"permissions,omitempty"`
	Flush       *bool   `protobuf:"varint,3,opt,name=flush" json:"flush,omitempty"`
}

func (m *PermissionQuery) Reset()         { *m = PermissionQuery{} }
func (m *PermissionQuery) String() string { return proto.CompactTextString(m) }
func (*PermissionQuery) ProtoMessage()    {}

func (m *PermissionQuery) GetChannelId() uint32 {
	if m != nil && m.ChannelId != nil {
		return *m.ChannelId
	}
	return 0
}
func (m *PermissionQuery) GetPermissions() uint32 {
	if m != nil && m.Permissions != nil {
		return *m.Permissions
	}
	return 0
}

// CodecVersion announces which legacy audio codecs the server will accept,
// so a client knows whether it is safe to omit CELT/Speex fallback frames.
type CodecVersion struct {
	Alpha         *int32 `protobuf:"varint,1,opt,name=alpha" json:"alpha,omitempty"`
	Beta          *int32 `protobuf:"varint,2,opt,name=beta" json:"beta,omitempty"`
	PreferAlpha   *bool  `protobuf:"varint,3,opt,name=prefer_alpha,json=preferAlpha" json:"prefer_alpha,omitempty"`
	Opus          *bool  `protobuf:"varint,4,opt,name=opus" json:"opus,omitempty"`
}

func (m *CodecVersion) Reset()         { *m = CodecVersion{} }
func (m *CodecVersion) String() string { return proto.CompactTextString(m) }
func (*CodecVersion) ProtoMessage()    {}

// UserStats answers a "User Information" query with connection and codec
// diagnostics about a specific user.
type UserStats struct {
	Session      *uint32 `protobuf:"varint,1,opt,name=session" json:"session,omitempty"`
	StatsOnly    *bool   `protobuf:"varint,2,opt,name=stats_only,json=statsOnly" json:"stats_only,omitempty"`
	Version      *Version `protobuf:"bytes,5,opt,name=version" json:"version,omitempty"`
}

func (m *UserStats) Reset()         { *m = UserStats{} }
func (m *UserStats) String() string { return proto.CompactTextString(m) }
func (*UserStats) ProtoMessage()    {}

// RequestBlob asks the server for the full payload behind one or more
// hashes previously advertised on ChannelState/UserState.
type RequestBlob struct {
	SessionTexture []uint32 `protobuf:"varint,1,rep,name=session_texture,json=sessionTexture" json:"session_texture,omitempty"`
	SessionComment []uint32 `protobuf:"varint,2,rep,name=session_comment,json=sessionComment" json:"session_comment,omitempty"`
	ChannelDescription []uint32 `protobuf:"varint,3,rep,name=channel_description,json=channelDescription" json:"channel_description,omitempty"`
}

func (m *RequestBlob) Reset()         { *m = RequestBlob{} }
func (m *RequestBlob) String() string { return proto.CompactTextString(m) }
func (*RequestBlob) ProtoMessage()    {}

// ServerConfig announces server-wide limits (message/image length,
// bandwidth ceiling, user count) once per session, after ServerSync.
type ServerConfig struct {
	MaxBandwidth     *uint32 `protobuf:"varint,1,opt,name=max_bandwidth,json=maxBandwidth" json:"max_bandwidth,omitempty"`
	WelcomeText      *string `protobuf:"bytes,2,opt,name=welcome_text,json=welcomeText" json:"welcome_text,omitempty"`
	AllowHtml        *bool   `protobuf:"varint,3,opt,name=allow_html,json=allowHtml" json:"allow_html,omitempty"`
	MessageLength    *uint32 `protobuf:"varint,4,opt,name=message_length,json=messageLength" json:"message_length,omitempty"`
	ImageMessageLength *uint32 `protobuf:"varint,5,opt,name=image_message_length,json=imageMessageLength" json:"image_message_length,omitempty"`
	MaxUsers         *uint32 `protobuf:"varint,6,opt,name=max_users,json=maxUsers" json:"max_users,omitempty"`
}

func (m *ServerConfig) Reset()         { *m = ServerConfig{} }
func (m *ServerConfig) String() string { return proto.CompactTextString(m) }
func (*ServerConfig) ProtoMessage()    {}

func (m *ServerConfig) GetMessageLength() uint32 {
	if m != nil && m.MessageLength != nil {
		return *m.MessageLength
	}
	return 0
}
func (m *ServerConfig) GetImageMessageLength() uint32 {
	if m != nil && m.ImageMessageLength != nil {
		return *m.ImageMessageLength
	}
	return 0
}
func (m *ServerConfig) GetMaxBandwidth() uint32 {
	if m != nil && m.MaxBandwidth != nil {
		return *m.MaxBandwidth
	}
	return 0
}
func (m *ServerConfig) GetWelcomeText() string {
	if m != nil && m.WelcomeText != nil {
		return *m.WelcomeText
	}
	return ""
}
func (m *ServerConfig) GetAllowHtml() bool {
	if m != nil && m.AllowHtml != nil {
		return *m.AllowHtml
	}
	return false
}
func (m *ServerConfig) GetMaxUsers() uint32 {
	if m != nil && m.MaxUsers != nil {
		return *m.MaxUsers
	}
	return 0
}

// SuggestConfig recommends client-side settings (push-to-talk, positional
// audio, version floor) without enforcing them.
type SuggestConfig struct {
	Version       *uint32 `protobuf:"varint,1,opt,name=version" json:"version,omitempty"`
	PositionalAudio *bool `protobuf:"varint,2,opt,name=positional_audio,json=positionalAudio" json:"positional_audio,omitempty"`
	PushToTalk    *bool   `protobuf:"varint,3,opt,name=push_to_talk,json=pushToTalk" json:"push_to_talk,omitempty"`
}

func (m *SuggestConfig) Reset()         { *m = SuggestConfig{} }
func (m *SuggestConfig) String() string { return proto.CompactTextString(m) }
func (*SuggestConfig) ProtoMessage()    {}

// PingUDP and AudioUDP back the datagram-channel protobuf wire variant
// (server version >= 1.5.0); see gumble/voice.go.
type PingUDP struct {
	Timestamp                 *uint64 `protobuf:"varint,1,opt,name=timestamp" json:"timestamp,omitempty"`
	RequestExtendedInformation *bool  `protobuf:"varint,2,opt,name=request_extended_information,json=requestExtendedInformation" json:"request_extended_information,omitempty"`
}

func (m *PingUDP) Reset()         { *m = PingUDP{} }
func (m *PingUDP) String() string { return proto.CompactTextString(m) }
func (*PingUDP) ProtoMessage()    {}

func (m *PingUDP) GetTimestamp() uint64 {
	if m != nil && m.Timestamp != nil {
		return *m.Timestamp
	}
	return 0
}

type AudioUDP struct {
	SenderSession *uint32  `protobuf:"varint,1,opt,name=sender_session,json=senderSession" json:"sender_session,omitempty"`
	FrameNumber   *uint64  `protobuf:"varint,2,opt,name=frame_number,json=frameNumber" json:"frame_number,omitempty"`
	OpusData      []byte   `protobuf:"bytes,3,opt,name=opus_data,json=opusData" json:"opus_data,omitempty"`
	PositionalData []float32 `protobuf:"fixed32,4,rep,name=positional_data,json=positionalData" json:"positional_data,omitempty"`
	VolumeAdjustment *float32 `protobuf:"fixed32,5,opt,name=volume_adjustment,json=volumeAdjustment" json:"volume_adjustment,omitempty"`
	IsTerminator  *bool    `protobuf:"varint,6,opt,name=is_terminator,json=isTerminator" json:"is_terminator,omitempty"`
	Target        *uint32  `protobuf:"varint,7,opt,name=target" json:"target,omitempty"`
}

func (m *AudioUDP) Reset()         { *m = AudioUDP{} }
func (m *AudioUDP) String() string { return proto.CompactTextString(m) }
func (*AudioUDP) ProtoMessage()    {}

func (m *AudioUDP) GetSenderSession() uint32 {
	if m != nil && m.SenderSession != nil {
		return *m.SenderSession
	}
	return 0
}
func (m *AudioUDP) GetFrameNumber() uint64 {
	if m != nil && m.FrameNumber != nil {
		return *m.FrameNumber
	}
	return 0
}
func (m *AudioUDP) GetTarget() uint32 {
	if m != nil && m.Target != nil {
		return *m.Target
	}
	return 0
}

// MessageKind is the 16-bit big-endian type code prefixing every framed
// reliable-channel message.
type MessageKind uint16

const (
	KindVersion MessageKind = iota
	KindUDPTunnel
	KindAuthenticate
	KindPing
	KindReject
	KindServerSync
	KindChannelRemove
	KindChannelState
	KindUserRemove
	KindUserState
	KindBanList
	KindTextMessage
	KindPermissionDenied
	KindACL
	KindQueryUsers
	KindCryptSetup
	KindContextActionModify
	KindContextAction
	KindUserList
	KindVoiceTarget
	KindPermissionQuery
	KindCodecVersion
	KindUserStats
	KindRequestBlob
	KindServerConfig
	KindSuggestConfig
)

// MessageType returns the wire type code for a known message, and an error
// for anything else (including []byte, the UDPTunnel special case, which
// callers must check for explicitly before calling MessageType).
func MessageType(msg interface{}) (MessageKind, error) {
	switch msg.(type) {
	case *Version:
		return KindVersion, nil
	case *Authenticate:
		return KindAuthenticate, nil
	case *Ping:
		return KindPing, nil
	case *Reject:
		return KindReject, nil
	case *ServerSync:
		return KindServerSync, nil
	case *ChannelRemove:
		return KindChannelRemove, nil
	case *ChannelState:
		return KindChannelState, nil
	case *UserRemove:
		return KindUserRemove, nil
	case *UserState:
		return KindUserState, nil
	case *BanList:
		return KindBanList, nil
	case *TextMessage:
		return KindTextMessage, nil
	case *PermissionDenied:
		return KindPermissionDenied, nil
	case *ACL:
		return KindACL, nil
	case *QueryUsers:
		return KindQueryUsers, nil
	case *CryptSetup:
		return KindCryptSetup, nil
	case *ContextActionModify:
		return KindContextActionModify, nil
	case *ContextAction:
		return KindContextAction, nil
	case *UserList:
		return KindUserList, nil
	case *VoiceTarget:
		return KindVoiceTarget, nil
	case *PermissionQuery:
		return KindPermissionQuery, nil
	case *CodecVersion:
		return KindCodecVersion, nil
	case *UserStats:
		return KindUserStats, nil
	case *RequestBlob:
		return KindRequestBlob, nil
	case *ServerConfig:
		return KindServerConfig, nil
	case *SuggestConfig:
		return KindSuggestConfig, nil
	default:
		return 0, fmt.Errorf("MumbleProto: unrecognized message type %T", msg)
	}
}

// New returns a zero-valued message for the given wire kind, or nil for an
// unknown/reserved code (type codes 0-25 are dispatched; anything else,
// including the UDPTunnel special case which carries raw bytes instead of a
// proto message, must be handled by the caller before New is reached).
func New(kind MessageKind) proto.Message {
	switch kind {
	case KindVersion:
		return &Version{}
	case KindAuthenticate:
		return &Authenticate{}
	case KindPing:
		return &Ping{}
	case KindReject:
		return &Reject{}
	case KindServerSync:
		return &ServerSync{}
	case KindChannelRemove:
		return &ChannelRemove{}
	case KindChannelState:
		return &ChannelState{}
	case KindUserRemove:
		return &UserRemove{}
	case KindUserState:
		return &UserState{}
	case KindBanList:
		return &BanList{}
	case KindTextMessage:
		return &TextMessage{}
	case KindPermissionDenied:
		return &PermissionDenied{}
	case KindACL:
		return &ACL{}
	case KindQueryUsers:
		return &QueryUsers{}
	case KindCryptSetup:
		return &CryptSetup{}
	case KindContextActionModify:
		return &ContextActionModify{}
	case KindContextAction:
		return &ContextAction{}
	case KindUserList:
		return &UserList{}
	case KindVoiceTarget:
		return &VoiceTarget{}
	case KindPermissionQuery:
		return &PermissionQuery{}
	case KindCodecVersion:
		return &CodecVersion{}
	case KindUserStats:
		return &UserStats{}
	case KindRequestBlob:
		return &RequestBlob{}
	case KindServerConfig:
		return &ServerConfig{}
	case KindSuggestConfig:
		return &SuggestConfig{}
	default:
		return nil
	}
}
