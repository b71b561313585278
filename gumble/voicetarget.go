package gumble

import (
	"github.com/golang/protobuf/proto"
	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// VoiceTargetIDMin and VoiceTargetIDMax bound the whisper/shout target ids
// a client may register.
const (
	VoiceTargetIDMin = 1
	VoiceTargetIDMax = 30
)

// VoiceTarget is one whisper/shout target set, built up with AddChannel/
// AddUser and registered with the server before use.
type VoiceTarget struct {
	ID      uint32
	targets []*MumbleProto.VoiceTarget_Target
}

// NewVoiceTarget allocates a VoiceTarget for id, which must be in
// [VoiceTargetIDMin, VoiceTargetIDMax].
func NewVoiceTarget(id uint32) (*VoiceTarget, error) {
	if id < VoiceTargetIDMin || id > VoiceTargetIDMax {
		return nil, ErrVoiceTargetRange
	}
	return &VoiceTarget{ID: id}, nil
}

// AddChannel adds a channel (optionally including its sub-channels, linked
// channels, or a restricting ACL group) as a target.
func (v *VoiceTarget) AddChannel(channelID uint32, subChannels, links bool, group string) {
	t := &MumbleProto.VoiceTarget_Target{
		ChannelId: proto.Uint32(channelID),
		Children:  proto.Bool(subChannels),
		Links:     proto.Bool(links),
	}
	if group != "" {
		t.Group = proto.String(group)
	}
	v.targets = append(v.targets, t)
}

// AddUser adds one or more user sessions as targets.
func (v *VoiceTarget) AddUser(sessions...uint32) {
	v.targets = append(v.targets, &MumbleProto.VoiceTarget_Target{
		Session: sessions,
	})
}

// packet builds the wire message that registers this target set.
func (v *VoiceTarget) packet() proto.Message {
	return &MumbleProto.VoiceTarget{
		Id:      proto.Uint32(v.ID),
		Targets: v.targets,
	}
}
