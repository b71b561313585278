package gumble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

// Move builds a UserState carrying only session and channel_id.
func TestMoveCommandWireContents(t *testing.T) {
	msg := newMoveCommand(42, 9)
	us, ok := msg.(*MumbleProto.UserState)
	require.True(t, ok)

	assert.Equal(t, uint32(42), us.GetSession())
	assert.Equal(t, uint32(9), us.GetChannelId())
	assert.Nil(t, us.Name)
	assert.Nil(t, us.Mute)
}

func TestModifyUserStateCommandOnlySetsRequestedFields(t *testing.T) {
	comment := "brb"
	delta := UserStateDelta{SetMute: true, Mute: true, Comment: &comment}
	msg := newModifyUserStateCommand(7, delta)
	us, ok := msg.(*MumbleProto.UserState)
	require.True(t, ok)

	assert.Equal(t, uint32(7), us.GetSession())
	require.NotNil(t, us.Mute)
	assert.True(t, us.GetMute())
	assert.Equal(t, "brb", us.GetComment())
	assert.Nil(t, us.Deaf)
	assert.Nil(t, us.SuppressField)
}

func TestRemoveUserCommand(t *testing.T) {
	msg := newRemoveUserCommand(3, "spamming", true)
	ur, ok := msg.(*MumbleProto.UserRemove)
	require.True(t, ok)
	assert.Equal(t, uint32(3), ur.GetSession())
	assert.Equal(t, "spamming", ur.GetReason())
	assert.True(t, ur.GetBan())
}

func TestCreateAndRemoveChannelCommands(t *testing.T) {
	create := newCreateChannelCommand(0, "Lounge", true)
	cs, ok := create.(*MumbleProto.ChannelState)
	require.True(t, ok)
	assert.Equal(t, uint32(0), cs.GetParent())
	assert.Equal(t, "Lounge", cs.GetName())
	assert.True(t, cs.GetTemporary())

	remove := newRemoveChannelCommand(5)
	cr, ok := remove.(*MumbleProto.ChannelRemove)
	require.True(t, ok)
	assert.Equal(t, uint32(5), cr.GetChannelId())
}

func TestUpdateChannelCommandDelta(t *testing.T) {
	name := "New Name"
	msg := newUpdateChannelCommand(5, ChannelStateDelta{Name: &name, LinksAdd: []uint32{1, 2}})
	cs, ok := msg.(*MumbleProto.ChannelState)
	require.True(t, ok)
	assert.Equal(t, uint32(5), cs.GetChannelId())
	assert.Equal(t, "New Name", cs.GetName())
	assert.Equal(t, []uint32{1, 2}, cs.LinksAdd)
	assert.Nil(t, cs.Position)
}

func TestQueryAndUpdateACLCommands(t *testing.T) {
	query := newQueryACLCommand(5)
	qacl, ok := query.(*MumbleProto.ACL)
	require.True(t, ok)
	assert.Equal(t, uint32(5), qacl.GetChannelId())
	require.NotNil(t, qacl.Query)
	assert.True(t, *qacl.Query)

	update := newUpdateACLCommand(5, true, map[string]*ACLGroup{
		"admin": {Name: "admin", Add: []uint32{1}},
	}, []*ACLEntry{
		{ApplyHere: true, UserID: 1, Grant: 0x1, Deny: 0x2},
	})
	uacl, ok := update.(*MumbleProto.ACL)
	require.True(t, ok)
	assert.True(t, uacl.GetInheritAcls())
	require.Len(t, uacl.Groups, 1)
	assert.Equal(t, "admin", uacl.Groups[0].GetName())
	require.Len(t, uacl.Acls, 1)
	assert.EqualValues(t, 1, uacl.Acls[0].GetUserId())
}

func TestRateLimiterRaise(t *testing.T) {
	r := newRateLimiter(5)
	assert.Equal(t, 5, r.perSec)
	r.Raise(12)
	assert.Equal(t, 12, r.perSec)
	r.Raise(0) // ignored
	assert.Equal(t, 12, r.perSec)
}

func TestCommandQueueFIFOOrder(t *testing.T) {
	q := newCommandQueue(nil, 1000)
	q.push("a")
	q.push("b")
	q.pushFront("z")

	assert.Equal(t, "z", q.pop())
	assert.Equal(t, "a", q.pop())
	assert.Equal(t, "b", q.pop())
	assert.Nil(t, q.pop())
}

func TestValidateTextMessage(t *testing.T) {
	require.NoError(t, validateTextMessage("short", 10))
	err := validateTextMessage("this message is far too long", 10)
	assert.ErrorIs(t, err, ErrTextTooLong)
}

func TestValidateImagePayload(t *testing.T) {
	require.NoError(t, validateImagePayload(make([]byte, 10), 100))
	err := validateImagePayload(make([]byte, 200), 100)
	assert.ErrorIs(t, err, ErrImageTooBig)
}

func TestRateLimiterRaisedAfterServerSync(t *testing.T) {
	channels := newChannels()
	users := newUsers(channels)
	d := newDispatcher(1)
	defer d.stop()
	d.commit()

	queue := newCommandQueue(nil, 5)
	r := newReplicator(channels, users, d, &Listeners{}, &AudioListeners{}, newMemoryBlobCache(), queue, nil, false)

	for session := uint32(1); session <= 3; session++ {
		users.bySession[session] = &User{Session: session, users: users}
	}

	sync := &MumbleProto.ServerSync{Session: uint32Ptr(1)}
	require.NoError(t, r.handle(MumbleProto.KindServerSync, marshal(t, sync)))

	assert.Equal(t, 3, queue.rateLimiter.perSec)
}

func uint32Ptr(v uint32) *uint32 { return &v }
