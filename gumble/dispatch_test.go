package gumble

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

func newTestReplicator(t *testing.T) (*replicator, *Listeners) {
	t.Helper()
	channels := newChannels()
	users := newUsers(channels)
	d := newDispatcher(1)
	t.Cleanup(d.stop)

	listeners := &Listeners{}
	audioListeners := &AudioListeners{}
	r := newReplicator(channels, users, d, listeners, audioListeners, newMemoryBlobCache(), nil, slog.Default(), false)

	// Commit immediately: tests want callbacks delivered synchronously
	// relative to handle(), not staged until a ServerSync.
	d.commit()
	return r, listeners
}

// waitFor polls until cond returns true or the deadline expires, so tests
// don't race the dispatcher's worker goroutine.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	require.True(t, cond(), "condition was never satisfied")
}

func TestReplicatorChannelStateCreateThenUpdate(t *testing.T) {
	r, listeners := newTestReplicator(t)

	var mu sync.Mutex
	var events []*ChannelChangeEvent
	listeners.Attach(&Listener{
		ChannelChange: func(e *ChannelChangeEvent) {
			mu.Lock()
			events = append(events, e)
			mu.Unlock()
		},
	})
	snapshot := func() []*ChannelChangeEvent {
		mu.Lock()
		defer mu.Unlock()
		return append([]*ChannelChangeEvent{}, events...)
	}

	root := &MumbleProto.ChannelState{ChannelId: proto.Uint32(0), Name: proto.String("Root")}
	require.NoError(t, r.handle(MumbleProto.KindChannelState, marshal(t, root)))

	lobby := &MumbleProto.ChannelState{
		ChannelId: proto.Uint32(5),
		Parent:    proto.Uint32(0),
		Name:      proto.String("Lobby"),
	}
	require.NoError(t, r.handle(MumbleProto.KindChannelState, marshal(t, lobby)))

	waitFor(t, func() bool { return len(snapshot()) >= 2 })
	recorded := snapshot()

	assert.NotZero(t, recorded[0].Mask&ChannelChangeCreated)
	assert.Equal(t, uint32(0), recorded[0].Channel.ID)
	assert.NotZero(t, recorded[1].Mask&ChannelChangeCreated)
	assert.Equal(t, uint32(5), recorded[1].Channel.ID)

	rename := &MumbleProto.ChannelState{ChannelId: proto.Uint32(5), Name: proto.String("Hall")}
	require.NoError(t, r.handle(MumbleProto.KindChannelState, marshal(t, rename)))

	waitFor(t, func() bool { return len(snapshot()) >= 3 })
	recorded = snapshot()

	last := recorded[2]
	assert.Equal(t, ChannelChangeName, last.Mask)
	assert.Equal(t, "Lobby", last.Previous.Name)
	assert.Equal(t, "Hall", last.Channel.Name)
}

func TestReplicatorChannelRemoveUnknownLogsWarningNoCallback(t *testing.T) {
	r, listeners := newTestReplicator(t)

	var fired atomic.Bool
	listeners.Attach(&Listener{
		ChannelChange: func(e *ChannelChangeEvent) { fired.Store(true) },
	})

	remove := &MumbleProto.ChannelRemove{ChannelId: proto.Uint32(5)}
	require.NoError(t, r.handle(MumbleProto.KindChannelRemove, marshal(t, remove)))

	time.Sleep(20 * time.Millisecond)
	assert.False(t, fired.Load())
}

func TestReplicatorRejectReturnsConnectionRejected(t *testing.T) {
	r, _ := newTestReplicator(t)

	reject := &MumbleProto.Reject{
		Type:   MumbleProto.Reject_WrongServerPW.Enum(),
		Reason: proto.String("bad password"),
	}
	err := r.handle(MumbleProto.KindReject, marshal(t, reject))
	require.Error(t, err)

	var rejErr *RejectError
	require.ErrorAs(t, err, &rejErr)
	assert.Equal(t, "WrongServerPW", rejErr.Type)
	assert.Equal(t, "bad password", rejErr.Reason)
}

func TestReplicatorDescriptionBlobCaching(t *testing.T) {
	r, _ := newTestReplicator(t)

	hash := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	// Hash arrives first with an empty cache: the description is unknown.
	withHash := &MumbleProto.ChannelState{
		ChannelId:       proto.Uint32(3),
		Name:            proto.String("Quiet Room"),
		DescriptionHash: hash,
	}
	require.NoError(t, r.handle(MumbleProto.KindChannelState, marshal(t, withHash)))
	require.NotNil(t, r.channels.Get(3))
	assert.Empty(t, r.channels.Get(3).Description())

	// The full description arrives (e.g. a RequestBlob response): it is
	// applied and written through to the cache under the stored hash.
	withBody := &MumbleProto.ChannelState{
		ChannelId:   proto.Uint32(3),
		Description: proto.String("talk quietly"),
	}
	require.NoError(t, r.handle(MumbleProto.KindChannelState, marshal(t, withBody)))
	assert.Equal(t, "talk quietly", r.channels.Get(3).Description())

	payload, ok := r.blobs.Get(BlobKindChannelDescription, 3, hash)
	require.True(t, ok)
	assert.Equal(t, "talk quietly", string(payload))

	// A later hash-only update for the same blob is satisfied from cache
	// with no re-fetch.
	require.NoError(t, r.handle(MumbleProto.KindChannelState, marshal(t, withHash)))
	assert.Equal(t, "talk quietly", r.channels.Get(3).Description())
}

func TestReplicatorUserRemoveFiresDisconnectOnlyForMyself(t *testing.T) {
	r, listeners := newTestReplicator(t)

	var disconnects atomic.Int32
	listeners.Attach(&Listener{
		Disconnect: func(e *DisconnectEvent) { disconnects.Add(1) },
	})

	r.users.bySession[10] = &User{Session: 10, users: r.users}
	r.users.bySession[20] = &User{Session: 20, users: r.users}
	r.users.setMyself(10)

	// Another user being banned is their problem, not a local disconnect.
	other := &MumbleProto.UserRemove{Session: proto.Uint32(20), Ban: proto.Bool(true)}
	require.NoError(t, r.handle(MumbleProto.KindUserRemove, marshal(t, other)))
	time.Sleep(20 * time.Millisecond)
	assert.EqualValues(t, 0, disconnects.Load())

	me := &MumbleProto.UserRemove{Session: proto.Uint32(10), Ban: proto.Bool(true)}
	require.NoError(t, r.handle(MumbleProto.KindUserRemove, marshal(t, me)))
	waitFor(t, func() bool { return disconnects.Load() == 1 })
}

func marshal(t *testing.T, m proto.Message) []byte {
	t.Helper()
	b, err := proto.Marshal(m)
	require.NoError(t, err)
	return b
}
