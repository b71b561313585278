package gumble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mumbleclient/gumble/gumble/MumbleProto"
)

func TestNewVoiceTargetRange(t *testing.T) {
	_, err := NewVoiceTarget(0)
	assert.ErrorIs(t, err, ErrVoiceTargetRange)

	_, err = NewVoiceTarget(31)
	assert.ErrorIs(t, err, ErrVoiceTargetRange)

	vt, err := NewVoiceTarget(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), vt.ID)
}

func TestSetWhisperUserTargetsBuildsVoiceTargetID2(t *testing.T) {
	client := newClient(NewConfig())
	defer client.dispatcher.stop()
	client.setState(StateSynced)

	require.NoError(t, client.SetWhisper([]uint32{7, 8}, false))

	require.NotNil(t, client.VoiceTarget)
	assert.Equal(t, uint32(2), client.VoiceTarget.ID)

	msg, ok := client.VoiceTarget.packet().(*MumbleProto.VoiceTarget)
	require.True(t, ok)
	assert.Equal(t, uint32(2), msg.GetId())
	require.Len(t, msg.Targets, 1)
	assert.Equal(t, []uint32{7, 8}, msg.Targets[0].Session)

	client.RemoveWhisper()
	assert.Nil(t, client.VoiceTarget)
}
