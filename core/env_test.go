package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	for _, env := range []PackEnv{EnvBoth, EnvClient, EnvServer} {
		got, err := ParseEnv(string(env))
		require.NoError(t, err)
		assert.Equal(t, env, got)
	}
	_, err := ParseEnv("BOTH")
	var vErr *UnknownVariantError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"both", "client", "server"}, vErr.Expected)
}

func TestEnvSides(t *testing.T) {
	assert.True(t, EnvBoth.OnClient())
	assert.True(t, EnvBoth.OnServer())
	assert.True(t, EnvClient.OnClient())
	assert.False(t, EnvClient.OnServer())
	assert.False(t, EnvServer.OnClient())
	assert.True(t, EnvServer.OnServer())
}

func TestChannelIncludes(t *testing.T) {
	tests := []struct {
		follow, published Channel
		want              bool
	}{
		{ChannelRelease, ChannelRelease, true},
		{ChannelRelease, ChannelBeta, false},
		{ChannelRelease, ChannelAlpha, false},
		{ChannelBeta, ChannelRelease, true},
		{ChannelBeta, ChannelBeta, true},
		{ChannelBeta, ChannelAlpha, false},
		{ChannelAlpha, ChannelRelease, true},
		{ChannelAlpha, ChannelAlpha, true},
		{Channel("nightly"), ChannelRelease, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.follow.Includes(tt.published), "%s includes %s", tt.follow, tt.published)
	}
}

func TestParseChannel(t *testing.T) {
	c, err := ParseChannel("alpha")
	require.NoError(t, err)
	assert.Equal(t, ChannelAlpha, c)

	_, err = ParseChannel("Release")
	var vErr *UnknownVariantError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "channel", vErr.Path)
}
