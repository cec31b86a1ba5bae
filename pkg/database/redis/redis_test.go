package redis

import (
	"testing"

	"myDiverseMarket/pkg/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDial(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Dial(config.RedisConfig{RedisHost: mr.Host(), RedisPort: mr.Port()})
	require.NoError(t, err)
	assert.NoError(t, CloseRedisClient(client))
}

func TestDial_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	host, port := mr.Host(), mr.Port()
	mr.Close()

	client, err := Dial(config.RedisConfig{RedisHost: host, RedisPort: port})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestCloseRedisClient_Nil(t *testing.T) {
	assert.NoError(t, CloseRedisClient(nil))
}
