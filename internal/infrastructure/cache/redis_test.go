package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonzhang/portfolio/internal/infrastructure/logger"
)

func TestNewRedisFromURL(t *testing.T) {
	mr := miniredis.RunT(t)
	log := logger.NewNopLogger()

	rdb, err := NewRedisFromURL(context.Background(), "redis://"+mr.Addr()+"/0", log)
	require.NoError(t, err)
	defer Close(rdb, log)

	assert.NoError(t, Ping(context.Background(), rdb))
}

func TestNewRedisFromURL_InvalidURL(t *testing.T) {
	_, err := NewRedisFromURL(context.Background(), "http://not-redis", logger.NewNopLogger())
	assert.Error(t, err)
}

func TestPing_ServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	log := logger.NewNopLogger()
	rdb, err := NewRedisFromURL(context.Background(), "redis://"+mr.Addr(), log)
	require.NoError(t, err)
	defer Close(rdb, log)

	mr.Close()

	assert.Error(t, Ping(context.Background(), rdb))
}
