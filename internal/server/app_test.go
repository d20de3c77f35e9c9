package server

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/bloghub/internal/server/config"
	"github.com/dmitrijs2005/bloghub/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.DatabaseDSN = repomanager.MemoryDSN
	c.EndpointAddrGRPC = "127.0.0.1:0"
	c.LogLevel = "error"
	c.BcryptCost = 4
	return c
}

func TestNewApp_Memory(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)
	assert.NotNil(t, app.userService)
}

func TestRun_StopsOnCancel(t *testing.T) {
	app, err := NewApp(context.Background(), memoryConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestRun_ListenError(t *testing.T) {
	c := memoryConfig()
	c.EndpointAddrGRPC = "127.0.0.1:99999"

	app, err := NewApp(context.Background(), c)
	require.NoError(t, err)

	assert.Error(t, app.Run(context.Background()))
}

func TestStorageKind(t *testing.T) {
	assert.Equal(t, "memory", storageKind("memory"))
	assert.Equal(t, "postgres", storageKind("postgres://x"))
}
