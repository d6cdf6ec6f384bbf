package repository

import (
	"context"
	"testing"

	"entity-registry/config"
	"entity-registry/internal/repository/memory"
	"entity-registry/internal/repository/postgres"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var (
	_ Repository = (*memory.Memory)(nil)
	_ Repository = (*postgres.Postgres)(nil)
)

func TestNewBackends(t *testing.T) {
	ctx := context.Background()
	log := zap.NewNop().Sugar()
	cfg := &config.Config{}

	repo, err := New(ctx, config.BackendMemory, log, cfg)
	require.NoError(t, err)
	require.IsType(t, &memory.Memory{}, repo)

	repo, err = New(ctx, config.BackendPostgres, log, cfg)
	require.NoError(t, err)
	require.IsType(t, &postgres.Postgres{}, repo)

	_, err = New(ctx, "redis", log, cfg)
	require.EqualError(t, err, "unknown repo backend: redis")
}
