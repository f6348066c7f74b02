package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() DatabaseOptions {
	return DatabaseOptions{
		Name:           "colophon",
		Host:           "db",
		Port:           "5432",
		User:           "app",
		Password:       "secret",
		MaxConns:       7,
		AcquireTimeout: 3 * time.Second,
	}
}

func TestConnectionString(t *testing.T) {
	d := testOptions()
	assert.Equal(t,
		"host=db port=5432 user=app dbname=colophon password=secret sslmode=disable pool_max_conns=7",
		d.ConnectionString(),
	)
}

func TestPoolConfigAppliesBounds(t *testing.T) {
	d := testOptions()
	cfg, err := d.PoolConfig()
	require.NoError(t, err)
	assert.Equal(t, int32(7), cfg.MaxConns)
	assert.Equal(t, 3*time.Second, cfg.ConnConfig.ConnectTimeout)
}
