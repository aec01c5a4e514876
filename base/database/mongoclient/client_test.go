package mongoclient

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
)

func TestPoolSize(t *testing.T) {
	cpus := runtime.NumCPU()

	require.Equal(t, uint64(cpus*2), poolSize(1, 2))
	require.Equal(t, uint64((cpus*2+2)/3), poolSize(3, 2))
	require.Equal(t, uint64(cpus*defaultPoolMultiplier), poolSize(1, 0))
	require.Equal(t, uint64(cpus*2), poolSize(0, 2))
}

func TestClientOptionsAuthSource(t *testing.T) {
	conn := connstring.ConnString{
		Hosts:       []string{"localhost:27017"},
		Username:    "user",
		Password:    "pwd",
		PasswordSet: true,
	}

	opts := clientOptions("mongodb://localhost:27017", "admin", conn, false, true, 1)
	require.NotNil(t, opts.Auth)
	require.Equal(t, "admin", opts.Auth.AuthSource)
	require.Equal(t, "user", opts.Auth.Username)
	require.NotNil(t, opts.WriteConcern)
	require.Nil(t, opts.TLSConfig)
	require.NotNil(t, opts.PoolMonitor)
}

func TestClientOptionsKeepsExplicitAuthSource(t *testing.T) {
	conn := connstring.ConnString{
		Hosts:      []string{"localhost:27017"},
		Username:   "user",
		AuthSource: "other",
	}

	opts := clientOptions("mongodb://localhost:27017", "admin", conn, true, false, 1)
	require.Nil(t, opts.Auth)
	require.NotNil(t, opts.TLSConfig)
	require.Nil(t, opts.WriteConcern)
}
