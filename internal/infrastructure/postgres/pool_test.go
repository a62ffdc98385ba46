package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/internal/infrastructure/postgres"
	"github.com/jhoicas/BusinessHub-api/pkg/config"
)

func TestNewPoolConfig_MantemHostDaURL(t *testing.T) {
	pc, err := postgres.NewPoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@db.example.com:6543/hub?sslmode=verify-full",
		MaxConns:    8,
		MinConns:    3,
	})
	require.NoError(t, err)

	assert.Equal(t, "db.example.com", pc.ConnConfig.Host)
	assert.Equal(t, uint16(6543), pc.ConnConfig.Port)
	require.NotNil(t, pc.ConnConfig.TLSConfig)
	assert.Equal(t, "db.example.com", pc.ConnConfig.TLSConfig.ServerName)
	assert.Equal(t, int32(8), pc.MaxConns)
	assert.Equal(t, int32(3), pc.MinConns)
	assert.NotNil(t, pc.AfterConnect)
}

func TestNewPoolConfig_DSNMontado(t *testing.T) {
	pc, err := postgres.NewPoolConfig(config.DBConfig{
		Host: "localhost", Port: 5432, User: "postgres", Password: "x", DBName: "businesshub", SSLMode: "disable",
	})
	require.NoError(t, err)

	assert.Equal(t, "localhost", pc.ConnConfig.Host)
	assert.Equal(t, "businesshub", pc.ConnConfig.Database)
	assert.Nil(t, pc.ConnConfig.TLSConfig)
}

func TestNewPoolConfig_ForceIPv4(t *testing.T) {
	pc, err := postgres.NewPoolConfig(config.DBConfig{
		DatabaseURL: "postgres://u:p@db.example.com:5432/hub?sslmode=disable",
		ForceIPv4:   true,
	})
	require.NoError(t, err)

	assert.NotNil(t, pc.ConnConfig.DialFunc)
	assert.Equal(t, "db.example.com", pc.ConnConfig.Host)
}

func TestNewPoolConfig_DSNInvalido(t *testing.T) {
	_, err := postgres.NewPoolConfig(config.DBConfig{DatabaseURL: "postgres://u:p@host:notaport/db"})
	assert.Error(t, err)
}
