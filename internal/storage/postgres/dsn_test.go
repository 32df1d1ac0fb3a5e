package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandkit-studio/brandkit-backend/config"
)

func TestDSNPrefersExplicit(t *testing.T) {
	cfg := &config.DatabaseConfig{DSN: "postgres://u:p@db:5432/brandkit", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@db:5432/brandkit", DSN(cfg))
}

func TestDSNFromParts(t *testing.T) {
	cfg := &config.DatabaseConfig{Host: "localhost", Port: 5433, User: "brand", Password: `p a'ss\`, Name: "brandkit"}

	dsn := DSN(cfg)
	assert.Equal(t, `host=localhost port=5433 user=brand password='p a\'ss\\' dbname=brandkit sslmode=disable`, dsn)

	parsed, err := pgx.ParseConfig(dsn)
	require.NoError(t, err)
	assert.Equal(t, "localhost", parsed.Host)
	assert.Equal(t, uint16(5433), parsed.Port)
	assert.Equal(t, `p a'ss\`, parsed.Password)
	assert.Equal(t, "brandkit", parsed.Database)
}
