package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramdev/inventory-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "inventory-api", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())

	// Defaults de paginación: página 0, tamaño 10, sin tope.
	assert.Equal(t, 0, cfg.Paging.PageNumber)
	assert.Equal(t, 10, cfg.Paging.PageSize)
	assert.Equal(t, 0, cfg.Paging.MaxPageSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "3000")
	t.Setenv("PAGE_SIZE_DEFAULT", "50")
	t.Setenv("PAGE_SIZE_MAX", "200")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 3000, cfg.HTTP.Port)
	assert.Equal(t, 50, cfg.Paging.PageSize)
	assert.Equal(t, 200, cfg.Paging.MaxPageSize)
}

func TestDBConfig_DSN_EscapaLaPassword(t *testing.T) {
	db := config.DBConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "p@ss:w/rd",
		DBName:   "inventory",
		SSLMode:  "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "p%40ss%3Aw%2Frd")
	assert.Contains(t, dsn, "sslmode=disable")
	assert.Equal(t, dsn, db.ConnectionString())
}

func TestDBConfig_DatabaseURLTienePrioridad(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@remote:5432/other?sslmode=require",
		Host:        "ignored",
	}
	assert.Equal(t, db.DatabaseURL, db.ConnectionString())
}
