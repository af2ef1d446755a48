package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/pkg/config"
)

// Sin env vars ni archivo, Load entrega los valores por defecto.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 60, cfg.JWT.Expiration)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

// Las env vars tienen prioridad sobre los defaults.
func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DB_HOST", "db.interna")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "db.interna", cfg.DB.Host)
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.Equal(t, 9090, cfg.HTTP.Port)
}

// DSN codifica credenciales con caracteres especiales.
func TestDSN_EscapaCredenciales(t *testing.T) {
	db := config.DBConfig{
		Host: "localhost", Port: 5432,
		User: "app", Password: "p@ss:word/!",
		DBName: "almacen", SSLMode: "disable",
	}
	dsn := db.DSN()
	assert.Contains(t, dsn, "postgres://app:")
	assert.NotContains(t, dsn, "p@ss:word/!", "la contraseña debe ir URL-encoded")
	assert.Contains(t, dsn, "sslmode=disable")
}

// DATABASE_URL manda sobre los campos individuales.
func TestConnectionString_PrefiereDatabaseURL(t *testing.T) {
	db := config.DBConfig{
		DatabaseURL: "postgresql://u:p@remoto:5432/otra?sslmode=require",
		Host:        "localhost", Port: 5432, DBName: "almacen",
	}
	assert.Equal(t, "postgresql://u:p@remoto:5432/otra?sslmode=require", db.ConnectionString())
}
