package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "")
	t.Setenv("SERVER_HOST", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("INVENTORY_STATUS_MODE", "")
	t.Setenv("INVENTORY_DEFAULT_ACTOR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.Server.Port)
	assert.Equal(t, ":4000", cfg.Server.Addr())
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "admin", cfg.Inventory.DefaultActor)
	assert.Equal(t, StatusModeFree, cfg.Inventory.StatusMode)
	assert.False(t, cfg.Inventory.AtomicImport)
	assert.Equal(t, int64(10<<20), cfg.Inventory.MaxUploadSize)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("PORT", "9090")
	t.Setenv("INVENTORY_STATUS_MODE", "STRICT")
	t.Setenv("INVENTORY_ATOMIC_IMPORT", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StatusModeStrict, cfg.Inventory.StatusMode)
	assert.True(t, cfg.Inventory.AtomicImport)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Environment: "production",
			Database:    DatabaseConfig{Driver: DriverSQLite},
			Inventory:   InventoryConfig{DefaultActor: "admin", StatusMode: StatusModeFree},
		}
	}

	assert.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Database.Driver = "mysql"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Database.Driver = DriverPostgres
	assert.Error(t, cfg.Validate(), "postgres in production needs a password")

	cfg = valid()
	cfg.Inventory.StatusMode = "lenient"
	assert.Error(t, cfg.Validate())

	cfg = valid()
	cfg.Inventory.DefaultActor = "  "
	assert.Error(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	sqlite := DatabaseConfig{Driver: DriverSQLite, Path: "inventory.db"}
	assert.Equal(t, "inventory.db", sqlite.DSN())

	pg := DatabaseConfig{Driver: DriverPostgres, Host: "db", Port: "5432", User: "u", Password: "p", Database: "inv", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=inv sslmode=disable", pg.DSN())
}

func TestServerAddr(t *testing.T) {
	assert.Equal(t, ":8080", ServerConfig{Port: "8080"}.Addr())
	assert.Equal(t, "127.0.0.1:8080", ServerConfig{Host: "127.0.0.1", Port: "8080"}.Addr())
	assert.Equal(t, "[::1]:8080", ServerConfig{Host: "::1", Port: "8080"}.Addr())
}
