package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_DefaultsAndFile(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "nailstudio"

[admin]
password = "secreto"
jwt_secret = "jwt"

[redis]
enabled = true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "nailstudio", cfg.Database.DBName)
	assert.Equal(t, time.Hour, cfg.Redis.SlotsTTL())
	assert.Equal(t, "portfolio-images", cfg.Minio.Bucket)
	assert.Equal(t, 12*time.Hour, cfg.Admin.TokenTTL())
	assert.Contains(t, cfg.Database.DSN(), "dbname=nailstudio")
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	path := writeConfig(t, `
[database]
dbname = "nailstudio"
password = "from-file"

[admin]
password = "from-file"
jwt_secret = "from-file"
`)
	t.Setenv("ADMIN_PASSWORD", "from-env")
	t.Setenv("DB_PASSWORD", "db-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Admin.Password)
	assert.Equal(t, "db-env", cfg.Database.Password)
	assert.Equal(t, "from-file", cfg.Admin.JWTSecret)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 0
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "admin.jwt_secret")
	assert.Contains(t, err.Error(), "database.dbname")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoad_SalonTimezone(t *testing.T) {
	base := `
[database]
dbname = "nailstudio"

[admin]
password = "secreto"
jwt_secret = "jwt"
`
	cfg, err := Load(writeConfig(t, base))
	require.NoError(t, err)
	loc, err := cfg.Salon.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Argentina/Buenos_Aires", loc.String())
	assert.Equal(t, int64(10)<<20, cfg.Minio.MaxUploadBytes())

	_, err = Load(writeConfig(t, base+`
[salon]
timezone = "Mars/Olympus_Mons"
`))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "salon.timezone")
}
