package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[server]
http_port = 8083
read_timeout = 15
write_timeout = 15
idle_timeout = 60
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "postgres"
password = "secret"
dbname = "capacity_service"
sslmode = "disable"
max_open_conns = 25
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
file = "logs/capacity-service.log"
level = "info"

[metrics]
enabled = true
service_name = "smc-capacity-service"
path = "/metrics"

[service_registry]
url = "http://localhost:8081"
timeout = 5
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, 8083, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "http://localhost:8081", cfg.ServiceRegistry.URL)
	assert.Equal(t, 5, cfg.ServiceRegistry.Timeout)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=capacity_service sslmode=disable",
		cfg.Database.DSN())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))

	assert.Error(t, err)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		old     string
		broken  string
		wantErr string
	}{
		{
			name:    "invalid_port",
			old:     "http_port = 8083",
			broken:  "http_port = 0",
			wantErr: "http_port",
		},
		{
			name:    "missing_database_host",
			old:     `host = "localhost"`,
			broken:  `host = ""`,
			wantErr: "database.host",
		},
		{
			name:    "missing_registry_url",
			old:     `url = "http://localhost:8081"`,
			broken:  `url = ""`,
			wantErr: "service_registry.url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.Replace(validConfig, tt.old, tt.broken, 1)
			require.NotEqual(t, validConfig, content)

			_, err := Load(writeConfig(t, content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
