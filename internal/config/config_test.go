package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testAuthYAML = `auth:
  jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"
  token_expiry: "24h"
`

const testYAML = `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "postgres"
  sqlite:
    path: "data/test.db"
  postgres:
    host: "db.example.com"
    port: 5433
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "require"
  pool:
    max_idle_conns: 5
    max_open_conns: 50
    conn_max_lifetime: "30m"
log:
  level: "info"
  format: "json"
` + testAuthYAML

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	return path
}

func TestLoad_FullYAML(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 3000)
	}
	if cfg.Server.Mode != "release" {
		t.Errorf("Server.Mode = %q, want %q", cfg.Server.Mode, "release")
	}

	// Database
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "postgres")
	}
	if cfg.Database.SQLite.Path != "data/test.db" {
		t.Errorf("SQLite.Path = %q, want %q", cfg.Database.SQLite.Path, "data/test.db")
	}
	if cfg.Database.Postgres.Host != "db.example.com" {
		t.Errorf("Postgres.Host = %q, want %q", cfg.Database.Postgres.Host, "db.example.com")
	}
	if cfg.Database.Postgres.Port != 5433 {
		t.Errorf("Postgres.Port = %d, want %d", cfg.Database.Postgres.Port, 5433)
	}
	if cfg.Database.Postgres.User != "admin" {
		t.Errorf("Postgres.User = %q, want %q", cfg.Database.Postgres.User, "admin")
	}
	if cfg.Database.Postgres.Password != "secret" {
		t.Errorf("Postgres.Password = %q, want %q", cfg.Database.Postgres.Password, "secret")
	}
	if cfg.Database.Postgres.DBName != "testdb" {
		t.Errorf("Postgres.DBName = %q, want %q", cfg.Database.Postgres.DBName, "testdb")
	}
	if cfg.Database.Postgres.SSLMode != "require" {
		t.Errorf("Postgres.SSLMode = %q, want %q", cfg.Database.Postgres.SSLMode, "require")
	}

	// Pool
	if cfg.Database.Pool.MaxIdleConns != 5 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 5)
	}
	if cfg.Database.Pool.MaxOpenConns != 50 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d", cfg.Database.Pool.MaxOpenConns, 50)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "30m" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "30m")
	}

	// Log
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, "json")
	}

	// Auth
	if cfg.Auth.JWTSecret != "Abcd1234!Abcd1234!Abcd1234!Abcd1234!" {
		t.Errorf("Auth.JWTSecret = %q, want the configured secret", cfg.Auth.JWTSecret)
	}
	if cfg.Auth.TokenExpiry != "24h" {
		t.Errorf("Auth.TokenExpiry = %q, want %q", cfg.Auth.TokenExpiry, "24h")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeTestConfig(t, testYAML)

	t.Setenv("APP__SERVER__PORT", "9090")
	t.Setenv("APP__DATABASE__DRIVER", "sqlite")
	t.Setenv("APP__LOG__LEVEL", "error")

	// PoolConfig fields contain underscores; verify single _ is preserved.
	t.Setenv("APP__DATABASE__POOL__MAX_IDLE_CONNS", "20")
	t.Setenv("APP__DATABASE__POOL__MAX_OPEN_CONNS", "200")
	t.Setenv("APP__DATABASE__POOL__CONN_MAX_LIFETIME", "2h")

	// Secrets are the main use case for env overrides.
	t.Setenv("APP__AUTH__JWT_SECRET", "Zyxw9876?Zyxw9876?Zyxw9876?Zyxw9876?")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d (env override)", cfg.Server.Port, 9090)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q (env override)", cfg.Database.Driver, "sqlite")
	}
	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want %q (env override)", cfg.Log.Level, "error")
	}

	// PoolConfig env overrides.
	if cfg.Database.Pool.MaxIdleConns != 20 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d (env override)", cfg.Database.Pool.MaxIdleConns, 20)
	}
	if cfg.Database.Pool.MaxOpenConns != 200 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d (env override)", cfg.Database.Pool.MaxOpenConns, 200)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "2h" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q (env override)", cfg.Database.Pool.ConnMaxLifetime, "2h")
	}

	if cfg.Auth.JWTSecret != "Zyxw9876?Zyxw9876?Zyxw9876?Zyxw9876?" {
		t.Errorf("Auth.JWTSecret = %q, want env override value", cfg.Auth.JWTSecret)
	}

	// Non-overridden values should remain from YAML.
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want %q (unchanged)", cfg.Server.Host, "127.0.0.1")
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("Load() expected error for missing file, got nil")
	}
}

// validBaseYAML returns a minimal valid YAML config string (sqlite, debug mode).
func validBaseYAML(extras string) string {
	return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "debug"
database:
  driver: "sqlite"
  sqlite:
    path: "data/test.db"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "abcdefghijklmnopqrstuvwxyz123456"
  token_expiry: "24h"
` + extras
}

// validReleaseBaseYAML returns a minimal valid YAML config string (sqlite, release mode).
func validReleaseBaseYAML(extras string) string {
	return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "sqlite"
  sqlite:
    path: "data/test.db"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"
  token_expiry: "24h"
` + extras
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantContain string
	}{
		{
			name:        "invalid server mode",
			yaml:        strings.Replace(validBaseYAML(""), `mode: "debug"`, `mode: "invalid"`, 1),
			wantContain: "server.mode",
		},
		{
			name:        "port zero",
			yaml:        strings.Replace(validBaseYAML(""), "port: 3000", "port: 0", 1),
			wantContain: "server.port",
		},
		{
			name:        "port too large",
			yaml:        strings.Replace(validBaseYAML(""), "port: 3000", "port: 70000", 1),
			wantContain: "server.port",
		},
		{
			name:        "empty server host",
			yaml:        strings.Replace(validBaseYAML(""), `host: "127.0.0.1"`, `host: ""`, 1),
			wantContain: "server.host",
		},
		{
			name:        "whitespace-only server host",
			yaml:        strings.Replace(validBaseYAML(""), `host: "127.0.0.1"`, `host: "   "`, 1),
			wantContain: "server.host",
		},
		{
			name:        "unsupported database driver",
			yaml:        strings.Replace(validBaseYAML(""), `driver: "sqlite"`, `driver: "mysql"`, 1),
			wantContain: "database.driver",
		},
		{
			name:        "empty sqlite path",
			yaml:        strings.Replace(validBaseYAML(""), `path: "data/test.db"`, `path: ""`, 1),
			wantContain: "database.sqlite.path",
		},
		{
			name:        "invalid log level",
			yaml:        strings.Replace(validBaseYAML(""), `level: "info"`, `level: "verbose"`, 1),
			wantContain: "log.level",
		},
		{
			name:        "invalid log format",
			yaml:        strings.Replace(validBaseYAML(""), `format: "json"`, `format: "xml"`, 1),
			wantContain: "log.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
			}
		})
	}
}

func TestLoad_PostgresMissingFields(t *testing.T) {
	base := func(pgBlock string) string {
		return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "debug"
database:
  driver: "postgres"
  postgres:
` + pgBlock + `
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "abcdefghijklmnopqrstuvwxyz123456"
  token_expiry: "24h"
`
	}

	tests := []struct {
		name        string
		pgBlock     string
		wantContain string
	}{
		{
			name: "empty host",
			pgBlock: `    host: ""
    port: 5432
    user: "admin"
    dbname: "testdb"
    sslmode: "disable"`,
			wantContain: "database.postgres.host",
		},
		{
			name: "empty user",
			pgBlock: `    host: "localhost"
    port: 5432
    user: ""
    dbname: "testdb"
    sslmode: "disable"`,
			wantContain: "database.postgres.user",
		},
		{
			name: "empty dbname",
			pgBlock: `    host: "localhost"
    port: 5432
    user: "admin"
    dbname: ""
    sslmode: "disable"`,
			wantContain: "database.postgres.dbname",
		},
		{
			name: "port zero",
			pgBlock: `    host: "localhost"
    port: 0
    user: "admin"
    dbname: "testdb"
    sslmode: "disable"`,
			wantContain: "database.postgres.port",
		},
		{
			name: "invalid sslmode",
			pgBlock: `    host: "localhost"
    port: 5432
    user: "admin"
    dbname: "testdb"
    sslmode: "invalid"`,
			wantContain: "database.postgres.sslmode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, base(tt.pgBlock))
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
			}
		})
	}
}

func TestLoad_PostgresSSLMode_ReleaseRestriction(t *testing.T) {
	releasePostgres := func(sslmode string) string {
		return `server:
  host: "127.0.0.1"
  port: 3000
  mode: "release"
database:
  driver: "postgres"
  postgres:
    host: "localhost"
    port: 5432
    user: "admin"
    password: "secret"
    dbname: "testdb"
    sslmode: "` + sslmode + `"
  pool:
    max_idle_conns: 1
    max_open_conns: 1
    conn_max_lifetime: "1m"
log:
  level: "info"
  format: "json"
auth:
  jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"
  token_expiry: "24h"
`
	}

	_, err := Load(writeTestConfig(t, releasePostgres("disable")))
	if err == nil {
		t.Fatal("Load() expected error for insecure postgres sslmode in release mode, got nil")
	}
	if !strings.Contains(err.Error(), "database.postgres.sslmode") {
		t.Fatalf("Load() error = %v, want contains %q", err, "database.postgres.sslmode")
	}

	debugPostgres := strings.Replace(releasePostgres("disable"), `mode: "release"`, `mode: "debug"`, 1)
	if _, err = Load(writeTestConfig(t, debugPostgres)); err != nil {
		t.Fatalf("Load() expected debug mode to allow postgres sslmode disable, got error: %v", err)
	}
}

func TestLoad_NonPositiveDurations(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantContain string
	}{
		{
			name:        "server timeout must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  timeout: \"0s\"", 1),
			wantContain: "server.timeout",
		},
		{
			name:        "cors max age must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `mode: "debug"`, "mode: \"debug\"\n  cors:\n    max_age: \"-1s\"", 1),
			wantContain: "server.cors.max_age",
		},
		{
			name:        "pool lifetime must be positive",
			yaml:        strings.Replace(validBaseYAML(""), `conn_max_lifetime: "1m"`, `conn_max_lifetime: "0s"`, 1),
			wantContain: "database.pool.conn_max_lifetime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			_, err := Load(path)
			if err == nil {
				t.Fatal("Load() expected error for non-positive duration, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantContain) {
				t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
			}
		})
	}
}

func TestLoad_OptionalDurationWhitespace_NormalizedAsUnset(t *testing.T) {
	yaml := validBaseYAML("")
	yaml = strings.Replace(yaml, `mode: "debug"`, "mode: \"debug\"\n  timeout: \"   \"\n  cors:\n    max_age: \"   \"", 1)
	yaml = strings.Replace(yaml, `conn_max_lifetime: "1m"`, `conn_max_lifetime: "   "`, 1)
	path := writeTestConfig(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Timeout != "" {
		t.Errorf("Server.Timeout = %q, want empty string", cfg.Server.Timeout)
	}
	if cfg.Server.CORS.MaxAge != "" {
		t.Errorf("Server.CORS.MaxAge = %q, want empty string", cfg.Server.CORS.MaxAge)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "" {
		t.Errorf("Database.Pool.ConnMaxLifetime = %q, want empty string", cfg.Database.Pool.ConnMaxLifetime)
	}
}

func TestLoad_AuthConfig(t *testing.T) {
	withAuth := func(authBlock string) string {
		base := validBaseYAML("")
		idx := strings.Index(base, "auth:")
		return base[:idx] + authBlock
	}

	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		wantContain string
	}{
		{
			name:        "empty jwt_secret",
			yaml:        withAuth("auth:\n  jwt_secret: \"\"\n  token_expiry: \"24h\"\n"),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:        "short jwt_secret",
			yaml:        withAuth("auth:\n  jwt_secret: \"tooshort\"\n  token_expiry: \"24h\"\n"),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:    "jwt_secret exactly 32 chars passes",
			yaml:    withAuth("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"24h\"\n"),
			wantErr: false,
		},
		{
			name:        "empty token_expiry",
			yaml:        withAuth("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "invalid token_expiry",
			yaml:        withAuth("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"not-a-duration\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "zero token_expiry",
			yaml:        withAuth("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"0s\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "negative token_expiry",
			yaml:        withAuth("auth:\n  jwt_secret: \"abcdefghijklmnopqrstuvwxyz123456\"\n  token_expiry: \"-1h\"\n"),
			wantErr:     true,
			wantContain: "auth.token_expiry",
		},
		{
			name:        "missing auth section entirely",
			yaml:        strings.Split(validBaseYAML(""), "auth:")[0],
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:        "release mode rejects jwt_secret with low complexity",
			yaml:        strings.Replace(validReleaseBaseYAML(""), `jwt_secret: "Abcd1234!Abcd1234!Abcd1234!Abcd1234!"`, `jwt_secret: "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"`, 1),
			wantErr:     true,
			wantContain: "auth.jwt_secret",
		},
		{
			name:    "release mode accepts jwt_secret with high complexity",
			yaml:    validReleaseBaseYAML(""),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestConfig(t, tt.yaml)
			_, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.wantContain) {
					t.Fatalf("Load() error = %v, want contains %q", err, tt.wantContain)
				}
			} else {
				if err != nil {
					t.Fatalf("Load() unexpected error: %v", err)
				}
			}
		})
	}
}

func TestLoad_DefaultConfig(t *testing.T) {
	// Verify loading the actual project config.yaml works.
	cfg, err := Load("../../configs/config.yaml")
	if err != nil {
		t.Fatalf("Load() error on project config: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Database.Driver = %q, want %q", cfg.Database.Driver, "sqlite")
	}
	if cfg.Database.Pool.MaxIdleConns != 10 {
		t.Errorf("Pool.MaxIdleConns = %d, want %d", cfg.Database.Pool.MaxIdleConns, 10)
	}
	if cfg.Database.Pool.MaxOpenConns != 100 {
		t.Errorf("Pool.MaxOpenConns = %d, want %d", cfg.Database.Pool.MaxOpenConns, 100)
	}
	if cfg.Database.Pool.ConnMaxLifetime != "1h" {
		t.Errorf("Pool.ConnMaxLifetime = %q, want %q", cfg.Database.Pool.ConnMaxLifetime, "1h")
	}
	if cfg.Auth.TokenExpiry != "24h" {
		t.Errorf("Auth.TokenExpiry = %q, want %q", cfg.Auth.TokenExpiry, "24h")
	}
}

func TestCountSecretClasses(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		want   int
	}{
		{name: "empty string", secret: "", want: 0},
		{name: "lowercase only", secret: "abcdef", want: 1},
		{name: "uppercase only", secret: "ABCDEF", want: 1},
		{name: "digits only", secret: "123456", want: 1},
		{name: "symbols only", secret: "!@#$%^", want: 1},
		{name: "lower and upper", secret: "abcDEF", want: 2},
		{name: "lower upper digit", secret: "abcDEF123", want: 3},
		{name: "all four classes", secret: "abcDEF123!", want: 4},
		{name: "mixed with spaces", secret: "aA1 ", want: 4}, // space counts as symbol
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountSecretClasses(tt.secret)
			if got != tt.want {
				t.Errorf("CountSecretClasses(%q) = %d, want %d", tt.secret, got, tt.want)
			}
		})
	}
}
