// Package config handles configuration for the RecipeBox server: defaults,
// then an optional JSON file, then command-line flags.
package config

import "time"

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the HTTP API.
//   - DatabaseDriver / DatabaseDSN: "sqlite" (file path) or "pgx" (PostgreSQL URL).
//   - BusyTimeout: how long a SQLite writer waits on a locked database before failing.
//   - SecretKey: HMAC secret for session tokens (HS256). Do not use the default in prod.
//   - SessionTTL: lifetime of a login session.
//   - SecureCookies: mark the session cookie Secure (HTTPS deployments).
//   - S3RootUser / S3RootPassword / S3Bucket / S3Region / S3BaseEndpoint: image storage.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
type Config struct {
	EndpointAddrHTTP string
	DatabaseDriver   string
	DatabaseDSN      string
	BusyTimeout      time.Duration
	SecretKey        string
	SessionTTL       time.Duration
	SecureCookies    bool
	S3RootUser       string
	S3RootPassword   string
	S3Bucket         string
	S3Region         string
	S3BaseEndpoint   string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "recipebox.db"
	c.BusyTimeout = 5 * time.Second
	c.SecretKey = "secretKey"
	c.SessionTTL = 24 * time.Hour
	c.SecureCookies = false
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Bucket = "recipes"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
