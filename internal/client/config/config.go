// Package config loads settings for the RecipeBox terminal client:
// defaults, then an optional JSON file (-c / -config), then flags.
//
//	-a string   base URL of the RecipeBox server
//	-i int      per-request timeout (seconds)
//
// JSON keys are "server_endpoint_addr" and "request_timeout"; the timeout
// accepts "10s" style strings or integer nanoseconds.
package config

import "time"

type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig applies defaults, the JSON file and flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
