// Package config handles configuration for the HTTP gateway, including
// defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the gateway.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the public HTTP endpoint.
//   - UserServiceAddr: address of the user service gRPC endpoint.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - AccessTokenValidityDuration: session token lifetime.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddrHTTP            string
	UserServiceAddr             string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	ShutdownTimeout             time.Duration
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults. SecretKey must be
// overridden outside development.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.UserServiceAddr = "127.0.0.1:50051"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = time.Hour
	c.ShutdownTimeout = 10 * time.Second
	c.LogLevel = "info"
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
