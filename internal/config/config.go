// Package config handles runtime configuration: development defaults
// overlaid by environment variables. The resulting struct is passed to
// constructors explicitly, there is no ambient global state.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds runtime settings for the projhub server.
//
// Fields:
//   - Addr: HTTP bind address.
//   - MongoURI / MongoDB: document store connection string and database.
//   - SigningSecret: HMAC secret for signing JWTs (HS256). The default is
//     insecure and exists only so a fresh checkout runs.
//   - TokenTTL: bearer token lifetime.
//   - BcryptCost: work factor for password hashing.
type Config struct {
	Addr          string
	MongoURI      string
	MongoDB       string
	SigningSecret string
	Issuer        string
	TokenTTL      time.Duration
	BcryptCost    int
}

// LoadDefaults populates Config with development defaults.
// NOTE: the signing secret must be overridden outside of development.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.MongoURI = "mongodb://localhost:27017"
	c.MongoDB = "projhub"
	c.SigningSecret = "dev-signing-secret"
	c.Issuer = "projhub"
	c.TokenTTL = 24 * time.Hour
	c.BcryptCost = 0 // hasher default
}

// Load builds a Config by applying defaults and overlaying values from
// the environment.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.loadEnv()
	return cfg
}

func (c *Config) loadEnv() {
	if v := os.Getenv("PROJHUB_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("PROJHUB_MONGO_URI"); v != "" {
		c.MongoURI = v
	}
	if v := os.Getenv("PROJHUB_MONGO_DB"); v != "" {
		c.MongoDB = v
	}
	if v := os.Getenv("PROJHUB_SIGNING_SECRET"); v != "" {
		c.SigningSecret = v
	}
	if v := os.Getenv("PROJHUB_ISSUER"); v != "" {
		c.Issuer = v
	}
	if v := os.Getenv("PROJHUB_TOKEN_TTL_HOURS"); v != "" {
		if hours, err := strconv.Atoi(v); err == nil && hours > 0 {
			c.TokenTTL = time.Duration(hours) * time.Hour
		}
	}
	if v := os.Getenv("PROJHUB_BCRYPT_COST"); v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			c.BcryptCost = cost
		}
	}
}
