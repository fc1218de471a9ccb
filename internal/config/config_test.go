package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Env:             "development",
			DBDriver:        "postgres",
			DBPassword:      "password",
			DBSSLMode:       "disable",
			AnalyzeSchedule: "@every 10m",
			AnalyzeTimeout:  2 * time.Minute,
		}
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{"development defaults are valid", func(_ *Config) {}, false},
		{"sqlite driver allowed outside production", func(c *Config) { c.DBDriver = "sqlite" }, false},
		{"unknown driver rejected", func(c *Config) { c.DBDriver = "mysql" }, true},
		{"empty schedule rejected", func(c *Config) { c.AnalyzeSchedule = "" }, true},
		{"zero timeout rejected", func(c *Config) { c.AnalyzeTimeout = 0 }, true},
		{"production with default password rejected", func(c *Config) {
			c.Env = "production"
			c.DBSSLMode = "require"
		}, true},
		{"production with strong password accepted", func(c *Config) {
			c.Env = "production"
			c.DBPassword = "secure-password"
			c.DBSSLMode = "require"
		}, false},
		{"production requires postgres", func(c *Config) {
			c.Env = "prod"
			c.DBDriver = "sqlite"
			c.DBPassword = "secure-password"
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)

			err := c.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
