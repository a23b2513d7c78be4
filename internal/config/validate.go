package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate performs struct-tag and business-rule validation on the loaded
// configuration. It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Server.ShutdownTimeout < c.Notifier.DeliveryTimeout {
		return fmt.Errorf("server.shutdown_timeout (%s) must be at least notifier.delivery_timeout (%s)",
			c.Server.ShutdownTimeout, c.Notifier.DeliveryTimeout)
	}

	return nil
}
