// Package config assembles service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/notifika/mailroom/internal/attachment"
	"github.com/notifika/mailroom/internal/dispatch"
	"github.com/notifika/mailroom/internal/export"
	"github.com/notifika/mailroom/pkg/logger"
	"github.com/notifika/mailroom/pkg/mailer/resend"
	"github.com/notifika/mailroom/pkg/storage"
)

// Server holds HTTP listener configuration.
type Server struct {
	Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

// Config is the full service configuration, parsed from the environment in
// a single pass. Component packages own their env tags; this struct only
// aggregates them.
type Config struct {
	Server     Server
	Logger     logger.Config
	Storage    storage.Config
	Resend     resend.Config
	Dispatch   dispatch.Config
	Attachment attachment.Config
	Export     export.Config
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
