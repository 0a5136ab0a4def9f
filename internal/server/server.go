package server

import (
	"context"

	"github.com/MKhiriev/montar/internal/config"
	"github.com/MKhiriev/montar/internal/logger"
)

// Target is the log target of records emitted by the server.
const Target = "montar/server"

// Montar is a server instance. Its configuration is fixed at construction.
type Montar struct {
	cfg    config.Config
	logger *logger.Logger
}

// New creates a server instance. A nil logger discards all output.
func New(cfg config.Config, log *logger.Logger) *Montar {
	if log == nil {
		log = logger.Nop()
	}

	return &Montar{
		cfg:    cfg,
		logger: log.Named(Target),
	}
}

// Start announces the bind address and returns. An empty address is
// announced as is.
func (m *Montar) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.logger.Info().Msgf("Address: %s", m.cfg.Address)
	return nil
}
