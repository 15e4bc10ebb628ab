package app

import (
	"fmt"
	"io"

	logging "github.com/ipfs/go-log/v2"

	"sigvault/internal/client"
	"sigvault/internal/domain"
)

// App is what CLI commands operate on.
type App struct {
	Gateway domain.SignatureGateway
	Remote  bool
	closer  io.Closer
}

// New connects to cfg.Server when it is set and wires local services
// otherwise.
func New(cfg Config) (*App, error) {
	if cfg.Server != "" {
		return &App{Gateway: client.NewHTTP(cfg.Server), Remote: true}, nil
	}
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	return &App{Gateway: w.Gateway(), closer: w}, nil
}

// Close releases local resources.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// SetupLogging applies level ("debug", "info", "warn", "error") to every
// sigvault logger.
func SetupLogging(level string) error {
	lvl, err := logging.LevelFromString(level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	logging.SetAllLoggers(lvl)
	return nil
}
