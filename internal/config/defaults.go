package config

import (
	"time"

	"github.com/leonardotrapani/hyprcaption/internal/caption"
	"github.com/leonardotrapani/hyprcaption/internal/stream"
)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Stream: StreamConfig{
			Host:              "127.0.0.1:8765",
			Path:              "/ws",
			Secure:            false,
			ReconnectDelay:    stream.DefaultReconnectDelay,
			MaxReconnectDelay: 0,
			Jitter:            false,
			HandshakeTimeout:  10 * time.Second,
			ReadLimit:         0,
		},
		Display: DisplayConfig{
			ShowPartial: true,
			FontSize:    caption.DefaultFontSize,
			Theme:       ThemeDark,
		},
	}
}
