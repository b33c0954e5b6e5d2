package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonardotrapani/hyprcaption/internal/caption"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

func (c *Config) Validate() error {
	if c.Stream.Host == "" {
		return fmt.Errorf("%w: stream.host is empty", ErrInvalid)
	}
	if strings.Contains(c.Stream.Host, "/") {
		return fmt.Errorf("%w: stream.host %q must be host[:port] without a scheme or path", ErrInvalid, c.Stream.Host)
	}
	if !strings.HasPrefix(c.Stream.Path, "/") {
		return fmt.Errorf("%w: stream.path %q must start with /", ErrInvalid, c.Stream.Path)
	}
	if c.Stream.ReconnectDelay <= 0 {
		return fmt.Errorf("%w: stream.reconnect_delay: %v", ErrInvalid, c.Stream.ReconnectDelay)
	}
	if c.Stream.MaxReconnectDelay < 0 {
		return fmt.Errorf("%w: stream.max_reconnect_delay: %v", ErrInvalid, c.Stream.MaxReconnectDelay)
	}
	if c.Stream.HandshakeTimeout < 0 {
		return fmt.Errorf("%w: stream.handshake_timeout: %v", ErrInvalid, c.Stream.HandshakeTimeout)
	}
	if c.Stream.ReadLimit < 0 {
		return fmt.Errorf("%w: stream.read_limit: %d", ErrInvalid, c.Stream.ReadLimit)
	}

	if c.Display.FontSize < caption.MinFontSize || c.Display.FontSize > caption.MaxFontSize {
		return fmt.Errorf("%w: display.font_size %d (must be %d-%d)", ErrInvalid,
			c.Display.FontSize, caption.MinFontSize, caption.MaxFontSize)
	}
	switch c.Display.Theme {
	case ThemeDark, ThemeLight, ThemeAuto:
	default:
		return fmt.Errorf("%w: display.theme %q (must be dark, light or auto)", ErrInvalid, c.Display.Theme)
	}

	return nil
}
