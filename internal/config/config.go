package config

import (
	"net/url"
	"time"
)

type Config struct {
	Stream  StreamConfig  `toml:"stream"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// StreamConfig locates the caption backend and tunes reconnection
type StreamConfig struct {
	Host              string        `toml:"host"`   // host:port serving the caption socket
	Path              string        `toml:"path"`   // socket path, normally "/ws"
	Secure            bool          `toml:"secure"` // use wss:// instead of ws://
	ReconnectDelay    time.Duration `toml:"reconnect_delay"`
	MaxReconnectDelay time.Duration `toml:"max_reconnect_delay"` // 0 = constant delay
	Jitter            bool          `toml:"jitter"`
	HandshakeTimeout  time.Duration `toml:"handshake_timeout"`
	ReadLimit         int64         `toml:"read_limit"` // max frame size in bytes, 0 = unlimited
}

type DisplayConfig struct {
	ShowPartial bool   `toml:"show_partial"`
	FontSize    int    `toml:"font_size"`
	Theme       string `toml:"theme"` // "dark", "light", "auto"
}

type LogConfig struct {
	File string `toml:"file"` // empty = default file in the user cache dir
}

// Theme names accepted by display.theme
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
	ThemeAuto  = "auto"
)

// URL returns the caption socket address, e.g. ws://127.0.0.1:8765/ws.
func (s StreamConfig) URL() string {
	scheme := "ws"
	if s.Secure {
		scheme = "wss"
	}
	u := url.URL{Scheme: scheme, Host: s.Host, Path: s.Path}
	return u.String()
}
