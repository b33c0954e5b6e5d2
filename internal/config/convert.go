package config

import "github.com/leonardotrapani/hyprcaption/internal/stream"

func (c *Config) ToStreamConfig() stream.Config {
	return stream.Config{
		URL:               c.Stream.URL(),
		ReconnectDelay:    c.Stream.ReconnectDelay,
		MaxReconnectDelay: c.Stream.MaxReconnectDelay,
		Jitter:            c.Stream.Jitter,
		HandshakeTimeout:  c.Stream.HandshakeTimeout,
		ReadLimit:         c.Stream.ReadLimit,
	}
}

// LogPath returns log.file or the default log location.
func (c *Config) LogPath() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	return DefaultLogPath()
}
