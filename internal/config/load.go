package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/BurntSushi/toml"
)

// GetConfigPath returns the default config file location, creating its
// directory if needed.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	dir := filepath.Join(configDir, "hyprcaption")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "config.toml"), nil
}

// ResolvePath returns override when set and the default path otherwise.
func ResolvePath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	return GetConfigPath()
}

// DefaultLogPath is where watch mode logs when log.file is empty.
func DefaultLogPath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user cache directory: %w", err)
	}
	dir := filepath.Join(cacheDir, "hyprcaption")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return filepath.Join(dir, "hyprcaption.log"), nil
}

// Load reads the config at path on top of the defaults. A missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("Config: no config file at %s, using defaults", path)
		return config, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	log.Printf("Config: loading configuration from %s", path)
	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Printf("Config: ignoring unknown keys: %s", strings.Join(keys, ", "))
	}

	config.Display.Theme = strings.ToLower(strings.TrimSpace(config.Display.Theme))

	log.Printf("Config: configuration loaded successfully")
	return config, nil
}

var configTemplate = template.Must(template.New("config").Parse(`# Hyprcaption Configuration
# Display settings are applied immediately while hyprcaption is running.

# Caption backend connection
[stream]
  host = {{printf "%q" .Stream.Host}}          # host:port of the caption server
  path = {{printf "%q" .Stream.Path}}                     # WebSocket path
  secure = {{.Stream.Secure}}                  # use wss:// instead of ws://
  reconnect_delay = "{{.Stream.ReconnectDelay.String}}"        # pause before reconnecting after a close
  max_reconnect_delay = "{{.Stream.MaxReconnectDelay.String}}"     # grow the pause up to this value ("0s" keeps it constant)
  jitter = {{.Stream.Jitter}}                  # randomize each pause between half and full length
  handshake_timeout = "{{.Stream.HandshakeTimeout.String}}"     # WebSocket handshake timeout
  read_limit = {{.Stream.ReadLimit}}             # maximum frame size in bytes (0 = unlimited); larger frames force a reconnect

# Caption display
[display]
  show_partial = {{.Display.ShowPartial}}             # show in-progress utterances
  font_size = {{.Display.FontSize}}                 # final line size; partial and translation sizes follow
  theme = {{printf "%q" .Display.Theme}}                # "dark", "light" or "auto"

[log]
  file = {{printf "%q" .Log.File}}                      # empty = user cache dir/hyprcaption/hyprcaption.log
`))

// Save writes config to path as commented TOML.
func Save(path string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if err := configTemplate.Execute(file, config); err != nil {
		return fmt.Errorf("failed to write config content: %w", err)
	}
	return nil
}
