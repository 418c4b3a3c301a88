// Package config provides configuration management for droidkeys with Viper integration.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// File permission constants
const (
	dirPerm = 0755 // Standard directory permissions (rwxr-xr-x)
)

// Config represents the complete configuration for droidkeys.
type Config struct {
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging"`
	Keyboard  KeyboardConfig  `mapstructure:"keyboard" toml:"keyboard"`
	Transport TransportConfig `mapstructure:"transport" toml:"transport"`
	Engine    EngineConfig    `mapstructure:"engine" toml:"engine"`
	Host      HostConfig      `mapstructure:"host" toml:"host"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level"`
	Format string `mapstructure:"format" toml:"format"`
}

// KeyboardConfig selects the responders the keyboard manager fans out to.
type KeyboardConfig struct {
	// Responders in dispatch order. Known names: "embedder", "channel".
	Responders []string `mapstructure:"responders" toml:"responders"`
}

// ReplyMode controls when engine replies are delivered.
type ReplyMode string

const (
	ReplyModeSync     ReplyMode = "sync"
	ReplyModeDeferred ReplyMode = "deferred"
)

// TransportConfig holds messenger configuration.
type TransportConfig struct {
	ReplyMode ReplyMode `mapstructure:"reply_mode" toml:"reply_mode"`
}

// EngineConfig describes which events the simulated engine claims.
type EngineConfig struct {
	HandleAll bool `mapstructure:"handle_all" toml:"handle_all"`
	// HandledLogicalKeys are logical key ids written as hex strings ("0x61").
	HandledLogicalKeys []string `mapstructure:"handled_logical_keys" toml:"handled_logical_keys"`
}

// HostConfig holds settings for the simulated host view.
type HostConfig struct {
	TextFieldFocused bool `mapstructure:"text_field_focused" toml:"text_field_focused"`
}

// HandledKeys parses HandledLogicalKeys into a lookup set.
func (c EngineConfig) HandledKeys() (map[keymap.LogicalKey]bool, error) {
	keys := make(map[keymap.LogicalKey]bool, len(c.HandledLogicalKeys))
	for _, raw := range c.HandledLogicalKeys {
		key, err := parseLogicalKey(raw)
		if err != nil {
			return nil, err
		}
		keys[key] = true
	}
	return keys, nil
}

func parseLogicalKey(raw string) (keymap.LogicalKey, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, fmt.Errorf("empty logical key")
	}
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid logical key %q: %w", raw, err)
	}
	return keymap.LogicalKey(v), nil
}
