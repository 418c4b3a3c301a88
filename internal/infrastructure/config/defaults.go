package config

// DefaultConfig returns the default configuration values.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Keyboard: KeyboardConfig{
			Responders: []string{"embedder"},
		},
		Transport: TransportConfig{
			ReplyMode: ReplyModeSync,
		},
		Engine: EngineConfig{
			HandleAll:          false,
			HandledLogicalKeys: []string{},
		},
		Host: HostConfig{
			TextFieldFocused: false,
		},
	}
}
