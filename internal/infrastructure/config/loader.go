package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/droidkeys/internal/logging"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager creates a configuration manager that searches the XDG config
// directory and the working directory for config.toml.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	return newManager(v, false)
}

// NewManagerForFile creates a configuration manager bound to one file.
// The file must exist; no default is written for it.
func NewManagerForFile(path string) (*Manager, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	return newManager(v, true)
}

func newManager(v *viper.Viper, explicit bool) (*Manager, error) {
	// DROIDKEYS_KEYBOARD_RESPONDERS, DROIDKEYS_TRANSPORT_REPLY_MODE, ...
	v.SetEnvPrefix("DROIDKEYS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging uses the same variables as logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "DROIDKEYS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DROIDKEYS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DROIDKEYS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DROIDKEYS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		explicit:  explicit,
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if m.explicit || !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configDir, _ := GetConfigDir()
			configFile = filepath.Join(configDir, configFileName)
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))

	switch strings.ToLower(strings.TrimSpace(string(config.Transport.ReplyMode))) {
	case "", string(ReplyModeSync):
		config.Transport.ReplyMode = ReplyModeSync
	case string(ReplyModeDeferred):
		config.Transport.ReplyMode = ReplyModeDeferred
	}

	responders := make([]string, 0, len(config.Keyboard.Responders))
	for _, name := range config.Keyboard.Responders {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			responders = append(responders, name)
		}
	}
	config.Keyboard.Responders = responders

	for i, raw := range config.Engine.HandledLogicalKeys {
		config.Engine.HandledLogicalKeys[i] = strings.ToLower(strings.TrimSpace(raw))
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	configCopy := *m.config
	configCopy.Keyboard.Responders = append([]string(nil), m.config.Keyboard.Responders...)
	configCopy.Engine.HandledLogicalKeys = append([]string(nil), m.config.Engine.HandledLogicalKeys...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults to the XDG config file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	log := logging.NewFromEnv()
	log.Info().Str("file", configFile).Msg("created default configuration file")
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("keyboard.responders", defaults.Keyboard.Responders)
	m.viper.SetDefault("transport.reply_mode", string(defaults.Transport.ReplyMode))
	m.viper.SetDefault("engine.handle_all", defaults.Engine.HandleAll)
	m.viper.SetDefault("engine.handled_logical_keys", defaults.Engine.HandledLogicalKeys)
	m.viper.SetDefault("host.text_field_focused", defaults.Host.TextFieldFocused)
}
