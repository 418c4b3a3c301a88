package config

import (
	"errors"
	"fmt"
	"strings"
)

var knownResponders = map[string]bool{
	"embedder": true,
	"channel":  true,
}

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateKeyboard(config)...)
	validationErrors = append(validationErrors, validateTransport(config)...)
	validationErrors = append(validationErrors, validateEngine(config)...)

	if len(validationErrors) > 0 {
		return errors.New("config validation failed:\n  - " + strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "json", "console", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: json, console (got: %s)",
			config.Logging.Format,
		))
	}
	return validationErrors
}

func validateKeyboard(config *Config) []string {
	var validationErrors []string
	seen := make(map[string]bool, len(config.Keyboard.Responders))
	for _, name := range config.Keyboard.Responders {
		if !knownResponders[name] {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"keyboard.responders contains unknown responder %q (known: embedder, channel)", name,
			))
			continue
		}
		if seen[name] {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"keyboard.responders lists %q more than once", name,
			))
		}
		seen[name] = true
	}
	return validationErrors
}

func validateTransport(config *Config) []string {
	switch config.Transport.ReplyMode {
	case ReplyModeSync, ReplyModeDeferred:
		return nil
	default:
		return []string{fmt.Sprintf(
			"transport.reply_mode must be one of: sync, deferred (got: %s)",
			config.Transport.ReplyMode,
		)}
	}
}

func validateEngine(config *Config) []string {
	var validationErrors []string
	for _, raw := range config.Engine.HandledLogicalKeys {
		if _, err := parseLogicalKey(raw); err != nil {
			validationErrors = append(validationErrors, "engine.handled_logical_keys: "+err.Error())
		}
	}
	return validationErrors
}
