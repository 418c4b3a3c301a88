package styles

import (
	"fmt"
	"strings"

	"github.com/bnema/droidkeys/internal/infrastructure/config"
)

// ConfigRenderer renders the effective configuration.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// Render renders the config file path and every setting.
func (r *ConfigRenderer) Render(path string, cfg *config.Config) string {
	row := func(key string, value any) string {
		return fmt.Sprintf("  %s %s", r.theme.Subtle.Render(key), r.theme.Normal.Render(fmt.Sprint(value)))
	}

	handled := "none"
	if len(cfg.Engine.HandledLogicalKeys) > 0 {
		handled = strings.Join(cfg.Engine.HandledLogicalKeys, ", ")
	}

	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconConfig), r.theme.Title.Render(path)),
		"",
		row("logging.level", cfg.Logging.Level),
		row("logging.format", cfg.Logging.Format),
		row("keyboard.responders", strings.Join(cfg.Keyboard.Responders, ", ")),
		row("transport.reply_mode", cfg.Transport.ReplyMode),
		row("engine.handle_all", cfg.Engine.HandleAll),
		row("engine.handled_logical_keys", handled),
		row("host.text_field_focused", cfg.Host.TextFieldFocused),
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	return r.theme.ErrorStyle.Render(fmt.Sprintf("%s %v", IconWarning, err))
}
