package styles

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/bnema/droidkeys/internal/application/port"
	"github.com/bnema/droidkeys/internal/application/usecase"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
)

// ReplayRenderer renders the outcome of a trace replay.
type ReplayRenderer struct {
	theme *Theme
}

// NewReplayRenderer creates a new replay renderer with the given theme.
func NewReplayRenderer(theme *Theme) *ReplayRenderer {
	return &ReplayRenderer{theme: theme}
}

// Render renders every step followed by a summary.
func (r *ReplayRenderer) Render(name string, out *usecase.ReplayTraceOutput) string {
	var b strings.Builder

	b.WriteString(r.theme.BoxHeader.Render(fmt.Sprintf("%s %s", IconKeyboard, name)))
	b.WriteString("\n")

	for i, step := range out.Steps {
		b.WriteString(r.renderStep(i, step))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.renderSummary(out))
	return b.String()
}

func (r *ReplayRenderer) renderStep(index int, step usecase.ReplayStep) string {
	ev := step.Event
	header := fmt.Sprintf("%s %s %s",
		r.theme.Subtle.Render(fmt.Sprintf("#%d", index+1)),
		r.theme.Title.Render(ev.Action.String()),
		r.theme.Normal.Render(fmt.Sprintf("scan=%d key=%d meta=0x%x", ev.ScanCode, ev.KeyCode, ev.MetaState)),
	)
	if ev.RepeatCount > 0 {
		header += " " + r.theme.BadgeMuted.Render(fmt.Sprintf("repeat %d", ev.RepeatCount))
	}

	lines := []string{header}
	for _, rec := range step.Records {
		lines = append(lines, "   "+r.renderRecord(rec))
	}
	switch {
	case step.Redispatched:
		lines = append(lines, "   "+r.theme.WarningStyle.Render(IconRedo+" redispatched to host"))
	case !step.DefaultHandled:
		lines = append(lines, "   "+r.theme.SuccessStyle.Render(IconCheck+" handled"))
	}
	return strings.Join(lines, "\n")
}

func (r *ReplayRenderer) renderRecord(rec port.ChannelRecord) string {
	mark := r.theme.Subtle.Render(IconX)
	if rec.Handled {
		mark = r.theme.SuccessStyle.Render(IconCheck)
	}

	var body string
	switch rec.Channel {
	case port.KeyDataChannel:
		body = r.renderKeyData(rec.KeyData)
	case port.KeyEventChannel:
		msg := gjson.ParseBytes(rec.Message)
		body = r.theme.Normal.Render(fmt.Sprintf("%s keyCode=%d codePoint=%d",
			msg.Get("type").String(), msg.Get("keyCode").Int(), msg.Get("codePoint").Int()))
	default:
		body = r.theme.Normal.Render(rec.Channel)
	}

	return fmt.Sprintf("%s %s %s %s", r.theme.Subtle.Render(IconArrow), r.theme.Subtle.Render(rec.Channel), body, mark)
}

func (r *ReplayRenderer) renderKeyData(d entity.KeyData) string {
	if d.IsEmpty() {
		return r.theme.Subtle.Render("(empty)")
	}
	if d.Synthesized {
		return r.theme.WarningStyle.Render(d.String())
	}
	return r.theme.Normal.Render(d.String())
}

func (r *ReplayRenderer) renderSummary(out *usecase.ReplayTraceOutput) string {
	lines := []string{
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Events"), r.theme.Highlight.Render(fmt.Sprint(len(out.Steps)))),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Redispatched"), r.theme.Highlight.Render(fmt.Sprint(out.Redispatches))),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("Default handled"), r.theme.Highlight.Render(fmt.Sprint(out.DefaultHandled))),
	}

	if out.KeyboardState != nil {
		lines = append(lines, r.theme.Subtle.Render("Pressed keys"))
		if len(out.KeyboardState) == 0 {
			lines = append(lines, "   "+r.theme.Subtle.Render("none"))
		}
		physicals := make([]keymap.PhysicalKey, 0, len(out.KeyboardState))
		for physical := range out.KeyboardState {
			physicals = append(physicals, physical)
		}
		slices.Sort(physicals)
		for _, physical := range physicals {
			lines = append(lines, fmt.Sprintf("   %s %s %s",
				r.theme.Normal.Render(keymap.PhysicalName(physical)),
				r.theme.Subtle.Render(IconArrow),
				r.theme.Normal.Render(keymap.LogicalName(out.KeyboardState[physical])),
			))
		}
	}

	return r.theme.Box.Render(strings.Join(lines, "\n"))
}
