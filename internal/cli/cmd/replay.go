package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/droidkeys/internal/application/usecase"
	"github.com/bnema/droidkeys/internal/bootstrap"
	"github.com/bnema/droidkeys/internal/cli"
	"github.com/bnema/droidkeys/internal/cli/styles"
	"github.com/bnema/droidkeys/internal/domain/entity"
	"github.com/bnema/droidkeys/internal/domain/keymap"
	"github.com/bnema/droidkeys/internal/infrastructure/config"
	"github.com/bnema/droidkeys/internal/infrastructure/trace"
	"github.com/bnema/droidkeys/internal/logging"
	"github.com/bnema/droidkeys/internal/ui/mainloop"
)

var (
	replayDeferred bool
	replayChannel  bool
	replayFocused  bool
	replayWatch    bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <trace.yaml>",
	Short: "Run a recorded key event trace through the pipeline",
	Long: `Replay raw Android key events from a YAML trace through the keyboard
manager, the responders and an in-process engine, and print every event the
engine received, its reply, and what was handed back to the host.

Flags override the matching config settings for this run. With --watch the
trace is replayed again on a fresh pipeline every time the config file
changes, until interrupted.

Examples:
  droidkeys replay testdata/shift.yaml
  droidkeys replay --deferred --channel testdata/shift.yaml
  droidkeys replay --watch testdata/shift.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolVar(&replayDeferred, "deferred", false, "deliver engine replies on the loop instead of synchronously")
	replayCmd.Flags().BoolVar(&replayChannel, "channel", false, "also dispatch to the flutter/keyevent channel responder")
	replayCmd.Flags().BoolVar(&replayFocused, "focused", false, "give focus to the host text field")
	replayCmd.Flags().BoolVar(&replayWatch, "watch", false, "replay again whenever the config file changes")
}

func runReplay(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "replay")

	tr, err := trace.Load(args[0])
	if err != nil {
		return err
	}
	events, err := tr.RawEvents()
	if err != nil {
		return err
	}

	name := tr.Name
	if name == "" {
		name = filepath.Base(args[0])
	}
	replay := func(base *config.Config) error {
		return replayTrace(ctx, cmd, app, name, events, applyReplayFlags(base))
	}

	if err := replay(app.Config); err != nil {
		return err
	}
	if !replayWatch {
		return nil
	}
	return watchReplay(ctx, cmd, app, replay)
}

// applyReplayFlags returns a copy of base with the command line overrides
// applied.
func applyReplayFlags(base *config.Config) *config.Config {
	cfg := *base
	cfg.Keyboard.Responders = slices.Clone(base.Keyboard.Responders)
	if replayDeferred {
		cfg.Transport.ReplyMode = config.ReplyModeDeferred
	}
	if replayChannel && !slices.Contains(cfg.Keyboard.Responders, "channel") {
		cfg.Keyboard.Responders = append(cfg.Keyboard.Responders, "channel")
	}
	if replayFocused {
		cfg.Host.TextFieldFocused = true
	}
	return &cfg
}

func replayTrace(ctx context.Context, cmd *cobra.Command, app *cli.App, name string, events []entity.RawKeyEvent, cfg *config.Config) error {
	pipeline, err := bootstrap.NewPipeline(cfg, keymap.Default())
	if err != nil {
		return err
	}
	defer pipeline.Close(ctx)

	logging.FromContext(ctx).Debug().
		Str("reply_mode", string(pipeline.Messenger.Mode())).
		Strs("responders", cfg.Keyboard.Responders).
		Int("events", len(events)).
		Msg("replaying trace")

	uc := usecase.NewReplayTraceUseCase(pipeline.Host, pipeline.Loop, pipeline.Engine, pipeline)
	out, err := uc.Execute(ctx, usecase.ReplayTraceInput{Events: events})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.NewReplayRenderer(app.Theme).Render(name, out))
	if cfg.Host.TextFieldFocused {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%s %q\n", app.Theme.Subtle.Render("Text field"), pipeline.TextField.Text())
	}
	return nil
}

// watchReplay reruns replay on every config change until the command
// context is cancelled or the process is interrupted. Reloads arrive on
// the watcher goroutine and are posted to a loop so replays never overlap.
func watchReplay(ctx context.Context, cmd *cobra.Command, app *cli.App, replay func(*config.Config) error) error {
	log := logging.FromContext(ctx)

	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}
	runCtx, stop := signal.NotifyContext(runCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := mainloop.New()
	defer loop.Destroy()

	if err := app.ConfigManager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	app.ConfigManager.OnConfigChange(func(newCfg *config.Config) {
		loop.Post(func() {
			log.Info().Str("config_file", app.ConfigFile).Msg("config changed, replaying")
			if err := replay(newCfg); err != nil {
				log.Error().Err(err).Msg("replay after config change failed")
			}
		})
	})

	fmt.Fprintf(cmd.OutOrStdout(), "\n%s %s\n", app.Theme.Subtle.Render("Watching"), app.ConfigFile)

	if err := loop.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
