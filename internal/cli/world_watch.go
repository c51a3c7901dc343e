package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	pwerrors "github.com/fernwhistle/propworld/internal/errors"
	"github.com/fernwhistle/propworld/internal/output"
	"github.com/fernwhistle/propworld/internal/watch"
	"github.com/fernwhistle/propworld/internal/worldfile"
)

var worldWatchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Revalidate a world file on every save",
	Long: `Watch a world file and revalidate it whenever it changes.

Each save triggers a reload and a lint report, so a broken edit shows
up immediately. Rapid write bursts from editors are coalesced into one
reload. Stop with Ctrl-C.

Example:
  propworld world watch world.yml`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorldWatch(cmd, worldPathArg(args))
	},
}

func init() {
	worldCmd.AddCommand(worldWatchCmd)
}

func runWorldWatch(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err != nil {
		return pwerrors.WorldFileNotFound(path)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	debounce := time.Duration(cfg.WatchDebounceMS) * time.Millisecond
	w, err := watch.New(path, debounce)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	reportWorld(cmd, path)
	return watchLoop(ctx, cmd, w, path)
}

// watchLoop revalidates on every debounced change until the context ends.
func watchLoop(ctx context.Context, cmd *cobra.Command, w *watch.Watcher, path string) error {
	spin := spinner.New(spinner.CharSets[14], 100*time.Millisecond,
		spinner.WithWriter(cmd.ErrOrStderr()))
	spin.Suffix = fmt.Sprintf(" watching %s", path)
	spin.Start()
	defer spin.Stop()

	events := w.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			spin.Stop()
			output.PrintEvent(cmd.OutOrStdout(),
				fmt.Sprintf("%s changed at %s", path, ev.At.Format("15:04:05")))
			reportWorld(cmd, path)
			spin.Start()
		}
	}
}

// reportWorld loads and validates the file, printing a one-line verdict.
func reportWorld(cmd *cobra.Command, path string) {
	w, err := worldfile.Load(path)
	if err != nil {
		var ve *worldfile.ValidationError
		if errors.As(err, &ve) {
			output.PrintFailure(cmd.OutOrStdout(),
				fmt.Sprintf("%s: %s: %s", path, ve.Field, ve.Message))
			return
		}
		output.PrintFailure(cmd.OutOrStdout(), fmt.Sprintf("%s: %v", path, err))
		return
	}
	output.PrintSuccess(cmd.OutOrStdout(),
		fmt.Sprintf("%s: %d entities", path, w.Len()))
}
