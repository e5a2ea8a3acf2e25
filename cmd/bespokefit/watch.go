package main

import (
	"context"
	"fmt"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/openforcefield/bespoke-fit/forcefield"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <forcefield>",
	Short: "Watch a force-field file during a fitting run, printing changes",
	Long: `Watch takes a snapshot of the force field and re-prints the diff against
that snapshot every time the file is rewritten, until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return watchForceField(ctx, args[0])
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 250*time.Millisecond,
		"minimum delay between reloads")
	rootCmd.AddCommand(watchCmd)
}

func watchForceField(ctx context.Context, path string) error {
	logger := getLogger()

	snapshot, err := forcefield.LoadFile(path)
	if err != nil {
		return fmt.Errorf("loading force field: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors and fitting runs
	// typically replace the file, which drops a file-level watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Info("watching force field", "path", path)

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	var lastReload time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			changed, err := filepath.Abs(event.Name)
			if err != nil || changed != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if time.Since(lastReload) < watchDebounce {
				continue
			}
			lastReload = time.Now()

			current, err := forcefield.LoadFile(path)
			if err != nil {
				logger.Warn("reload failed", "error", err)
				continue
			}
			diff, err := forcefield.Diff(snapshot, current)
			if err != nil {
				logger.Warn("diff failed", "error", err)
				continue
			}
			if diff == "" {
				logger.Info("force field rewritten with no changes")
				continue
			}
			fmt.Print(diff)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)
		}
	}
}
