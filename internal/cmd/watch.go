package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/teamdate/internal/config"
	"github.com/Iron-Ham/teamdate/internal/logging"
	"github.com/Iron-Ham/teamdate/internal/report"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// liveView redraws the tables until its context ends.
type liveView struct {
	out      io.Writer
	logger   *logging.Logger
	reporter *report.Reporter
	interval time.Duration
	now      func() time.Time
	load     func() (*config.Config, error)
	team     string
	all      bool
}

// runWatch draws at every tick and after the config file changes, until
// SIGINT or SIGTERM.
func (a *app) runWatch(cmd *cobra.Command, cfg *config.Config, r *report.Reporter) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reload := make(chan struct{}, 1)
	go func() {
		err := config.Watch(ctx, a.configPath, a.logger, func() {
			select {
			case reload <- struct{}{}:
			default:
			}
		})
		if err != nil {
			a.logger.Warn("config changes won't be picked up", "error", err)
		}
	}()

	v := &liveView{
		out:      cmd.OutOrStdout(),
		logger:   a.logger,
		reporter: r,
		interval: a.interval,
		now:      a.now,
		load:     func() (*config.Config, error) { return a.loadConfig(cmd) },
		team:     a.team,
		all:      a.all,
	}
	return v.run(ctx, cfg, reload)
}

func (v *liveView) run(ctx context.Context, cfg *config.Config, reload <-chan struct{}) error {
	ticker := time.NewTicker(v.interval)
	defer ticker.Stop()

	if err := v.draw(cfg); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := v.draw(cfg); err != nil {
				return err
			}
		case <-reload:
			next, err := v.load()
			if err != nil {
				v.logger.Warn("keeping previous config", "error", err)
				continue
			}
			v.logger.Info("config reloaded", "teams", next.Teams().Len())
			cfg = next
			if err := v.draw(cfg); err != nil {
				return err
			}
		}
	}
}

func (v *liveView) draw(cfg *config.Config) error {
	if _, err := io.WriteString(v.out, clearScreen); err != nil {
		return err
	}
	if err := v.reporter.Render(cfg, cfg.ResolveTeam(v.team, v.all), v.now()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(v.out, "\nRefreshing every %s. Press Ctrl+C to exit.\n", v.interval)
	return err
}
