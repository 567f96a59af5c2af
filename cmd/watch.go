package cmd

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/countdown/internal/logging"
	"github.com/manav03panchal/countdown/internal/model"
	"github.com/manav03panchal/countdown/internal/output"
	"github.com/manav03panchal/countdown/internal/timer"
)

// watchCmd represents the watch command.
var watchCmd = &cobra.Command{
	Use:     "watch [ID...]",
	Aliases: []string{"w", "live"},
	Short:   "Follow timers live, once a second",
	Long: `Follow timers live. Every timer gets its own driver that recomputes the
reading once a second. Countdowns stop on their own when they reach their
target; the command exits when every watched countdown has finished and no
elapsed timer is being watched, or on Ctrl+C.

In a terminal the readings are redrawn in place; otherwise every reading is
printed as it happens (one JSON object per reading with --format json).

Examples:
  countdown watch
  countdown watch timer1
  countdown watch --format json | jq .caption`,
	ValidArgsFunction: completeTimerArgs,
	RunE:              runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	timers, err := watchedTimers(args)
	if err != nil {
		return err
	}
	if len(timers) == 0 {
		if ctx.IsJSON() {
			return ctx.JSONFormatter().PrintSnapshots(ctx.Clock.Now(), nil)
		}
		ctx.CLIFormatter().PrintSnapshots(nil)
		return nil
	}

	sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := newWatcher(timers, ctx.CLIFormatter(), ctx.IsJSON())
	board := timer.NewBoard(timer.DriverOptions{
		Scheduler:  ctx.Scheduler(),
		Clock:      ctx.Clock,
		Interval:   ctx.Config.Timer.TickInterval,
		OnUpdate:   w.update,
		OnComplete: w.complete,
	})
	defer board.StopAll()

	for _, t := range timers {
		board.Add(t)
	}

	return w.wait(sigCtx)
}

// watchedTimers resolves the command arguments to stored timers. No
// arguments means every timer.
func watchedTimers(ids []string) ([]*model.Timer, error) {
	if len(ids) == 0 {
		return ctx.TimerRepo.List()
	}
	timers := make([]*model.Timer, 0, len(ids))
	for _, id := range ids {
		t, err := ctx.TimerRepo.Get(id)
		if err != nil {
			return nil, err
		}
		timers = append(timers, t)
	}
	return timers, nil
}

// watcher prints driver output and tracks when every countdown is done.
type watcher struct {
	cli    *output.CLIFormatter
	asJSON bool
	live   bool

	mu      sync.Mutex
	order   []string
	latest  map[string]timer.Snapshot
	done    map[string]bool
	pending int
	forever bool

	finished chan struct{}
	once     sync.Once
}

func newWatcher(timers []*model.Timer, cli *output.CLIFormatter, asJSON bool) *watcher {
	w := &watcher{
		cli:      cli,
		asJSON:   asJSON,
		live:     !asJSON && cli.Format == output.FormatCLI && output.IsTerminal(cli.Writer),
		latest:   make(map[string]timer.Snapshot, len(timers)),
		done:     make(map[string]bool),
		finished: make(chan struct{}),
	}
	for _, t := range timers {
		w.order = append(w.order, t.ID)
		if t.IsCountdown() {
			w.pending++
		} else {
			w.forever = true
		}
	}
	return w
}

func (w *watcher) update(s timer.Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.latest[s.TimerID] = s
	switch {
	case w.asJSON:
		if err := w.cli.JSON(s); err != nil {
			logging.Warn("write reading", logging.KeyError, err)
		}
	case w.live:
		w.redraw()
	default:
		w.cli.PrintSnapshot(s)
		w.cli.Println()
	}
}

// redraw repaints every reading in watch order. Callers hold mu.
func (w *watcher) redraw() {
	w.cli.ClearScreen()
	first := true
	for _, id := range w.order {
		s, ok := w.latest[id]
		if !ok {
			continue
		}
		if !first {
			w.cli.Println()
		}
		first = false
		w.cli.PrintSnapshot(s)
	}
}

func (w *watcher) complete(s timer.Snapshot) {
	w.mu.Lock()
	if !w.done[s.TimerID] {
		w.done[s.TimerID] = true
		w.pending--
	}
	if !w.asJSON {
		w.cli.PrintComplete(s)
	}
	allDone := w.pending <= 0 && !w.forever
	w.mu.Unlock()

	logging.ForTimer(s.TimerID).Info("countdown complete")
	if allDone {
		w.once.Do(func() { close(w.finished) })
	}
}

// wait blocks until every countdown has completed or ctx is cancelled.
func (w *watcher) wait(ctx context.Context) error {
	select {
	case <-w.finished:
	case <-ctx.Done():
	}
	return nil
}
