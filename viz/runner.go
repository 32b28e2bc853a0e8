package viz

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/mazeviz/logging"
	"github.com/katalvlaran/mazeviz/search"
)

// Runner pulls steps from one Stepper at a fixed, adjustable interval and
// hands each to a callback. At most one run is active; starting another or
// calling Stop ends the previous pull loop.
type Runner struct {
	log *slog.Logger

	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
	wg       sync.WaitGroup
}

// NewRunner returns an idle Runner. A nil log discards records.
func NewRunner(interval time.Duration, log *slog.Logger) *Runner {
	if log == nil {
		log = logging.Discard()
	}

	return &Runner{interval: interval, log: log}
}

// SetInterval changes the delay; it applies from the next wait.
func (r *Runner) SetInterval(d time.Duration) {
	r.mu.Lock()
	r.interval = d
	r.mu.Unlock()
}

// Interval returns the current delay.
func (r *Runner) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.interval
}

// Start cancels any active run and begins pulling from s. The first step is
// pulled immediately. apply runs on the runner goroutine; it must hand UI
// work to the UI thread itself.
func (r *Runner) Start(s *search.Stepper, apply func(search.Step)) {
	r.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	r.mu.Lock()
	r.cancel = cancel
	r.mu.Unlock()

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(ctx, s, apply)
	}()
}

// Stop cancels the active run, if any, and waits for its loop to exit.
func (r *Runner) Stop() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
	r.wg.Wait()
}

// Wait blocks until the active run ends on its own or is stopped.
func (r *Runner) Wait() {
	r.wg.Wait()
}

func (r *Runner) loop(ctx context.Context, s *search.Stepper, apply func(search.Step)) {
	log := r.log.With("strategy", s.Strategy().String())
	log.Info("search started")
	for {
		if ctx.Err() != nil {
			log.Info("search stopped")
			return
		}
		step, ok := s.Next()
		if !ok {
			return
		}
		log.Debug("step",
			"index", step.Index,
			"current", step.Current.String(),
			"discovered", len(step.Discovered),
			"frontier", len(step.Frontier))
		apply(step)
		if step.Status.Terminal() {
			log.Info("search finished",
				"status", step.Status.String(),
				"expanded", len(step.Expanded),
				"path_len", len(step.Path))
			return
		}

		t := time.NewTimer(r.Interval())
		select {
		case <-ctx.Done():
			t.Stop()
			log.Info("search stopped")
			return
		case <-t.C:
		}
	}
}
