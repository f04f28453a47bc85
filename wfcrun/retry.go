package wfcrun

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/wfc/catalogue"
	"github.com/katalvlaran/wfc/direction"
	"github.com/katalvlaran/wfc/wfcrng"
)

// Setup is applied to a freshly constructed Run before its first Step,
// typically to re-apply global constraints (Forbid/Force) that must hold
// across every attempt. Returning an error fails that attempt immediately
// (counted the same as a Contradiction) without invoking Step at all.
type Setup func(*Run) error

// RetryReport summarizes a CollapseRetrying call.
type RetryReport struct {
	// Attempts is the number of attempts actually started.
	Attempts int
	// Succeeded is true iff some attempt reached Complete.
	Succeeded bool
}

// CollapseRetrying orchestrates the restart strategy on contradiction:
// discard the wave/counters/heap, re-initialise from the catalogue,
// re-apply any global constraints via setup, draw a fresh RNG
// subsequence, and retry up to attempts times.
//
// With WithParallelAttempts, independent attempts run on separate
// goroutines, each owning its own wave, counters, heap, worklist, and RNG
// substream; the catalogue is the only state shared between them, and it
// is read-only. The first attempt to reach Complete wins;
// the context is cancelled to signal the others, which check ctx.Err()
// between Steps (never mid-propagation) and stop cooperatively -- the
// same best-effort cancellation idiom lvlath/flow's Dinic uses to check
// ctx.Err() between BFS/blocking-flow phases.
//
// Returns the winning Run (or the last attempt's Run if none completed,
// so the caller can inspect the final contradiction) and a report. The
// error is ErrNoAttemptsSucceeded if no attempt reached Complete, except
// in sequential mode when ctx is already done before an attempt starts:
// the error is then ctx.Err().
func CollapseRetrying(
	ctx context.Context,
	cat *catalogue.Table,
	size direction.Size,
	baseSeed int64,
	attempts int,
	setup Setup,
	opts ...RetryOption,
) (*Run, RetryReport, error) {
	if attempts < 1 {
		attempts = 1
	}
	cfg := defaultRetryConfig()
	for _, o := range opts {
		o(&cfg)
	}

	if cfg.parallel {
		return collapseRetryingParallel(ctx, cat, size, baseSeed, attempts, setup, cfg)
	}
	return collapseRetryingSequential(ctx, cat, size, baseSeed, attempts, setup, cfg)
}

func runOneAttempt(cat *catalogue.Table, size direction.Size, baseSeed int64, stream uint64, setup Setup, cfg retryConfig) (*Run, bool) {
	rng := wfcrng.Derive(baseSeed, stream)
	run := New(cat, size, rng)
	if setup != nil {
		if err := setup(run); err != nil {
			return run, false
		}
	}
	result := run.StepAll(rng, cfg.stepBudgetPerAttempt)
	return run, result == RunComplete
}

func collapseRetryingSequential(ctx context.Context, cat *catalogue.Table, size direction.Size, baseSeed int64, attempts int, setup Setup, cfg retryConfig) (*Run, RetryReport, error) {
	var last *Run
	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return last, RetryReport{Attempts: i, Succeeded: false}, err
		}
		run, ok := runOneAttempt(cat, size, baseSeed, uint64(i), setup, cfg)
		last = run
		if ok {
			return run, RetryReport{Attempts: i + 1, Succeeded: true}, nil
		}
	}
	return last, RetryReport{Attempts: attempts, Succeeded: false}, ErrNoAttemptsSucceeded
}

func collapseRetryingParallel(ctx context.Context, cat *catalogue.Table, size direction.Size, baseSeed int64, attempts int, setup Setup, cfg retryConfig) (*Run, RetryReport, error) {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winner  *Run
		done    atomic.Bool
		lastRun *Run
		started int32
	)

	for i := 0; i < attempts; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if cctx.Err() != nil || done.Load() {
				return
			}
			atomic.AddInt32(&started, 1)

			rng := wfcrng.Derive(baseSeed, uint64(i))
			run := New(cat, size, rng)
			if setup != nil {
				if err := setup(run); err != nil {
					mu.Lock()
					lastRun = run
					mu.Unlock()
					return
				}
			}

			result := stepUntilDoneOrCancelled(run, rng, cfg.stepBudgetPerAttempt, cctx, &done)

			mu.Lock()
			lastRun = run
			if result == RunComplete && !done.Load() {
				done.Store(true)
				winner = run
				cancel()
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if winner != nil {
		return winner, RetryReport{Attempts: int(started), Succeeded: true}, nil
	}
	return lastRun, RetryReport{Attempts: int(started), Succeeded: false}, ErrNoAttemptsSucceeded
}

// stepUntilDoneOrCancelled drives a single attempt's Run, checking for
// cancellation between Steps only: cancellation is best-effort, and no
// step is ever interrupted mid-propagation.
func stepUntilDoneOrCancelled(run *Run, rng wfcrng.Source, budget int, ctx context.Context, done *atomic.Bool) RunResult {
	steps := 0
	for budget <= 0 || steps < budget {
		if ctx.Err() != nil || done.Load() {
			return RunBudgetExhausted
		}
		switch run.Step(rng) {
		case StepComplete:
			return RunComplete
		case StepContradiction:
			return RunContradiction
		}
		steps++
	}
	return RunBudgetExhausted
}
