// Package generator runs plan strategies behind an asynchronous,
// cancellable task boundary with a fixed simulated latency.
package generator

import (
	"context"
	"errors"
	"time"

	"github.com/gdg-garage/park-planner-api/internal/planner"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultDelay is the simulated computation time of one generation.
const DefaultDelay = 2 * time.Second

var (
	ErrParkRequired = errors.New("a park must be selected before generating a plan")
	ErrBusy         = errors.New("a plan is already being generated")
	ErrRateLimited  = errors.New("too many plan generations, try again later")
	ErrNoTask       = errors.New("no plan generation in progress")
	ErrShuttingDown = errors.New("plan generation is shutting down")
)

type Options struct {
	Delay    time.Duration
	Strategy planner.Strategy
	// Rate caps generation starts per second. Zero disables the limit.
	Rate   float64
	Burst  int
	Logger *zap.Logger
}

type Generator struct {
	delay    time.Duration
	strategy planner.Strategy
	limiter  *rate.Limiter
	logger   *zap.Logger
}

func New(opts Options) *Generator {
	g := &Generator{
		delay:    opts.Delay,
		strategy: opts.Strategy,
		logger:   opts.Logger,
	}
	if g.delay < 0 {
		g.delay = 0
	}
	if g.strategy == nil {
		g.strategy = planner.SampleStrategy{}
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	if opts.Rate > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		g.limiter = rate.NewLimiter(rate.Limit(opts.Rate), burst)
	}
	return g
}

func (g *Generator) Delay() time.Duration { return g.delay }

func (g *Generator) StrategyName() string { return g.strategy.Name() }

// Result is the outcome of a finished task.
type Result struct {
	Plan     planner.Plan
	Err      error
	Strategy string
	Elapsed  time.Duration
}

// Cancelled reports whether the task ended because it was cancelled.
func (r Result) Cancelled() bool {
	return errors.Is(r.Err, context.Canceled)
}

// Task is a handle on one pending generation.
type Task struct {
	done    chan struct{}
	cancel  context.CancelFunc
	started time.Time
	result  Result
}

// Done is closed once the result is available and every completion hook
// has returned.
func (t *Task) Done() <-chan struct{} { return t.done }

// Cancel aborts a pending generation. It is a no-op once the task is done.
func (t *Task) Cancel() { t.cancel() }

func (t *Task) Started() time.Time { return t.started }

// Wait blocks until the task finishes or ctx is done.
func (t *Task) Wait(ctx context.Context) (planner.Plan, error) {
	select {
	case <-t.done:
		return t.result.Plan, t.result.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Result returns the outcome and whether the task has finished.
func (t *Task) Result() (Result, bool) {
	select {
	case <-t.done:
		return t.result, true
	default:
		return Result{}, false
	}
}

// Start launches a generation for prefs. The task lives until it
// completes, is cancelled or parent is done.
func (g *Generator) Start(parent context.Context, prefs planner.Preferences) (*Task, error) {
	return g.start(parent, prefs, nil)
}

// Generate runs a generation and waits for its plan.
func (g *Generator) Generate(ctx context.Context, prefs planner.Preferences) (planner.Plan, error) {
	t, err := g.Start(ctx, prefs)
	if err != nil {
		return nil, err
	}
	return t.Wait(ctx)
}

func (g *Generator) start(parent context.Context, prefs planner.Preferences, onDone func(Result)) (*Task, error) {
	if err := g.admit(prefs); err != nil {
		return nil, err
	}
	return g.launch(parent, prefs, onDone), nil
}

// admit checks that prefs can be generated and takes a rate limit token.
func (g *Generator) admit(prefs planner.Preferences) error {
	if prefs.Park == "" {
		return ErrParkRequired
	}
	if g.limiter != nil && !g.limiter.Allow() {
		return ErrRateLimited
	}
	return nil
}

func (g *Generator) launch(parent context.Context, prefs planner.Preferences, onDone func(Result)) *Task {
	ctx, cancel := context.WithCancel(parent)
	t := &Task{
		done:    make(chan struct{}),
		cancel:  cancel,
		started: time.Now(),
	}
	go t.run(ctx, g, prefs.Clone(), onDone)
	return t
}

func (t *Task) run(ctx context.Context, g *Generator, prefs planner.Preferences, onDone func(Result)) {
	defer close(t.done)
	defer t.cancel()

	plan, err := g.produce(ctx, prefs)
	t.result = Result{
		Plan:     plan,
		Err:      err,
		Strategy: g.strategy.Name(),
		Elapsed:  time.Since(t.started),
	}

	if err != nil {
		g.logger.Info("plan generation stopped",
			zap.String("park", prefs.Park),
			zap.Duration("elapsed", t.result.Elapsed),
			zap.Error(err))
	} else {
		g.logger.Debug("plan generation finished",
			zap.String("park", prefs.Park),
			zap.String("strategy", t.result.Strategy),
			zap.Int("items", len(plan)),
			zap.Duration("elapsed", t.result.Elapsed))
	}

	if onDone != nil {
		onDone(t.result)
	}
}

func (g *Generator) produce(ctx context.Context, prefs planner.Preferences) (planner.Plan, error) {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}
	return g.strategy.Plan(ctx, prefs)
}
