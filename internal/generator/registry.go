package generator

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdg-garage/park-planner-api/internal/planner"
)

// Hooks are called around a registry task. OnStart runs after the key is
// reserved and admission checks pass, but before the task is launched; an
// error aborts the start. OnDone runs on the task goroutine before the key
// is released.
type Hooks struct {
	OnStart func() error
	OnDone  func(Result)
}

// Registry allows at most one pending generation per key.
type Registry struct {
	gen *Generator

	mu       sync.Mutex
	tasks    map[string]*Task
	reserved map[string]struct{}
	closed   bool
	wg       sync.WaitGroup
}

func NewRegistry(gen *Generator) *Registry {
	return &Registry{
		gen:      gen,
		tasks:    make(map[string]*Task),
		reserved: make(map[string]struct{}),
	}
}

func (r *Registry) Generator() *Generator { return r.gen }

// Begin starts a generation for key. It fails with ErrBusy while another
// generation for the same key is pending. Park and rate limit checks run
// before OnStart, so a rejected start never reaches the hook.
func (r *Registry) Begin(parent context.Context, key string, prefs planner.Preferences, hooks Hooks) (*Task, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrShuttingDown
	}
	if r.busyLocked(key) {
		r.mu.Unlock()
		return nil, ErrBusy
	}
	if err := r.gen.admit(prefs); err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.reserved[key] = struct{}{}
	r.wg.Add(1)
	r.mu.Unlock()

	// The hook may do I/O; other keys are not held up while it runs.
	if hooks.OnStart != nil {
		if err := hooks.OnStart(); err != nil {
			r.mu.Lock()
			delete(r.reserved, key)
			r.mu.Unlock()
			r.wg.Done()
			return nil, fmt.Errorf("start hook: %w", err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var task *Task
	task = r.gen.launch(parent, prefs, func(res Result) {
		defer r.wg.Done()
		if hooks.OnDone != nil {
			hooks.OnDone(res)
		}
		r.mu.Lock()
		if r.tasks[key] == task {
			delete(r.tasks, key)
		}
		r.mu.Unlock()
	})
	delete(r.reserved, key)
	r.tasks[key] = task
	if r.closed {
		task.Cancel()
	}
	return task, nil
}

func (r *Registry) busyLocked(key string) bool {
	if _, ok := r.tasks[key]; ok {
		return true
	}
	_, ok := r.reserved[key]
	return ok
}

// Lookup returns the pending task for key, if any.
func (r *Registry) Lookup(key string) (*Task, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[key]
	return t, ok
}

// Busy reports whether a generation for key is pending or starting.
func (r *Registry) Busy(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busyLocked(key)
}

// Cancel aborts the pending generation for key.
func (r *Registry) Cancel(key string) (*Task, error) {
	t, ok := r.Lookup(key)
	if !ok {
		return nil, ErrNoTask
	}
	t.Cancel()
	return t, nil
}

// Shutdown cancels every pending task and waits for their hooks to return.
func (r *Registry) Shutdown(ctx context.Context) error {
	r.mu.Lock()
	r.closed = true
	for _, t := range r.tasks {
		t.Cancel()
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
