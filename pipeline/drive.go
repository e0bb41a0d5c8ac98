package pipeline

import (
	"context"
)

// Future is a result that is not ready yet. RunAsync waits for it; Run
// passes it on untouched.
type Future interface {
	Await(ctx context.Context) (any, error)
}

// FutureFunc is a Future computed lazily when awaited.
type FutureFunc func(ctx context.Context) (any, error)

func (f FutureFunc) Await(ctx context.Context) (any, error) {
	return f(ctx)
}

type promise struct {
	done  chan struct{}
	value any
	err   error
}

// Go starts fn on its own goroutine and returns its result as a Future.
func Go(fn func() (any, error)) Future {
	p := &promise{done: make(chan struct{})}

	go func() {
		defer close(p.done)
		p.value, p.err = fn()
	}()

	return p
}

func (p *promise) Await(ctx context.Context) (any, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// driver resolves the values yielded by step bodies.
type driver struct {
	ctx   context.Context
	async bool
}

var syncDriver = &driver{}

func (d *driver) resolve(v any) (any, error) {
	if d == nil || !d.async {
		return v, nil
	}

	f, ok := v.(Future)
	if !ok {
		return v, nil
	}

	return f.Await(d.ctx)
}

// Run executes p on value, resolving every yield immediately.
func Run(value any, p Pipeline, state *State) (any, error) {
	state.drv = syncDriver
	return run(value, p, state)
}

// RunAsync executes p on value, awaiting every Future produced by a
// transformer, filter or sub-pipeline before the next step starts.
func RunAsync(ctx context.Context, value any, p Pipeline, state *State) (any, error) {
	state.drv = &driver{ctx: ctx, async: true}

	v, err := run(value, p, state)
	if err != nil {
		return nil, err
	}

	return state.yield(v)
}

// RunPipeline runs p with the same driver as the run s belongs to. It is
// meant for transformers that evaluate sub-pipelines.
func (s *State) RunPipeline(value any, p Pipeline) (any, error) {
	return s.runSub(value, p)
}

func (s *State) yield(v any) (any, error) {
	return s.drv.resolve(v)
}

// runSub runs a sub-pipeline on s and yields its result.
func (s *State) runSub(value any, p Pipeline) (any, error) {
	v, err := run(value, p, s)
	if err != nil {
		return nil, err
	}

	return s.yield(v)
}
