package async

import (
	"context"
	"sync/atomic"
)

// JobHandle tracks a function running in its own goroutine.
type JobHandle[T any] struct {
	cancel func()
	done   chan struct{}
	result Result[T]
	err    atomic.Pointer[error]
}

// Job runs job in the background with a context derived from ctx. Cancelling
// ctx or calling Stop cancels the job's context.
func Job[T any](ctx context.Context, job func(ctx context.Context) (T, error)) *JobHandle[T] {
	ctx, cancel := context.WithCancel(ctx)
	handle := &JobHandle[T]{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(handle.done)
		defer cancel()

		res, err := job(ctx)

		handle.err.Store(&err)
		handle.result = NewResult(res, err)
	}()

	return handle
}

// Done returns an already finished job.
func Done[T any](value T, err error) *JobHandle[T] {
	handle := &JobHandle[T]{
		cancel: func() {},
		done:   make(chan struct{}),
		result: NewResult(value, err),
	}
	handle.err.Store(&err)
	close(handle.done)

	return handle
}

func (j *JobHandle[T]) Stop() {
	j.cancel()
}

// Wait blocks until the job returns. It may be called any number of times.
func (j *JobHandle[T]) Wait() (T, error) {
	<-j.done
	return j.result.Unpack()
}

func (j *JobHandle[T]) StopWait() (T, error) {
	j.Stop()
	return j.Wait()
}

// Finished is closed once the job returned.
func (j *JobHandle[T]) Finished() <-chan struct{} {
	return j.done
}

// Error returns the job's error, nil while it is still running.
func (j *JobHandle[T]) Error() error {
	var err = j.err.Load()
	if err == nil {
		return nil
	}
	return *err
}
