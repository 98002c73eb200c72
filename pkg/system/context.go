package system

import (
	"context"
)

// Executes a blocking operation with context awareness. The operation runs
// in its own goroutine so the caller can react to cancellation while the
// operation is still in flight.
//
// The function handles three key scenarios:
//   - Normal completion: the operation's result is returned as is
//   - Error during the operation: the error is propagated to the caller
//   - Context cancellation: the operation is signaled to stop and its
//     final result is still collected before returning
//
// Returns:
//   - nil if the operation completes successfully.
//   - the original error if the operation fails.
//   - the operation's result after interruption if the context is cancelled.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fail fast if the caller's context was already cancelled before any
	// work started.
	if err := ctx.Err(); err != nil {
		return err
	}

	// The operation gets its own context so its lifecycle can be managed
	// separately from the parent: on parent cancellation the operation is
	// signaled but still allowed to wind down.
	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine can exit even if nobody reads the result
	// immediately after a cancellation race.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		// Signal the operation to stop, then wait for it so no goroutine
		// or half-read state is left behind.
		cancel()
		return <-done
	}
}
