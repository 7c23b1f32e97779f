package logs_core

import "context"

// IndexFuture is the pending result of a non-blocking write. It completes
// exactly once; Wait can be called any number of times afterwards.
type IndexFuture struct {
	done chan struct{}
	ack  *IndexAck
	err  error
}

func newIndexFuture() *IndexFuture {
	return &IndexFuture{done: make(chan struct{})}
}

func (f *IndexFuture) complete(ack *IndexAck, err error) {
	f.ack = ack
	f.err = err
	close(f.done)
}

// Done is closed when the write has finished, successfully or not.
func (f *IndexFuture) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the write completes or ctx is cancelled. Cancelling
// the wait does not cancel the write itself; the in-flight request is
// bounded only by the client timeout.
func (f *IndexFuture) Wait(ctx context.Context) (*IndexAck, error) {
	select {
	case <-f.done:
		return f.ack, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
