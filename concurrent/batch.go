package concurrent

import (
	"context"
	"sync"
	"sync/atomic"
)

const defaultConcurrency = 4

// batchInput to a batch operation
type batchInput[T any] struct {
	Supplier Supplier[T]
	Index    int64
}

// BatchResult of a batch operation
type BatchResult[T any] struct {
	Result[T]
	index int64
}

// Index is the position of the result within the batch
// of operations
func (r BatchResult[T]) Index() int64 {
	return r.index
}

// BatchOpts are the options to configure how a batch of
// operations will be executed
type BatchOpts struct {
	// Concurrency specificies the maximum number of goroutines
	// that will be used to run all the operations in the batch
	Concurrency int
}

// BatchRunner executes a batch of operations until all of them
// complete. This is useful to execute a set of operations
// as a block, and there's a need to wait for the whole results of the block
// before moving forward.
type BatchRunner[T any] struct {
	opts    BatchOpts
	running int32
}

// NewBatchRunner creates a new instance of a BatchRunner using
// the default values as configuration
func NewBatchRunner[T any]() *BatchRunner[T] {
	return NewBatchRunnerWithOpts[T](BatchOpts{
		Concurrency: defaultConcurrency,
	})
}

// NewBatchRunnerWithOpts creates a new instance of a BatchRunner
// with the specified options
func NewBatchRunnerWithOpts[T any](opts BatchOpts) *BatchRunner[T] {
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}

	return &BatchRunner[T]{opts: opts}
}

// Run runs all the operations provided by the input channel
// and returns the results. The results may be returned in a
// different order compared to the order in which the inputs
// are received. A runner processes one batch at a time
func (r *BatchRunner[T]) Run(
	ctx context.Context,
	inC <-chan Supplier[T],
) <-chan BatchResult[T] {
	if ok := atomic.CompareAndSwapInt32(&r.running, 0, 1); !ok {
		panic("attempt to call Run when BatchRunner is already processing a batch")
	}

	outC := make(chan BatchResult[T])
	wg := &sync.WaitGroup{}
	wg.Add(r.opts.Concurrency)
	argC := make(chan batchInput[T], 64)
	for i := 0; i < r.opts.Concurrency; i++ {
		go r.run(ctx, argC, outC, wg)
	}

	go func() {
		r.sendInputs(ctx, inC, argC)
		close(argC)
		wg.Wait()

		if ok := atomic.CompareAndSwapInt32(&r.running, 1, 0); !ok {
			panic("attempt to stop BatchRunner that is not running")
		}
		close(outC)
	}()

	return outC
}

func (r *BatchRunner[T]) sendInputs(
	ctx context.Context,
	inC <-chan Supplier[T],
	argC chan<- batchInput[T],
) {
	var counter int64
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inC:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case argC <- batchInput[T]{Supplier: in, Index: counter}:
			}
		}
		counter++
	}
}

func (r *BatchRunner[T]) run(
	ctx context.Context,
	inC <-chan batchInput[T],
	outC chan<- BatchResult[T],
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inC:
			if !ok {
				return
			}

			value, err := supply(in.Supplier)
			select {
			case <-ctx.Done():
				return
			case outC <- BatchResult[T]{
				Result: Result[T]{value: value, err: err},
				index:  in.Index,
			}:
			}
		}
	}
}

// Batch operations provided by the input channel
// and return the results of those operations on the
// output channel
func Batch[T any](
	ctx context.Context,
	inC <-chan Supplier[T],
) <-chan BatchResult[T] {
	return BatchWithOpts(ctx, inC, BatchOpts{
		Concurrency: defaultConcurrency,
	})
}

// BatchWithOpts operations provided by the input channel
// and return the results of those operations on the
// output channel. It allows to specify the configuration
// options on how the batch will be run
func BatchWithOpts[T any](
	ctx context.Context,
	inC <-chan Supplier[T],
	opts BatchOpts,
) <-chan BatchResult[T] {
	runner := NewBatchRunnerWithOpts[T](opts)
	return runner.Run(ctx, inC)
}

// BatchSlice runs as a batch a slice of operations
// and returns an ordered batch with the results
func BatchSlice[T any](
	ctx context.Context,
	in []Supplier[T],
) []BatchResult[T] {
	return BatchSliceWithOpts(ctx, in, BatchOpts{
		Concurrency: defaultConcurrency,
	})
}

// BatchSliceWithOpts runs all the operations in the slice
// as a batch and equally returns a slice with the
// results, in the same order as the suppliers. If ctx is
// done before all the suppliers run, the missing results
// hold ctx.Err()
func BatchSliceWithOpts[T any](
	ctx context.Context,
	in []Supplier[T],
	opts BatchOpts,
) []BatchResult[T] {
	inC := make(chan Supplier[T], 64)

	go func() {
		defer close(inC)
		for i := 0; i < len(in); i++ {
			select {
			case <-ctx.Done():
				return
			case inC <- in[i]:
			}
		}
	}()

	results := make([]BatchResult[T], len(in))
	done := make([]bool, len(in))
	outC := BatchWithOpts[T](ctx, inC, opts)
	for res := range outC {
		results[res.Index()] = res
		done[res.Index()] = true
	}

	for i := range results {
		if !done[i] {
			results[i] = BatchResult[T]{Result: Result[T]{err: ctx.Err()}, index: int64(i)}
		}
	}

	return results
}
