package merklebatch

import "runtime"

// Options configure a BatchTree. They are set via the exported Option
// functions passed to New or SignBatch.
type Options struct {
	// InitialCapacity of the leaf slice, to save re-allocations when the
	// caller knows the batch size up front.
	InitialCapacity int
	// NumWorkers bounds the goroutines used to hash a single layer. A value
	// of 1 forces the serial path.
	NumWorkers int
	// Sha256Compression enables the vectorized sha256 pair-compression fast
	// path for inner layers. It only takes effect when the tree's base
	// hasher is crypto.SHA256; for any other hasher it is ignored.
	Sha256Compression bool
}

// Option is a functional option to modify the tree's default Options.
type Option func(*Options)

// InitialCapacity sets the capacity of the tree's leaf slice.
func InitialCapacity(cap int) Option {
	if cap < 0 {
		panic("cannot set the initial capacity to a negative value")
	}
	return func(opts *Options) {
		opts.InitialCapacity = cap
	}
}

// NumWorkers bounds the number of goroutines hashing a layer concurrently.
func NumWorkers(n int) Option {
	if n < 1 {
		panic("need at least one layer-hashing worker")
	}
	return func(opts *Options) {
		opts.NumWorkers = n
	}
}

// Sha256Compression opts in to hashing inner layers with the vectorized
// sha256 implementation from gohashtree instead of the generic path. The
// two produce identical digests; this is purely a throughput knob.
func Sha256Compression() Option {
	return func(opts *Options) {
		opts.Sha256Compression = true
	}
}

func defaultOptions() *Options {
	return &Options{
		InitialCapacity: 64,
		NumWorkers:      runtime.NumCPU(),
	}
}
