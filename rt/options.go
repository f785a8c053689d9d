package rt

import "sync/atomic"

// Options are the process-wide runtime settings.
type Options struct {
	// AllowZeroLengthArrays lets array dimensions of 0 through. By default
	// any dimension <= 0 raises NegativeArraySizeException.
	AllowZeroLengthArrays bool
}

var options atomic.Pointer[Options]

func init() {
	options.Store(&Options{})
}

// SetOptions replaces the runtime settings.
func SetOptions(o Options) {
	options.Store(&o)
	logger().Debugf("options: allow zero-length arrays = %t", o.AllowZeroLengthArrays)
}

// CurrentOptions returns the active runtime settings.
func CurrentOptions() Options {
	return *options.Load()
}
