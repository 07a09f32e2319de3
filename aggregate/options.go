// Package aggregate: functional configuration for Run's global filters and
// worker-pool size.
//
// Design mirrors the teacher's matrix/options.go: Options struct with unexported fields,
// WithX constructors that panic only on nonsensical (programmer-error)
// values, and a gatherOptions helper that resolves defaults + overrides in
// one place.
package aggregate

const (
	// DefaultWorkers is the worker-pool size used when WithWorkers is not
	// supplied.
	DefaultWorkers = 1

	// DefaultDiagMin is the smallest diagonal offset bin2_id-bin1_id kept
	// by the band filter when WithDiagBand is not supplied: no lower bound.
	DefaultDiagMin = 0

	// DefaultDiagMax is the band filter's upper bound when unset: no upper
	// bound (math.MaxInt).
	DefaultDiagMax = -1 // sentinel; resolved to "no cap" in gatherOptions

	// DefaultNNansCap is the NaN-footprint cap when WithNNansCap is not
	// supplied: no cap.
	DefaultNNansCap = -1 // sentinel; resolved to "no cap" in gatherOptions
)

const panicWorkersInvalid = "aggregate: WithWorkers: n must be > 0"
const panicDiagBandInvalid = "aggregate: WithDiagBand: min must be <= max"
const panicNNansCapInvalid = "aggregate: WithNNansCap: cap must be >= 0"

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error), matching the teacher's WithX convention.
type Option func(*Options)

// Options stores Run's effective configuration after applying Option
// setters. Its fields are unexported by design; callers compose ...Option at the call site.
type Options struct {
	workers     int
	diagMin     int
	diagMax     int
	hasDiagMax  bool
	nnansCap    int
	hasNNansCap bool
}

// WithWorkers sets the bounded worker-pool size for tile processing.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithDiagBand restricts emitted pixels to diag_min <= bin2_id-bin1_id <= diag_max.
func WithDiagBand(min, max int) Option {
	if min > max {
		panic(panicDiagBandInvalid)
	}
	return func(o *Options) {
		o.diagMin = min
		o.diagMax = max
		o.hasDiagMax = true
	}
}

// WithNNansCap drops pixels whose max kernel nnans count exceeds cap.
func WithNNansCap(cap int) Option {
	if cap < 0 {
		panic(panicNNansCapInvalid)
	}
	return func(o *Options) {
		o.nnansCap = cap
		o.hasNNansCap = true
	}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		workers: DefaultWorkers,
		diagMin: DefaultDiagMin,
	}
	for _, set := range user {
		set(&o)
	}
	finalizeOptions(&o)
	return o
}

// finalizeOptions enforces derived invariants in one place: an unset band
// or cap means "no filter", not "filter at zero".
func finalizeOptions(o *Options) {
	if !o.hasDiagMax {
		o.diagMax = int(^uint(0) >> 1) // max int: no upper bound
	}
	if !o.hasNNansCap {
		o.nnansCap = int(^uint(0) >> 1) // max int: no cap
	}
}
