package dotcall

// KernelResult holds one kernel's locally-adjusted expected value and its
// masked-neighbour count for a single pixel.
type KernelResult struct {
	Value float64
	NNans int
}

// Pixel is one row of the emitted table: a single upper-triangle contact
// with its raw observed/expected values and, for each configured kernel,
// the locally-adjusted expected and its NaN footprint.
type Pixel struct {
	Bin1ID, Bin2ID int
	ObsRaw         float64
	ExpRaw         float64
	// LaExp is indexed by kernel name; every kernel configured on the
	// TileProcessor that produced this pixel has an entry.
	LaExp map[string]KernelResult
}
