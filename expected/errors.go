package expected

import "errors"

var (
	// ErrNotSquare indicates CisDiagonalAverages was given a non-square
	// matrix; cis diagonal averaging assumes a symmetric chromosome window.
	ErrNotSquare = errors.New("expected: matrix must be square for cis diagonal averaging")

	// ErrNegativeIgnoreDiags indicates ignoreDiags was negative.
	ErrNegativeIgnoreDiags = errors.New("expected: ignoreDiags must be >= 0")

	// ErrUnknownRegion indicates a MatrixSource had no entry for a
	// requested region name.
	ErrUnknownRegion = errors.New("expected: unknown region")

	// ErrUnknownContactType indicates a --contact-type value other than
	// "cis" or "trans".
	ErrUnknownContactType = errors.New("expected: contact-type must be cis or trans")
)
