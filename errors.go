package plt

import "errors"

// Sentinel errors returned by the plotting and drawing entry points. They are
// always wrapped with context; test with errors.Is.
var (
	// ErrInvalidData marks series input rejected before any subplot state is
	// mutated: NaN values or mismatched lengths.
	ErrInvalidData = errors.New("invalid data")

	// ErrBadTickPlacement marks a NaN among computed tick values, usually the
	// result of a degenerate axis span.
	ErrBadTickPlacement = errors.New("bad tick placement")

	// ErrBadTickLabels marks a manual tick label list whose length does not
	// match the number of ticks on its axis.
	ErrBadTickLabels = errors.New("bad tick labels")

	// ErrInvalidSubplotArea marks a fractional placement outside the unit
	// square, or one with inverted bounds.
	ErrInvalidSubplotArea = errors.New("invalid subplot area")

	// ErrInvalidIndex marks a grid layout insertion outside the grid.
	ErrInvalidIndex = errors.New("invalid index")
)
