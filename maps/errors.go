package maps

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("maps: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maps: all rows must have the same length")
	// ErrConversion indicates a character could not be converted to the element type.
	ErrConversion = errors.New("maps: character has no conversion")
)
