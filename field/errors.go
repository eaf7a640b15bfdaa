package field

import "errors"

// Configuration errors returned by New and Config.Validate.
var (
	ErrEmptyCatalog   = errors.New("field: catalog is empty")
	ErrShapeEmpty     = errors.New("field: shape has no occupied cells")
	ErrShapeNotSquare = errors.New("field: shape is not square")
	ErrShapeTooLarge  = errors.New("field: shape does not fit the field")
	ErrFieldSize      = errors.New("field: width and height must be positive")
	ErrMoveDelay      = errors.New("field: move delay must be positive")
)
