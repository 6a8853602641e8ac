package field

import "errors"

// Errors returned by displacement field functions.
var (
	ErrInvalidLag        = errors.New("field: lag must be at least 1 and less than the stack length minus 1")
	ErrNoViableTiles     = errors.New("field: no viable grid locations; try smaller tile dimensions")
	ErrNilGeoref         = errors.New("field: nil georeference")
	ErrInvalidResolution = errors.New("field: cell resolution must be positive")
)
