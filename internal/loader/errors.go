package loader

import "errors"

// Sentinel errors for invalid input CSVs.
var (
	ErrMissingHeader   = errors.New("loader: missing required CSV column")
	ErrMissingField    = errors.New("loader: row missing required field value")
	ErrInvalidService  = errors.New("loader: Service is not a valid float")
	ErrUnknownCondition = errors.New("loader: unknown Father_cond")
)
