package transformers

import "errors"

var (
	ErrMissingProp       = errors.New("missing property")
	ErrInvalidProp       = errors.New("invalid property")
	ErrUnknownDictionary = errors.New("unknown dictionary")
)
