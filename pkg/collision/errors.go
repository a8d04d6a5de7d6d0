package collision

import "errors"

var (
	ErrUnsupportedPair = errors.New("unsupported shape pair")
	ErrUnknownKind     = errors.New("unknown shape kind")
)
