package scenario

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidScenario   = errors.New("invalid scenario")
	ErrUnknownShapeType  = errors.New("unknown shape type")
	ErrUnsupportedFormat = errors.New("unsupported scenario format")
)

// QueryError ties a failure to the query that produced it.
type QueryError struct {
	ID  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query %q: %v", e.ID, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
