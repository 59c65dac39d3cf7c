package usecase

import (
	"errors"
	"fmt"
)

// ErrQueryFailure matches every store error surfaced by the analytics usecases.
var ErrQueryFailure = errors.New("analytics query failed")

// QueryError names the read that failed and carries the store error.
type QueryError struct {
	Query string
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %v", e.Query, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func (e *QueryError) Is(target error) bool {
	return target == ErrQueryFailure
}

// Cause returns the message of the store error, without the query name.
func (e *QueryError) Cause() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func queryError(query string, err error) error {
	if err == nil {
		return nil
	}
	var qe *QueryError
	if errors.As(err, &qe) {
		return err
	}
	return &QueryError{Query: query, Err: err}
}
