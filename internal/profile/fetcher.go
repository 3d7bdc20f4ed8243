package profile

import (
	"context"
	"errors"
	"fmt"

	"hrflow/internal/navigation"
)

// FetchErrorKind classifies why a profile could not be fetched.
type FetchErrorKind string

const (
	KindNotFound     FetchErrorKind = "NotFound"
	KindServerError  FetchErrorKind = "ServerError"
	KindNetworkError FetchErrorKind = "NetworkError"
)

// FetchError is returned by every Fetcher failure.
type FetchError struct {
	Kind       FetchErrorKind
	ID         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("fetch profile %q: %s", e.ID, e.Kind)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsKind reports whether err is a FetchError of the given kind.
func IsKind(err error, kind FetchErrorKind) bool {
	var fe *FetchError
	return errors.As(err, &fe) && fe.Kind == kind
}

// Fetcher retrieves an employee record by id.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (navigation.UserRecord, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, id string) (navigation.UserRecord, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, id string) (navigation.UserRecord, error) {
	return f(ctx, id)
}
