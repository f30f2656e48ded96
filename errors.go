package cache

import "errors"

var (
	// ErrInvalidArgument is returned by Put for a nil value. Nothing is stored.
	// It signals a bug in the caller, retrying will not help.
	ErrInvalidArgument = errors.New("cache: invalid argument")

	// ErrStorageFailure is returned by Put when the underlying store could not
	// accept the write. The value is not cached; callers should carry on with
	// their source of truth.
	ErrStorageFailure = errors.New("cache: storage failure")

	// ErrClosed is returned by Put after Close. It always comes wrapped
	// together with ErrStorageFailure.
	ErrClosed = errors.New("cache: closed")
)
