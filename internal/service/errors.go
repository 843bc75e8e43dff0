package service

import "errors"

var (
	// ErrNoSession is returned when an operation that requires an
	// authenticated session is invoked without one.
	ErrNoSession = errors.New("no authenticated session")

	// ErrNotPageOwner is returned when the session user tries to modify or
	// delete a page owned by somebody else.
	ErrNotPageOwner = errors.New("not the page owner")
)
