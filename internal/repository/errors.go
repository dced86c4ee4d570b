package repository

import "errors"

// ErrNotFound is returned when a singleton row or an entry does not exist.
var ErrNotFound = errors.New("not found")
