package usecase

import "errors"

// ErrCreateWithID is returned when a create receives a record that already
// claims an identity. It is a usage contract violation, not a persistence
// failure, and maps to 400 in the handlers.
var ErrCreateWithID = errors.New("create must not receive an id")
