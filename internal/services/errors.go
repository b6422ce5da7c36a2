package services

import "errors"

// ErrPersistence marks a store failure that the caller must surface.
var ErrPersistence = errors.New("persistence failure")
