package repository

import "errors"

// ErrNotFound is returned when a lookup by id matches no row. Callers test
// with errors.Is; repositories wrap it with the entity name.
var ErrNotFound = errors.New("not found")
