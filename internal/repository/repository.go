package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Repositories wrap
// pgx.ErrNoRows into this so services never depend on the driver.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint. The constraints are the race-proof arbiter behind the
// advisory existence probes the services run first.
var ErrDuplicate = errors.New("duplicate row")
