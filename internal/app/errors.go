package service

import "errors"

// ErrSessionNotFound is returned for unknown, deleted, evicted or expired
// session IDs.
var ErrSessionNotFound = errors.New("session not found")
