package repository

import "errors"

// ErrOwnerNotFound is returned when a transition targets a user that no longer exists.
var ErrOwnerNotFound = errors.New("owning user not found")
