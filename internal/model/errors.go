package model

import "errors"

// ErrNotFound reports a lookup against an absent record or a record set
// that has never been written.
var ErrNotFound = errors.New("not found")
