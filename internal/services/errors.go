package services

import "errors"

// ErrForbidden is returned when an authenticated caller lacks the role or
// category privilege an operation requires. Handlers map it to 403.
var ErrForbidden = errors.New("forbidden")
