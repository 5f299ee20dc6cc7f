package contract

import "errors"

// Sentinel errors shared by every repository implementation. Handlers map
// these to 404 responses; any other repository error is a store failure and
// surfaces as a generic 500.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrLessonNotFound = errors.New("lesson not found")
)
