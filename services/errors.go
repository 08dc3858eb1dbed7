// services/errors.go
package services

import "errors"

// Failure kinds of the submission pipeline. Storage failures mean the
// contact was never persisted; notification failures mean it was.
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrNotificationFailed = errors.New("notification failed")
)

// ValidationError carries the first violated field rule, already worded
// for the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
