package reqx

import "errors"

// ErrStreamRead marks a failed read against the underlying byte stream.
// It wraps every error returned by Parse and ParseWith; callers match it
// with errors.Is and decide whether to close or retry the connection.
var ErrStreamRead = errors.New("reqx: stream read failed")

// streamError couples ErrStreamRead with the parse stage and the cause.
type streamError struct {
	stage string
	err   error
}

func (e *streamError) Error() string {
	return "reqx: read " + e.stage + ": " + e.err.Error()
}

func (e *streamError) Unwrap() []error { return []error{ErrStreamRead, e.err} }

func streamErr(stage string, err error) error {
	return &streamError{stage: stage, err: err}
}
