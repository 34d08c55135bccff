package availability

import "fmt"

// RequestError is a user-facing validation failure. Handlers map it to a
// 400 response with the message verbatim.
type RequestError struct {
	Code    string
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newParameterConflict(msg string) error {
	return &RequestError{Code: "parameter_conflict", Message: msg}
}

func newUnsupportedCombination(msg string) error {
	return &RequestError{Code: "unsupported_combination", Message: msg}
}

func newMalformedDate(msg string) error {
	return &RequestError{Code: "malformed_date", Message: msg}
}

func newMalformedInterval(msg string) error {
	return &RequestError{Code: "malformed_interval", Message: msg}
}

func newRangeTooWide(msg string) error {
	return &RequestError{Code: "range_too_wide", Message: msg}
}

// UpstreamError marks an external-store fetch that failed after retries.
// Point queries surface it as a 500; range queries degrade to a per-date
// error marker instead.
type UpstreamError struct {
	Date string
	Err  error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream store unavailable for %s: %v", e.Date, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
