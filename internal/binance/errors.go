package binance

import (
	"errors"
	"fmt"
)

// ErrMissingCredentials is returned by NewClient before any network call
// is made. It is a configuration error, distinct from APIError and
// NetworkError.
var ErrMissingCredentials = errors.New("api key and secret must not be empty")

// APIError is a first-class error returned by the exchange: either a
// permanent rejection (4xx with an error envelope) or a transient
// 429/5xx that survived every retry, in which case Attempts carries the
// number of attempts made.
type APIError struct {
	Code     int    `json:"code"`
	Msg      string `json:"msg"`
	Attempts int    `json:"-"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("binance api error %d: %s", e.Code, e.Msg)
}

// populated reports whether the decoded body actually held an error
// envelope rather than an unrelated payload.
func (e *APIError) populated() bool {
	return e.Code != 0 && e.Msg != ""
}

// NetworkError is a transport-level failure (timeout, DNS, reset)
// surfaced after retries are exhausted.
type NetworkError struct {
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure after %d attempt(s): %v", e.Attempts, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// transientStatus reports whether an HTTP status is worth retrying.
func transientStatus(code int) bool {
	return code == 429 || code >= 500
}
