package sponsorblock

import (
	"errors"
	"fmt"
	"net/http"

	httpclient "sponsorblock/http"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, sponsorblock.ErrNoMatchingVideoHash) {
//		fmt.Println("No video in the response matched the requested ID")
//	}
//
// Using errors.As() for typed errors:
//
//	var httpErr *sponsorblock.HTTPError
//	if errors.As(err, &httpErr) {
//		fmt.Printf("Server answered %d\n", httpErr.StatusCode)
//	}

// HTTPError is re-exported from the transport package. A 404 carries domain
// meaning: no segments exist for the requested video. Use IsNotFound to
// detect it.
type HTTPError = httpclient.HTTPError

// ErrNoMatchingVideoHash indicates a private search returned hash buckets
// but none of them belonged to the requested video. A matching bucket with
// zero segments is not this error; it is an empty result.
var ErrNoMatchingVideoHash = errors.New("sponsorblock: no video in response matched the requested video ID")

// BadDataError indicates the server returned a segment that failed range
// validation or used an unrecognized category or action-type string. A
// single bad segment aborts the whole fetch rather than being dropped, so
// server-side data corruption is never masked.
type BadDataError struct {
	// Reason describes the failed check, including the offending values.
	Reason string
}

// Error returns a string representation of the bad-data error.
func (e *BadDataError) Error() string {
	return fmt.Sprintf("sponsorblock: bad data in response: %s", e.Reason)
}

// DeserializationError indicates the response body did not match the
// expected JSON shape.
type DeserializationError struct {
	Err error
}

// Error returns a string representation of the deserialization error.
func (e *DeserializationError) Error() string {
	return fmt.Sprintf("sponsorblock: malformed response: %v", e.Err)
}

// Unwrap returns the underlying decode error.
func (e *DeserializationError) Unwrap() error {
	return e.Err
}

// errorKind buckets an error for the fetch_errors_total metric label.
func errorKind(err error) string {
	var (
		httpErr     *HTTPError
		badDataErr  *BadDataError
		deserialErr *DeserializationError
	)
	switch {
	case errors.Is(err, ErrNoMatchingVideoHash):
		return "no_matching_video_hash"
	case errors.As(err, &badDataErr):
		return "bad_data"
	case errors.As(err, &deserialErr):
		return "deserialization"
	case errors.As(err, &httpErr):
		return "http"
	default:
		return "transport"
	}
}

// IsNotFound reports whether err is an HTTP 404 from the segment service,
// meaning no segments exist for the requested video. Callers typically treat
// this as an empty result rather than a failure.
func IsNotFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound
}
