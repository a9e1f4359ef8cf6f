package payment

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// UpstreamError is returned when a call to the payment processor fails,
// either in transport (StatusCode is 0) or with a non-2xx response.
type UpstreamError struct {
	Op         string
	StatusCode int
	Body       []byte
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: upstream returned status %d: %s", e.Op, e.StatusCode, e.cause())
	}
	return fmt.Sprintf("%s: %s", e.Op, e.cause())
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func (e *UpstreamError) cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if len(e.Body) > 0 {
		return string(e.Body)
	}
	return http.StatusText(e.StatusCode)
}

// Details returns what callers see under "details": the upstream JSON body,
// the raw body text if it is not JSON, or the error message when the
// processor sent nothing back.
func (e *UpstreamError) Details() interface{} {
	if len(e.Body) > 0 {
		if json.Valid(e.Body) {
			return json.RawMessage(e.Body)
		}
		return string(e.Body)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.StatusCode)
}
