package twilio

import "fmt"

const (
	ErrorCodeServerError   = "SERVER_ERROR"   // 5xx and unexpected statuses
	ErrorCodeTimeout       = "TIMEOUT"        // context deadline or cancellation
	ErrorCodeInvalidNumber = "INVALID_NUMBER" // 400 from the Messages resource
	ErrorCodeUnauthorized  = "UNAUTHORIZED"   // 401/403, bad account SID or token
	ErrorCodeRateLimited   = "RATE_LIMITED"   // 429
	ErrorCodeNetworkError  = "NETWORK_ERROR"  // connection failures
	ErrorCodeNotConfigured = "NOT_CONFIGURED" // credentials missing at startup
)

// Error is returned by Send for every failed dispatch.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func statusToCode(status int) string {
	switch {
	case status == 400:
		return ErrorCodeInvalidNumber
	case status == 401, status == 403:
		return ErrorCodeUnauthorized
	case status == 429:
		return ErrorCodeRateLimited
	default:
		return ErrorCodeServerError
	}
}
