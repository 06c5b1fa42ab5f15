package constants

const (
	ErrCodeMissingFields = "MISSING_FIELDS"
	ErrCodeProviderError = "PROVIDER_ERROR"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

const (
	ErrMsgMissingFields      = "Phone and message required"
	ErrMsgProviderError      = "failed to send message"
	ErrMsgInternalError      = "Internal server error"
	ErrMsgMissingWebhookData = "Missing data"
)

var errorMessages = map[string]string{
	ErrCodeMissingFields: ErrMsgMissingFields,
	ErrCodeProviderError: ErrMsgProviderError,
	ErrCodeInternalError: ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeMissingFields:
		return 400
	default:
		return 500
	}
}
