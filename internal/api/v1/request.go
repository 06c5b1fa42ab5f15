package v1

type SendMessageRequest struct {
	Phone   string `json:"phone" validate:"required,address"`
	Message string `json:"message" validate:"required"`
}

// WebhookRequest is filled from the form (or query) values Twilio posts.
type WebhookRequest struct {
	From       string `validate:"required"`
	Body       string `validate:"required"`
	MessageSID string
}
