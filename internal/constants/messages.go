package constants

const (
	ServiceName    = "WhatsApp Business Bot 🚀"
	WebhookReady   = "WhatsApp Webhook Ready"
	StatusActive   = "active"
	StatusHealthy  = "healthy"
	WebhookHint    = "Use /webhook for WhatsApp messages"
	TestHint       = "Send 'hello' to your Twilio WhatsApp number"
	ChallengeParam = "hub.challenge"
)

// Endpoint names used in logs and metrics labels.
const (
	EndpointRoot    = "root"
	EndpointWebhook = "webhook"
)

const (
	PathRoot    = "/"
	PathWebhook = "/webhook"
	PathSend    = "/api/send"
	PathHealth  = "/health"
	PathMetrics = "/metrics"
)

// Form fields of a Twilio messaging webhook.
const (
	FormFieldFrom = "From"
	FormFieldBody = "Body"
	FormFieldSID  = "MessageSid"
)
