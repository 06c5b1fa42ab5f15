package twilio

import "strings"

// WhatsAppScheme prefixes every WhatsApp address on the Twilio API.
const WhatsAppScheme = "whatsapp:"

// StripScheme returns the bare address, e.g. "whatsapp:+15551234567" -> "+15551234567".
func StripScheme(address string) string {
	return strings.TrimPrefix(strings.TrimSpace(address), WhatsAppScheme)
}

// WithScheme is the inverse of StripScheme. Already prefixed addresses are returned unchanged.
func WithScheme(address string) string {
	address = strings.TrimSpace(address)
	if address == "" || strings.HasPrefix(address, WhatsAppScheme) {
		return address
	}
	return WhatsAppScheme + address
}
