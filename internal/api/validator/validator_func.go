package validator

import (
	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	"github.com/go-playground/validator/v10"
)

const (
	AddressTag = "address"
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	AddressTag: ValidateAddress,
}

// ValidateAddress accepts any value that is still non-empty once the
// whatsapp: scheme is removed. Number format is left to the provider.
func ValidateAddress(fl validator.FieldLevel) bool {
	return twilio.StripScheme(fl.Field().String()) != ""
}
