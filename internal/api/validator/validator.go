package validator

import (
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Error struct {
	Error       bool
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	// Validator parses the request body into data and validates it. A body
	// that cannot be parsed leaves data zero valued, so it fails on required
	// fields like an empty one.
	Validator(data any, endpoint string, c *fiber.Ctx) []Error
	Validate(data interface{}) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(validator *validator.Validate, metrics *metrics.Metrics) IXValidator {
	for key, function := range valid {
		_ = validator.RegisterValidation(key, function)
	}

	return &XValidator{
		validator: validator,
		metrics:   metrics,
	}
}

func (x XValidator) Validator(data any, endpoint string, c *fiber.Ctx) []Error {
	start := time.Now()

	_ = c.BodyParser(data)

	errs := x.Validate(data)
	if x.metrics != nil {
		for _, err := range errs {
			x.metrics.RecordValidationError(err.FailedField, err.Tag)
		}
		x.metrics.RecordValidationDuration(endpoint, time.Since(start))
	}

	return errs
}

func (x XValidator) Validate(data interface{}) []Error {
	var validationErrors []Error

	errs := x.validator.Struct(data)
	if errs != nil {
		validationErrs, ok := errs.(validator.ValidationErrors)
		if !ok {
			return []Error{{Error: true, Tag: "invalid"}}
		}

		for _, err := range validationErrs {
			var elem Error
			elem.FailedField = err.Field()
			elem.Tag = err.Tag()
			elem.Value = err.Value()
			elem.Error = true
			validationErrors = append(validationErrors, elem)
		}
	}
	return validationErrors
}
