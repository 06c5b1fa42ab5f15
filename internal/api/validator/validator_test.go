package validator_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Behyna/sms-services/autoresponder/internal/api/validator"
	"github.com/Behyna/sms-services/autoresponder/internal/metrics"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sendRequest struct {
	Phone   string `json:"phone" validate:"required,address"`
	Message string `json:"message" validate:"required"`
}

func TestXValidator_Validate(t *testing.T) {
	x := validator.NewXValidator(playground.New(), nil)

	tests := []struct {
		name   string
		input  sendRequest
		failed []string
	}{
		{"valid", sendRequest{Phone: "+15551234567", Message: "hi"}, nil},
		{"missing phone", sendRequest{Message: "hi"}, []string{"Phone"}},
		{"scheme only phone", sendRequest{Phone: "whatsapp:", Message: "hi"}, []string{"Phone"}},
		{"whitespace message is present", sendRequest{Phone: "+15551234567", Message: "  "}, nil},
		{"both missing", sendRequest{}, []string{"Phone", "Message"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := x.Validate(tt.input)

			var failed []string
			for _, err := range errs {
				assert.True(t, err.Error)
				failed = append(failed, err.FailedField)
			}
			assert.Equal(t, tt.failed, failed)
		})
	}
}

func TestXValidator_Validator(t *testing.T) {
	m := metrics.NewMetrics(metrics.NewRegistry())
	x := validator.NewXValidator(playground.New(), m)

	run := func(t *testing.T, contentType, body string) []validator.Error {
		var errs []validator.Error
		app := fiber.New()
		app.Post("/", func(c *fiber.Ctx) error {
			var request sendRequest
			errs = x.Validator(&request, "send", c)
			return c.SendStatus(fiber.StatusNoContent)
		})

		req := httptest.NewRequest("POST", "/", strings.NewReader(body))
		req.Header.Set("Content-Type", contentType)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		return errs
	}

	t.Run("parses and validates json", func(t *testing.T) {
		errs := run(t, fiber.MIMEApplicationJSON, `{"phone":"+15551234567","message":"hi"}`)
		assert.Empty(t, errs)
	})

	t.Run("unparsable body fails like empty one", func(t *testing.T) {
		errs := run(t, fiber.MIMEApplicationJSON, `{not json`)
		assert.Len(t, errs, 2)
	})

	t.Run("records validation errors", func(t *testing.T) {
		run(t, fiber.MIMEApplicationJSON, `{"phone":"+15551234567"}`)
		assert.GreaterOrEqual(t, testutil.ToFloat64(m.ValidationErrors.WithLabelValues("Message", "required")), float64(1))
	})
}
