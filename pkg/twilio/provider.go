package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/Behyna/sms-services/autoresponder/pkg/httpclient"
)

const DefaultBaseURL = "https://api.twilio.com"

type Provider interface {
	Send(ctx context.Context, from string, to string, body string) (res Response, err error)
}

type Config struct {
	AccountSID     string        `mapstructure:"account_sid"`
	AuthToken      string        `mapstructure:"auth_token"`
	WhatsAppNumber string        `mapstructure:"whatsapp_number"`
	BaseURL        string        `mapstructure:"base_url"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// Configured reports whether every credential needed to send is present.
func (c Config) Configured() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.WhatsAppNumber != ""
}

type Response struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
	To     string `json:"to"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type TwilioProvider struct {
	cfg    Config
	client httpclient.HTTPClient
}

func NewProvider(cfg Config, client httpclient.HTTPClient) Provider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &TwilioProvider{cfg: cfg, client: client}
}

func (p *TwilioProvider) messagesURL() string {
	return fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json",
		strings.TrimRight(p.cfg.BaseURL, "/"), url.PathEscape(p.cfg.AccountSID))
}

func (p *TwilioProvider) Send(ctx context.Context, from string, to string, body string) (Response, error) {
	if p.cfg.AccountSID == "" || p.cfg.AuthToken == "" {
		return Response{}, &Error{Code: ErrorCodeNotConfigured, Message: "twilio credentials are not configured"}
	}

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	auth := &httpclient.BasicAuth{Username: p.cfg.AccountSID, Password: p.cfg.AuthToken}

	resp, err := p.client.PostForm(ctx, p.messagesURL(), form, auth)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return Response{}, &Error{Code: ErrorCodeTimeout, Message: err.Error()}
		}

		return Response{}, &Error{Code: ErrorCodeNetworkError, Message: err.Error()}
	}

	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, &Error{Code: ErrorCodeNetworkError, Status: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(raw))

		var apiErr apiError
		if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.Message != "" {
			message = fmt.Sprintf("%s (code %d)", apiErr.Message, apiErr.Code)
		}

		return Response{}, &Error{Code: statusToCode(resp.StatusCode), Status: resp.StatusCode, Message: message}
	}

	var res Response
	if err = json.Unmarshal(raw, &res); err != nil || res.SID == "" {
		return Response{}, &Error{Code: ErrorCodeServerError, Status: resp.StatusCode, Message: "unexpected response body"}
	}

	return res, nil
}
