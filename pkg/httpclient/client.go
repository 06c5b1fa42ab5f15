package httpclient

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var _ HTTPClient = (*httpClient)(nil)

type HTTPClient interface {
	PostForm(ctx context.Context, url string, form url.Values, auth *BasicAuth) (*http.Response, error)
}

// BasicAuth is attached to a request as an Authorization header.
type BasicAuth struct {
	Username string
	Password string
}

type httpClient struct {
	client *http.Client
}

func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &httpClient{client: &http.Client{Timeout: timeout}}
}

func (c *httpClient) PostForm(ctx context.Context, url string, form url.Values, auth *BasicAuth) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	if auth != nil {
		req.SetBasicAuth(auth.Username, auth.Password)
	}
	return c.client.Do(req)
}
