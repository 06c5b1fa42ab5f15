package mocks

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Behyna/sms-services/autoresponder/pkg/httpclient"
	"github.com/stretchr/testify/mock"
)

type HTTPClient struct {
	mock.Mock
}

func (_m *HTTPClient) PostForm(ctx context.Context, url string, form url.Values, auth *httpclient.BasicAuth) (*http.Response, error) {
	ret := _m.Called(ctx, url, form, auth)
	resp, _ := ret.Get(0).(*http.Response)
	return resp, ret.Error(1)
}
