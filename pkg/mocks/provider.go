package mocks

import (
	"context"

	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
}

func (p *Provider) Send(ctx context.Context, from string, to string, body string) (twilio.Response, error) {
	args := p.Called(ctx, from, to, body)
	return args.Get(0).(twilio.Response), args.Error(1)
}
