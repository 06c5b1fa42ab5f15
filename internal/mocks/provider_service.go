package mocks

import (
	"context"

	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	"github.com/stretchr/testify/mock"
)

type ProviderService struct {
	mock.Mock
}

func (p *ProviderService) Send(ctx context.Context, to, text string) (twilio.Response, error) {
	args := p.Called(ctx, to, text)
	return args.Get(0).(twilio.Response), args.Error(1)
}
