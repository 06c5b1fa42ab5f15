package mocks

import (
	"github.com/Behyna/sms-services/autoresponder/internal/service"
	"github.com/stretchr/testify/mock"
)

type ResponderService struct {
	mock.Mock
}

func (r *ResponderService) Respond(message, sender string) service.Reply {
	args := r.Called(message, sender)
	return args.Get(0).(service.Reply)
}
