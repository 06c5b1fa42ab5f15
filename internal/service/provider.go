package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/config"
	"github.com/Behyna/sms-services/autoresponder/pkg/twilio"
	"go.uber.org/zap"
)

const defaultProviderTimeout = 10 * time.Second

type ProviderService interface {
	Send(ctx context.Context, to, text string) (twilio.Response, error)
}

type Provider struct {
	provider twilio.Provider
	logger   *zap.Logger
	config   twilio.Config
}

func NewProviderService(provider twilio.Provider, logger *zap.Logger, config *config.Config) ProviderService {
	return &Provider{provider: provider, logger: logger, config: config.Twilio}
}

// Send makes a single attempt bounded by the configured timeout. Both
// addresses get the whatsapp: scheme.
func (p *Provider) Send(ctx context.Context, to, text string) (twilio.Response, error) {
	timeout := p.config.Timeout
	if timeout <= 0 {
		timeout = defaultProviderTimeout
	}

	from := twilio.WithScheme(p.config.WhatsAppNumber)
	to = twilio.WithScheme(to)

	p.logger.Debug("Sending WhatsApp message",
		zap.String("to", to),
		zap.String("from", from),
		zap.Duration("timeout", timeout))

	providerCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	response, err := p.provider.Send(providerCtx, from, to, text)
	if err != nil {
		p.logger.Warn("WhatsApp send failed",
			zap.Error(err),
			zap.String("to", to),
			zap.Duration("duration", time.Since(start)))
		return twilio.Response{}, err
	}

	p.logger.Info("WhatsApp message sent",
		zap.String("sid", response.SID),
		zap.String("status", response.Status),
		zap.String("to", to),
		zap.Duration("duration", time.Since(start)))

	return response, nil
}
