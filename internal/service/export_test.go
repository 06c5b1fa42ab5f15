package service

import (
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/session"
	"go.uber.org/zap"
)

func NewResponderServiceWithClock(sessions *session.Store, catalog *Catalog, logger *zap.Logger,
	now func() time.Time) ResponderService {
	return &responder{sessions: sessions, catalog: catalog, logger: logger, now: now}
}
