package service

import (
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/session"
	"go.uber.org/zap"
)

// Reply is the outcome of Respond. A suppressed reply has no text and must
// not be sent.
type Reply struct {
	Text       string
	Category   Category
	Suppressed bool
}

type ResponderService interface {
	Respond(message, sender string) Reply
}

type responder struct {
	sessions *session.Store
	catalog  *Catalog
	logger   *zap.Logger
	now      func() time.Time
}

func NewResponderService(sessions *session.Store, catalog *Catalog, logger *zap.Logger) ResponderService {
	return &responder{sessions: sessions, catalog: catalog, logger: logger, now: time.Now}
}

func (r *responder) Respond(message, sender string) Reply {
	normalized := Normalize(message)

	if !r.sessions.CheckAndUpdate(sender, r.now()) {
		r.logger.Warn("Duplicate message, ignoring", zap.String("from", sender))
		return Reply{Category: CategoryDuplicate, Suppressed: true}
	}

	category, text := r.catalog.Match(normalized)

	r.logger.Debug("Matched reply category",
		zap.String("from", sender),
		zap.String("category", string(category)))

	return Reply{Text: text, Category: category}
}
