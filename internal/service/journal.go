package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-services/autoresponder/internal/model"
	"github.com/Behyna/sms-services/autoresponder/internal/repository"
	"go.uber.org/zap"
)

// JournalTimeout bounds a single journal insert so a slow database cannot hold
// a webhook reply past the provider's callback timeout.
const JournalTimeout = 2 * time.Second

// journal writes best effort: a failed insert is logged and never changes the
// reply or the send result.
type journal struct {
	repo   repository.MessageRepository
	logger *zap.Logger
}

func (j journal) record(ctx context.Context, message *model.Message) {
	message.CreatedAt = time.Now().UTC()

	ctx, cancel := context.WithTimeout(ctx, JournalTimeout)
	defer cancel()

	if err := j.repo.Create(ctx, message); err != nil {
		j.logger.Warn("Failed to journal message",
			zap.Error(err),
			zap.String("trackID", message.TrackID),
			zap.String("direction", string(message.Direction)),
			zap.String("address", message.Address))
	}
}

func stringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
