package repository

import (
	"context"

	"github.com/Behyna/sms-services/autoresponder/internal/model"
	"gorm.io/gorm"
)

// MessageRepository is the append-only journal of inbound and outbound messages.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
}

type Message struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &Message{db: db}
}

func (m *Message) Create(ctx context.Context, message *model.Message) error {
	return m.db.WithContext(ctx).Create(message).Error
}

// noopMessage is used when the journal database is disabled.
type noopMessage struct{}

func NewNoopMessageRepository() MessageRepository {
	return noopMessage{}
}

func (noopMessage) Create(context.Context, *model.Message) error {
	return nil
}
