package model

import "time"

type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "INBOUND"
	MessageDirectionOutbound MessageDirection = "OUTBOUND"
)

type MessageStatus string

const (
	MessageStatusReplied    MessageStatus = "REPLIED"
	MessageStatusSuppressed MessageStatus = "SUPPRESSED"
	MessageStatusSubmitted  MessageStatus = "SUBMITTED"
	MessageStatusFailed     MessageStatus = "FAILED"
)

type Message struct {
	ID            int64            `gorm:"primaryKey;autoIncrement;column:id;<-:create"`
	TrackID       string           `gorm:"column:track_id;size:36;index"`
	Direction     MessageDirection `gorm:"column:direction;size:16"`
	Address       string           `gorm:"column:address;size:64;index"`
	Body          string           `gorm:"column:body"`
	Category      *string          `gorm:"column:category;size:32"`
	Status        MessageStatus    `gorm:"column:status;size:16"`
	ProviderMsgID *string          `gorm:"column:provider_msg_id;size:64"`
	LastError     *string          `gorm:"column:last_error"`
	CreatedAt     time.Time        `gorm:"column:created_at"`
}
