package database

import (
	"context"
	"fmt"

	"github.com/Behyna/sms-services/autoresponder/internal/config"
	"github.com/Behyna/sms-services/autoresponder/internal/model"
	"github.com/Behyna/sms-services/autoresponder/internal/repository"
	"github.com/Behyna/sms-services/autoresponder/pkg/mysql"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// NewMessageRepository connects the journal when it is enabled and falls back
// to a no-op journal otherwise.
func NewMessageRepository(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) (repository.MessageRepository, error) {
	if !cfg.Database.Enable {
		logger.Info("Message journal disabled")
		return repository.NewNoopMessageRepository(), nil
	}

	db, err := mysql.NewConnection(context.Background(), cfg.Database.Config, logger)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.Message{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return repository.NewMessageRepository(db), nil
}
