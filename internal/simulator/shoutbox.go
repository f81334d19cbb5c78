package simulator

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
)

const shoutInterval = 5 * time.Second

// ShoutboxSimulator drops one synthetic shout every few seconds. A failed
// insert stops the run; single-row commits need no batching.
type ShoutboxSimulator struct {
	db       *gorm.DB
	producer *pkg.ActivityProducer
	logger   *zap.Logger
}

func NewShoutboxSimulator(db *gorm.DB, producer *pkg.ActivityProducer, logger *zap.Logger) *ShoutboxSimulator {
	return &ShoutboxSimulator{db: db, producer: producer, logger: logger}
}

func (s *ShoutboxSimulator) Run(ctx context.Context) error {
	s.logger.Info("starting shoutbox simulator")
	t := time.NewTicker(shoutInterval)
	defer t.Stop()

	for {
		if err := s.addShout(ctx); err != nil {
			s.logger.Error("shout insert failed", zap.Error(err))
			return err
		}

		select {
		case <-ctx.Done():
			s.logger.Info("shoutbox simulator stopped")
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (s *ShoutboxSimulator) addShout(ctx context.Context) error {
	userRepo := &sqldb.UserRepository{DB: s.db}
	userIDs, err := userRepo.ListIDs()
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return ErrNoUsers
	}

	shout := &model.Shout{
		UserID:    userIDs[rand.Intn(len(userIDs))],
		Message:   truncate(generateText(shoutTemplates[rand.Intn(len(shoutTemplates))], shoutReplacements), model.MaxShoutLen),
		Timestamp: pkg.Timestamp(),
	}

	repo := &sqldb.ShoutRepository{DB: s.db}
	if err := repo.Create(shout); err != nil {
		return err
	}

	ev := pkg.ActivityEvent{
		Kind:    "shout",
		Message: shout.Message,
		UserID:  shout.UserID,
		Date:    shout.Timestamp,
	}
	if err := s.producer.Publish(ctx, ev); err != nil {
		s.logger.Warn("publish activity event", zap.Error(err))
	}

	s.logger.Info("added shout",
		zap.Uint64("user_id", shout.UserID),
		zap.String("message", truncate(shout.Message, 30)))
	return nil
}
