package simulator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
)

const (
	sellersInterval = 60 * time.Second
	sellersBatch    = 10
)

var ErrNoUsers = errors.New("no users found in database")

// SellersSimulator writes a batch of ten synthetic Sellers listings every
// minute: 4 neutral, 4 negative, 2 positive. Each batch commits in one
// transaction; a failed commit rolls the whole batch back and stops the
// run. No retries.
type SellersSimulator struct {
	db       *gorm.DB
	producer *pkg.ActivityProducer
	logger   *zap.Logger
}

func NewSellersSimulator(db *gorm.DB, producer *pkg.ActivityProducer, logger *zap.Logger) *SellersSimulator {
	return &SellersSimulator{db: db, producer: producer, logger: logger}
}

func (s *SellersSimulator) Run(ctx context.Context) error {
	s.logger.Info("starting sellers simulator")
	t := time.NewTicker(sellersInterval)
	defer t.Stop()

	for {
		if err := s.runBatch(ctx); err != nil {
			s.logger.Error("sellers batch failed", zap.Error(err))
			return err
		}
		s.logger.Info("added batch of sellers posts",
			zap.Int("count", sellersBatch),
			zap.Duration("next_in", sellersInterval))

		select {
		case <-ctx.Done():
			s.logger.Info("sellers simulator stopped")
			return ctx.Err()
		case <-t.C:
		}
	}
}

func (s *SellersSimulator) runBatch(ctx context.Context) error {
	userRepo := &sqldb.UserRepository{DB: s.db}
	userIDs, err := userRepo.ListIDs()
	if err != nil {
		return err
	}
	if len(userIDs) == 0 {
		return ErrNoUsers
	}

	posts := make([]*model.Marketplace, 0, sellersBatch)
	err = s.db.Transaction(func(tx *gorm.DB) error {
		repo := &sqldb.MarketplaceRepository{DB: tx}
		for i := 0; i < sellersBatch; i++ {
			post := makeSellersPost(i, userIDs)
			if err := repo.Create(post); err != nil {
				return err
			}
			posts = append(posts, post)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, p := range posts {
		ev := pkg.ActivityEvent{
			Kind:     "marketplace",
			Category: p.Category,
			Title:    p.Title,
			UserID:   p.UserID,
			Date:     p.Date,
		}
		if err := s.producer.Publish(ctx, ev); err != nil {
			s.logger.Warn("publish activity event", zap.Error(err))
		}
		s.logger.Info("added sellers post",
			zap.String("title", truncate(p.Title, 30)),
			zap.Uint64("user_id", p.UserID))
	}
	return nil
}

// makeSellersPost keeps the 4/4/2 neutral/negative/positive mix per batch.
func makeSellersPost(i int, userIDs []uint64) *model.Marketplace {
	var title, description, price string
	switch {
	case i < 4:
		title, description, price = paraphrasePost(neutralTemplates[rand.Intn(len(neutralTemplates))], neutralReplacements)
	case i < 8:
		title, description, price = paraphrasePost(negativeTemplates[rand.Intn(len(negativeTemplates))], negativeReplacements)
	default:
		title, description, price = paraphrasePost(positiveTemplates[rand.Intn(len(positiveTemplates))], positiveReplacements)
	}

	return &model.Marketplace{
		Category:    model.CategorySellers,
		Title:       title,
		Description: description,
		UserID:      userIDs[rand.Intn(len(userIDs))],
		Price:       price,
		Date:        pkg.Timestamp(),
	}
}
