package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
)

const (
	seedShouts           = 20
	seedPostsPerCategory = 13
	seedCommentsPerPost  = 2
)

var seedUsers = []struct {
	Username string
	Password string
	Avatar   string
}{
	{"NightTrader", "pass123", "nighttrader.jpg"},
	{"SignalGhost", "ghost456", "signalghost.jpg"},
	{"VoltRunner", "volt789", "voltrunner.jpg"},
	{"AnonCollector", "anon101", "anoncollector.jpg"},
	{"N3tPacker", "packer202", "netpacker.jpg"},
	{"Crypt0Wren", "wren303", "cryptowren.jpg"},
	{"ZeroStock", "zero404", "zerostock.jpg"},
	{"DealSavvy", "savvy505", "dealsavvy.jpg"},
	{"RigRider", "rider606", "rigrider.jpg"},
	{"DataMagpie", "magpie707", "datamagpie.jpg"},
}

// Seeder rebuilds the database with demo data: ten users, 13 posts per
// category, two comments per post and a short shoutbox backlog. Every
// entity group commits in its own transaction; a failed commit rolls that
// group back and stops the run.
type Seeder struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewSeeder(db *gorm.DB, logger *zap.Logger) *Seeder {
	return &Seeder{db: db, logger: logger}
}

func (s *Seeder) Run() error {
	s.logger.Info("starting database initialization")

	if err := s.db.Migrator().DropTable(
		&model.User{}, &model.Announcement{}, &model.Marketplace{},
		&model.Service{}, &model.Comment{}, &model.Shout{},
	); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := sqldb.AutoMigrate(s.db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	s.logger.Info("recreated tables")

	userIDs, err := s.seedUsers()
	if err != nil {
		return err
	}
	s.logger.Info("committed users", zap.Int("count", len(userIDs)))

	if err := s.seedAnnouncements(userIDs); err != nil {
		return err
	}
	if err := s.seedMarketplace(userIDs); err != nil {
		return err
	}
	if err := s.seedServices(userIDs); err != nil {
		return err
	}
	if err := s.seedComments(userIDs); err != nil {
		return err
	}
	if err := s.seedShouts(userIDs); err != nil {
		return err
	}

	s.logger.Info("database initialization complete")
	return nil
}

func (s *Seeder) seedUsers() ([]uint64, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := &sqldb.UserRepository{DB: tx}
		for _, u := range seedUsers {
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			if err := repo.Create(&model.User{
				Username: u.Username,
				Password: string(hash),
				Avatar:   u.Avatar,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("commit users: %w", err)
	}

	repo := &sqldb.UserRepository{DB: s.db}
	return repo.ListIDs()
}

func (s *Seeder) seedAnnouncements(userIDs []uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := &sqldb.AnnouncementRepository{DB: tx}
		for _, category := range model.AnnouncementCategories {
			for i := 0; i < seedPostsPerCategory; i++ {
				titles := announcementTemplates["title"]
				contents := announcementTemplates["content"]
				if err := repo.Create(&model.Announcement{
					Category: category,
					Title:    truncate(generateText(titles[rand.Intn(len(titles))], announcementReplacements), 100),
					Content:  generateText(contents[rand.Intn(len(contents))], announcementReplacements),
					UserID:   userIDs[rand.Intn(len(userIDs))],
					Date:     randomTimestamp(),
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit announcements: %w", err)
	}
	s.logger.Info("committed announcements", zap.Int("per_category", seedPostsPerCategory))
	return nil
}

func (s *Seeder) seedMarketplace(userIDs []uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := &sqldb.MarketplaceRepository{DB: tx}
		for _, category := range model.MarketplaceCategories {
			for i := 0; i < seedPostsPerCategory; i++ {
				title, description, price := listingContent(category == model.CategoryBuyers)
				if err := repo.Create(&model.Marketplace{
					Category:    category,
					Title:       title,
					Description: description,
					UserID:      userIDs[rand.Intn(len(userIDs))],
					Price:       price,
					Date:        randomTimestamp(),
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit marketplace: %w", err)
	}
	s.logger.Info("committed marketplace posts", zap.Int("per_category", seedPostsPerCategory))
	return nil
}

func (s *Seeder) seedServices(userIDs []uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := &sqldb.ServiceRepository{DB: tx}
		for _, category := range model.ServiceCategories {
			for i := 0; i < seedPostsPerCategory; i++ {
				title, description, price := listingContent(category == model.CategoryBuy)
				if err := repo.Create(&model.Service{
					Category:    category,
					Title:       title,
					Description: description,
					UserID:      userIDs[rand.Intn(len(userIDs))],
					Price:       price,
					Date:        randomTimestamp(),
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit services: %w", err)
	}
	s.logger.Info("committed service posts", zap.Int("per_category", seedPostsPerCategory))
	return nil
}

// seedComments attaches comments to every post of every kind, owners drawn
// at random.
func (s *Seeder) seedComments(userIDs []uint64) error {
	type target struct {
		postType string
		id       uint64
	}
	var targets []target

	var annIDs, marketIDs, serviceIDs []uint64
	if err := s.db.Model(&model.Announcement{}).Pluck("id", &annIDs).Error; err != nil {
		return err
	}
	if err := s.db.Model(&model.Marketplace{}).Pluck("id", &marketIDs).Error; err != nil {
		return err
	}
	if err := s.db.Model(&model.Service{}).Pluck("id", &serviceIDs).Error; err != nil {
		return err
	}
	for _, id := range annIDs {
		targets = append(targets, target{model.PostTypeAnnouncement, id})
	}
	for _, id := range marketIDs {
		targets = append(targets, target{model.PostTypeMarketplace, id})
	}
	for _, id := range serviceIDs {
		targets = append(targets, target{model.PostTypeService, id})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := &sqldb.CommentRepository{DB: tx}
		for _, t := range targets {
			for i := 0; i < seedCommentsPerPost; i++ {
				if err := repo.Create(&model.Comment{
					PostType: t.postType,
					PostID:   t.id,
					UserID:   userIDs[rand.Intn(len(userIDs))],
					Content:  generateText(commentTemplates[rand.Intn(len(commentTemplates))], neutralReplacements),
					Date:     randomTimestamp(),
				}); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit comments: %w", err)
	}
	s.logger.Info("committed comments", zap.Int("per_post", seedCommentsPerPost))
	return nil
}

func (s *Seeder) seedShouts(userIDs []uint64) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		repo := &sqldb.ShoutRepository{DB: tx}
		for i := 0; i < seedShouts; i++ {
			if err := repo.Create(&model.Shout{
				UserID:    userIDs[rand.Intn(len(userIDs))],
				Message:   truncate(generateText(shoutTemplates[rand.Intn(len(shoutTemplates))], shoutReplacements), model.MaxShoutLen),
				Timestamp: randomTimestamp(),
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("commit shouts: %w", err)
	}
	s.logger.Info("committed shouts", zap.Int("count", seedShouts))
	return nil
}

func listingContent(wanted bool) (title, description, price string) {
	if wanted {
		return paraphrasePost(neutralTemplates[rand.Intn(len(neutralTemplates))], neutralReplacements)
	}
	return paraphrasePost(positiveTemplates[rand.Intn(len(positiveTemplates))], positiveReplacements)
}

// randomTimestamp spreads seed data over the last 30 days.
func randomTimestamp() string {
	offset := time.Duration(rand.Int63n(int64(30 * 24 * time.Hour)))
	return time.Now().Add(-offset).Format(pkg.DateLayout)
}
