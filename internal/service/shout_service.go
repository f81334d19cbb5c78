package service

import (
	"fmt"
	"unicode/utf8"

	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
)

const DefaultShoutLimit = 20

type ShoutService struct {
	shouts *sqldb.ShoutRepository
	users  *sqldb.UserRepository
}

func NewShoutService(db *gorm.DB) *ShoutService {
	return &ShoutService{
		shouts: &sqldb.ShoutRepository{DB: db},
		users:  &sqldb.UserRepository{DB: db},
	}
}

// Add truncates over-long messages instead of rejecting them. The limit
// counts characters, not bytes, so multi-byte input is never split mid-rune.
func (s *ShoutService) Add(userID uint64, message string) (*model.Shout, error) {
	if message == "" {
		return nil, fmt.Errorf("%w: message required", ErrValidation)
	}
	if utf8.RuneCountInString(message) > model.MaxShoutLen {
		message = string([]rune(message)[:model.MaxShoutLen])
	}
	sh := &model.Shout{
		UserID:    userID,
		Message:   message,
		Timestamp: pkg.Timestamp(),
	}
	if err := s.shouts.Create(sh); err != nil {
		return nil, err
	}
	return sh, nil
}

func (s *ShoutService) Recent(limit int) ([]ShoutView, error) {
	if limit <= 0 || limit > 100 {
		limit = DefaultShoutLimit
	}
	list, err := s.shouts.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(list))
	for _, sh := range list {
		ids = append(ids, sh.UserID)
	}
	names, err := s.users.UsernamesByID(ids)
	if err != nil {
		return nil, err
	}

	views := make([]ShoutView, 0, len(list))
	for _, sh := range list {
		views = append(views, ShoutView{
			ID:        sh.ID,
			Username:  names[sh.UserID],
			Message:   sh.Message,
			Timestamp: sh.Timestamp,
		})
	}
	return views, nil
}
