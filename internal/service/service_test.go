package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"tradeboard/internal/model"
	"tradeboard/internal/repository/sqldb"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)},
	)
	require.NoError(t, err)
	require.NoError(t, sqldb.AutoMigrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, Password: "irrelevant", Avatar: DefaultAvatar}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createAnnouncement(t *testing.T, db *gorm.DB, userID uint64, category, title, content, date string) *model.Announcement {
	t.Helper()
	a := &model.Announcement{Category: category, Title: title, Content: content, UserID: userID, Date: date}
	require.NoError(t, db.Create(a).Error)
	return a
}

func createMarketplace(t *testing.T, db *gorm.DB, userID uint64, category, title, description, price, date string) *model.Marketplace {
	t.Helper()
	m := &model.Marketplace{Category: category, Title: title, Description: description, UserID: userID, Price: price, Date: date}
	require.NoError(t, db.Create(m).Error)
	return m
}

func createServiceListing(t *testing.T, db *gorm.DB, userID uint64, category, title, description, price, date string) *model.Service {
	t.Helper()
	s := &model.Service{Category: category, Title: title, Description: description, UserID: userID, Price: price, Date: date}
	require.NoError(t, db.Create(s).Error)
	return s
}

func createComment(t *testing.T, db *gorm.DB, userID uint64, postType string, postID uint64, content, date string) *model.Comment {
	t.Helper()
	c := &model.Comment{PostType: postType, PostID: postID, UserID: userID, Content: content, Date: date}
	require.NoError(t, db.Create(c).Error)
	return c
}

// memChallengeStore and memTokenStore stand in for the redis repositories.

type memChallengeStore struct {
	m map[string][]byte
}

func newMemChallengeStore() *memChallengeStore {
	return &memChallengeStore{m: map[string][]byte{}}
}

func (s *memChallengeStore) Put(_ context.Context, id string, rec []byte, _ time.Duration) error {
	s.m[id] = rec
	return nil
}

func (s *memChallengeStore) Take(_ context.Context, id string) ([]byte, bool, error) {
	rec, ok := s.m[id]
	delete(s.m, id)
	return rec, ok, nil
}

type memTokenStore struct {
	m map[uint64]string
}

func newMemTokenStore() *memTokenStore {
	return &memTokenStore{m: map[uint64]string{}}
}

func (s *memTokenStore) AddUserToken(_ context.Context, userID uint64, token string) error {
	s.m[userID] = token
	return nil
}

func (s *memTokenStore) GetUserToken(_ context.Context, userID uint64) (string, error) {
	token, ok := s.m[userID]
	if !ok {
		return "", errors.New("token not found")
	}
	return token, nil
}

func (s *memTokenStore) ExtendUserToken(_ context.Context, _ uint64) error { return nil }

func (s *memTokenStore) DeleteUserToken(_ context.Context, userID uint64) error {
	delete(s.m, userID)
	return nil
}
