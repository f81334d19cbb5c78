package sqldb

import (
	"strings"

	"tradeboard/internal/model"

	"gorm.io/gorm"
)

type AnnouncementRepository struct {
	DB *gorm.DB
}

func (r *AnnouncementRepository) Create(a *model.Announcement) error {
	return r.DB.Create(a).Error
}

func (r *AnnouncementRepository) FindByID(id uint64) (*model.Announcement, error) {
	var a model.Announcement
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *AnnouncementRepository) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Announcement{}).Where("category = ?", category).Count(&count).Error
	return count, err
}

// ListByCategory pages newest-first. Date is a fixed-width string, so the
// DESC sort is chronological.
func (r *AnnouncementRepository) ListByCategory(category string, offset, limit int) ([]model.Announcement, error) {
	var list []model.Announcement
	err := r.DB.
		Where("category = ?", category).
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *AnnouncementRepository) CountByUser(userID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Announcement{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// ListByUser keeps insertion order for the profile feed.
func (r *AnnouncementRepository) ListByUser(userID uint64) ([]model.Announcement, error) {
	var list []model.Announcement
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&list).Error
	return list, err
}

// Search is a case-insensitive substring match over title and content.
func (r *AnnouncementRepository) Search(query string) ([]model.Announcement, error) {
	pat := "%" + strings.ToLower(query) + "%"
	var list []model.Announcement
	err := r.DB.
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pat, pat).
		Order("id").
		Find(&list).Error
	return list, err
}
