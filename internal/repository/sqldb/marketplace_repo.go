package sqldb

import (
	"strings"

	"tradeboard/internal/model"

	"gorm.io/gorm"
)

type MarketplaceRepository struct {
	DB *gorm.DB
}

func (r *MarketplaceRepository) Create(m *model.Marketplace) error {
	return r.DB.Create(m).Error
}

func (r *MarketplaceRepository) FindByID(id uint64) (*model.Marketplace, error) {
	var m model.Marketplace
	err := r.DB.First(&m, id).Error
	return &m, err
}

func (r *MarketplaceRepository) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Marketplace{}).Where("category = ?", category).Count(&count).Error
	return count, err
}

func (r *MarketplaceRepository) ListByCategory(category string, offset, limit int) ([]model.Marketplace, error) {
	var list []model.Marketplace
	err := r.DB.
		Where("category = ?", category).
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *MarketplaceRepository) CountByUser(userID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Marketplace{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *MarketplaceRepository) ListByUser(userID uint64) ([]model.Marketplace, error) {
	var list []model.Marketplace
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&list).Error
	return list, err
}

func (r *MarketplaceRepository) Search(query string) ([]model.Marketplace, error) {
	pat := "%" + strings.ToLower(query) + "%"
	var list []model.Marketplace
	err := r.DB.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pat, pat).
		Order("id").
		Find(&list).Error
	return list, err
}
