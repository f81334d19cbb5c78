package sqldb

import (
	"strings"

	"tradeboard/internal/model"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	DB *gorm.DB
}

func (r *ServiceRepository) Create(s *model.Service) error {
	return r.DB.Create(s).Error
}

func (r *ServiceRepository) FindByID(id uint64) (*model.Service, error) {
	var s model.Service
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *ServiceRepository) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Service{}).Where("category = ?", category).Count(&count).Error
	return count, err
}

func (r *ServiceRepository) ListByCategory(category string, offset, limit int) ([]model.Service, error) {
	var list []model.Service
	err := r.DB.
		Where("category = ?", category).
		Order("date DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *ServiceRepository) CountByUser(userID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Service{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ServiceRepository) ListByUser(userID uint64) ([]model.Service, error) {
	var list []model.Service
	err := r.DB.Where("user_id = ?", userID).Order("id").Find(&list).Error
	return list, err
}

func (r *ServiceRepository) Search(query string) ([]model.Service, error) {
	pat := "%" + strings.ToLower(query) + "%"
	var list []model.Service
	err := r.DB.
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pat, pat).
		Order("id").
		Find(&list).Error
	return list, err
}
