package sqldb

import (
	"tradeboard/internal/model"

	"gorm.io/gorm"
)

type ShoutRepository struct {
	DB *gorm.DB
}

func (r *ShoutRepository) Create(s *model.Shout) error {
	return r.DB.Create(s).Error
}

func (r *ShoutRepository) ListRecent(limit int) ([]model.Shout, error) {
	var list []model.Shout
	err := r.DB.Order("timestamp DESC").Limit(limit).Find(&list).Error
	return list, err
}
