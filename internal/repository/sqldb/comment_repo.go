package sqldb

import (
	"tradeboard/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(c *model.Comment) error {
	return r.DB.Create(c).Error
}

// CountForPost counts without materializing rows. The (post_type, post_id)
// pair is not checked against the referenced table.
func (r *CommentRepository) CountForPost(postType string, postID uint64) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Comment{}).
		Where("post_type = ? AND post_id = ?", postType, postID).
		Count(&count).Error
	return count, err
}

func (r *CommentRepository) ListForPost(postType string, postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.
		Where("post_type = ? AND post_id = ?", postType, postID).
		Order("date DESC").
		Find(&list).Error
	return list, err
}
