package service

import (
	"fmt"
	"slices"

	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
)

type CommentService struct {
	comments *sqldb.CommentRepository
	users    *sqldb.UserRepository
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{
		comments: &sqldb.CommentRepository{DB: db},
		users:    &sqldb.UserRepository{DB: db},
	}
}

// Add validates the post_type tag but deliberately not the target's
// existence: a dangling (post_type, post_id) is legal data that simply
// never surfaces in a detail view.
func (s *CommentService) Add(userID uint64, postType string, postID uint64, content string) (*model.Comment, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: content required", ErrValidation)
	}
	if !slices.Contains(model.CommentPostTypes, postType) {
		return nil, fmt.Errorf("%w: unknown post type %q", ErrValidation, postType)
	}
	c := &model.Comment{
		PostType: postType,
		PostID:   postID,
		UserID:   userID,
		Content:  content,
		Date:     pkg.Timestamp(),
	}
	if err := s.comments.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CommentService) CountFor(postType string, postID uint64) (int64, error) {
	return s.comments.CountForPost(postType, postID)
}

func (s *CommentService) ListFor(postType string, postID uint64) ([]CommentView, error) {
	list, err := s.comments.ListForPost(postType, postID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.UserID)
	}
	names, err := s.users.UsernamesByID(ids)
	if err != nil {
		return nil, err
	}

	views := make([]CommentView, 0, len(list))
	for _, c := range list {
		views = append(views, CommentView{
			ID:       c.ID,
			Username: names[c.UserID],
			Content:  c.Content,
			Date:     c.Date,
		})
	}
	return views, nil
}
