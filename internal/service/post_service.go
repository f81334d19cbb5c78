package service

import (
	"errors"
	"fmt"
	"slices"

	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/pkg"
	"tradeboard/internal/repository/sqldb"
)

// PostService creates posts and assembles the detail view.
type PostService struct {
	users    *sqldb.UserRepository
	anns     *sqldb.AnnouncementRepository
	market   *sqldb.MarketplaceRepository
	services *sqldb.ServiceRepository
	comments *sqldb.CommentRepository
}

type AuthorView struct {
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	PostCount int64  `json:"post_count"`
}

type PostDetailView struct {
	Post     PostView      `json:"post"`
	Author   AuthorView    `json:"author"`
	Comments []CommentView `json:"comments"`
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{
		users:    &sqldb.UserRepository{DB: db},
		anns:     &sqldb.AnnouncementRepository{DB: db},
		market:   &sqldb.MarketplaceRepository{DB: db},
		services: &sqldb.ServiceRepository{DB: db},
		comments: &sqldb.CommentRepository{DB: db},
	}
}

func (s *PostService) CreateAnnouncement(userID uint64, category, title, content string) (*model.Announcement, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if !slices.Contains(model.AnnouncementCategories, category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	a := &model.Announcement{
		Category: category,
		Title:    title,
		Content:  content,
		UserID:   userID,
		Date:     pkg.Timestamp(),
	}
	if err := s.anns.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *PostService) CreateMarketplace(userID uint64, category, title, description, price string) (*model.Marketplace, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if !slices.Contains(model.MarketplaceCategories, category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	m := &model.Marketplace{
		Category:    category,
		Title:       title,
		Description: description,
		UserID:      userID,
		Price:       price,
		Date:        pkg.Timestamp(),
	}
	if err := s.market.Create(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *PostService) CreateService(userID uint64, category, title, description, price string) (*model.Service, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title required", ErrValidation)
	}
	if !slices.Contains(model.ServiceCategories, category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, category)
	}
	sv := &model.Service{
		Category:    category,
		Title:       title,
		Description: description,
		UserID:      userID,
		Price:       price,
		Date:        pkg.Timestamp(),
	}
	if err := s.services.Create(sv); err != nil {
		return nil, err
	}
	return sv, nil
}

// Detail loads one post with its comments (newest first), its author and
// the author's total post count across all three kinds.
func (s *PostService) Detail(kind string, postID uint64) (*PostDetailView, error) {
	var (
		view     PostView
		userID   uint64
		postType string
	)

	switch kind {
	case KindAnnouncements:
		a, err := s.anns.FindByID(postID)
		if err != nil {
			return nil, notFoundOr(err)
		}
		userID, postType = a.UserID, model.PostTypeAnnouncement
		view = PostView{
			ID:       a.ID,
			PostType: kind,
			Category: a.Category,
			Title:    a.Title,
			Content:  a.Content,
			Date:     a.Date,
		}
	case KindMarketplace:
		m, err := s.market.FindByID(postID)
		if err != nil {
			return nil, notFoundOr(err)
		}
		userID, postType = m.UserID, model.PostTypeMarketplace
		view = PostView{
			ID:          m.ID,
			PostType:    kind,
			Category:    m.Category,
			Title:       m.Title,
			Description: m.Description,
			Price:       m.Price,
			Date:        m.Date,
		}
	case KindServices:
		sv, err := s.services.FindByID(postID)
		if err != nil {
			return nil, notFoundOr(err)
		}
		userID, postType = sv.UserID, model.PostTypeService
		view = PostView{
			ID:          sv.ID,
			PostType:    kind,
			Category:    sv.Category,
			Title:       sv.Title,
			Description: sv.Description,
			Price:       sv.Price,
			Date:        sv.Date,
		}
	default:
		return nil, ErrNotFound
	}

	author, err := s.users.FindByID(userID)
	if err != nil {
		return nil, notFoundOr(err)
	}
	view.Username = author.Username

	n, err := s.comments.CountForPost(postType, postID)
	if err != nil {
		return nil, err
	}
	view.Comments = n

	postCount, err := userPostCount(s.anns, s.market, s.services, userID)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentViews(postType, postID)
	if err != nil {
		return nil, err
	}

	return &PostDetailView{
		Post: view,
		Author: AuthorView{
			Username:  author.Username,
			Avatar:    author.Avatar,
			PostCount: postCount,
		},
		Comments: comments,
	}, nil
}

func (s *PostService) commentViews(postType string, postID uint64) ([]CommentView, error) {
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

// userPostCount sums the per-kind counts; used by detail and profile views.
func userPostCount(anns *sqldb.AnnouncementRepository, market *sqldb.MarketplaceRepository, services *sqldb.ServiceRepository, userID uint64) (int64, error) {
	na, err := anns.CountByUser(userID)
	if err != nil {
		return 0, err
	}
	nm, err := market.CountByUser(userID)
	if err != nil {
		return 0, err
	}
	ns, err := services.CountByUser(userID)
	if err != nil {
		return 0, err
	}
	return na + nm + ns, nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
