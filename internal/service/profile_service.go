package service

import (
	"gorm.io/gorm"

	"tradeboard/internal/model"
	"tradeboard/internal/repository/sqldb"
)

// ProfileService aggregates one user's posts across all three kinds. The
// feed is unpaginated and kept in kind-then-insertion order, not re-sorted
// by date.
type ProfileService struct {
	users    *sqldb.UserRepository
	anns     *sqldb.AnnouncementRepository
	market   *sqldb.MarketplaceRepository
	services *sqldb.ServiceRepository
	comments *sqldb.CommentRepository
}

type ProfileView struct {
	Username  string     `json:"username"`
	Avatar    string     `json:"avatar"`
	PostCount int64      `json:"post_count"`
	Posts     []PostView `json:"posts"`
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		users:    &sqldb.UserRepository{DB: db},
		anns:     &sqldb.AnnouncementRepository{DB: db},
		market:   &sqldb.MarketplaceRepository{DB: db},
		services: &sqldb.ServiceRepository{DB: db},
		comments: &sqldb.CommentRepository{DB: db},
	}
}

func (s *ProfileService) Detail(username string) (*ProfileView, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		return nil, notFoundOr(err)
	}

	postCount, err := userPostCount(s.anns, s.market, s.services, user.ID)
	if err != nil {
		return nil, err
	}

	posts := make([]PostView, 0, postCount)

	anns, err := s.anns.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	for _, a := range anns {
		n, err := s.comments.CountForPost(model.PostTypeAnnouncement, a.ID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, PostView{
			ID:       a.ID,
			PostType: KindAnnouncements,
			Category: a.Category,
			Title:    a.Title,
			Content:  a.Content,
			Username: user.Username,
			Date:     a.Date,
			Comments: n,
		})
	}

	market, err := s.market.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range market {
		n, err := s.comments.CountForPost(model.PostTypeMarketplace, m.ID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, PostView{
			ID:          m.ID,
			PostType:    KindMarketplace,
			Category:    m.Category,
			Title:       m.Title,
			Description: m.Description,
			Username:    user.Username,
			Price:       m.Price,
			Date:        m.Date,
			Comments:    n,
		})
	}

	servs, err := s.services.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	for _, sv := range servs {
		n, err := s.comments.CountForPost(model.PostTypeService, sv.ID)
		if err != nil {
			return nil, err
		}
		posts = append(posts, PostView{
			ID:          sv.ID,
			PostType:    KindServices,
			Category:    sv.Category,
			Title:       sv.Title,
			Description: sv.Description,
			Username:    user.Username,
			Price:       sv.Price,
			Date:        sv.Date,
			Comments:    n,
		})
	}

	return &ProfileView{
		Username:  user.Username,
		Avatar:    user.Avatar,
		PostCount: postCount,
		Posts:     posts,
	}, nil
}
