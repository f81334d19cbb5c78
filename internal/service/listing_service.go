package service

import (
	"tradeboard/internal/model"
	"tradeboard/internal/repository/sqldb"

	"gorm.io/gorm"
)

// ListingService answers the category pages, the per-kind category counts
// and free-text search.
type ListingService struct {
	users    *sqldb.UserRepository
	anns     *sqldb.AnnouncementRepository
	market   *sqldb.MarketplaceRepository
	services *sqldb.ServiceRepository
	comments *sqldb.CommentRepository
}

func NewListingService(db *gorm.DB) *ListingService {
	return &ListingService{
		users:    &sqldb.UserRepository{DB: db},
		anns:     &sqldb.AnnouncementRepository{DB: db},
		market:   &sqldb.MarketplaceRepository{DB: db},
		services: &sqldb.ServiceRepository{DB: db},
		comments: &sqldb.CommentRepository{DB: db},
	}
}

// CategoryCounts reports per-category totals for one kind.
func (s *ListingService) CategoryCounts(kind string) (map[string]int64, error) {
	counts := map[string]int64{}
	switch kind {
	case KindAnnouncements:
		for _, cat := range model.AnnouncementCategories {
			n, err := s.anns.CountByCategory(cat)
			if err != nil {
				return nil, err
			}
			counts[cat] = n
		}
	case KindMarketplace:
		for _, cat := range model.MarketplaceCategories {
			n, err := s.market.CountByCategory(cat)
			if err != nil {
				return nil, err
			}
			counts[cat] = n
		}
	case KindServices:
		for _, cat := range model.ServiceCategories {
			n, err := s.services.CountByCategory(cat)
			if err != nil {
				return nil, err
			}
			counts[cat] = n
		}
	default:
		return nil, ErrNotFound
	}
	return counts, nil
}

// Category returns one page (size 10, newest first) plus the total page
// count for the filtered set. Pages past the end come back empty, not as
// an error. Unknown kinds are a NotFound.
func (s *ListingService) Category(kind, category string, page int) ([]PostView, int, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PageSize

	switch kind {
	case KindAnnouncements:
		count, err := s.anns.CountByCategory(category)
		if err != nil {
			return nil, 0, err
		}
		list, err := s.anns.ListByCategory(category, offset, PageSize)
		if err != nil {
			return nil, 0, err
		}
		views, err := s.announcementViews(list)
		return views, totalPages(count), err

	case KindMarketplace:
		count, err := s.market.CountByCategory(category)
		if err != nil {
			return nil, 0, err
		}
		list, err := s.market.ListByCategory(category, offset, PageSize)
		if err != nil {
			return nil, 0, err
		}
		views, err := s.marketplaceViews(list)
		return views, totalPages(count), err

	case KindServices:
		count, err := s.services.CountByCategory(category)
		if err != nil {
			return nil, 0, err
		}
		list, err := s.services.ListByCategory(category, offset, PageSize)
		if err != nil {
			return nil, 0, err
		}
		views, err := s.serviceViews(list)
		return views, totalPages(count), err
	}
	return nil, 0, ErrNotFound
}

// Search matches a case-insensitive substring against title+content for
// announcements and title+description for listings. Empty kind searches
// every kind; results keep store order, concatenated announcements, then
// marketplace, then services. No pagination, no ranking.
func (s *ListingService) Search(query, kind string) ([]PostView, error) {
	var posts []PostView

	if kind == "" || kind == KindAnnouncements {
		list, err := s.anns.Search(query)
		if err != nil {
			return nil, err
		}
		views, err := s.announcementViews(list)
		if err != nil {
			return nil, err
		}
		posts = append(posts, views...)
	}
	if kind == "" || kind == KindMarketplace {
		list, err := s.market.Search(query)
		if err != nil {
			return nil, err
		}
		views, err := s.marketplaceViews(list)
		if err != nil {
			return nil, err
		}
		posts = append(posts, views...)
	}
	if kind == "" || kind == KindServices {
		list, err := s.services.Search(query)
		if err != nil {
			return nil, err
		}
		views, err := s.serviceViews(list)
		if err != nil {
			return nil, err
		}
		posts = append(posts, views...)
	}
	return posts, nil
}

func (s *ListingService) announcementViews(list []model.Announcement) ([]PostView, error) {
	ids := make([]uint64, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.UserID)
	}
	names, err := s.users.UsernamesByID(ids)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(list))
	for _, a := range list {
		n, err := s.comments.CountForPost(model.PostTypeAnnouncement, a.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, PostView{
			ID:       a.ID,
			PostType: KindAnnouncements,
			Category: a.Category,
			Title:    a.Title,
			Content:  a.Content,
			Username: names[a.UserID],
			Date:     a.Date,
			Comments: n,
		})
	}
	return views, nil
}

func (s *ListingService) marketplaceViews(list []model.Marketplace) ([]PostView, error) {
	ids := make([]uint64, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.UserID)
	}
	names, err := s.users.UsernamesByID(ids)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(list))
	for _, m := range list {
		n, err := s.comments.CountForPost(model.PostTypeMarketplace, m.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, PostView{
			ID:          m.ID,
			PostType:    KindMarketplace,
			Category:    m.Category,
			Title:       m.Title,
			Description: m.Description,
			Username:    names[m.UserID],
			Price:       m.Price,
			Date:        m.Date,
			Comments:    n,
		})
	}
	return views, nil
}

func (s *ListingService) serviceViews(list []model.Service) ([]PostView, error) {
	ids := make([]uint64, 0, len(list))
	for _, sv := range list {
		ids = append(ids, sv.UserID)
	}
	names, err := s.users.UsernamesByID(ids)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(list))
	for _, sv := range list {
		n, err := s.comments.CountForPost(model.PostTypeService, sv.ID)
		if err != nil {
			return nil, err
		}
		views = append(views, PostView{
			ID:          sv.ID,
			PostType:    KindServices,
			Category:    sv.Category,
			Title:       sv.Title,
			Description: sv.Description,
			Username:    names[sv.UserID],
			Price:       sv.Price,
			Date:        sv.Date,
			Comments:    n,
		})
	}
	return views, nil
}
