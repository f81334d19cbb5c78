package model

// Comment targets use the singular form, distinct from the plural
// kind names used in routes.
const (
	PostTypeAnnouncement = "announcement"
	PostTypeMarketplace  = "marketplace"
	PostTypeService      = "service"
)

var CommentPostTypes = []string{PostTypeAnnouncement, PostTypeMarketplace, PostTypeService}

// Comment points at one post via (post_type, post_id). PostID is not a
// foreign key; a comment on a missing post is legal data and simply never
// surfaces in any detail view.
type Comment struct {
	ID       uint64 `gorm:"primaryKey"`
	PostType string `gorm:"size:20;index:idx_post_ref"`
	PostID   uint64 `gorm:"index:idx_post_ref"`
	UserID   uint64 `gorm:"not null"`
	Content  string `gorm:"type:text"`
	Date     string `gorm:"size:20"`
}

func (Comment) TableName() string { return "comment" }
