package model

const (
	CategoryAnnouncements = "Announcements"
	CategoryGeneral       = "General"
	CategoryMMService     = "MM Service"
)

var AnnouncementCategories = []string{CategoryAnnouncements, CategoryGeneral, CategoryMMService}

type Announcement struct {
	ID       uint64 `gorm:"primaryKey"`
	Category string `gorm:"size:20;index"`
	Title    string `gorm:"size:100"`
	Content  string `gorm:"type:text"`
	UserID   uint64 `gorm:"not null;index"`
	Date     string `gorm:"size:20;index"`
}

func (Announcement) TableName() string { return "announcement" }
