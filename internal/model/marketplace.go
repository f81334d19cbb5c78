package model

const (
	CategoryBuyers  = "Buyers"
	CategorySellers = "Sellers"
)

var MarketplaceCategories = []string{CategoryBuyers, CategorySellers}

type Marketplace struct {
	ID          uint64 `gorm:"primaryKey"`
	Category    string `gorm:"size:20;index"`
	Title       string `gorm:"size:100"`
	Description string `gorm:"type:text"`
	UserID      uint64 `gorm:"not null;index"`
	Price       string `gorm:"size:20"` // free-form, never used for arithmetic
	Date        string `gorm:"size:20;index"`
}

func (Marketplace) TableName() string { return "marketplace" }
