package model

const (
	CategoryBuy  = "Buy"
	CategorySell = "Sell"
)

var ServiceCategories = []string{CategoryBuy, CategorySell}

type Service struct {
	ID          uint64 `gorm:"primaryKey"`
	Category    string `gorm:"size:20;index"`
	Title       string `gorm:"size:100"`
	Description string `gorm:"type:text"`
	UserID      uint64 `gorm:"not null;index"`
	Price       string `gorm:"size:20"`
	Date        string `gorm:"size:20;index"`
}

func (Service) TableName() string { return "service" }
