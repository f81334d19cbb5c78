package model

// MaxShoutLen bounds shoutbox messages; longer input is truncated.
const MaxShoutLen = 50

type Shout struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"not null"`
	Message   string `gorm:"size:50"`
	Timestamp string `gorm:"column:timestamp;size:20"`
}

func (Shout) TableName() string { return "shoutbox" }
