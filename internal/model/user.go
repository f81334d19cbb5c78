package model

type User struct {
	ID       uint64 `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;size:50;not null"`
	Password string `gorm:"size:128;not null"`
	Avatar   string `gorm:"size:200"`
}

// TableName keeps the singular table name of the existing database file.
func (User) TableName() string { return "user" }
