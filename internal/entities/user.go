package entities

// User represents a registered user of the catalog
type User struct {
	ID        uint       `gorm:"primaryKey"`
	FirstName string     `gorm:"size:80;not null"`
	Email     string     `gorm:"size:120;uniqueIndex;not null"`
	Password  string     `gorm:"size:255;not null"` // bcrypt hash, never serialized
	IsActive  bool       `gorm:"not null"`
	Favorites []Favorite `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
