package entities

// Favorite links a user to a planet or a character. The schema allows any
// combination of references; the API always sets exactly one target.
type Favorite struct {
	ID          uint  `gorm:"primaryKey"`
	UserID      *uint `gorm:"index"`
	CharacterID *uint `gorm:"index"`
	PlanetID    *uint `gorm:"index"`
}

func (Favorite) TableName() string {
	return "favorites"
}
