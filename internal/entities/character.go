package entities

// Character represents a person of the catalog (exposed under /people)
type Character struct {
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"size:100;not null"`
	Properties *string    `gorm:"size:500"` // Free-form, optional
	Favorites  []Favorite `gorm:"foreignKey:CharacterID"`
}

func (Character) TableName() string {
	return "characters"
}
