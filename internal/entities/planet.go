package entities

// Planet represents a planet of the catalog
type Planet struct {
	ID         uint       `gorm:"primaryKey"`
	Name       string     `gorm:"size:100;not null"`
	Properties *string    `gorm:"size:500"` // Free-form, optional
	Favorites  []Favorite `gorm:"foreignKey:PlanetID"`
}

func (Planet) TableName() string {
	return "planets"
}
