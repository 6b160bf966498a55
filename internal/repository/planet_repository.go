package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"starwars-api/internal/entities"
)

// PlanetRepository defines the interface for planet database operations
type PlanetRepository interface {
	Create(ctx context.Context, planet *entities.Planet) error
	FindByID(ctx context.Context, id uint) (*entities.Planet, error)
	FindAll(ctx context.Context) ([]entities.Planet, error)
	Delete(ctx context.Context, id uint) error
}

type planetRepository struct {
	db *gorm.DB
}

// NewPlanetRepository creates a new planet repository
func NewPlanetRepository(db *gorm.DB) PlanetRepository {
	return &planetRepository{db: db}
}

func (r *planetRepository) Create(ctx context.Context, planet *entities.Planet) error {
	if err := r.db.WithContext(ctx).Create(planet).Error; err != nil {
		return fmt.Errorf("failed to create planet: %w", err)
	}
	return nil
}

func (r *planetRepository) FindByID(ctx context.Context, id uint) (*entities.Planet, error) {
	var planet entities.Planet
	err := r.db.WithContext(ctx).First(&planet, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find planet %d: %w", id, err)
	}
	return &planet, nil
}

func (r *planetRepository) FindAll(ctx context.Context) ([]entities.Planet, error) {
	var planets []entities.Planet
	if err := r.db.WithContext(ctx).Order("id").Find(&planets).Error; err != nil {
		return nil, fmt.Errorf("failed to get planets: %w", err)
	}
	return planets, nil
}

// Delete removes a planet. Favorites pointing at it are removed by the
// database through ON DELETE CASCADE.
func (r *planetRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Planet{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete planet %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
