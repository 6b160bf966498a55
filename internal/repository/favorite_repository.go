package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"starwars-api/internal/entities"
)

// FavoriteRepository defines the interface for favorite database operations
type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entities.Favorite) error
	FindAll(ctx context.Context) ([]entities.Favorite, error)
	FindByUserID(ctx context.Context, userID uint) ([]entities.Favorite, error)
	DeleteByPlanet(ctx context.Context, planetID uint, userID *uint) (int64, error)
	DeleteByCharacter(ctx context.Context, characterID uint, userID *uint) (int64, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	if err := r.db.WithContext(ctx).Create(favorite).Error; err != nil {
		return fmt.Errorf("failed to create favorite: %w", err)
	}
	return nil
}

func (r *favoriteRepository) FindAll(ctx context.Context) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	if err := r.db.WithContext(ctx).Order("id").Find(&favorites).Error; err != nil {
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}
	return favorites, nil
}

func (r *favoriteRepository) FindByUserID(ctx context.Context, userID uint) ([]entities.Favorite, error) {
	var favorites []entities.Favorite
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id").Find(&favorites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get favorites of user %d: %w", userID, err)
	}
	return favorites, nil
}

// DeleteByPlanet removes the favorites pointing at a planet, optionally only
// those of one user, and reports how many rows went away
func (r *favoriteRepository) DeleteByPlanet(ctx context.Context, planetID uint, userID *uint) (int64, error) {
	return r.deleteWhere(ctx, "planet_id", planetID, userID)
}

// DeleteByCharacter is DeleteByPlanet for characters
func (r *favoriteRepository) DeleteByCharacter(ctx context.Context, characterID uint, userID *uint) (int64, error) {
	return r.deleteWhere(ctx, "character_id", characterID, userID)
}

func (r *favoriteRepository) deleteWhere(ctx context.Context, column string, targetID uint, userID *uint) (int64, error) {
	query := r.db.WithContext(ctx).Where(column+" = ?", targetID)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	result := query.Delete(&entities.Favorite{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete favorites by %s %d: %w", column, targetID, result.Error)
	}
	return result.RowsAffected, nil
}
