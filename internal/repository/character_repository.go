package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"starwars-api/internal/entities"
)

// CharacterRepository defines the interface for character database operations
type CharacterRepository interface {
	Create(ctx context.Context, character *entities.Character) error
	FindByID(ctx context.Context, id uint) (*entities.Character, error)
	FindAll(ctx context.Context) ([]entities.Character, error)
	Delete(ctx context.Context, id uint) error
}

type characterRepository struct {
	db *gorm.DB
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db *gorm.DB) CharacterRepository {
	return &characterRepository{db: db}
}

func (r *characterRepository) Create(ctx context.Context, character *entities.Character) error {
	if err := r.db.WithContext(ctx).Create(character).Error; err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

func (r *characterRepository) FindByID(ctx context.Context, id uint) (*entities.Character, error) {
	var character entities.Character
	err := r.db.WithContext(ctx).First(&character, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find character %d: %w", id, err)
	}
	return &character, nil
}

func (r *characterRepository) FindAll(ctx context.Context) ([]entities.Character, error) {
	var characters []entities.Character
	if err := r.db.WithContext(ctx).Order("id").Find(&characters).Error; err != nil {
		return nil, fmt.Errorf("failed to get characters: %w", err)
	}
	return characters, nil
}

func (r *characterRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entities.Character{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete character %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
