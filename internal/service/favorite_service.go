package service

import (
	"context"
	"errors"

	"starwars-api/internal/entities"
	"starwars-api/internal/models"
	"starwars-api/internal/repository"
)

// FavoriteService defines the interface for favorite business logic
type FavoriteService interface {
	ListFavorites(ctx context.Context) ([]models.FavoriteResponse, error)
	ListUserFavorites(ctx context.Context, userID uint) ([]models.FavoriteResponse, error)
	AddFavoritePlanet(ctx context.Context, userID, planetID uint) (*models.FavoriteResponse, error)
	AddFavoriteCharacter(ctx context.Context, userID, characterID uint) (*models.FavoriteResponse, error)
	RemoveFavoritePlanet(ctx context.Context, planetID uint, userID *uint) error
	RemoveFavoriteCharacter(ctx context.Context, characterID uint, userID *uint) error
}

type favoriteService struct {
	favorites  repository.FavoriteRepository
	users      repository.UserRepository
	planets    repository.PlanetRepository
	characters repository.CharacterRepository
}

// NewFavoriteService creates a new favorite service. Favorites are not cached.
func NewFavoriteService(
	favorites repository.FavoriteRepository,
	users repository.UserRepository,
	planets repository.PlanetRepository,
	characters repository.CharacterRepository,
) FavoriteService {
	return &favoriteService{
		favorites:  favorites,
		users:      users,
		planets:    planets,
		characters: characters,
	}
}

func (s *favoriteService) ListFavorites(ctx context.Context) ([]models.FavoriteResponse, error) {
	favorites, err := s.favorites.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return toFavoriteResponses(favorites), nil
}

func (s *favoriteService) ListUserFavorites(ctx context.Context, userID uint) ([]models.FavoriteResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	favorites, err := s.favorites.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toFavoriteResponses(favorites), nil
}

// AddFavoritePlanet links an existing user to an existing planet
func (s *favoriteService) AddFavoritePlanet(ctx context.Context, userID, planetID uint) (*models.FavoriteResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	_, err := s.planets.FindByID(ctx, planetID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPlanetNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.create(ctx, &entities.Favorite{UserID: &userID, PlanetID: &planetID})
}

// AddFavoriteCharacter links an existing user to an existing character
func (s *favoriteService) AddFavoriteCharacter(ctx context.Context, userID, characterID uint) (*models.FavoriteResponse, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	_, err := s.characters.FindByID(ctx, characterID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCharacterNotFound
	}
	if err != nil {
		return nil, err
	}

	return s.create(ctx, &entities.Favorite{UserID: &userID, CharacterID: &characterID})
}

// RemoveFavoritePlanet deletes the favorites pointing at a planet (only the
// given user's when userID is set). The planet itself is kept.
func (s *favoriteService) RemoveFavoritePlanet(ctx context.Context, planetID uint, userID *uint) error {
	removed, err := s.favorites.DeleteByPlanet(ctx, planetID, userID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

// RemoveFavoriteCharacter deletes the favorites pointing at a character
func (s *favoriteService) RemoveFavoriteCharacter(ctx context.Context, characterID uint, userID *uint) error {
	removed, err := s.favorites.DeleteByCharacter(ctx, characterID, userID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}

func (s *favoriteService) ensureUser(ctx context.Context, userID uint) error {
	_, err := s.users.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *favoriteService) create(ctx context.Context, favorite *entities.Favorite) (*models.FavoriteResponse, error) {
	if err := s.favorites.Create(ctx, favorite); err != nil {
		return nil, err
	}
	response := models.NewFavoriteResponse(favorite)
	return &response, nil
}

func toFavoriteResponses(favorites []entities.Favorite) []models.FavoriteResponse {
	responses := make([]models.FavoriteResponse, 0, len(favorites))
	for i := range favorites {
		responses = append(responses, models.NewFavoriteResponse(&favorites[i]))
	}
	return responses
}
