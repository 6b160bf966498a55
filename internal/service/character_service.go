package service

import (
	"context"
	"errors"
	"time"

	"starwars-api/internal/cache"
	"starwars-api/internal/entities"
	"starwars-api/internal/models"
	"starwars-api/internal/repository"
)

// CharacterService defines the interface for character business logic
type CharacterService interface {
	ListCharacters(ctx context.Context) ([]models.CharacterResponse, error)
	GetCharacter(ctx context.Context, id uint) (*models.CharacterResponse, error)
	CreateCharacter(ctx context.Context, req *models.CreateCharacterRequest) (*models.CharacterResponse, error)
	DeleteCharacter(ctx context.Context, id uint) error
}

type characterService struct {
	repo  repository.CharacterRepository
	cache readCache
}

// NewCharacterService creates a new character service. cacheClient may be nil.
func NewCharacterService(repo repository.CharacterRepository, cacheClient cache.Cache, ttl time.Duration) CharacterService {
	return &characterService{
		repo:  repo,
		cache: newReadCache(cacheClient, ttl),
	}
}

func (s *characterService) ListCharacters(ctx context.Context) ([]models.CharacterResponse, error) {
	var cached []models.CharacterResponse
	if s.cache.load(ctx, charactersListKey, &cached) {
		return cached, nil
	}

	characters, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.CharacterResponse, 0, len(characters))
	for i := range characters {
		responses = append(responses, models.NewCharacterResponse(&characters[i]))
	}
	s.cache.store(ctx, charactersListKey, responses)
	return responses, nil
}

func (s *characterService) GetCharacter(ctx context.Context, id uint) (*models.CharacterResponse, error) {
	var cached models.CharacterResponse
	if s.cache.load(ctx, characterKey(id), &cached) {
		return &cached, nil
	}

	character, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrCharacterNotFound
	}
	if err != nil {
		return nil, err
	}

	response := models.NewCharacterResponse(character)
	s.cache.store(ctx, characterKey(id), response)
	return &response, nil
}

func (s *characterService) CreateCharacter(ctx context.Context, req *models.CreateCharacterRequest) (*models.CharacterResponse, error) {
	character := &entities.Character{
		Name:       *req.Name,
		Properties: req.Properties,
	}
	if err := s.repo.Create(ctx, character); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, charactersListKey)

	response := models.NewCharacterResponse(character)
	return &response, nil
}

func (s *characterService) DeleteCharacter(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrCharacterNotFound
	}
	if err != nil {
		return err
	}
	s.cache.invalidate(ctx, characterKey(id), charactersListKey)
	return nil
}
