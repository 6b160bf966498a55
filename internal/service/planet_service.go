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

// PlanetService defines the interface for planet business logic
type PlanetService interface {
	ListPlanets(ctx context.Context) ([]models.PlanetResponse, error)
	GetPlanet(ctx context.Context, id uint) (*models.PlanetResponse, error)
	CreatePlanet(ctx context.Context, req *models.CreatePlanetRequest) (*models.PlanetResponse, error)
	DeletePlanet(ctx context.Context, id uint) error
}

type planetService struct {
	repo  repository.PlanetRepository
	cache readCache
}

// NewPlanetService creates a new planet service. cacheClient may be nil.
func NewPlanetService(repo repository.PlanetRepository, cacheClient cache.Cache, ttl time.Duration) PlanetService {
	return &planetService{
		repo:  repo,
		cache: newReadCache(cacheClient, ttl),
	}
}

func (s *planetService) ListPlanets(ctx context.Context) ([]models.PlanetResponse, error) {
	var cached []models.PlanetResponse
	if s.cache.load(ctx, planetsListKey, &cached) {
		return cached, nil
	}

	planets, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.PlanetResponse, 0, len(planets))
	for i := range planets {
		responses = append(responses, models.NewPlanetResponse(&planets[i]))
	}
	s.cache.store(ctx, planetsListKey, responses)
	return responses, nil
}

func (s *planetService) GetPlanet(ctx context.Context, id uint) (*models.PlanetResponse, error) {
	var cached models.PlanetResponse
	if s.cache.load(ctx, planetKey(id), &cached) {
		return &cached, nil
	}

	planet, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrPlanetNotFound
	}
	if err != nil {
		return nil, err
	}

	response := models.NewPlanetResponse(planet)
	s.cache.store(ctx, planetKey(id), response)
	return &response, nil
}

func (s *planetService) CreatePlanet(ctx context.Context, req *models.CreatePlanetRequest) (*models.PlanetResponse, error) {
	planet := &entities.Planet{
		Name:       *req.Name,
		Properties: req.Properties,
	}
	if err := s.repo.Create(ctx, planet); err != nil {
		return nil, err
	}
	s.cache.invalidate(ctx, planetsListKey)

	response := models.NewPlanetResponse(planet)
	return &response, nil
}

func (s *planetService) DeletePlanet(ctx context.Context, id uint) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrPlanetNotFound
	}
	if err != nil {
		return err
	}
	s.cache.invalidate(ctx, planetKey(id), planetsListKey)
	return nil
}
