// Package mocks provides testify mocks of the repository interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"starwars-api/internal/entities"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context) ([]entities.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entities.User)
	return users, args.Error(1)
}

type PlanetRepository struct {
	mock.Mock
}

func (m *PlanetRepository) Create(ctx context.Context, planet *entities.Planet) error {
	args := m.Called(ctx, planet)
	return args.Error(0)
}

func (m *PlanetRepository) FindByID(ctx context.Context, id uint) (*entities.Planet, error) {
	args := m.Called(ctx, id)
	planet, _ := args.Get(0).(*entities.Planet)
	return planet, args.Error(1)
}

func (m *PlanetRepository) FindAll(ctx context.Context) ([]entities.Planet, error) {
	args := m.Called(ctx)
	planets, _ := args.Get(0).([]entities.Planet)
	return planets, args.Error(1)
}

func (m *PlanetRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type CharacterRepository struct {
	mock.Mock
}

func (m *CharacterRepository) Create(ctx context.Context, character *entities.Character) error {
	args := m.Called(ctx, character)
	return args.Error(0)
}

func (m *CharacterRepository) FindByID(ctx context.Context, id uint) (*entities.Character, error) {
	args := m.Called(ctx, id)
	character, _ := args.Get(0).(*entities.Character)
	return character, args.Error(1)
}

func (m *CharacterRepository) FindAll(ctx context.Context) ([]entities.Character, error) {
	args := m.Called(ctx)
	characters, _ := args.Get(0).([]entities.Character)
	return characters, args.Error(1)
}

func (m *CharacterRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type FavoriteRepository struct {
	mock.Mock
}

func (m *FavoriteRepository) Create(ctx context.Context, favorite *entities.Favorite) error {
	args := m.Called(ctx, favorite)
	return args.Error(0)
}

func (m *FavoriteRepository) FindAll(ctx context.Context) ([]entities.Favorite, error) {
	args := m.Called(ctx)
	favorites, _ := args.Get(0).([]entities.Favorite)
	return favorites, args.Error(1)
}

func (m *FavoriteRepository) FindByUserID(ctx context.Context, userID uint) ([]entities.Favorite, error) {
	args := m.Called(ctx, userID)
	favorites, _ := args.Get(0).([]entities.Favorite)
	return favorites, args.Error(1)
}

func (m *FavoriteRepository) DeleteByPlanet(ctx context.Context, planetID uint, userID *uint) (int64, error) {
	args := m.Called(ctx, planetID, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *FavoriteRepository) DeleteByCharacter(ctx context.Context, characterID uint, userID *uint) (int64, error) {
	args := m.Called(ctx, characterID, userID)
	return args.Get(0).(int64), args.Error(1)
}
