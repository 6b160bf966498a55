package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"starwars-api/internal/entities"
	"starwars-api/internal/repository"
	"starwars-api/internal/repository/mocks"
)

type favoriteFixture struct {
	favorites  *mocks.FavoriteRepository
	users      *mocks.UserRepository
	planets    *mocks.PlanetRepository
	characters *mocks.CharacterRepository
	svc        FavoriteService
}

func newFavoriteFixture() *favoriteFixture {
	f := &favoriteFixture{
		favorites:  new(mocks.FavoriteRepository),
		users:      new(mocks.UserRepository),
		planets:    new(mocks.PlanetRepository),
		characters: new(mocks.CharacterRepository),
	}
	f.svc = NewFavoriteService(f.favorites, f.users, f.planets, f.characters)
	return f
}

func TestAddFavoritePlanet(t *testing.T) {
	f := newFavoriteFixture()
	f.users.On("FindByID", mock.Anything, uint(1)).Return(&entities.User{ID: 1}, nil)
	f.planets.On("FindByID", mock.Anything, uint(2)).Return(&entities.Planet{ID: 2}, nil)
	f.favorites.On("Create", mock.Anything, mock.MatchedBy(func(fav *entities.Favorite) bool {
		return *fav.UserID == 1 && *fav.PlanetID == 2 && fav.CharacterID == nil
	})).
		Run(func(args mock.Arguments) { args.Get(1).(*entities.Favorite).ID = 10 }).
		Return(nil)

	resp, err := f.svc.AddFavoritePlanet(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint(10), resp.ID)
	assert.Equal(t, uint(2), *resp.PlanetID)
	assert.Nil(t, resp.CharacterID)
	f.favorites.AssertExpectations(t)
}

func TestAddFavoriteCharacterReferencesCharacter(t *testing.T) {
	f := newFavoriteFixture()
	f.users.On("FindByID", mock.Anything, uint(1)).Return(&entities.User{ID: 1}, nil)
	f.characters.On("FindByID", mock.Anything, uint(3)).Return(&entities.Character{ID: 3}, nil)
	f.favorites.On("Create", mock.Anything, mock.MatchedBy(func(fav *entities.Favorite) bool {
		return *fav.CharacterID == 3 && fav.PlanetID == nil
	})).Return(nil)

	resp, err := f.svc.AddFavoriteCharacter(context.Background(), 1, 3)
	require.NoError(t, err)
	assert.Equal(t, uint(3), *resp.CharacterID)
	assert.Nil(t, resp.PlanetID)
	f.planets.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestAddFavoriteUnknownReferences(t *testing.T) {
	ctx := context.Background()

	t.Run("user", func(t *testing.T) {
		f := newFavoriteFixture()
		f.users.On("FindByID", mock.Anything, uint(9)).Return(nil, repository.ErrNotFound)

		_, err := f.svc.AddFavoritePlanet(ctx, 9, 1)
		assert.ErrorIs(t, err, ErrUserNotFound)
		f.favorites.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("planet", func(t *testing.T) {
		f := newFavoriteFixture()
		f.users.On("FindByID", mock.Anything, uint(1)).Return(&entities.User{ID: 1}, nil)
		f.planets.On("FindByID", mock.Anything, uint(9)).Return(nil, repository.ErrNotFound)

		_, err := f.svc.AddFavoritePlanet(ctx, 1, 9)
		assert.ErrorIs(t, err, ErrPlanetNotFound)
	})

	t.Run("character", func(t *testing.T) {
		f := newFavoriteFixture()
		f.users.On("FindByID", mock.Anything, uint(1)).Return(&entities.User{ID: 1}, nil)
		f.characters.On("FindByID", mock.Anything, uint(9)).Return(nil, repository.ErrNotFound)

		_, err := f.svc.AddFavoriteCharacter(ctx, 1, 9)
		assert.ErrorIs(t, err, ErrCharacterNotFound)
	})
}

func TestListUserFavorites(t *testing.T) {
	f := newFavoriteFixture()
	f.users.On("FindByID", mock.Anything, uint(1)).Return(&entities.User{ID: 1}, nil)
	f.favorites.On("FindByUserID", mock.Anything, uint(1)).Return([]entities.Favorite(nil), nil)

	favs, err := f.svc.ListUserFavorites(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, favs)
	assert.Empty(t, favs)
}

func TestListUserFavoritesUnknownUser(t *testing.T) {
	f := newFavoriteFixture()
	f.users.On("FindByID", mock.Anything, uint(4)).Return(nil, repository.ErrNotFound)

	_, err := f.svc.ListUserFavorites(context.Background(), 4)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemoveFavoritePlanet(t *testing.T) {
	f := newFavoriteFixture()
	userID := uintPtr(1)
	f.favorites.On("DeleteByPlanet", mock.Anything, uint(2), userID).Return(int64(1), nil).Once()
	f.favorites.On("DeleteByPlanet", mock.Anything, uint(2), userID).Return(int64(0), nil).Once()

	require.NoError(t, f.svc.RemoveFavoritePlanet(context.Background(), 2, userID))
	assert.ErrorIs(t, f.svc.RemoveFavoritePlanet(context.Background(), 2, userID), ErrFavoriteNotFound)
}

func TestRemoveFavoriteCharacterForAllUsers(t *testing.T) {
	f := newFavoriteFixture()
	f.favorites.On("DeleteByCharacter", mock.Anything, uint(5), (*uint)(nil)).Return(int64(3), nil)

	require.NoError(t, f.svc.RemoveFavoriteCharacter(context.Background(), 5, nil))
	f.favorites.AssertExpectations(t)
}
