package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/internal/apperror"
	"starwars-api/internal/models"
	"starwars-api/internal/service"
)

// FavoriteController serves the favorite endpoints
type FavoriteController struct {
	favoriteService service.FavoriteService
}

// NewFavoriteController creates a new favorite controller
func NewFavoriteController(favoriteService service.FavoriteService) *FavoriteController {
	return &FavoriteController{favoriteService: favoriteService}
}

// ListFavorites handles GET /users/favorites
func (fc *FavoriteController) ListFavorites(c *gin.Context) {
	favorites, err := fc.favoriteService.ListFavorites(c.Request.Context())
	if err != nil {
		apperror.Abort(c, apperror.Internal("Failed to fetch favorites", err))
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// ListUserFavorites handles GET /users/:id/favorites
func (fc *FavoriteController) ListUserFavorites(c *gin.Context) {
	userID, ok := pathID(c, "id", "User not found")
	if !ok {
		return
	}

	favorites, err := fc.favoriteService.ListUserFavorites(c.Request.Context(), userID)
	if err != nil {
		fc.abortWithServiceError(c, err, "Failed to fetch favorites")
		return
	}
	c.JSON(http.StatusOK, favorites)
}

// AddFavoritePlanet handles POST /favorite/planet/:planet_id
func (fc *FavoriteController) AddFavoritePlanet(c *gin.Context) {
	planetID, ok := pathID(c, "planet_id", "Planet not found")
	if !ok {
		return
	}
	userID, ok := fc.bindUserID(c)
	if !ok {
		return
	}

	favorite, err := fc.favoriteService.AddFavoritePlanet(c.Request.Context(), userID, planetID)
	if err != nil {
		fc.abortWithServiceError(c, err, "Failed to add favorite")
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// AddFavoriteCharacter handles POST /favorite/character/:character_id
func (fc *FavoriteController) AddFavoriteCharacter(c *gin.Context) {
	characterID, ok := pathID(c, "character_id", "Character not found")
	if !ok {
		return
	}
	userID, ok := fc.bindUserID(c)
	if !ok {
		return
	}

	favorite, err := fc.favoriteService.AddFavoriteCharacter(c.Request.Context(), userID, characterID)
	if err != nil {
		fc.abortWithServiceError(c, err, "Failed to add favorite")
		return
	}
	c.JSON(http.StatusCreated, favorite)
}

// RemoveFavoritePlanet handles DELETE /favorite/planet/:planet_id[?user_id=]
func (fc *FavoriteController) RemoveFavoritePlanet(c *gin.Context) {
	planetID, ok := pathID(c, "planet_id", "Favorite planet not found")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	err := fc.favoriteService.RemoveFavoritePlanet(c.Request.Context(), planetID, userID)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			apperror.Abort(c, apperror.NotFound("Favorite planet not found"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to delete favorite planet", err))
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Favorite planet deleted successfully"})
}

// RemoveFavoriteCharacter handles DELETE /favorite/character/:character_id[?user_id=]
func (fc *FavoriteController) RemoveFavoriteCharacter(c *gin.Context) {
	characterID, ok := pathID(c, "character_id", "Favorite character not found")
	if !ok {
		return
	}
	userID, ok := queryUserID(c)
	if !ok {
		return
	}

	err := fc.favoriteService.RemoveFavoriteCharacter(c.Request.Context(), characterID, userID)
	if err != nil {
		if errors.Is(err, service.ErrFavoriteNotFound) {
			apperror.Abort(c, apperror.NotFound("Favorite character not found"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to delete favorite character", err))
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Favorite character deleted successfully"})
}

func (fc *FavoriteController) bindUserID(c *gin.Context) (uint, bool) {
	var req models.FavoriteRequest
	if !bindJSON(c, &req, "The 'user_id' field is required") {
		return 0, false
	}

	userID, err := req.ParseUserID()
	if err != nil {
		apperror.Abort(c, apperror.BadRequest("Invalid 'user_id' value"))
		return 0, false
	}
	return userID, true
}

// queryUserID reads the optional user_id filter. nil means every user.
func queryUserID(c *gin.Context) (*uint, bool) {
	raw, present := c.GetQuery("user_id")
	if !present {
		return nil, true
	}

	userID, err := models.ParseID(raw)
	if err != nil {
		apperror.Abort(c, apperror.BadRequest("Invalid 'user_id' value"))
		return nil, false
	}
	return &userID, true
}

func (fc *FavoriteController) abortWithServiceError(c *gin.Context, err error, internalMsg string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		apperror.Abort(c, apperror.NotFound("User not found"))
	case errors.Is(err, service.ErrPlanetNotFound):
		apperror.Abort(c, apperror.NotFound("Planet not found"))
	case errors.Is(err, service.ErrCharacterNotFound):
		apperror.Abort(c, apperror.NotFound("Character not found"))
	default:
		apperror.Abort(c, apperror.Internal(internalMsg, err))
	}
}
