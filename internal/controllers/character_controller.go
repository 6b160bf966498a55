package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/internal/apperror"
	"starwars-api/internal/models"
	"starwars-api/internal/service"
)

// CharacterController serves the /people endpoints
type CharacterController struct {
	characterService service.CharacterService
}

// NewCharacterController creates a new character controller
func NewCharacterController(characterService service.CharacterService) *CharacterController {
	return &CharacterController{characterService: characterService}
}

// ListCharacters handles GET /people
func (cc *CharacterController) ListCharacters(c *gin.Context) {
	characters, err := cc.characterService.ListCharacters(c.Request.Context())
	if err != nil {
		apperror.Abort(c, apperror.Internal("Failed to fetch characters", err))
		return
	}
	c.JSON(http.StatusOK, characters)
}

// GetCharacter handles GET /people/:id
func (cc *CharacterController) GetCharacter(c *gin.Context) {
	id, ok := pathID(c, "id", "Character not found")
	if !ok {
		return
	}

	character, err := cc.characterService.GetCharacter(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCharacterNotFound) {
			apperror.Abort(c, apperror.NotFound("Character not found"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to fetch character", err))
		return
	}
	c.JSON(http.StatusOK, character)
}

// CreateCharacter handles POST /people
func (cc *CharacterController) CreateCharacter(c *gin.Context) {
	var req models.CreateCharacterRequest
	if !bindJSON(c, &req, "Missing name field") {
		return
	}

	character, err := cc.characterService.CreateCharacter(c.Request.Context(), &req)
	if err != nil {
		apperror.Abort(c, apperror.Internal("Failed to create character", err))
		return
	}
	c.JSON(http.StatusCreated, character)
}

// DeleteCharacter handles DELETE /people/:id
func (cc *CharacterController) DeleteCharacter(c *gin.Context) {
	id, ok := pathID(c, "id", "Character not found")
	if !ok {
		return
	}

	if err := cc.characterService.DeleteCharacter(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCharacterNotFound) {
			apperror.Abort(c, apperror.NotFound("Character not found"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to delete character", err))
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Character deleted successfully"})
}
