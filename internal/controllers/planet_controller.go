package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"starwars-api/internal/apperror"
	"starwars-api/internal/models"
	"starwars-api/internal/service"
)

// PlanetController serves the planet endpoints
type PlanetController struct {
	planetService service.PlanetService
}

// NewPlanetController creates a new planet controller
func NewPlanetController(planetService service.PlanetService) *PlanetController {
	return &PlanetController{planetService: planetService}
}

// ListPlanets handles GET /planets
func (pc *PlanetController) ListPlanets(c *gin.Context) {
	planets, err := pc.planetService.ListPlanets(c.Request.Context())
	if err != nil {
		apperror.Abort(c, apperror.Internal("Failed to fetch planets", err))
		return
	}
	c.JSON(http.StatusOK, planets)
}

// GetPlanet handles GET /planets/:id
func (pc *PlanetController) GetPlanet(c *gin.Context) {
	id, ok := pathID(c, "id", "Planet not found")
	if !ok {
		return
	}

	planet, err := pc.planetService.GetPlanet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPlanetNotFound) {
			apperror.Abort(c, apperror.NotFound("Planet not found"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to fetch planet", err))
		return
	}
	c.JSON(http.StatusOK, planet)
}

// CreatePlanet handles POST /planet
func (pc *PlanetController) CreatePlanet(c *gin.Context) {
	var req models.CreatePlanetRequest
	if !bindJSON(c, &req, "Missing name field") {
		return
	}

	planet, err := pc.planetService.CreatePlanet(c.Request.Context(), &req)
	if err != nil {
		apperror.Abort(c, apperror.Internal("Failed to create planet", err))
		return
	}
	c.JSON(http.StatusCreated, planet)
}

// DeletePlanet handles DELETE /planet/:id
func (pc *PlanetController) DeletePlanet(c *gin.Context) {
	id, ok := pathID(c, "id", "Planet not found")
	if !ok {
		return
	}

	if err := pc.planetService.DeletePlanet(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPlanetNotFound) {
			apperror.Abort(c, apperror.NotFound("Planet not found"))
			return
		}
		apperror.Abort(c, apperror.Internal("Failed to delete planet", err))
		return
	}
	c.JSON(http.StatusOK, models.MessageResponse{Message: "Planet deleted successfully"})
}
