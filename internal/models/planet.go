package models

import "starwars-api/internal/entities"

// CreatePlanetRequest represents the request body for creating a planet
type CreatePlanetRequest struct {
	Name       *string `json:"name" binding:"required"`
	Properties *string `json:"properties,omitempty"`
}

// PlanetResponse is the public projection of a planet
type PlanetResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Properties *string `json:"properties"`
}

func NewPlanetResponse(planet *entities.Planet) PlanetResponse {
	return PlanetResponse{
		ID:         planet.ID,
		Name:       planet.Name,
		Properties: planet.Properties,
	}
}
