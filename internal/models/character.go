package models

import "starwars-api/internal/entities"

// CreateCharacterRequest represents the request body for creating a character
type CreateCharacterRequest struct {
	Name       *string `json:"name" binding:"required"`
	Properties *string `json:"properties,omitempty"`
}

// CharacterResponse is the public projection of a character
type CharacterResponse struct {
	ID         uint    `json:"id"`
	Name       string  `json:"name"`
	Properties *string `json:"properties"`
}

func NewCharacterResponse(character *entities.Character) CharacterResponse {
	return CharacterResponse{
		ID:         character.ID,
		Name:       character.Name,
		Properties: character.Properties,
	}
}
