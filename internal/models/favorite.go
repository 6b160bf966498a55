package models

import (
	"encoding/json"
	"errors"
	"strconv"

	"starwars-api/internal/entities"
)

// ErrInvalidID is returned when an id is not a positive integer
var ErrInvalidID = errors.New("invalid id")

// FavoriteRequest represents the request body for adding a favorite.
// user_id accepts a JSON number or a numeric string.
type FavoriteRequest struct {
	UserID json.RawMessage `json:"user_id" binding:"required"`
}

// ParseUserID decodes user_id into a positive integer
func (r *FavoriteRequest) ParseUserID() (uint, error) {
	var number json.Number
	if err := json.Unmarshal(r.UserID, &number); err != nil {
		return 0, ErrInvalidID
	}
	return ParseID(number.String())
}

// ParseID parses a positive integer id from a path or query value
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// FavoriteResponse is the public projection of a favorite
type FavoriteResponse struct {
	ID          uint  `json:"id"`
	UserID      *uint `json:"user_id"`
	CharacterID *uint `json:"character_id"`
	PlanetID    *uint `json:"planet_id"`
}

func NewFavoriteResponse(favorite *entities.Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:          favorite.ID,
		UserID:      favorite.UserID,
		CharacterID: favorite.CharacterID,
		PlanetID:    favorite.PlanetID,
	}
}
