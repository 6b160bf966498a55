package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"starwars-api/internal/entities"
)

func TestFavoriteRequestParseUserID(t *testing.T) {
	tests := []struct {
		body    string
		want    uint
		wantErr bool
	}{
		{`{"user_id": 7}`, 7, false},
		{`{"user_id": "12"}`, 12, false},
		{`{"user_id": null}`, 0, true},
		{`{"user_id": "luke"}`, 0, true},
		{`{"user_id": 0}`, 0, true},
		{`{"user_id": -3}`, 0, true},
		{`{"user_id": 1.5}`, 0, true},
		{`{"user_id": true}`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var req FavoriteRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			id, err := req.ParseUserID()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestUserResponseOmitsPassword(t *testing.T) {
	user := &entities.User{ID: 3, FirstName: "Leia", Email: "leia@alderaan.gov", Password: "hash", IsActive: true}

	data, err := json.Marshal(NewUserResponse(user))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id": 3, "email": "leia@alderaan.gov"}`, string(data))
}

func TestPlanetResponseSerializesMissingPropertiesAsNull(t *testing.T) {
	data, err := json.Marshal(NewPlanetResponse(&entities.Planet{ID: 1, Name: "Hoth"}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id": 1, "name": "Hoth", "properties": null}`, string(data))
}
