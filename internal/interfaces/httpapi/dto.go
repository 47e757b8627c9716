package httpapi

import (
	"strconv"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
)

type gameDTO struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	MinNumPlayers  int    `json:"min_num_players"`
	MaxNumPlayers  int    `json:"max_num_players"`
	MinPlayMinutes int    `json:"min_play_minutes"`
	MaxPlayMinutes int    `json:"max_play_minutes"`
	OfficialURL    string `json:"official_url"`
}

func toGameDTO(g game.Game) gameDTO {
	return gameDTO{
		ID:             g.ID,
		Name:           g.Name,
		Description:    g.Description,
		MinNumPlayers:  g.MinNumPlayers,
		MaxNumPlayers:  g.MaxNumPlayers,
		MinPlayMinutes: g.MinPlayMinutes,
		MaxPlayMinutes: g.MaxPlayMinutes,
		OfficialURL:    g.OfficialURL,
	}
}

func toFormValues(c game.Candidate) map[string]string {
	out := make(map[string]string, 8)
	put := func(key string, f game.Field[string]) {
		if v, ok := f.Get(); ok {
			out[key] = v
		}
	}
	put(game.FieldID, c.ID)
	put(game.FieldName, c.Name)
	put(game.FieldDescription, c.Description)
	put(game.FieldMinNumPlayers, c.MinNumPlayers)
	put(game.FieldMaxNumPlayers, c.MaxNumPlayers)
	put(game.FieldMinPlayMinutes, c.MinPlayMinutes)
	put(game.FieldMaxPlayMinutes, c.MaxPlayMinutes)
	put(game.FieldOfficialURL, c.OfficialURL)
	return out
}

// patchGameRequest holds the optional fields of a PATCH body. A nil field was not sent.
type patchGameRequest struct {
	Name           *string `json:"name" validate:"omitempty,max=255"`
	Description    *string `json:"description" validate:"omitempty,max=10000"`
	MinNumPlayers  *int    `json:"min_num_players"`
	MaxNumPlayers  *int    `json:"max_num_players"`
	MinPlayMinutes *int    `json:"min_play_minutes"`
	MaxPlayMinutes *int    `json:"max_play_minutes"`
	OfficialURL    *string `json:"official_url" validate:"omitempty,max=2048"`
}

func (r patchGameRequest) rawFields() map[string]string {
	out := make(map[string]string, 7)
	putString := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	putInt := func(key string, v *int) {
		if v != nil {
			out[key] = strconv.Itoa(*v)
		}
	}
	putString(game.FieldName, r.Name)
	putString(game.FieldDescription, r.Description)
	putInt(game.FieldMinNumPlayers, r.MinNumPlayers)
	putInt(game.FieldMaxNumPlayers, r.MaxNumPlayers)
	putInt(game.FieldMinPlayMinutes, r.MinPlayMinutes)
	putInt(game.FieldMaxPlayMinutes, r.MaxPlayMinutes)
	putString(game.FieldOfficialURL, r.OfficialURL)
	return out
}
