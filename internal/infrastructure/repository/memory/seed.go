package memory

import "github.com/StungEye-RRC/boredgamegeek/internal/domain/game"

// SeedGames is the catalog a memory store starts with in local development.
func SeedGames() []game.Game {
	return []game.Game{
		{
			Name:           "Go",
			Description:    "Surround more territory than your opponent with black and white stones.",
			MinNumPlayers:  2,
			MaxNumPlayers:  2,
			MinPlayMinutes: 20,
			MaxPlayMinutes: 200,
			OfficialURL:    "https://www.usgo.org",
		},
		{
			Name:           "Carcassonne",
			Description:    "Build a medieval landscape tile by tile and claim its roads, cities and fields.",
			MinNumPlayers:  2,
			MaxNumPlayers:  5,
			MinPlayMinutes: 30,
			MaxPlayMinutes: 45,
		},
		{
			Name:           "Pandemic",
			Description:    "Work together to treat infections and discover cures before outbreaks spread.",
			MinNumPlayers:  2,
			MaxNumPlayers:  4,
			MinPlayMinutes: 45,
			MaxPlayMinutes: 60,
			OfficialURL:    "https://www.zmangames.com",
		},
	}
}
