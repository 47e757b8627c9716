package postgres

import "github.com/StungEye-RRC/boredgamegeek/internal/domain/game"

type gameTableModel struct {
	ID             int64  `db:"id"`
	Name           string `db:"name"`
	Description    string `db:"description"`
	MinNumPlayers  int64  `db:"min_num_players"`
	MaxNumPlayers  int64  `db:"max_num_players"`
	MinPlayMinutes int64  `db:"min_play_minutes"`
	MaxPlayMinutes int64  `db:"max_play_minutes"`
	OfficialURL    string `db:"official_url"`
}

type gameInsertModel struct {
	Name           string `db:"name"`
	Description    string `db:"description"`
	MinNumPlayers  int64  `db:"min_num_players"`
	MaxNumPlayers  int64  `db:"max_num_players"`
	MinPlayMinutes int64  `db:"min_play_minutes"`
	MaxPlayMinutes int64  `db:"max_play_minutes"`
	OfficialURL    string `db:"official_url"`
}

func gameFromRow(row gameTableModel) game.Game {
	return game.Game{
		ID:             row.ID,
		Name:           row.Name,
		Description:    row.Description,
		MinNumPlayers:  int(row.MinNumPlayers),
		MaxNumPlayers:  int(row.MaxNumPlayers),
		MinPlayMinutes: int(row.MinPlayMinutes),
		MaxPlayMinutes: int(row.MaxPlayMinutes),
		OfficialURL:    row.OfficialURL,
	}
}

func gameInsertFromDomain(g game.Game) gameInsertModel {
	return gameInsertModel{
		Name:           g.Name,
		Description:    g.Description,
		MinNumPlayers:  int64(g.MinNumPlayers),
		MaxNumPlayers:  int64(g.MaxNumPlayers),
		MinPlayMinutes: int64(g.MinPlayMinutes),
		MaxPlayMinutes: int64(g.MaxPlayMinutes),
		OfficialURL:    g.OfficialURL,
	}
}

// patchColumnValues widens integer values so every bound argument has a driver type.
func patchColumnValues(p game.Patch) map[string]any {
	values := p.Values()
	for column, value := range values {
		if n, ok := value.(int); ok {
			values[column] = int64(n)
		}
	}
	return values
}
