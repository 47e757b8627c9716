package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
)

// GameRepository keeps games in insertion order and assigns ids like a serial column.
type GameRepository struct {
	mu     sync.RWMutex
	games  []game.Game
	nextID int64
}

// NewGameRepository stores seed with freshly assigned ids; seed ids are ignored.
func NewGameRepository(seed []game.Game) *GameRepository {
	r := &GameRepository{nextID: 1}
	for _, item := range seed {
		item.ID = r.nextID
		r.nextID++
		r.games = append(r.games, item)
	}

	return r
}

func (r *GameRepository) List(_ context.Context) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]game.Game, 0, len(r.games))
	out = append(out, r.games...)

	return out, nil
}

func (r *GameRepository) GetByID(_ context.Context, id int64) (game.Game, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return game.Game{}, false, nil
	}

	return r.games[idx], true, nil
}

func (r *GameRepository) Create(_ context.Context, g game.Game) (int64, error) {
	if err := g.Validate(); err != nil {
		return 0, fmt.Errorf("create game: %w: %v", game.ErrConstraintViolation, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	g.ID = r.nextID
	r.nextID++
	r.games = append(r.games, g)

	return g.ID, nil
}

func (r *GameRepository) Update(_ context.Context, p game.Patch) error {
	if p.IsEmpty() {
		return fmt.Errorf("update game id=%d: update sets are required", p.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(p.ID)
	if idx < 0 {
		return fmt.Errorf("update game id=%d: %w", p.ID, game.ErrNotFound)
	}

	updated := p.Apply(r.games[idx])
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("update game id=%d: %w: %v", p.ID, game.ErrConstraintViolation, err)
	}
	r.games[idx] = updated

	return nil
}

func (r *GameRepository) indexOf(id int64) int {
	for idx, item := range r.games {
		if item.ID == id {
			return idx
		}
	}
	return -1
}
