package cache

import (
	"context"
	"strconv"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	basecache "github.com/StungEye-RRC/boredgamegeek/internal/platform/cache"
)

const gameKeyPrefix = "game:"

// GameRepository serves reads from a shared store and drops every game key on write.
type GameRepository struct {
	next  game.Repository
	cache *basecache.Store
}

func NewGameRepository(next game.Repository, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	v, err := r.cache.GetOrLoad(ctx, gameKeyPrefix+"list", func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]game.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]game.Game)
	return append([]game.Game(nil), items...), nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	key := gameKeyPrefix + "id:" + strconv.FormatInt(id, 10)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := r.next.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return cachedGameByID{value: item, exists: exists}, nil
	})
	if err != nil {
		return game.Game{}, false, err
	}

	cached, _ := v.(cachedGameByID)
	return cached.value, cached.exists, nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) (int64, error) {
	id, err := r.next.Create(ctx, g)
	r.cache.DeletePrefix(ctx, gameKeyPrefix)
	return id, err
}

func (r *GameRepository) Update(ctx context.Context, p game.Patch) error {
	err := r.next.Update(ctx, p)
	r.cache.DeletePrefix(ctx, gameKeyPrefix)
	return err
}

type cachedGameByID struct {
	value  game.Game
	exists bool
}
