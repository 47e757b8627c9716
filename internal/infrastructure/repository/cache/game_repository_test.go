package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	"github.com/StungEye-RRC/boredgamegeek/internal/infrastructure/repository/memory"
	basecache "github.com/StungEye-RRC/boredgamegeek/internal/platform/cache"
)

type countingRepository struct {
	game.Repository
	lists int
	gets  int
}

func (c *countingRepository) List(ctx context.Context) ([]game.Game, error) {
	c.lists++
	return c.Repository.List(ctx)
}

func (c *countingRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	c.gets++
	return c.Repository.GetByID(ctx, id)
}

func newCachedRepo() (*GameRepository, *countingRepository) {
	inner := &countingRepository{Repository: memory.NewGameRepository(memory.SeedGames())}
	return NewGameRepository(inner, basecache.NewStore(time.Minute)), inner
}

func TestGameRepository_ListIsCached(t *testing.T) {
	ctx := context.Background()
	repo, inner := newCachedRepo()

	first, err := repo.List(ctx)
	require.NoError(t, err)
	second, err := repo.List(ctx)
	require.NoError(t, err)

	require.Equal(t, first, second)
	require.Equal(t, 1, inner.lists)
}

func TestGameRepository_MissingIDIsCached(t *testing.T) {
	ctx := context.Background()
	repo, inner := newCachedRepo()

	for range 2 {
		_, exists, err := repo.GetByID(ctx, 999)
		require.NoError(t, err)
		require.False(t, exists)
	}
	require.Equal(t, 1, inner.gets)
}

func TestGameRepository_UpdateInvalidatesReads(t *testing.T) {
	ctx := context.Background()
	repo, inner := newCachedRepo()

	before, exists, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, exists)
	_, err = repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, game.Patch{ID: 1, MaxPlayMinutes: game.Some(before.MaxPlayMinutes + 30)}))

	after, exists, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, before.MaxPlayMinutes+30, after.MaxPlayMinutes)

	items, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, after, items[0])
	require.Equal(t, 2, inner.gets)
	require.Equal(t, 2, inner.lists)
}

func TestGameRepository_CreateInvalidatesList(t *testing.T) {
	ctx := context.Background()
	repo, _ := newCachedRepo()

	items, err := repo.List(ctx)
	require.NoError(t, err)

	id, err := repo.Create(ctx, game.Game{
		Name:           "Azul",
		Description:    "Tile drafting",
		MinNumPlayers:  2,
		MaxNumPlayers:  4,
		MinPlayMinutes: 30,
		MaxPlayMinutes: 45,
		OfficialURL:    "https://www.planbgames.com/en/azul",
	})
	require.NoError(t, err)

	refreshed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, refreshed, len(items)+1)
	require.Equal(t, id, refreshed[len(refreshed)-1].ID)
}
