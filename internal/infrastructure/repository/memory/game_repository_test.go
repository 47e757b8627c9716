package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
)

func TestGameRepository_CreateThenGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(SeedGames())

	existing, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}

	input := game.Game{
		Name:           "Go",
		Description:    "Stones",
		MinNumPlayers:  2,
		MaxNumPlayers:  2,
		MinPlayMinutes: 20,
		MaxPlayMinutes: 200,
		OfficialURL:    "https://example.com",
	}
	id, err := repo.Create(ctx, input)
	if err != nil {
		t.Fatalf("create game: %v", err)
	}
	for _, item := range existing {
		if item.ID == id {
			t.Fatalf("create reused existing id %d", id)
		}
	}

	got, exists, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	if !exists {
		t.Fatalf("expected created game to exist")
	}

	want := input
	want.ID = id
	if got != want {
		t.Fatalf("unexpected game:\nwant: %+v\ngot:  %+v", want, got)
	}
}

func TestGameRepository_ListKeepsInsertionOrder(t *testing.T) {
	repo := NewGameRepository(SeedGames())

	items, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(items) != len(SeedGames()) {
		t.Fatalf("unexpected game count: %d", len(items))
	}
	for i, item := range items {
		if item.ID != int64(i+1) {
			t.Fatalf("unexpected id at %d: %d", i, item.ID)
		}
	}
}

func TestGameRepository_UpdateLeavesUnpatchedColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(SeedGames())

	before, _, _ := repo.GetByID(ctx, 2)
	if err := repo.Update(ctx, game.Patch{ID: 2, MaxPlayMinutes: game.Some(180)}); err != nil {
		t.Fatalf("update game: %v", err)
	}

	after, _, _ := repo.GetByID(ctx, 2)
	want := before
	want.MaxPlayMinutes = 180
	if after != want {
		t.Fatalf("unexpected game after patch:\nwant: %+v\ngot:  %+v", want, after)
	}
}

func TestGameRepository_UpdateErrors(t *testing.T) {
	ctx := context.Background()
	repo := NewGameRepository(SeedGames())

	err := repo.Update(ctx, game.Patch{ID: 99, Name: game.Some("Ghost")})
	if !errors.Is(err, game.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	err = repo.Update(ctx, game.Patch{ID: 1, MinNumPlayers: game.Some(5)})
	if !errors.Is(err, game.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
	if errors.Is(err, game.ErrNotFound) {
		t.Fatalf("constraint failure must not look like not found")
	}

	if err := repo.Update(ctx, game.Patch{ID: 1}); err == nil {
		t.Fatalf("expected error for empty patch")
	}
}

func TestGameRepository_CreateRejectsBrokenRecord(t *testing.T) {
	repo := NewGameRepository(nil)

	_, err := repo.Create(context.Background(), game.Game{Name: "Go"})
	if !errors.Is(err, game.ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}
}
