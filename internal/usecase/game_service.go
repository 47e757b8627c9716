package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	"github.com/StungEye-RRC/boredgamegeek/internal/platform/logging"
)

// SubmitResult is the outcome of a form submission.
type SubmitResult struct {
	Game    game.Game
	Created bool
}

type GameService struct {
	repo   game.Repository
	logger *logging.Logger
}

func NewGameService(repo game.Repository, logger *logging.Logger) *GameService {
	if logger == nil {
		logger = logging.Default()
	}
	return &GameService{repo: repo, logger: logger}
}

func (s *GameService) ListGames(ctx context.Context) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListGames")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list games: %w", err)
	}

	return items, nil
}

func (s *GameService) GetGame(ctx context.Context, id int64) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.GetGame")
	defer span.End()
	span.SetAttributes(attribute.Int64("game.id", id))

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return game.Game{}, fmt.Errorf("get game id=%d: %w", id, err)
	}
	if !exists {
		return game.Game{}, fmt.Errorf("%w: game id=%d", ErrNotFound, id)
	}

	return item, nil
}

// BlankGame is the empty candidate a new-game form starts from.
func (s *GameService) BlankGame() game.Candidate {
	return game.Blank()
}

// SubmitGame handles a full form post. Without an id a new game is created;
// with one, every data column of that game is overwritten.
func (s *GameService) SubmitGame(ctx context.Context, raw map[string]string) (SubmitResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.SubmitGame")
	defer span.End()

	candidate := game.Sanitize(raw)
	validated, err := game.Validate(candidate)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if candidate.IsNew() {
		id, err := s.repo.Create(ctx, validated)
		if err != nil {
			return SubmitResult{}, mapWriteError(fmt.Errorf("create game: %w", err))
		}
		validated.ID = id
		s.logger.InfoContext(ctx, "game created", "game_id", id)
		return SubmitResult{Game: validated, Created: true}, nil
	}

	id, err := game.ParseID(candidate.ID.Value())
	if err != nil {
		return SubmitResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	span.SetAttributes(attribute.Int64("game.id", id))

	if err := s.repo.Update(ctx, game.FullPatch(id, validated)); err != nil {
		return SubmitResult{}, mapWriteError(fmt.Errorf("update game id=%d: %w", id, err))
	}
	validated.ID = id
	s.logger.InfoContext(ctx, "game updated", "game_id", id)

	return SubmitResult{Game: validated}, nil
}

// PatchGame writes only the supplied fields of raw. The rest of the stored game
// takes part in validation so the cross-field rules still hold.
func (s *GameService) PatchGame(ctx context.Context, id int64, raw map[string]string) (game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.PatchGame")
	defer span.End()
	span.SetAttributes(attribute.Int64("game.id", id))

	overlay := game.SanitizePartial(raw)
	if !overlay.HasData() {
		return game.Game{}, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	existing, err := s.GetGame(ctx, id)
	if err != nil {
		return game.Game{}, err
	}

	merged := game.CandidateFromGame(existing).Merge(overlay)
	validated, err := game.Validate(merged)
	if err != nil {
		return game.Game{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	patch := game.NewPatch(id, overlay, validated)
	if err := s.repo.Update(ctx, patch); err != nil {
		return game.Game{}, mapWriteError(fmt.Errorf("patch game id=%d: %w", id, err))
	}
	s.logger.InfoContext(ctx, "game patched", "game_id", id, "columns", len(patch.Values()))

	return patch.Apply(existing), nil
}

func mapWriteError(err error) error {
	switch {
	case errors.Is(err, game.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, game.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}
