package postgres

import (
	"context"
	"fmt"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	qb "github.com/StungEye-RRC/boredgamegeek/internal/platform/querybuilder"
	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
)

const gamesTable = "games"

type GameRepository struct {
	db *sqlx.DB
}

func NewGameRepository(db *sqlx.DB) *GameRepository {
	return &GameRepository{db: db}
}

func (r *GameRepository) List(ctx context.Context) ([]game.Game, error) {
	query, args, err := qb.Select("*").From(gamesTable).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select games query: %w", err)
	}

	var rows []gameTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, crerr.Wrap(err, "select games")
	}

	out := make([]game.Game, 0, len(rows))
	for _, row := range rows {
		out = append(out, gameFromRow(row))
	}

	return out, nil
}

func (r *GameRepository) GetByID(ctx context.Context, id int64) (game.Game, bool, error) {
	query, args, err := qb.Select("*").From(gamesTable).
		Where(qb.Eq(game.ColumnID, id)).
		ToSQL()
	if err != nil {
		return game.Game{}, false, fmt.Errorf("build get game by id query: %w", err)
	}

	var row gameTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return game.Game{}, false, nil
		}
		return game.Game{}, false, crerr.Wrapf(err, "get game by id=%d", id)
	}

	return gameFromRow(row), true, nil
}

func (r *GameRepository) Create(ctx context.Context, g game.Game) (int64, error) {
	query, args, err := qb.InsertModel(gamesTable, gameInsertFromDomain(g), "RETURNING id")
	if err != nil {
		return 0, fmt.Errorf("build create game query: %w", err)
	}

	var id int64
	if err := r.db.QueryRowxContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, wrapWriteError(err, game.ErrConstraintViolation, "create game")
	}

	return id, nil
}

func (r *GameRepository) Update(ctx context.Context, p game.Patch) error {
	query, args, err := buildUpdateGameQuery(p)
	if err != nil {
		return fmt.Errorf("build update game query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return wrapWriteError(err, game.ErrConstraintViolation, fmt.Sprintf("update game id=%d", p.ID))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return crerr.Wrap(err, "rows affected update game")
	}
	if affected == 0 {
		return fmt.Errorf("update game id=%d: %w", p.ID, game.ErrNotFound)
	}

	return nil
}

func buildUpdateGameQuery(p game.Patch) (string, []any, error) {
	return qb.Update(gamesTable).
		SetColumns(patchColumnValues(p), game.DataColumns).
		Where(qb.Eq(game.ColumnID, p.ID)).
		ToSQL()
}
