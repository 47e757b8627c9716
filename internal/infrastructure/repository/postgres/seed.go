package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/StungEye-RRC/boredgamegeek/internal/domain/game"
	qb "github.com/StungEye-RRC/boredgamegeek/internal/platform/querybuilder"
)

// BootstrapSeed inserts games in one transaction when the games table is empty.
// It reports how many rows it wrote.
func BootstrapSeed(ctx context.Context, db *sqlx.DB, games []game.Game) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM games`); err != nil {
		return 0, fmt.Errorf("count games for bootstrap seed: %w", err)
	}
	if count > 0 || len(games) == 0 {
		return 0, nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, g := range games {
		query, args, err := qb.InsertModel(gamesTable, gameInsertFromDomain(g), "")
		if err != nil {
			return 0, fmt.Errorf("build seed game %q query: %w", g.Name, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return 0, wrapWriteError(err, game.ErrConstraintViolation, fmt.Sprintf("seed game %q", g.Name))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit seed tx: %w", err)
	}

	return len(games), nil
}
