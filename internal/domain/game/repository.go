package game

import "context"

// Repository describes game persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Game, error)
	GetByID(ctx context.Context, id int64) (Game, bool, error)
	// Create inserts every data field of g; g.ID is ignored. It returns the assigned id.
	Create(ctx context.Context, g Game) (int64, error)
	// Update writes only the fields set on p. ErrNotFound is returned when no row has p.ID.
	Update(ctx context.Context, p Patch) error
}
