package analysis

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no analysis exists with the requested id.
var ErrNotFound = errors.New("analysis not found")

// Repository persists analysis records.
//
// Save assigns identity and returns a fully populated copy rather than
// mutating its argument. FindAll returns records in creation order.
// Delete returns ErrNotFound when the id does not exist.
type Repository interface {
	Save(ctx context.Context, a Analysis) (Analysis, error)
	FindByID(ctx context.Context, id uuid.UUID) (Analysis, error)
	FindAll(ctx context.Context) ([]Analysis, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
