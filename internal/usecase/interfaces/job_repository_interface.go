package interfaces

import (
	"context"
	"errors"

	"bengkel_service/internal/domain/entities"
)

// ErrImmutableNumber is returned by the store when an update would replace a
// WO number or estimation number that is already set on the record.
var ErrImmutableNumber = errors.New("document number already assigned")

// IJobRepository abstracts the jobs collection of the ledger store.
//
// Lookups of a missing record return a zero Job (empty ID) and a nil error.
// The store gives per-document atomic merges but no cross-document transactions.
type IJobRepository interface {
	Create(ctx context.Context, job entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	List(ctx context.Context) ([]entities.Job, error)
	// Update merges the non-nil patch fields and returns the updated record,
	// or a zero Job when id does not exist.
	Update(ctx context.Context, id string, patch entities.JobPatch) (entities.Job, error)
	Delete(ctx context.Context, id string) error
}
