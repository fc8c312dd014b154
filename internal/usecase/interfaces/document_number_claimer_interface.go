package interfaces

import "context"

// IDocumentNumberClaimer reserves a generated document number store-side so
// two clients computing from the same stale snapshot cannot both keep it.
type IDocumentNumberClaimer interface {
	// Claim returns false when the number is already held by another job.
	Claim(ctx context.Context, number string, jobID string) (bool, error)
}
