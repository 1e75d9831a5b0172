package storage

import (
	"context"

	"vantage/pkg/domain"
)

// MOVStorage persists the metadata of MOV files. The files themselves live
// in object storage.
type MOVStorage interface {
	// StoreMOV inserts a MOV and returns the stored row.
	StoreMOV(ctx context.Context, mov domain.MOV) (*domain.MOV, error)
	// MOVByID returns nil when the MOV does not exist.
	MOVByID(ctx context.Context, id domain.MOVID) (*domain.MOV, error)
	// MOVsByResponses lists the MOVs of the given responses ordered by id.
	MOVsByResponses(ctx context.Context, responseIDs ...domain.ResponseID) ([]domain.MOV, error)
	// DeleteMOV deletes a MOV and returns the deleted row, or nil when not found.
	DeleteMOV(ctx context.Context, id domain.MOVID) (*domain.MOV, error)
}
