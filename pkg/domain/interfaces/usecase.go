package interfaces

import (
	"context"

	"github.com/h2oman/phoenix/pkg/domain/model"
)

// ReleaseUseCase defines the release pipeline operation
type ReleaseUseCase interface {
	// Run executes the full release pipeline for the given request and
	// returns the update-feed metadata of the produced archive.
	Run(ctx context.Context, req *model.ReleaseRequest) (*model.ReleaseMetadata, error)
}
