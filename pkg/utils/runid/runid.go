package runid

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
)

// With attaches a fresh run identifier to the context logger so every log
// line of one release run is correlatable.
//
// Returns: the derived context and the generated identifier.
func With(ctx context.Context) (context.Context, string) {
	id := uuid.NewString()
	logger := ctxlog.From(ctx).With("run_id", id)
	return ctxlog.With(ctx, logger), id
}
