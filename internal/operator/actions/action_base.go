package actions

import (
	"context"

	"github.com/carson-networks/household-server/internal/storage"
)

// IAction is one unit of work run inside a single storage transaction.
// Actions keep their results on the struct for the caller to read once
// Process returns.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
