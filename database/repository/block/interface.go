package blockRepo

import (
	"context"

	"gearbook/models"
)

// BlockRepository defines read access to staff-declared manual blocks.
// Blocks are written wholesale by the staff tooling; the engine never
// mutates them.
type BlockRepository interface {
	// GetByDate returns the manual block document for the given date, or
	// nil when staff have not blocked anything that day.
	GetByDate(ctx context.Context, date string) (*models.ManualBlock, error)
}
