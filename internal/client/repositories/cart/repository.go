// Package cart persists the anonymous cart snapshot. The table holds at
// most one row per product id; the whole snapshot is replaced on every
// mutation so concurrent writers (another process on the same database)
// settle last-writer-wins per write, never with torn rows.
package cart

import (
	"context"

	"github.com/dmitrijs2005/pixelmart/internal/client/models"
)

type Repository interface {
	// GetAll returns the stored snapshot, empty when there is none.
	GetAll(ctx context.Context) (models.Cart, error)

	// ReplaceAll atomically swaps the stored snapshot for items.
	ReplaceAll(ctx context.Context, items models.Cart) error

	// Clear removes the snapshot. Safe to call when already empty.
	Clear(ctx context.Context) error
}
