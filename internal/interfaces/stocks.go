package interfaces

import (
	"context"

	"github.com/ternarybob/scrynt/internal/models"
)

// StockSource fetches the full screener dataset from the upstream
// provider. A failed or malformed fetch returns an error; callers are
// expected to degrade to an empty dataset rather than abort.
type StockSource interface {
	Fetch(ctx context.Context) ([]models.StockRecord, error)
}
