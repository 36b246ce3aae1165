package loading

import (
	"context"

	"github.com/vfg2006/powerapps-data-pipeline/internal/domain"
)

// Loader carrega lotes transformados no warehouse com bookkeeping de histórico
type Loader interface {
	Load(ctx context.Context, runID string, batch *domain.TransformedBatch) (*domain.LoadHistoryEntry, error)
	RefreshSalesSummary(ctx context.Context) (int64, error)
	SalesSummaries() ([]*domain.SalesSummary, error)
	LoadSummary() ([]*domain.LoadBatchSummary, error)
}
