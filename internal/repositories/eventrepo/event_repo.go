package eventrepo

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type IEventRepository interface {
	// Create persists one immutable event record.
	Create(ctx context.Context, event *domain.Event) error

	// CountByKind returns the total number of events of one kind.
	CountByKind(ctx context.Context, kind domain.EventKind) (int64, error)

	// StreamStatsByProvider aggregates stream events for a provider: distinct
	// users, total watch seconds, data used and earned amounts.
	StreamStatsByProvider(ctx context.Context, provider string) (*domain.StreamStats, error)

	// DownloadStatsByProvider aggregates download events for a provider.
	DownloadStatsByProvider(ctx context.Context, provider string) (*domain.DownloadStats, error)
}
