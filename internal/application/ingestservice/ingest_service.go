package ingestservice

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type IIngestService interface {
	// LogStream records a stream-watched event and credits the provider's
	// balance. It returns the earned amount, derived from the configured
	// rates when the caller did not supply one.
	LogStream(ctx context.Context, req *domain.StreamEventRequest) (float64, error)

	// LogDownload records a file-downloaded event. A supplied positive amount
	// with a provider also credits the ledger.
	LogDownload(ctx context.Context, req *domain.DownloadEventRequest) error

	// LogView records a view event. View earnings are informational only and
	// never touch the ledger.
	LogView(ctx context.Context, req *domain.ViewEventRequest) error
}
