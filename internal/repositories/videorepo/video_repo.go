package videorepo

import (
	"context"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type IVideoRepository interface {
	Create(ctx context.Context, video *domain.Video) error

	// List returns the full catalog, newest first.
	List(ctx context.Context) ([]domain.Video, error)
}
