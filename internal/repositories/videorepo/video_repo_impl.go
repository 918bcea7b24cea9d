package videorepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type VideoRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *sql.DB, logger zerolog.Logger) IVideoRepository {
	return &VideoRepository{
		db:     db,
		logger: logger,
	}
}

func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO videos (id, title, url, upload_size, created_at) VALUES ($1, $2, $3, $4, $5)`,
		video.ID, video.Title, video.URL, video.UploadSize, video.CreatedAt,
	)
	if err != nil {
		r.logger.Err(err).Str("title", video.Title).Msg("Failed to insert video")
		return fmt.Errorf("failed to insert video: %v", err)
	}
	return nil
}

func (r *VideoRepository) List(ctx context.Context) ([]domain.Video, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, url, upload_size, created_at FROM videos ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %v", err)
	}
	defer rows.Close()

	videos := make([]domain.Video, 0)
	for rows.Next() {
		var v domain.Video
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &v.UploadSize, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan video: %v", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read videos: %v", err)
	}
	return videos, nil
}
