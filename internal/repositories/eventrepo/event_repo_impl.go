package eventrepo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

type EventRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func New(db *sql.DB, logger zerolog.Logger) IEventRepository {
	return &EventRepository{
		db:     db,
		logger: logger,
	}
}

func (r *EventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	const query = `
		INSERT INTO events (
			id, kind, video_id, session_id, user_id, provider,
			seconds, data_used_mb, size_bytes, event_label, amount, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		event.ID,
		event.Kind,
		event.VideoID,
		nullString(event.SessionID),
		nullString(event.UserID),
		nullString(event.Provider),
		event.Seconds,
		event.DataUsedMB,
		event.SizeBytes,
		nullString(event.EventLabel),
		event.Amount,
		event.CreatedAt,
	)
	if err != nil {
		r.logger.Err(err).Str("video_id", event.VideoID).Str("kind", string(event.Kind)).Msg("Failed to insert event")
		return fmt.Errorf("failed to insert %s event: %v", event.Kind, err)
	}
	return nil
}

func (r *EventRepository) CountByKind(ctx context.Context, kind domain.EventKind) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE kind = $1`, kind,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s events: %v", kind, err)
	}
	return count, nil
}

func (r *EventRepository) StreamStatsByProvider(ctx context.Context, provider string) (*domain.StreamStats, error) {
	const query = `
		SELECT
			COUNT(DISTINCT user_id),
			COALESCE(SUM(seconds), 0),
			COALESCE(SUM(data_used_mb), 0),
			COALESCE(SUM(amount), 0)
		FROM events
		WHERE kind = 'stream' AND provider = $1`

	var stats domain.StreamStats
	err := r.db.QueryRowContext(ctx, query, provider).Scan(
		&stats.Users,
		&stats.Seconds,
		&stats.DataUsedMB,
		&stats.Earnings,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stream stats for %s: %v", provider, err)
	}
	return &stats, nil
}

func (r *EventRepository) DownloadStatsByProvider(ctx context.Context, provider string) (*domain.DownloadStats, error) {
	const query = `
		SELECT COUNT(*), COALESCE(SUM(amount), 0)
		FROM events
		WHERE kind = 'download' AND provider = $1`

	var stats domain.DownloadStats
	err := r.db.QueryRowContext(ctx, query, provider).Scan(&stats.Count, &stats.Earnings)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate download stats for %s: %v", provider, err)
	}
	return &stats, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
