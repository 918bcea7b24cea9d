package eventrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

const eventsCollection = "events"

type eventDocument struct {
	ID         string    `bson:"_id"`
	Kind       string    `bson:"kind"`
	VideoID    string    `bson:"video_id"`
	SessionID  string    `bson:"session_id,omitempty"`
	UserID     string    `bson:"user_id,omitempty"`
	Provider   string    `bson:"provider,omitempty"`
	Seconds    float64   `bson:"seconds"`
	DataUsedMB float64   `bson:"data_used_mb"`
	SizeBytes  float64   `bson:"size_bytes"`
	EventLabel string    `bson:"event_label,omitempty"`
	Amount     float64   `bson:"amount"`
	CreatedAt  time.Time `bson:"created_at"`
}

type MongoEventRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewMongo(db *mongo.Database, logger zerolog.Logger) IEventRepository {
	return &MongoEventRepository{
		collection: db.Collection(eventsCollection),
		logger:     logger,
	}
}

func (r *MongoEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	doc := eventDocument{
		ID:         event.ID,
		Kind:       string(event.Kind),
		VideoID:    event.VideoID,
		SessionID:  event.SessionID,
		UserID:     event.UserID,
		Provider:   event.Provider,
		Seconds:    event.Seconds,
		DataUsedMB: event.DataUsedMB,
		SizeBytes:  event.SizeBytes,
		EventLabel: event.EventLabel,
		Amount:     event.Amount,
		CreatedAt:  event.CreatedAt,
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Err(err).Str("video_id", event.VideoID).Str("kind", string(event.Kind)).Msg("Failed to insert event")
		return fmt.Errorf("failed to insert %s event: %v", event.Kind, err)
	}
	return nil
}

func (r *MongoEventRepository) CountByKind(ctx context.Context, kind domain.EventKind) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"kind": string(kind)})
	if err != nil {
		return 0, fmt.Errorf("failed to count %s events: %v", kind, err)
	}
	return count, nil
}

func (r *MongoEventRepository) StreamStatsByProvider(ctx context.Context, provider string) (*domain.StreamStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"kind": string(domain.EventKindStream), "provider": provider}}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"users":        bson.M{"$addToSet": "$user_id"},
			"seconds":      bson.M{"$sum": "$seconds"},
			"data_used_mb": bson.M{"$sum": "$data_used_mb"},
			"earnings":     bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$project", Value: bson.M{
			"users":        bson.M{"$size": "$users"},
			"seconds":      1,
			"data_used_mb": 1,
			"earnings":     1,
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stream stats for %s: %v", provider, err)
	}
	defer cursor.Close(ctx)

	var row struct {
		Users      int64   `bson:"users"`
		Seconds    float64 `bson:"seconds"`
		DataUsedMB float64 `bson:"data_used_mb"`
		Earnings   float64 `bson:"earnings"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode stream stats for %s: %v", provider, err)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stream stats for %s: %v", provider, err)
	}

	return &domain.StreamStats{
		Users:      row.Users,
		Seconds:    row.Seconds,
		DataUsedMB: row.DataUsedMB,
		Earnings:   row.Earnings,
	}, nil
}

func (r *MongoEventRepository) DownloadStatsByProvider(ctx context.Context, provider string) (*domain.DownloadStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"kind": string(domain.EventKindDownload), "provider": provider}}},
		{{Key: "$group", Value: bson.M{
			"_id":      nil,
			"count":    bson.M{"$sum": 1},
			"earnings": bson.M{"$sum": "$amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate download stats for %s: %v", provider, err)
	}
	defer cursor.Close(ctx)

	var row struct {
		Count    int64   `bson:"count"`
		Earnings float64 `bson:"earnings"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&row); err != nil {
			return nil, fmt.Errorf("failed to decode download stats for %s: %v", provider, err)
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read download stats for %s: %v", provider, err)
	}

	return &domain.DownloadStats{Count: row.Count, Earnings: row.Earnings}, nil
}
