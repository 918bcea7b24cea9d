package videorepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

const videosCollection = "videos"

type videoDocument struct {
	ID         string    `bson:"_id"`
	Title      string    `bson:"title"`
	URL        string    `bson:"url"`
	UploadSize float64   `bson:"upload_size"`
	CreatedAt  time.Time `bson:"created_at"`
}

type MongoVideoRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewMongo(db *mongo.Database, logger zerolog.Logger) IVideoRepository {
	return &MongoVideoRepository{
		collection: db.Collection(videosCollection),
		logger:     logger,
	}
}

func (r *MongoVideoRepository) Create(ctx context.Context, video *domain.Video) error {
	if video.ID == "" {
		video.ID = uuid.New().String()
	}
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now().UTC()
	}

	doc := videoDocument{
		ID:         video.ID,
		Title:      video.Title,
		URL:        video.URL,
		UploadSize: video.UploadSize,
		CreatedAt:  video.CreatedAt,
	}
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Err(err).Str("title", video.Title).Msg("Failed to insert video")
		return fmt.Errorf("failed to insert video: %v", err)
	}
	return nil
}

func (r *MongoVideoRepository) List(ctx context.Context) ([]domain.Video, error) {
	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %v", err)
	}
	defer cursor.Close(ctx)

	videos := make([]domain.Video, 0)
	for cursor.Next(ctx) {
		var doc videoDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode video: %v", err)
		}
		videos = append(videos, domain.Video{
			ID:         doc.ID,
			Title:      doc.Title,
			URL:        doc.URL,
			UploadSize: doc.UploadSize,
			CreatedAt:  doc.CreatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read videos: %v", err)
	}
	return videos, nil
}
