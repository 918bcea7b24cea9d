package balancerepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/internal/domain"
)

const balancesCollection = "provider_balances"

type balanceDocument struct {
	Provider  string    `bson:"_id"`
	Earnings  float64   `bson:"earnings"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type MongoBalanceRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewMongo(db *mongo.Database, logger zerolog.Logger) IBalanceRepository {
	return &MongoBalanceRepository{
		collection: db.Collection(balancesCollection),
		logger:     logger,
	}
}

func (r *MongoBalanceRepository) IncrementEarnings(ctx context.Context, provider string, amount float64) error {
	// $inc with upsert is the whole ledger contract: additive in the store,
	// zero-baseline row created on first use.
	_, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": provider},
		bson.M{
			"$inc": bson.M{"earnings": amount},
			"$set": bson.M{"updated_at": time.Now().UTC()},
		},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		r.logger.Err(err).Str("provider", provider).Float64("amount", amount).Msg("Failed to increment provider earnings")
		return fmt.Errorf("failed to increment earnings for %s: %v", provider, err)
	}
	return nil
}

func (r *MongoBalanceRepository) GetBalance(ctx context.Context, provider string) (float64, error) {
	var doc balanceDocument
	err := r.collection.FindOne(ctx, bson.M{"_id": provider}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for %s: %v", provider, err)
	}
	return doc.Earnings, nil
}

func (r *MongoBalanceRepository) ListBalances(ctx context.Context) ([]domain.ProviderBalance, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list provider balances: %v", err)
	}
	defer cursor.Close(ctx)

	var balances []domain.ProviderBalance
	for cursor.Next(ctx) {
		var doc balanceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode provider balance: %v", err)
		}
		balances = append(balances, domain.ProviderBalance{
			Provider:  doc.Provider,
			Earnings:  doc.Earnings,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to read provider balances: %v", err)
	}
	return balances, nil
}
