package withdrawalrepo

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

const withdrawalsCollection = "withdrawal_requests"

type MongoWithdrawalRepository struct {
	collection *mongo.Collection
	logger     zerolog.Logger
}

func NewMongo(db *mongo.Database, logger zerolog.Logger) IWithdrawalRepository {
	return &MongoWithdrawalRepository{
		collection: db.Collection(withdrawalsCollection),
		logger:     logger,
	}
}

func (r *MongoWithdrawalRepository) Create(ctx context.Context, withdrawal *domain.Withdrawal) error {
	if withdrawal.ID == "" {
		withdrawal.ID = uuid.New().String()
	}
	if withdrawal.CreatedAt.IsZero() {
		withdrawal.CreatedAt = time.Now().UTC()
	}

	doc := bson.M{
		"_id":             withdrawal.ID,
		"provider":        withdrawal.Provider,
		"account_name":    withdrawal.AccountName,
		"account_number":  withdrawal.AccountNumber,
		"bank_name":       withdrawal.BankName,
		"phone":           withdrawal.Phone,
		"email":           withdrawal.Email,
		"amount":          withdrawal.Amount,
		"current_balance": withdrawal.CurrentBalance,
		"created_at":      withdrawal.CreatedAt,
	}
	if len(withdrawal.Payload) > 0 {
		var payload bson.M
		if err := bson.UnmarshalExtJSON(withdrawal.Payload, false, &payload); err == nil {
			doc["payload"] = payload
		}
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		r.logger.Err(err).Str("provider", withdrawal.Provider).Msg("Failed to insert withdrawal request")
		return fmt.Errorf("failed to insert withdrawal request: %v", err)
	}
	return nil
}
