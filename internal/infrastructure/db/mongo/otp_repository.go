package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

const collectionOtps = "otps"

// OtpRepository stores at most one live passcode challenge per plate. The
// unique index on plate_number plus upsert writes make reissue race-safe:
// a new challenge atomically replaces the old one.
type OtpRepository struct {
	col *mongo.Collection
}

func NewOtpRepository(db *mongo.Database) *OtpRepository {
	return &OtpRepository{col: db.Collection(collectionOtps)}
}

func (r *OtpRepository) Upsert(ctx context.Context, challenge *domain.OtpChallenge) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"otp_hash":   challenge.OtpHash,
		"expires_at": challenge.ExpiresAt,
		"attempts":   challenge.Attempts,
		"created_at": challenge.CreatedAt,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.col.UpdateOne(ctx, bson.M{"plate_number": challenge.PlateNumber}, update, opts); err != nil {
		return fmt.Errorf("upsert otp challenge: %w", err)
	}
	return nil
}

func (r *OtpRepository) FindByPlate(ctx context.Context, plate string) (*domain.OtpChallenge, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var challenge domain.OtpChallenge
	err := r.col.FindOne(ctx, bson.M{"plate_number": plate}).Decode(&challenge)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNoChallenge
		}
		return nil, fmt.Errorf("find otp challenge: %w", err)
	}
	return &challenge, nil
}

func (r *OtpRepository) IncrementAttempts(ctx context.Context, plate string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"plate_number": plate}, bson.M{"$inc": bson.M{"attempts": 1}})
	if err != nil {
		return fmt.Errorf("increment otp attempts: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNoChallenge
	}
	return nil
}

func (r *OtpRepository) Delete(ctx context.Context, plate string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteOne(ctx, bson.M{"plate_number": plate}); err != nil {
		return fmt.Errorf("delete otp challenge: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique plate index on the otps collection.
func (r *OtpRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "plate_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
