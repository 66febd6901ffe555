package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/towingbuddy/towtrack-api/internal/core/domain"
)

const collectionOwners = "owners"

// OwnerRepository is the Mongo-backed owner directory. The unique index on
// plate_number provides the at-most-one-owner-per-plate guarantee.
type OwnerRepository struct {
	col *mongo.Collection
}

func NewOwnerRepository(db *mongo.Database) *OwnerRepository {
	return &OwnerRepository{col: db.Collection(collectionOwners)}
}

type ownerDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	PlateNumber string             `bson:"plate_number"`
	OwnerName   string             `bson:"owner_name"`
	Phone       string             `bson:"phone,omitempty"`
	Model       string             `bson:"model,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (d *ownerDoc) toDomain() *domain.Owner {
	return &domain.Owner{
		ID:          d.ID.Hex(),
		PlateNumber: d.PlateNumber,
		OwnerName:   d.OwnerName,
		Phone:       d.Phone,
		Model:       d.Model,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (r *OwnerRepository) FindByPlate(ctx context.Context, plate string) (*domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc ownerDoc
	err := r.col.FindOne(ctx, bson.M{"plate_number": plate}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrOwnerNotFound
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *OwnerRepository) Create(ctx context.Context, owner *domain.Owner) (*domain.Owner, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := ownerDoc{
		PlateNumber: owner.PlateNumber,
		OwnerName:   owner.OwnerName,
		Phone:       owner.Phone,
		Model:       owner.Model,
		CreatedAt:   owner.CreatedAt,
		UpdatedAt:   owner.UpdatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrOwnerExists
		}
		return nil, fmt.Errorf("insert owner: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		owner.ID = oid.Hex()
	}
	return owner, nil
}

func (r *OwnerRepository) Save(ctx context.Context, owner *domain.Owner) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"owner_name": owner.OwnerName,
		"phone":      owner.Phone,
		"model":      owner.Model,
		"updated_at": owner.UpdatedAt,
	}}
	res, err := r.col.UpdateOne(ctx, bson.M{"plate_number": owner.PlateNumber}, update)
	if err != nil {
		return fmt.Errorf("save owner: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrOwnerNotFound
	}
	return nil
}

// UpsertSnapshot writes the owner contact for a plate in one atomic upsert,
// used on the vehicle-creation path where the caller supplied a snapshot.
func (r *OwnerRepository) UpsertSnapshot(ctx context.Context, plate, name, phone, model string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{
		"$set": bson.M{
			"owner_name": name,
			"phone":      phone,
			"model":      model,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"plate_number": plate,
			"created_at":   now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.col.UpdateOne(ctx, bson.M{"plate_number": plate}, update, opts); err != nil {
		return fmt.Errorf("upsert owner snapshot: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique plate index on the owners collection.
func (r *OwnerRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "plate_number", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
