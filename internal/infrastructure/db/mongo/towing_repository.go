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
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

const collectionTowingRecords = "towing_records"

// TowingRepository is the Mongo-backed store of towing events.
type TowingRepository struct {
	col *mongo.Collection
}

func NewTowingRepository(db *mongo.Database) *TowingRepository {
	return &TowingRepository{col: db.Collection(collectionTowingRecords)}
}

type towingDoc struct {
	ID              primitive.ObjectID    `bson:"_id,omitempty"`
	PlateNumber     string                `bson:"plate_number"`
	TowedFrom       string                `bson:"towed_from"`
	TowedTo         string                `bson:"towed_to"`
	Fine            float64               `bson:"fine"`
	Reason          string                `bson:"reason"`
	Owner           *domain.OwnerSnapshot `bson:"owner,omitempty"`
	TowedFromCoords *domain.Coordinates   `bson:"towed_from_coords,omitempty"`
	TowedToCoords   *domain.Coordinates   `bson:"towed_to_coords,omitempty"`
	PaymentStatus   string                `bson:"payment_status"`
	PaymentID       string                `bson:"payment_id,omitempty"`
	PaidAt          *time.Time            `bson:"paid_at,omitempty"`
	CreatedAt       time.Time             `bson:"created_at"`
}

func (d *towingDoc) toDomain() *domain.TowingRecord {
	return &domain.TowingRecord{
		ID:              d.ID.Hex(),
		PlateNumber:     d.PlateNumber,
		TowedFrom:       d.TowedFrom,
		TowedTo:         d.TowedTo,
		Fine:            d.Fine,
		Reason:          d.Reason,
		Owner:           d.Owner,
		TowedFromCoords: d.TowedFromCoords,
		TowedToCoords:   d.TowedToCoords,
		PaymentStatus:   domain.PaymentStatus(d.PaymentStatus),
		PaymentID:       d.PaymentID,
		PaidAt:          d.PaidAt,
		CreatedAt:       d.CreatedAt,
	}
}

func (r *TowingRepository) Create(ctx context.Context, record *domain.TowingRecord) (*domain.TowingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := towingDoc{
		PlateNumber:     record.PlateNumber,
		TowedFrom:       record.TowedFrom,
		TowedTo:         record.TowedTo,
		Fine:            record.Fine,
		Reason:          record.Reason,
		Owner:           record.Owner,
		TowedFromCoords: record.TowedFromCoords,
		TowedToCoords:   record.TowedToCoords,
		PaymentStatus:   string(record.PaymentStatus),
		PaymentID:       record.PaymentID,
		PaidAt:          record.PaidAt,
		CreatedAt:       record.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert towing record: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		record.ID = oid.Hex()
	}
	return record, nil
}

// FindByPlate returns every towing record for a plate, newest first.
func (r *TowingRepository) FindByPlate(ctx context.Context, plate string) ([]*domain.TowingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, bson.M{"plate_number": plate}, opts)
	if err != nil {
		return nil, fmt.Errorf("find towing records: %w", err)
	}
	defer cur.Close(ctx)

	return decodeRecords(ctx, cur)
}

func (r *TowingRepository) FindByID(ctx context.Context, id string) (*domain.TowingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	var doc towingDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("find towing record: %w", err)
	}
	return doc.toDomain(), nil
}

// List returns one page of records, newest first, plus the total count.
func (r *TowingRepository) List(ctx context.Context, page, limit int) ([]*domain.TowingRecord, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count towing records: %w", err)
	}

	skip := int64((page - 1) * limit)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(skip).
		SetLimit(int64(limit))
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list towing records: %w", err)
	}
	defer cur.Close(ctx)

	records, err := decodeRecords(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// UpdatePayment applies a payment transition and returns the updated record.
// PaidAt is only written when the update carries one; an earlier paid_at
// stays in place when the status moves away from paid.
func (r *TowingRepository) UpdatePayment(ctx context.Context, id string, update ports.PaymentUpdate) (*domain.TowingRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRecordNotFound
	}

	set := bson.M{"payment_status": string(update.Status)}
	if update.PaymentID != "" {
		set["payment_id"] = update.PaymentID
	}
	if update.PaidAt != nil {
		set["paid_at"] = *update.PaidAt
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc towingDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, fmt.Errorf("update payment: %w", err)
	}
	return doc.toDomain(), nil
}

// EnsureIndexes creates the lookup and ordering indexes on the collection.
func (r *TowingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "plate_number", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func decodeRecords(ctx context.Context, cur *mongo.Cursor) ([]*domain.TowingRecord, error) {
	records := make([]*domain.TowingRecord, 0)
	for cur.Next(ctx) {
		var doc towingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode towing record: %w", err)
		}
		records = append(records, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate towing records: %w", err)
	}
	return records, nil
}
