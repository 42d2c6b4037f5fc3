package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-backend/internal/platform/config"
	"hrms-backend/internal/platform/storeerr"
)

const (
	CollectionEmployees  = "employees"
	CollectionAttendance = "attendance"

	IndexEmployeeID     = "uq_employee_id"
	IndexEmployeeEmail  = "uq_email"
	IndexAttendanceDate = "uq_employee_date"
)

// Store bundles the client and database handle. It is opened once at
// startup and closed on shutdown.
type Store struct {
	Client       *mongo.Client
	DB           *mongo.Database
	Transactions bool
}

func Connect(ctx context.Context, c config.MongoConfig) (*Store, error) {
	opts := options.Client().
		ApplyURI(c.URI).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &Store{Client: client, DB: client.Database(c.Database), Transactions: c.Transactions}, nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, nil)
}

// EnsureIndexes creates the unique indexes the data model relies on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(CollectionEmployees).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee_id", Value: 1}}, Options: options.Index().SetName(IndexEmployeeID).SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetName(IndexEmployeeEmail).SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure employee indexes: %w", err)
	}
	_, err = db.Collection(CollectionAttendance).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "employee", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetName(IndexAttendanceDate).SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure attendance indexes: %w", err)
	}
	return nil
}

// Translate maps driver errors to storeerr values. keys maps an index name
// to the payload field it guards.
func Translate(err error, keys map[string]string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return storeerr.ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		msg := err.Error()
		for index, key := range keys {
			if strings.Contains(msg, index) {
				return storeerr.Duplicate(key)
			}
		}
		return storeerr.ErrDuplicate
	}
	if mongo.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", storeerr.ErrUnavailable, err)
	}
	return err
}
