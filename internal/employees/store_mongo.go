package employees

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/mongodb"
	"hrms-backend/internal/platform/storeerr"
)

type employeeDoc struct {
	ID         string    `bson:"_id"`
	EmployeeID string    `bson:"employee_id"`
	FullName   string    `bson:"full_name"`
	Email      string    `bson:"email"`
	Department string    `bson:"department"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d employeeDoc) toModel() Employee {
	return Employee{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		FullName:   d.FullName,
		Email:      d.Email,
		Department: d.Department,
		CreatedAt:  d.CreatedAt.UTC(),
	}
}

var mongoKeys = map[string]string{
	mongodb.IndexEmployeeID:    "employee_id",
	mongodb.IndexEmployeeEmail: "email",
}

type MongoStore struct {
	client       *mongo.Client
	employees    *mongo.Collection
	attendance   *mongo.Collection
	transactions bool
	ids          clock.IDGen
	clock        clock.Clock
	timeout      time.Duration
}

func NewMongoStore(store *mongodb.Store, ids clock.IDGen, timeout time.Duration) *MongoStore {
	return &MongoStore{
		client:       store.Client,
		employees:    store.DB.Collection(mongodb.CollectionEmployees),
		attendance:   store.DB.Collection(mongodb.CollectionAttendance),
		transactions: store.Transactions,
		ids:          ids,
		clock:        clock.New(time.UTC),
		timeout:      timeout,
	}
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *MongoStore) Insert(ctx context.Context, e *Employee) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.ids.New()
	if err != nil {
		return err
	}
	// Mongo stores milliseconds
	now := s.clock.Now().UTC().Truncate(time.Millisecond)
	doc := employeeDoc{
		ID:         id,
		EmployeeID: e.EmployeeID,
		FullName:   e.FullName,
		Email:      e.Email,
		Department: e.Department,
		CreatedAt:  now,
	}
	if _, err := s.employees.InsertOne(ctx, doc); err != nil {
		return mongodb.Translate(err, mongoKeys)
	}
	e.ID = id
	e.CreatedAt = now
	return nil
}

func (s *MongoStore) FindByEmployeeID(ctx context.Context, employeeID string) (*Employee, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc employeeDoc
	if err := s.employees.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&doc); err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	e := doc.toModel()
	return &e, nil
}

func (s *MongoStore) ExistsEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	return s.exists(ctx, bson.M{"employee_id": employeeID})
}

func (s *MongoStore) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return s.exists(ctx, bson.M{"email": email})
}

func (s *MongoStore) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.employees.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, mongodb.Translate(err, nil)
	}
	return n > 0, nil
}

func (s *MongoStore) List(ctx context.Context) ([]Employee, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})
	cur, err := s.employees.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	var docs []employeeDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	out := make([]Employee, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toModel())
	}
	return out, nil
}

func (s *MongoStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	n, err := s.employees.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, mongodb.Translate(err, nil)
	}
	return n, nil
}

// DeleteWithAttendance runs the cascade inside a transaction when the
// deployment supports it. Without transactions it deletes children, then the
// parent, then sweeps children again to catch marks that raced the delete.
func (s *MongoStore) DeleteWithAttendance(ctx context.Context, id string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if s.transactions {
		sess, err := s.client.StartSession()
		if err != nil {
			return mongodb.Translate(err, nil)
		}
		defer sess.EndSession(ctx)

		_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
			return nil, s.cascade(sc, id)
		})
		return s.translateDelete(err)
	}

	if err := s.cascade(ctx, id); err != nil {
		return s.translateDelete(err)
	}
	if _, err := s.attendance.DeleteMany(ctx, bson.M{"employee": id}); err != nil {
		return mongodb.Translate(err, nil)
	}
	return nil
}

func (s *MongoStore) cascade(ctx context.Context, id string) error {
	if _, err := s.attendance.DeleteMany(ctx, bson.M{"employee": id}); err != nil {
		return err
	}
	res, err := s.employees.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return storeerr.ErrNotFound
	}
	return nil
}

func (s *MongoStore) translateDelete(err error) error {
	if errors.Is(err, storeerr.ErrNotFound) {
		return storeerr.ErrNotFound
	}
	return mongodb.Translate(err, nil)
}
