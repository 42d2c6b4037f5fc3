package attendance

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hrms-backend/internal/employees"
	"hrms-backend/internal/platform/clock"
	"hrms-backend/internal/platform/mongodb"
	"hrms-backend/internal/platform/storeerr"
)

// date は "YYYY-MM-DD" 文字列で保存（タイムゾーンに依存しない暦日）
type recordDoc struct {
	ID        string    `bson:"_id"`
	Employee  string    `bson:"employee"`
	Date      string    `bson:"date"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d recordDoc) toModel() (Record, error) {
	day, err := time.ParseInLocation(clock.DateLayout, d.Date, time.UTC)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:          d.ID,
		EmployeeRef: d.Employee,
		Date:        day,
		Status:      Status(d.Status),
		CreatedAt:   d.CreatedAt.UTC(),
		UpdatedAt:   d.UpdatedAt.UTC(),
	}, nil
}

var mongoKeys = map[string]string{
	mongodb.IndexAttendanceDate: "date",
}

type MongoStore struct {
	attendance *mongo.Collection
	employees  *mongo.Collection
	ids        clock.IDGen
	clock      clock.Clock
	timeout    time.Duration
}

func NewMongoStore(store *mongodb.Store, ids clock.IDGen, timeout time.Duration) *MongoStore {
	return &MongoStore{
		attendance: store.DB.Collection(mongodb.CollectionAttendance),
		employees:  store.DB.Collection(mongodb.CollectionEmployees),
		ids:        ids,
		clock:      clock.New(time.UTC),
		timeout:    timeout,
	}
}

func (s *MongoStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func dayFilter(employeeRef string, day time.Time) bson.M {
	return bson.M{"employee": employeeRef, "date": day.Format(clock.DateLayout)}
}

func (s *MongoStore) Find(ctx context.Context, employeeRef string, day time.Time) (*Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var doc recordDoc
	if err := s.attendance.FindOne(ctx, dayFilter(employeeRef, day)).Decode(&doc); err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	r, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Insert は FK が無いぶん、挿入後に親の存在を確認する。
// 削除と競合して親が消えていたら自分の行を取り消して ErrNotFound を返す。
func (s *MongoStore) Insert(ctx context.Context, r *Record) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	id, err := s.ids.New()
	if err != nil {
		return err
	}
	now := s.clock.Now().UTC().Truncate(time.Millisecond)
	doc := recordDoc{
		ID:        id,
		Employee:  r.EmployeeRef,
		Date:      r.Date.Format(clock.DateLayout),
		Status:    string(r.Status),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.attendance.InsertOne(ctx, doc); err != nil {
		return mongodb.Translate(err, mongoKeys)
	}

	n, err := s.employees.CountDocuments(ctx, bson.M{"_id": r.EmployeeRef}, options.Count().SetLimit(1))
	if err != nil {
		return mongodb.Translate(err, nil)
	}
	if n == 0 {
		if _, err := s.attendance.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
			return mongodb.Translate(err, nil)
		}
		return storeerr.ErrNotFound
	}

	r.ID = id
	r.CreatedAt = now
	r.UpdatedAt = now
	return nil
}

func (s *MongoStore) UpdateStatus(ctx context.Context, employeeRef string, day time.Time, status Status) (*Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": s.clock.Now().UTC().Truncate(time.Millisecond),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc recordDoc
	if err := s.attendance.FindOneAndUpdate(ctx, dayFilter(employeeRef, day), update, opts).Decode(&doc); err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	r, err := doc.toModel()
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *MongoStore) ListByEmployee(ctx context.Context, employeeRef string) ([]Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	// YYYY-MM-DD は辞書順 = 日付順
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.attendance.Find(ctx, bson.M{"employee": employeeRef}, opts)
	if err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	var docs []recordDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	out := make([]Record, 0, len(docs))
	for i := range docs {
		r, err := docs[i].toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

type tallyRow struct {
	Key struct {
		Employee string `bson:"employee"`
		Status   string `bson:"status"`
	} `bson:"_id"`
	N int64 `bson:"n"`
}

func (s *MongoStore) TallyByEmployee(ctx context.Context) (map[string]employees.Tally, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "employee", Value: "$employee"}, {Key: "status", Value: "$status"}}},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}
	cur, err := s.attendance.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	var rows []tallyRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, mongodb.Translate(err, nil)
	}
	out := make(map[string]employees.Tally, len(rows))
	for _, row := range rows {
		out[row.Key.Employee] = addTally(out[row.Key.Employee], Status(row.Key.Status), row.N)
	}
	return out, nil
}

func (s *MongoStore) CountOn(ctx context.Context, day time.Time, status string) (int64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	filter := bson.M{"date": day.Format(clock.DateLayout)}
	if status != "" {
		filter["status"] = status
	}
	n, err := s.attendance.CountDocuments(ctx, filter)
	if err != nil {
		return 0, mongodb.Translate(err, nil)
	}
	return n, nil
}
