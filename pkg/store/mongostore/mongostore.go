// Package mongostore provides the MongoDB-backed store.Store
// implementation. Uniqueness constraints are enforced by compound unique
// indexes and counter bumps use $inc so they stay atomic per document.
package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/mocksmith/mocksmith/pkg/mock"
	"github.com/mocksmith/mocksmith/pkg/store"
)

// Collection names.
const (
	collMocks     = "mock_configs"
	collEndpoints = "endpoints"
	collResources = "mock_data"
)

// Store persists documents in MongoDB.
type Store struct {
	mocks     *mongo.Collection
	endpoints *mongo.Collection
	resources *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// New wraps an existing database handle.
func New(db *mongo.Database) *Store {
	return &Store{
		mocks:     db.Collection(collMocks),
		endpoints: db.Collection(collEndpoints),
		resources: db.Collection(collResources),
	}
}

// Connect dials MongoDB and returns a store over the named database.
func Connect(ctx context.Context, uri, database string) (*Store, *mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, nil, err
	}
	return New(client.Database(database)), client, nil
}

// EnsureIndexes creates the unique and sorting indexes the domain relies
// on. Safe to call on every startup.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.mocks.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "basePath", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.endpoints.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "mockConfigId", Value: 1}, {Key: "method", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}

	_, err = s.resources.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "mockConfigId", Value: 1}, {Key: "resourceId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "mockConfigId", Value: 1}, {Key: "createdAt", Value: 1}},
		},
	})
	return err
}

func translateErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return store.ErrDuplicate
	default:
		return err
	}
}

// --- Mocks ---

func (s *Store) CreateMock(ctx context.Context, cfg *mock.Config) error {
	_, err := s.mocks.InsertOne(ctx, cfg)
	return translateErr(err)
}

func (s *Store) GetMock(ctx context.Context, mockID string) (*mock.Config, error) {
	var cfg mock.Config
	err := s.mocks.FindOne(ctx, bson.M{"_id": mockID}).Decode(&cfg)
	if err != nil {
		return nil, translateErr(err)
	}
	return &cfg, nil
}

func (s *Store) GetMockByBasePath(ctx context.Context, mockID, basePath string) (*mock.Config, error) {
	var cfg mock.Config
	err := s.mocks.FindOne(ctx, bson.M{"_id": mockID, "basePath": basePath}).Decode(&cfg)
	if err != nil {
		return nil, translateErr(err)
	}
	return &cfg, nil
}

func (s *Store) ListMocks(ctx context.Context, organizationID string) ([]*mock.Config, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := s.mocks.Find(ctx, bson.M{"organizationId": organizationID}, opts)
	if err != nil {
		return nil, err
	}
	var out []*mock.Config
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) UpdateMock(ctx context.Context, cfg *mock.Config) error {
	res, err := s.mocks.ReplaceOne(ctx, bson.M{"_id": cfg.ID}, cfg)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMock(ctx context.Context, mockID string) error {
	res, err := s.mocks.DeleteOne(ctx, bson.M{"_id": mockID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CountActiveMocks(ctx context.Context, organizationID string, now time.Time) (int, error) {
	filter := bson.M{
		"organizationId": organizationID,
		"isActive":       true,
		"$or": []bson.M{
			{"expiresAt": nil},
			{"expiresAt": bson.M{"$gt": now}},
		},
	}
	n, err := s.mocks.CountDocuments(ctx, filter)
	return int(n), err
}

func (s *Store) RecordMockAccess(ctx context.Context, mockID string, resetDaily bool, now time.Time) error {
	update := bson.M{
		"$inc": bson.M{"accessCount": 1},
		"$set": bson.M{"lastRequestDate": now, "lastAccessedAt": now},
	}
	if resetDaily {
		update["$set"].(bson.M)["dailyRequestCount"] = int64(1)
	} else {
		update["$inc"].(bson.M)["dailyRequestCount"] = 1
	}

	res, err := s.mocks.UpdateOne(ctx, bson.M{"_id": mockID}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// --- Endpoints ---

func (s *Store) CreateEndpoints(ctx context.Context, endpoints []*mock.Endpoint) error {
	docs := make([]any, len(endpoints))
	for i, ep := range endpoints {
		docs[i] = ep
	}
	_, err := s.endpoints.InsertMany(ctx, docs)
	return translateErr(err)
}

func (s *Store) GetEndpoint(ctx context.Context, mockID, method string) (*mock.Endpoint, error) {
	var ep mock.Endpoint
	err := s.endpoints.FindOne(ctx, bson.M{"mockConfigId": mockID, "method": method}).Decode(&ep)
	if err != nil {
		return nil, translateErr(err)
	}
	return &ep, nil
}

func (s *Store) UpdateEndpoint(ctx context.Context, ep *mock.Endpoint) error {
	res, err := s.endpoints.ReplaceOne(ctx, bson.M{"_id": ep.ID}, ep)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) IncrementEndpointAccess(ctx context.Context, endpointID string) error {
	res, err := s.endpoints.UpdateOne(ctx,
		bson.M{"_id": endpointID},
		bson.M{"$inc": bson.M{"accessCount": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteEndpoints(ctx context.Context, mockID string) error {
	_, err := s.endpoints.DeleteMany(ctx, bson.M{"mockConfigId": mockID})
	return err
}

// --- Resources ---

func (s *Store) CreateResource(ctx context.Context, d *mock.Data) error {
	_, err := s.resources.InsertOne(ctx, d)
	return translateErr(err)
}

func (s *Store) GetResource(ctx context.Context, mockID, resourceID string) (*mock.Data, error) {
	var d mock.Data
	err := s.resources.FindOne(ctx, bson.M{"mockConfigId": mockID, "resourceId": resourceID}).Decode(&d)
	if err != nil {
		return nil, translateErr(err)
	}
	return &d, nil
}

func (s *Store) ListResources(ctx context.Context, mockID string, offset, limit int) ([]*mock.Data, int, error) {
	filter := bson.M{"mockConfigId": mockID}

	total, err := s.resources.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := s.resources.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	var out []*mock.Data
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, err
	}
	return out, int(total), nil
}

func (s *Store) UpdateResource(ctx context.Context, d *mock.Data) error {
	filter := bson.M{"mockConfigId": d.MockConfigID, "resourceId": d.ResourceID}
	update := bson.M{"$set": bson.M{"data": d.Payload, "updatedAt": d.UpdatedAt}}

	res, err := s.resources.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateErr(err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteResource(ctx context.Context, mockID, resourceID string) error {
	res, err := s.resources.DeleteOne(ctx, bson.M{"mockConfigId": mockID, "resourceId": resourceID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteResources(ctx context.Context, mockID string) (int64, error) {
	res, err := s.resources.DeleteMany(ctx, bson.M{"mockConfigId": mockID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) DeleteOldestResources(ctx context.Context, mockID string, n int) (int64, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(n)).
		SetProjection(bson.M{"_id": 1})

	cur, err := s.resources.Find(ctx, bson.M{"mockConfigId": mockID}, opts)
	if err != nil {
		return 0, err
	}
	var docs []struct {
		ID string `bson:"_id"`
	}
	if err := cur.All(ctx, &docs); err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}

	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	res, err := s.resources.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) CountResources(ctx context.Context, mockID string) (int, error) {
	n, err := s.resources.CountDocuments(ctx, bson.M{"mockConfigId": mockID})
	return int(n), err
}
