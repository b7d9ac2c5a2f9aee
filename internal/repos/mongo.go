package repos

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"toystore/internal/domain"
)

// ConnectMongo builds a client pinned to Stable API v1. The driver connects
// lazily, so an unreachable server only shows up on the first operation.
func ConnectMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	return mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
}

// PingMongo runs the ping command against the admin database.
func PingMongo(ctx context.Context, client *mongo.Client) error {
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// MongoToyRepo keeps toys as documents keyed by ObjectID.
type MongoToyRepo struct{ coll *mongo.Collection }

func NewMongoToyRepo(coll *mongo.Collection) *MongoToyRepo { return &MongoToyRepo{coll: coll} }

func (r *MongoToyRepo) Name() string { return "mongo" }

func (r *MongoToyRepo) Ping(ctx context.Context) error {
	return r.coll.Database().Client().Ping(ctx, nil)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidID, id)
	}
	return oid, nil
}

func priceSort(d domain.Direction) bson.D {
	switch d {
	case domain.DirAsc:
		return bson.D{{Key: "price", Value: 1}, {Key: "_id", Value: 1}}
	case domain.DirDesc:
		return bson.D{{Key: "price", Value: -1}, {Key: "_id", Value: -1}}
	}
	return nil
}

func listOptions(q domain.ListQuery) *options.FindOptions {
	opts := options.Find()
	if q.Limit != nil {
		opts.SetLimit(int64(*q.Limit))
	}
	if s := priceSort(q.Sort); s != nil {
		opts.SetSort(s)
	}
	if q.PhotoOnly {
		opts.SetProjection(bson.D{{Key: "photoUrl", Value: 1}, {Key: "_id", Value: 0}})
	}
	return opts
}

func filterDoc(f domain.Filter) bson.D {
	doc := bson.D{}
	if f.ToyName != nil {
		doc = append(doc, bson.E{Key: "toyName", Value: *f.ToyName})
	}
	if f.Category != nil {
		doc = append(doc, bson.E{Key: "category", Value: *f.Category})
	}
	if f.SellerEmail != nil {
		doc = append(doc, bson.E{Key: "sellerEmail", Value: *f.SellerEmail})
	}
	return doc
}

// searchFilter matches keyword literally, case-insensitively, anywhere in toyName.
func searchFilter(keyword string) bson.D {
	return bson.D{{Key: "toyName", Value: primitive.Regex{Pattern: regexp.QuoteMeta(keyword), Options: "i"}}}
}

func setDoc(t domain.Toy) bson.D {
	return bson.D{{Key: "$set", Value: bson.D{
		{Key: "toyName", Value: t.ToyName},
		{Key: "price", Value: t.Price},
		{Key: "photoUrl", Value: t.PhotoURL},
		{Key: "availableQuantity", Value: t.AvailableQuantity},
		{Key: "ratings", Value: t.Ratings},
		{Key: "description", Value: t.Description},
		{Key: "category", Value: t.Category},
	}}}
}

func (r *MongoToyRepo) List(ctx context.Context, q domain.ListQuery) ([]domain.Toy, error) {
	out := []domain.Toy{}
	err := r.findAll(ctx, bson.D{}, listOptions(q), &out)
	return out, err
}

func (r *MongoToyRepo) ListPhotos(ctx context.Context, q domain.ListQuery) ([]domain.PhotoLink, error) {
	q.PhotoOnly = true
	out := []domain.PhotoLink{}
	err := r.findAll(ctx, bson.D{}, listOptions(q), &out)
	return out, err
}

// Find returns toys matching f. A limit of 0 returns every match.
func (r *MongoToyRepo) Find(ctx context.Context, f domain.Filter, limit int) ([]domain.Toy, error) {
	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}
	out := []domain.Toy{}
	err := r.findAll(ctx, filterDoc(f), opts, &out)
	return out, err
}

func (r *MongoToyRepo) findAll(ctx context.Context, filter bson.D, opts *options.FindOptions, out any) error {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

// Get returns nil without error when no toy has the id.
func (r *MongoToyRepo) Get(ctx context.Context, id string) (*domain.Toy, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var t domain.Toy
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&t)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *MongoToyRepo) Insert(ctx context.Context, t domain.Toy) (domain.InsertResult, error) {
	t.ID = ""
	res, err := r.coll.InsertOne(ctx, t)
	if err != nil {
		return domain.InsertResult{}, err
	}
	id := fmt.Sprint(res.InsertedID)
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		id = oid.Hex()
	}
	return domain.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// Update $sets the mutable fields of the toy with t.ID.
func (r *MongoToyRepo) Update(ctx context.Context, t domain.Toy) (domain.UpdateResult, error) {
	oid, err := objectID(t.ID)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: oid}}, setDoc(t))
	if err != nil {
		return domain.UpdateResult{}, err
	}
	return domain.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}, nil
}

func (r *MongoToyRepo) Delete(ctx context.Context, id string) (domain.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return domain.DeleteResult{}, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return domain.DeleteResult{}, err
	}
	return domain.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// EnsureNameIndex is a no-op on the server when the index already exists.
func (r *MongoToyRepo) EnsureNameIndex(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "toyName", Value: 1}},
		Options: options.Index().SetName(domain.SearchIndexName),
	})
	return err
}

func (r *MongoToyRepo) SearchByName(ctx context.Context, keyword string) ([]domain.Toy, error) {
	out := []domain.Toy{}
	err := r.findAll(ctx, searchFilter(keyword), options.Find(), &out)
	return out, err
}
