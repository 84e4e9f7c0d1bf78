package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

const (
	collAdmins      = "admins"
	collContacts    = "contacts"
	collCareers     = "careers"
	collQuotes      = "quotes"
	collSubscribers = "newsletters"
	collBlogs       = "blogs"
	collMeta        = "meta"
)

// NewMongo connects to uri and verifies the primary is reachable.
func NewMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetConnectTimeout(10*time.Second))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// mongoPinger adapts a client to DB.
type mongoPinger struct{ client *mongo.Client }

func (p mongoPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

// NewMongoStore wires every Mongo*Repository onto database dbName.
func NewMongoStore(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	return &Store{
		DB:          mongoPinger{client: client},
		Admins:      NewMongoAdminRepository(db),
		Contacts:    NewMongoContactRepository(db),
		Careers:     NewMongoCareerRepository(db),
		Quotes:      NewMongoQuoteRepository(db),
		Subscribers: NewMongoSubscriberRepository(db),
		Blogs:       NewMongoBlogRepository(db),
		Dashboard:   NewMongoDashboardRepository(db),
		Close: func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(ctx)
		},
	}
}

// EnsureIndexes creates the unique and sort indexes the repositories rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)
	specs := map[string][]mongo.IndexModel{
		collAdmins:      {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		collSubscribers: {{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique}},
		collBlogs: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "published", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		collContacts: {{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		collCareers:  {{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
		collQuotes:   {{Keys: bson.D{{Key: "createdAt", Value: -1}}}},
	}
	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("indexes on %s: %w", coll, err)
		}
	}
	return nil
}

// DropAll drops every collection the application owns.
func DropAll(ctx context.Context, db *mongo.Database) error {
	for _, coll := range []string{collAdmins, collContacts, collCareers, collQuotes, collSubscribers, collBlogs, collMeta} {
		if err := db.Collection(coll).Drop(ctx); err != nil {
			return fmt.Errorf("drop %s: %w", coll, err)
		}
	}
	return nil
}

func mapMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return ErrDuplicate
	default:
		return err
	}
}

// mongoList counts and fetches one page of coll matching filter, newest first.
func mongoList[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sortField string, page model.Page, projection bson.M) ([]*T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: -1}}).
		SetSkip(int64(page.Offset())).
		SetLimit(int64(page.Limit))
	if projection != nil {
		opts.SetProjection(projection)
	}
	cur, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list %s: %w", coll.Name(), err)
	}
	items := []*T{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// mongoSetStatus updates the status field of one document and returns it.
func mongoSetStatus[T any](ctx context.Context, coll *mongo.Collection, id, status string) (*T, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var out T
	err := coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return nil, mapMongoError(err)
	}
	return &out, nil
}
