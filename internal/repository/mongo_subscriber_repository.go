package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// MongoSubscriberRepository is the MongoDB implementation of SubscriberRepository.
type MongoSubscriberRepository struct {
	coll *mongo.Collection
}

func NewMongoSubscriberRepository(db *mongo.Database) *MongoSubscriberRepository {
	return &MongoSubscriberRepository{coll: db.Collection(collSubscribers)}
}

var _ SubscriberRepository = (*MongoSubscriberRepository)(nil)

// Subscribe matches only an inactive row. When the address is already active
// the upsert collides with the unique email index and reports ErrDuplicate.
func (r *MongoSubscriberRepository) Subscribe(ctx context.Context, email string, at time.Time) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": email, "isActive": false},
		bson.M{
			"$set":         bson.M{"isActive": true, "subscribedAt": at, "unsubscribedAt": nil},
			"$setOnInsert": bson.M{"_id": uuid.NewString()},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, mapMongoError(err)
	}
	return &s, nil
}

func (r *MongoSubscriberRepository) Unsubscribe(ctx context.Context, email string, at time.Time) (*model.Subscriber, error) {
	var s model.Subscriber
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"email": email},
		bson.A{bson.M{"$set": bson.M{
			"isActive":       false,
			"unsubscribedAt": bson.M{"$ifNull": bson.A{"$unsubscribedAt", at}},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&s)
	if err != nil {
		return nil, mapMongoError(err)
	}
	return &s, nil
}

func (r *MongoSubscriberRepository) List(ctx context.Context, opts model.SubscriberListOptions) ([]*model.Subscriber, int64, error) {
	return mongoList[model.Subscriber](ctx, r.coll, bson.M{"isActive": opts.Active}, "subscribedAt", opts.Page, nil)
}
