package repository

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// MongoContactRepository is the MongoDB implementation of ContactRepository.
type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{coll: db.Collection(collContacts)}
}

var _ ContactRepository = (*MongoContactRepository)(nil)

func (r *MongoContactRepository) Save(ctx context.Context, c *model.Contact) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, c)
	return mapMongoError(err)
}

func (r *MongoContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, int64, error) {
	filter := bson.M{}
	if s := strings.TrimSpace(opts.Status); s != "" {
		filter["status"] = s
	}
	return mongoList[model.Contact](ctx, r.coll, filter, "createdAt", opts.Page, nil)
}

func (r *MongoContactRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Contact, error) {
	return mongoSetStatus[model.Contact](ctx, r.coll, id, status)
}

// MongoCareerRepository is the MongoDB implementation of CareerRepository.
type MongoCareerRepository struct {
	coll *mongo.Collection
}

func NewMongoCareerRepository(db *mongo.Database) *MongoCareerRepository {
	return &MongoCareerRepository{coll: db.Collection(collCareers)}
}

var _ CareerRepository = (*MongoCareerRepository)(nil)

func (r *MongoCareerRepository) Save(ctx context.Context, c *model.CareerApplication) error {
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, c)
	return mapMongoError(err)
}

func (r *MongoCareerRepository) List(ctx context.Context, opts model.CareerListOptions) ([]*model.CareerApplication, int64, error) {
	filter := bson.M{}
	if s := strings.TrimSpace(opts.Status); s != "" {
		filter["status"] = s
	}
	if p := strings.TrimSpace(opts.Position); p != "" {
		filter["position"] = bson.M{"$regex": regexp.QuoteMeta(p), "$options": "i"}
	}
	return mongoList[model.CareerApplication](ctx, r.coll, filter, "createdAt", opts.Page, nil)
}

func (r *MongoCareerRepository) UpdateStatus(ctx context.Context, id, status string) (*model.CareerApplication, error) {
	return mongoSetStatus[model.CareerApplication](ctx, r.coll, id, status)
}

// MongoQuoteRepository is the MongoDB implementation of QuoteRepository.
type MongoQuoteRepository struct {
	coll *mongo.Collection
}

func NewMongoQuoteRepository(db *mongo.Database) *MongoQuoteRepository {
	return &MongoQuoteRepository{coll: db.Collection(collQuotes)}
}

var _ QuoteRepository = (*MongoQuoteRepository)(nil)

func (r *MongoQuoteRepository) Save(ctx context.Context, q *model.Quote) error {
	q.ID = uuid.NewString()
	q.CreatedAt = time.Now().UTC()
	_, err := r.coll.InsertOne(ctx, q)
	return mapMongoError(err)
}

func (r *MongoQuoteRepository) List(ctx context.Context, opts model.QuoteListOptions) ([]*model.Quote, int64, error) {
	filter := bson.M{}
	if s := strings.TrimSpace(opts.Status); s != "" {
		filter["status"] = s
	}
	return mongoList[model.Quote](ctx, r.coll, filter, "createdAt", opts.Page, nil)
}

func (r *MongoQuoteRepository) UpdateStatus(ctx context.Context, id, status string) (*model.Quote, error) {
	return mongoSetStatus[model.Quote](ctx, r.coll, id, status)
}
