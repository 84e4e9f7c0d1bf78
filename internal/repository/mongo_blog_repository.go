package repository

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// MongoBlogRepository is the MongoDB implementation of BlogRepository.
type MongoBlogRepository struct {
	coll *mongo.Collection
}

func NewMongoBlogRepository(db *mongo.Database) *MongoBlogRepository {
	return &MongoBlogRepository{coll: db.Collection(collBlogs)}
}

var _ BlogRepository = (*MongoBlogRepository)(nil)

func (r *MongoBlogRepository) Create(ctx context.Context, p *model.BlogPost) error {
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.Views = 0
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Tags = tagsArg(p.Tags)
	_, err := r.coll.InsertOne(ctx, p)
	return mapMongoError(err)
}

func (r *MongoBlogRepository) FindByID(ctx context.Context, id string) (*model.BlogPost, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	var p model.BlogPost
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, mapMongoError(err)
	}
	return &p, nil
}

func (r *MongoBlogRepository) IncrementViews(ctx context.Context, slug string) (*model.BlogPost, error) {
	var p model.BlogPost
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"slug": slug, "published": true},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&p)
	if err != nil {
		return nil, mapMongoError(err)
	}
	return &p, nil
}

// Update leaves views untouched.
func (r *MongoBlogRepository) Update(ctx context.Context, p *model.BlogPost) error {
	if !validID(p.ID) {
		return ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	var saved model.BlogPost
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": p.ID},
		bson.M{"$set": bson.M{
			"title":         p.Title,
			"slug":          p.Slug,
			"author":        p.Author,
			"excerpt":       p.Excerpt,
			"content":       p.Content,
			"featuredImage": p.FeaturedImage,
			"category":      p.Category,
			"tags":          tagsArg(p.Tags),
			"published":     p.Published,
			"updatedAt":     p.UpdatedAt,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&saved)
	if err != nil {
		return mapMongoError(err)
	}
	p.Views = saved.Views
	return nil
}

func (r *MongoBlogRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return ErrNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoBlogRepository) List(ctx context.Context, opts model.BlogListOptions) ([]*model.BlogPost, int64, error) {
	filter := bson.M{}
	var projection bson.M
	if opts.PublishedOnly {
		filter["published"] = true
		projection = bson.M{"content": 0}
	}
	if c := strings.TrimSpace(opts.Category); c != "" {
		filter["category"] = c
	}
	if t := strings.TrimSpace(opts.Tag); t != "" {
		filter["tags"] = t
	}
	return mongoList[model.BlogPost](ctx, r.coll, filter, "createdAt", opts.Page, projection)
}
