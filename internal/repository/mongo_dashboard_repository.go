package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// MongoDashboardRepository reads counts independently; under concurrent
// writes they may be approximate but the call does not fail.
type MongoDashboardRepository struct {
	db *mongo.Database
}

func NewMongoDashboardRepository(db *mongo.Database) *MongoDashboardRepository {
	return &MongoDashboardRepository{db: db}
}

var _ DashboardRepository = (*MongoDashboardRepository)(nil)

func (r *MongoDashboardRepository) Dashboard(ctx context.Context, recent int) (*model.Dashboard, error) {
	d := &model.Dashboard{}
	s := &d.Stats
	counts := []struct {
		coll   string
		filter bson.M
		dst    *int64
	}{
		{collContacts, bson.M{}, &s.Contacts.Total},
		{collContacts, bson.M{"status": "new"}, &s.Contacts.New},
		{collCareers, bson.M{}, &s.Applications.Total},
		{collCareers, bson.M{"status": "new"}, &s.Applications.New},
		{collQuotes, bson.M{}, &s.Quotes.Total},
		{collQuotes, bson.M{"status": "new"}, &s.Quotes.New},
		{collSubscribers, bson.M{"isActive": true}, &s.Subscribers},
		{collBlogs, bson.M{}, &s.Blogs.Total},
		{collBlogs, bson.M{"published": true}, &s.Blogs.Published},
	}
	for _, c := range counts {
		n, err := r.db.Collection(c.coll).CountDocuments(ctx, c.filter)
		if err != nil {
			return nil, fmt.Errorf("dashboard count %s: %w", c.coll, err)
		}
		*c.dst = n
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(int64(recent))

	d.RecentActivities.Contacts = []model.RecentContact{}
	cur, err := r.db.Collection(collContacts).Find(ctx, bson.M{},
		opts.SetProjection(bson.M{"name": 1, "email": 1, "subject": 1, "status": 1, "createdAt": 1}))
	if err != nil {
		return nil, fmt.Errorf("recent contacts: %w", err)
	}
	if err := cur.All(ctx, &d.RecentActivities.Contacts); err != nil {
		return nil, err
	}

	d.RecentActivities.Applications = []model.RecentApplication{}
	cur, err = r.db.Collection(collCareers).Find(ctx, bson.M{},
		opts.SetProjection(bson.M{"name": 1, "position": 1, "email": 1, "status": 1, "createdAt": 1}))
	if err != nil {
		return nil, fmt.Errorf("recent applications: %w", err)
	}
	if err := cur.All(ctx, &d.RecentActivities.Applications); err != nil {
		return nil, err
	}
	return d, nil
}
