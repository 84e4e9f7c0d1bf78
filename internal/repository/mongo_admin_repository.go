package repository

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/irahulsinghrajput/BrandMark/internal/model"
)

// MongoAdminRepository is the MongoDB implementation of AdminRepository.
type MongoAdminRepository struct {
	coll *mongo.Collection
	meta *mongo.Collection
}

func NewMongoAdminRepository(db *mongo.Database) *MongoAdminRepository {
	return &MongoAdminRepository{coll: db.Collection(collAdmins), meta: db.Collection(collMeta)}
}

var _ AdminRepository = (*MongoAdminRepository)(nil)

const (
	bootstrapMarkerID = "admin_bootstrap"
	// bootstrapClaimTTL bounds how long a claim without an admin behind it
	// blocks other bootstrap attempts.
	bootstrapClaimTTL = time.Minute
)

// CreateFirst claims a fixed marker document; the unique _id makes the
// claim succeed for exactly one caller. The claim is released if the admin
// insert fails.
func (r *MongoAdminRepository) CreateFirst(ctx context.Context, a *model.Admin) error {
	n, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrAdminsExist
	}
	claimedAt, err := r.claimBootstrap(ctx)
	if err != nil {
		return err
	}
	a.Role = model.RoleSuperAdmin
	a.IsActive = true
	if err := r.Create(ctx, a); err != nil {
		r.releaseBootstrap(ctx, claimedAt)
		return err
	}
	return nil
}

// claimBootstrap inserts the marker. Only reached while no admin exists, so
// a marker older than bootstrapClaimTTL belongs to a bootstrap that died
// mid-way and is replaced.
func (r *MongoAdminRepository) claimBootstrap(ctx context.Context) (time.Time, error) {
	now := time.Now().UTC().Truncate(time.Millisecond)
	marker := bson.M{"_id": bootstrapMarkerID, "createdAt": now}
	_, err := r.meta.InsertOne(ctx, marker)
	if err == nil {
		return now, nil
	}
	if !mongo.IsDuplicateKeyError(err) {
		return time.Time{}, err
	}
	res, err := r.meta.DeleteOne(ctx, bson.M{
		"_id":       bootstrapMarkerID,
		"createdAt": bson.M{"$lt": now.Add(-bootstrapClaimTTL)},
	})
	if err != nil {
		return time.Time{}, err
	}
	if res.DeletedCount == 0 {
		return time.Time{}, ErrAdminsExist
	}
	if _, err := r.meta.InsertOne(ctx, marker); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return time.Time{}, ErrAdminsExist
		}
		return time.Time{}, err
	}
	slog.Warn("replaced stale admin bootstrap marker")
	return now, nil
}

// releaseBootstrap deletes this caller's marker. It runs even when ctx is
// already done, since a failed insert is often a timeout.
func (r *MongoAdminRepository) releaseBootstrap(ctx context.Context, claimedAt time.Time) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()
	if _, err := r.meta.DeleteOne(ctx, bson.M{"_id": bootstrapMarkerID, "createdAt": claimedAt}); err != nil {
		slog.Error("failed to release admin bootstrap marker", "error", err)
	}
}

func (r *MongoAdminRepository) Create(ctx context.Context, a *model.Admin) error {
	now := time.Now().UTC()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := r.coll.InsertOne(ctx, a)
	return mapMongoError(err)
}

func (r *MongoAdminRepository) findOne(ctx context.Context, filter bson.M) (*model.Admin, error) {
	var a model.Admin
	if err := r.coll.FindOne(ctx, filter).Decode(&a); err != nil {
		return nil, mapMongoError(err)
	}
	return &a, nil
}

func (r *MongoAdminRepository) FindByID(ctx context.Context, id string) (*model.Admin, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *MongoAdminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *MongoAdminRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *MongoAdminRepository) List(ctx context.Context) ([]*model.Admin, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, err
	}
	admins := []*model.Admin{}
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *MongoAdminRepository) update(ctx context.Context, id string, set bson.M) (*model.Admin, error) {
	if !validID(id) {
		return nil, ErrNotFound
	}
	set["updatedAt"] = time.Now().UTC()
	var a model.Admin
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&a)
	if err != nil {
		return nil, mapMongoError(err)
	}
	return &a, nil
}

func (r *MongoAdminRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.update(ctx, id, bson.M{"lastLogin": at})
	return err
}

func (r *MongoAdminRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	_, err := r.update(ctx, id, bson.M{"password": hash})
	return err
}

func (r *MongoAdminRepository) SetActive(ctx context.Context, id string, active bool) (*model.Admin, error) {
	return r.update(ctx, id, bson.M{"isActive": active})
}
