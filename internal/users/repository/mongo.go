package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/userhub/user-service/internal/users"
)

// MongoRepository implements Repository on a MongoDB collection. Records are
// keyed by ObjectID; list order is natural storage order.
type MongoRepository struct {
	col *mongo.Collection
}

func NewMongoRepository(col *mongo.Collection) *MongoRepository {
	return &MongoRepository{col: col}
}

func (r *MongoRepository) List(ctx context.Context) ([]users.User, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []users.User{}
	for cur.Next(ctx) {
		var u users.User
		if err := cur.Decode(&u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, cur.Err()
}

func (r *MongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*users.User, error) {
	var u users.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, users.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *MongoRepository) Insert(ctx context.Context, u *users.User) (*users.User, error) {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	if _, err := r.col.InsertOne(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *MongoRepository) Update(ctx context.Context, id primitive.ObjectID, p Patch) (*users.User, error) {
	set := bson.M{"updatedAt": time.Now().UTC()}
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Address != nil {
		set["address"] = *p.Address
	}
	if p.PhoneNumber != nil {
		set["phoneNumber"] = *p.PhoneNumber
	}
	if p.CompanyName != nil {
		set["companyName"] = *p.CompanyName
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated users.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, users.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}
