package store

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/mfvaldes/projhub/internal/auth"
	"github.com/mfvaldes/projhub/internal/models"
)

// Users is the users collection.
type Users struct {
	col *mongo.Collection
}

// Create inserts the user. A duplicate email surfaces as ErrEmailExists.
func (u *Users) Create(ctx context.Context, user *models.User) (*models.User, error) {
	res, err := u.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailExists
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert user")
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		user.ID = id
	}

	return user, nil
}

// FindByEmail looks a user up by their unique email, case-sensitive as
// stored.
func (u *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := u.col.FindOne(ctx, bson.M{"email": email}).Decode(&user); err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrIdentityNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to find user by email")
	}
	return &user, nil
}

// Get fetches a user by hex id.
func (u *Users) Get(ctx context.Context, id string) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrInvalidID
	}

	var user models.User
	if err := u.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user); err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrRecordNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to find user")
	}
	return &user, nil
}

// List returns every user.
func (u *Users) List(ctx context.Context) ([]*models.User, error) {
	cursor, err := u.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list users")
	}

	users := []*models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to decode users")
	}
	return users, nil
}

// Update applies the supplied fields and strictly advances updated_at,
// returning the document as it is after the write.
func (u *Users) Update(ctx context.Context, id string, in models.UserUpdate) (*models.User, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrInvalidID
	}

	var user models.User
	err = u.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": userUpdateDoc(in, time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrRecordNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailExists
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update user")
	}

	return &user, nil
}

// Delete removes a user by hex id.
func (u *Users) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return auth.ErrInvalidID
	}

	res, err := u.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete user")
	}
	if res.DeletedCount == 0 {
		return auth.ErrRecordNotFound
	}
	return nil
}

// DeleteAll removes every user and reports how many were present.
func (u *Users) DeleteAll(ctx context.Context) (int64, error) {
	res, err := u.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete users")
	}
	return res.DeletedCount, nil
}

// userUpdateDoc builds the $set document: only supplied fields, plus the
// advancing updated_at stamp.
func userUpdateDoc(in models.UserUpdate, now time.Time) bson.M {
	doc := bson.M{"updated_at": now}
	if in.FirstName != "" {
		doc["firstname"] = in.FirstName
	}
	if in.LastName != "" {
		doc["lastname"] = in.LastName
	}
	if in.Email != "" {
		doc["email"] = in.Email
	}
	return doc
}
