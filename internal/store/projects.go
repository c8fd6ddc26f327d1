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

// Projects is the projects collection.
type Projects struct {
	col *mongo.Collection
}

func (p *Projects) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	res, err := p.col.InsertOne(ctx, project)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to insert project")
	}

	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		project.ID = id
	}

	return project, nil
}

func (p *Projects) Get(ctx context.Context, id string) (*models.Project, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrInvalidID
	}

	var project models.Project
	if err := p.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&project); err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrRecordNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to find project")
	}
	return &project, nil
}

func (p *Projects) List(ctx context.Context) ([]*models.Project, error) {
	cursor, err := p.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to list projects")
	}

	projects := []*models.Project{}
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to decode projects")
	}
	return projects, nil
}

func (p *Projects) Update(ctx context.Context, id string, in models.ProjectUpdate) (*models.Project, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrInvalidID
	}

	var project models.Project
	err = p.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": projectUpdateDoc(in, time.Now())},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&project)
	if err != nil {
		if goerrors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrRecordNotFound
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update project")
	}

	return &project, nil
}

func (p *Projects) Delete(ctx context.Context, id string) error {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return auth.ErrInvalidID
	}

	res, err := p.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete project")
	}
	if res.DeletedCount == 0 {
		return auth.ErrRecordNotFound
	}
	return nil
}

func (p *Projects) DeleteAll(ctx context.Context) (int64, error) {
	res, err := p.col.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to delete projects")
	}
	return res.DeletedCount, nil
}

func projectUpdateDoc(in models.ProjectUpdate, now time.Time) bson.M {
	doc := bson.M{"updated_at": now}
	if in.Name != "" {
		doc["name"] = in.Name
	}
	if in.Description != "" {
		doc["description"] = in.Description
	}
	return doc
}
