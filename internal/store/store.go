// Package store implements user and project persistence on MongoDB.
package store

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	usersCollection    = "users"
	projectsCollection = "projects"
)

// Store owns the database handle and hands out typed collections.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB, verifies the connection and ensures indexes.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to connect to mongodb")
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to ping mongodb")
	}

	s := &Store{client: client, db: client.Database(database)}

	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Users returns the users collection wrapper.
func (s *Store) Users() *Users {
	return &Users{col: s.db.Collection(usersCollection)}
}

// Projects returns the projects collection wrapper.
func (s *Store) Projects() *Projects {
	return &Projects{col: s.db.Collection(projectsCollection)}
}

// Email uniqueness is enforced here, not by application-level locking.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to create unique email index")
	}
	return nil
}
