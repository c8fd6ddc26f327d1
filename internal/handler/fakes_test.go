package handler_test

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/mfvaldes/projhub/internal/auth"
	"github.com/mfvaldes/projhub/internal/models"
)

// FakeUsers is an in-memory stand-in for the mongo users collection. It
// mirrors the store's error mapping: unique email, invalid hex ids,
// missing documents.
type FakeUsers struct {
	mu   sync.Mutex
	byID map[string]*models.User
}

func NewFakeUsers() *FakeUsers {
	return &FakeUsers{byID: map[string]*models.User{}}
}

func (f *FakeUsers) Create(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, existing := range f.byID {
		if existing.Email == user.Email {
			return nil, auth.ErrEmailExists
		}
	}

	user.ID = bson.NewObjectID()
	clone := *user
	f.byID[user.ID.Hex()] = &clone
	return user, nil
}

func (f *FakeUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, user := range f.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, auth.ErrIdentityNotFound
}

func (f *FakeUsers) Get(_ context.Context, id string) (*models.User, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, auth.ErrInvalidID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byID[id]
	if !ok {
		return nil, auth.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (f *FakeUsers) List(_ context.Context) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	users := []*models.User{}
	for _, user := range f.byID {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (f *FakeUsers) Update(_ context.Context, id string, in models.UserUpdate) (*models.User, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, auth.ErrInvalidID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	user, ok := f.byID[id]
	if !ok {
		return nil, auth.ErrRecordNotFound
	}

	if in.FirstName != "" {
		user.FirstName = in.FirstName
	}
	if in.LastName != "" {
		user.LastName = in.LastName
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	user.UpdatedAt = time.Now()

	clone := *user
	return &clone, nil
}

func (f *FakeUsers) Delete(_ context.Context, id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return auth.ErrInvalidID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byID[id]; !ok {
		return auth.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *FakeUsers) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := int64(len(f.byID))
	f.byID = map[string]*models.User{}
	return count, nil
}

// FakeProjects mirrors the mongo projects collection.
type FakeProjects struct {
	mu   sync.Mutex
	byID map[string]*models.Project
}

func NewFakeProjects() *FakeProjects {
	return &FakeProjects{byID: map[string]*models.Project{}}
}

func (f *FakeProjects) Create(_ context.Context, project *models.Project) (*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	project.ID = bson.NewObjectID()
	clone := *project
	f.byID[project.ID.Hex()] = &clone
	return project, nil
}

func (f *FakeProjects) Get(_ context.Context, id string) (*models.Project, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, auth.ErrInvalidID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	project, ok := f.byID[id]
	if !ok {
		return nil, auth.ErrRecordNotFound
	}
	clone := *project
	return &clone, nil
}

func (f *FakeProjects) List(_ context.Context) ([]*models.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	projects := []*models.Project{}
	for _, project := range f.byID {
		clone := *project
		projects = append(projects, &clone)
	}
	return projects, nil
}

func (f *FakeProjects) Update(_ context.Context, id string, in models.ProjectUpdate) (*models.Project, error) {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return nil, auth.ErrInvalidID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	project, ok := f.byID[id]
	if !ok {
		return nil, auth.ErrRecordNotFound
	}

	if in.Name != "" {
		project.Name = in.Name
	}
	if in.Description != "" {
		project.Description = in.Description
	}
	project.UpdatedAt = time.Now()

	clone := *project
	return &clone, nil
}

func (f *FakeProjects) Delete(_ context.Context, id string) error {
	if _, err := bson.ObjectIDFromHex(id); err != nil {
		return auth.ErrInvalidID
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.byID[id]; !ok {
		return auth.ErrRecordNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *FakeProjects) DeleteAll(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	count := int64(len(f.byID))
	f.byID = map[string]*models.Project{}
	return count, nil
}
