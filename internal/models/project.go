package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Project is the stored project document.
type Project struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string        `bson:"name" json:"name"`
	Description string        `bson:"description" json:"description"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time     `bson:"updated_at" json:"updated_at"`
}

// ProjectView is the client-facing shape of a Project.
type ProjectView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (p *Project) View() *ProjectView {
	return &ProjectView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// ProjectUpdate carries the fields a PUT may change.
type ProjectUpdate struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
