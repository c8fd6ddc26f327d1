package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is the stored user document. The password hash is never serialized
// to clients; every handler responds with a UserView instead.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"-"`
	FirstName    string        `bson:"firstname" json:"firstname"`
	LastName     string        `bson:"lastname" json:"lastname"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash string        `bson:"password" json:"-"`
	CreatedAt    time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time     `bson:"updated_at" json:"updated_at"`
}

// UserView is the sanitized client-facing shape of a User.
type UserView struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstname"`
	LastName  string    `json:"lastname"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// View strips the password hash and renders the id as hex.
func (u *User) View() *UserView {
	return &UserView{
		ID:        u.ID.Hex(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UserUpdate carries the fields a PUT may change. Empty fields are
// left untouched by the store.
type UserUpdate struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
}
