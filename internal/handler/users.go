package handler

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"

	"github.com/mfvaldes/projhub/internal/auth"
	"github.com/mfvaldes/projhub/internal/models"
)

// UserStore is the persistence surface the users controller needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, id string, in models.UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// UsersController serves CRUD on the users collection.
type UsersController struct {
	Store  UserStore
	Hasher auth.CredentialHasher
}

func NewUsersController(store UserStore, hasher auth.CredentialHasher) *UsersController {
	return &UsersController{Store: store, Hasher: hasher}
}

// CreateUserPayload is the bare-create request body.
type CreateUserPayload struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (p CreateUserPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.FirstName, validation.Required),
		validation.Field(&p.LastName, validation.Required),
		validation.Field(&p.Email, validation.Required),
		validation.Field(&p.Password, validation.Required),
	)
}

// List handles GET /users.
func (u *UsersController) List(c *fiber.Ctx) error {
	users, err := u.Store.List(c.Context())
	if err != nil {
		return err
	}

	views := make([]*models.UserView, 0, len(users))
	for _, user := range users {
		views = append(views, user.View())
	}

	return c.JSON(views)
}

// Get handles GET /users/:id.
func (u *UsersController) Get(c *fiber.Ctx) error {
	user, err := u.Store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user.View())
}

// Create handles POST /users. Store failures are not distinguished here;
// anything the store rejects surfaces as a 500, as the signup route is
// the one that classifies conflicts.
func (u *UsersController) Create(c *fiber.Ctx) error {
	payload := new(CreateUserPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse user payload").
			WithCode(goerrors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error()).
			WithCode(goerrors.CodeBadRequest)
	}

	hash, err := u.Hasher.Hash(payload.Password)
	if err != nil {
		return err
	}

	now := time.Now()
	user, err := u.Store.Create(c.Context(), &models.User{
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Email:        payload.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create user")
	}

	return c.Status(fiber.StatusCreated).JSON(user.View())
}

// Update handles PUT /users/:id.
func (u *UsersController) Update(c *fiber.Ctx) error {
	in := models.UserUpdate{}
	if err := c.BodyParser(&in); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse user payload").
			WithCode(goerrors.CodeBadRequest)
	}

	user, err := u.Store.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}

	return c.JSON(user.View())
}

// Delete handles DELETE /users/:id.
func (u *UsersController) Delete(c *fiber.Ctx) error {
	if err := u.Store.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "user deleted"})
}

// DeleteAll handles DELETE /users.
func (u *UsersController) DeleteAll(c *fiber.Ctx) error {
	count, err := u.Store.DeleteAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": count})
}
