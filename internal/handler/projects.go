package handler

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"

	"github.com/mfvaldes/projhub/internal/models"
)

// ProjectStore is the persistence surface the projects controller needs.
type ProjectStore interface {
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Get(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context) ([]*models.Project, error)
	Update(ctx context.Context, id string, in models.ProjectUpdate) (*models.Project, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

// ProjectsController serves CRUD on the projects collection.
type ProjectsController struct {
	Store ProjectStore
}

func NewProjectsController(store ProjectStore) *ProjectsController {
	return &ProjectsController{Store: store}
}

// CreateProjectPayload is the create request body.
type CreateProjectPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (p CreateProjectPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Required),
	)
}

func (p *ProjectsController) List(c *fiber.Ctx) error {
	projects, err := p.Store.List(c.Context())
	if err != nil {
		return err
	}

	views := make([]*models.ProjectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, project.View())
	}

	return c.JSON(views)
}

func (p *ProjectsController) Get(c *fiber.Ctx) error {
	project, err := p.Store.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(project.View())
}

func (p *ProjectsController) Create(c *fiber.Ctx) error {
	payload := new(CreateProjectPayload)
	if err := c.BodyParser(payload); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse project payload").
			WithCode(goerrors.CodeBadRequest)
	}

	if err := payload.Validate(); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, err.Error()).
			WithCode(goerrors.CodeBadRequest)
	}

	now := time.Now()
	project, err := p.Store.Create(c.Context(), &models.Project{
		Name:        payload.Name,
		Description: payload.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not create project")
	}

	return c.Status(fiber.StatusCreated).JSON(project.View())
}

func (p *ProjectsController) Update(c *fiber.Ctx) error {
	in := models.ProjectUpdate{}
	if err := c.BodyParser(&in); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryBadInput, "failed to parse project payload").
			WithCode(goerrors.CodeBadRequest)
	}

	project, err := p.Store.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return err
	}

	return c.JSON(project.View())
}

func (p *ProjectsController) Delete(c *fiber.Ctx) error {
	if err := p.Store.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "project deleted"})
}

func (p *ProjectsController) DeleteAll(c *fiber.Ctx) error {
	count, err := p.Store.DeleteAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"deletedCount": count})
}
