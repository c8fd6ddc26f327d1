// Package server assembles the fiber application: collaborators, routes
// and the guard over mutating routes.
package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mfvaldes/projhub/internal/auth"
	"github.com/mfvaldes/projhub/internal/config"
	"github.com/mfvaldes/projhub/internal/handler"
	"github.com/mfvaldes/projhub/internal/middleware"
	"github.com/mfvaldes/projhub/internal/store"
)

// Server is the assembled HTTP service.
type Server struct {
	app *fiber.App
	cfg *config.Config
	log auth.Logger
}

// New wires the auth flow, guard and controllers into a fiber app.
func New(cfg *config.Config, st *store.Store, logger auth.Logger) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "projhub",
		ErrorHandler:          handler.ErrorHandler,
		DisableStartupMessage: true,
	})

	codec := auth.NewHS256Codec([]byte(cfg.SigningSecret), cfg.TokenTTL, cfg.Issuer).
		WithLogger(logger)
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	flow := auth.NewFlow(st.Users(), hasher, codec).WithLogger(logger)

	authCtrl := handler.NewAuthController(flow)
	usersCtrl := handler.NewUsersController(st.Users(), hasher)
	projectsCtrl := handler.NewProjectsController(st.Projects())

	guard := middleware.Guard(codec)

	Register(app, guard, authCtrl, usersCtrl, projectsCtrl)

	return &Server{app: app, cfg: cfg, log: logger}
}

// Register mounts every route. Reads and bare creates are open; the
// guard protects the mutating routes.
func Register(app *fiber.App, guard fiber.Handler, authCtrl *handler.AuthController, users *handler.UsersController, projects *handler.ProjectsController) {
	app.Post("/auth/signup", authCtrl.Signup)
	app.Post("/auth/login", authCtrl.Login)

	app.Get("/users", users.List)
	app.Get("/users/:id", users.Get)
	app.Post("/users", users.Create)
	app.Put("/users/:id", guard, users.Update)
	app.Delete("/users/:id", guard, users.Delete)
	app.Delete("/users", guard, users.DeleteAll)

	app.Get("/projects", projects.List)
	app.Get("/projects/:id", projects.Get)
	app.Post("/projects", projects.Create)
	app.Put("/projects/:id", guard, projects.Update)
	app.Delete("/projects/:id", guard, projects.Delete)
	app.Delete("/projects", guard, projects.DeleteAll)
}

// Listen serves until the listener fails or Shutdown is called.
func (s *Server) Listen() error {
	s.log.Info("server listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown gracefully drains in-flight requests.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
