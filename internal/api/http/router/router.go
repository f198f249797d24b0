package router

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/dtroode/tasktracker-server/internal/api/http/handler"
	"github.com/dtroode/tasktracker-server/internal/api/http/middleware"
	"github.com/dtroode/tasktracker-server/internal/api/http/validator"
	"github.com/dtroode/tasktracker-server/internal/logger"
	"github.com/dtroode/tasktracker-server/internal/model"
)

// Services groups the collaborators served by the HTTP API.
type Services struct {
	Auth          handler.AuthService
	Task          handler.TaskService
	Authenticator middleware.Authenticator
	Pinger        model.Pinger
}

// Router represents the HTTP router for tasktracker operations.
// It manages route registration and middleware configuration.
type Router struct {
	services       Services
	contextManager model.ContextManager
	corsOrigins    []string
	logger         *logger.Logger
}

// New creates new HTTP Router instance.
//
// Parameters:
//   - services: The auth, task, authentication and health collaborators
//   - contextManager: Carries the authenticated user between middleware and handlers
//   - corsOrigins: Allowed CORS origins; CORS is disabled when empty
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	services Services,
	contextManager model.ContextManager,
	corsOrigins []string,
	logger *logger.Logger,
) *Router {
	return &Router{
		services:       services,
		contextManager: contextManager,
		corsOrigins:    corsOrigins,
		logger:         logger,
	}
}

// Register builds the echo instance with all routes and middleware.
//
// Returns the configured echo instance.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = handler.NewErrorHandler(r.logger)

	e.Use(middleware.NewLogging(r.logger).Handle)
	e.Use(echomw.Recover())
	if len(r.corsOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins: r.corsOrigins,
		}))
	}

	e.GET("/health", handler.NewHealth(r.services.Pinger, r.logger).Check)

	r.registerAuthRoutes(e)
	r.registerTaskRoutes(e)

	return e
}

func (r *Router) registerAuthRoutes(e *echo.Echo) {
	authHandler := handler.NewAuth(r.services.Auth, r.logger)

	g := e.Group("/auth")
	g.POST("/signup", authHandler.SignUp)
	g.POST("/signin", authHandler.SignIn)
}

func (r *Router) registerTaskRoutes(e *echo.Echo) {
	taskHandler := handler.NewTask(r.services.Task, r.contextManager, r.logger)
	authenticate := middleware.NewAuthenticate(r.services.Authenticator, r.contextManager, r.logger)

	g := e.Group("/tasks", authenticate.Handle)
	g.GET("", taskHandler.GetTasks)
	g.POST("", taskHandler.CreateTask)
	g.GET("/:id", taskHandler.GetTaskByID)
	g.DELETE("/:id", taskHandler.DeleteTaskByID)
	g.PATCH("/:id/status", taskHandler.UpdateTaskStatusByID)
}
