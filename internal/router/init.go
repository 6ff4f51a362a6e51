package router

import (
	"github.com/taskhub/go-task-manager/internal/application"
	"github.com/taskhub/go-task-manager/internal/container"
	pginfra "github.com/taskhub/go-task-manager/internal/infrastructure/postgres"
	handlers "github.com/taskhub/go-task-manager/internal/interface/http"
	"github.com/taskhub/go-task-manager/internal/router/modules"
	"github.com/taskhub/go-task-manager/pkg/helpers"
)

// InitModules builds repositories, services, and handlers from the container
// singletons and registers every feature module with the registry.
// Called once during application startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	jwt := container.GetJWT()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	taskRepo := pginfra.NewTaskRepository(container.GetPGPool())

	userSvc := application.NewUserService(userRepo, jwt, logger, cfg.BcryptCost)
	taskSvc := application.NewTaskService(taskRepo, logger)
	adminSvc := application.NewAdminService(userRepo, taskRepo, logger)
	container.SetUserService(userSvc)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(userSvc, logger, cookies), jwt))
	r.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt))
	r.Add(modules.NewAdminModule(handlers.NewAdminHandler(adminSvc, logger), jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
