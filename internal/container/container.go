package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"github.com/taskhub/go-task-manager/config"
	"github.com/taskhub/go-task-manager/internal/application"
	"github.com/taskhub/go-task-manager/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router auto-wires modules from these singletons; main also uses the user
// service for the admin bootstrap.

var (
	cfg        *config.Config
	logger     *logrus.Logger
	pgPool     *pgxpool.Pool
	jwtManager *helpers.JWTManager
	userSvc    *application.UserService
)

func SetConfig(c *config.Config)                { cfg = c }
func GetConfig() *config.Config                 { return cfg }
func SetLogger(l *logrus.Logger)                { logger = l }
func GetLogger() *logrus.Logger                 { return logger }
func SetPGPool(p *pgxpool.Pool)                 { pgPool = p }
func GetPGPool() *pgxpool.Pool                  { return pgPool }
func SetJWT(m *helpers.JWTManager)              { jwtManager = m }
func GetJWT() *helpers.JWTManager               { return jwtManager }
func SetUserService(s *application.UserService) { userSvc = s }
func GetUserService() *application.UserService  { return userSvc }
