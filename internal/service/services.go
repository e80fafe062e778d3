package service

import (
	"github.com/MKhiriev/go-auth-shell/internal/config"
	"github.com/MKhiriev/go-auth-shell/internal/crypto"
	"github.com/MKhiriev/go-auth-shell/internal/logger"
	"github.com/MKhiriev/go-auth-shell/internal/store"
	"github.com/MKhiriev/go-auth-shell/internal/utils"
	"github.com/MKhiriev/go-auth-shell/internal/validators"
	"golang.org/x/crypto/bcrypt"
)

// Services groups the business services consumed by the HTTP handlers.
type Services struct {
	AuthService    AuthService
	AdminService   AdminService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, err
	}

	authService := NewAuthService(
		storages.UserRepository,
		crypto.NewPasswordHasher(bcrypt.DefaultCost),
		validators.NewAuthValidator(),
		utils.NewUUIDGenerator(),
		cfg,
		logger,
	)

	return &Services{
		AuthService:    authService,
		AdminService:   NewAdminService(storages.UserRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
