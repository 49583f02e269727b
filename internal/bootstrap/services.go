package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/chorebank/chorebank/config"
	oidcadapter "github.com/chorebank/chorebank/internal/adapters/oidc"
	"github.com/chorebank/chorebank/internal/adapters/pwauth"
	redisadapter "github.com/chorebank/chorebank/internal/adapters/redis"
	s3adapter "github.com/chorebank/chorebank/internal/adapters/s3"
	"github.com/chorebank/chorebank/internal/data"
	"github.com/chorebank/chorebank/internal/domain/changefeed"
	"github.com/chorebank/chorebank/internal/ports"
	"github.com/chorebank/chorebank/internal/service"
)

// ServiceContainer holds all initialized services and their shared
// infrastructure.
type ServiceContainer struct {
	Auth        *service.AuthService
	Jobs        *service.JobService
	UserJobs    *service.UserJobService
	Punishments *service.PunishmentService
	Profiles    *service.ProfileService
	Statistics  *service.StatisticsService
	Notifier    *changefeed.DefaultNotifier
}

// ServicesConfig groups dependencies for InitServices.
type ServicesConfig struct {
	Config *config.AppConfig
	DB     *sql.DB
	Redis  redis.UniversalClient
	Logger *slog.Logger
}

// InitServices wires repositories, adapters and services together.
func InitServices(cfg ServicesConfig) (*ServiceContainer, error) {
	if cfg.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	jobRepo := data.NewJobRepo(cfg.DB)
	userJobRepo := data.NewUserJobRepo(cfg.DB)
	profileRepo := data.NewProfileRepo(cfg.DB)
	punishmentRepo := data.NewPunishmentRepo(cfg.DB)

	notifier, err := changefeed.NewNotifier(changefeed.NotifierOptions{
		Waiter: data.NewChangeRepo(cfg.DB),
	})
	if err != nil {
		return nil, fmt.Errorf("init change notifier: %w", err)
	}

	images, err := initObjectStore(cfg.Config.Storage, logger)
	if err != nil {
		return nil, err
	}

	sso, err := initSSO(cfg.Config, logger)
	if err != nil {
		return nil, err
	}

	authSvc := service.NewAuthService(service.AuthServiceOptions{
		Credentials: pwauth.NewProvider(profileRepo),
		SSO:         sso,
		Sessions:    redisadapter.NewSessionStore(cfg.Redis),
		Profiles:    profileRepo,
		Config:      cfg.Config.Auth,
	})

	return &ServiceContainer{
		Auth: authSvc,
		Jobs: service.NewJobService(service.JobServiceOptions{
			JobRepo: jobRepo,
			Images:  images,
		}),
		UserJobs: service.NewUserJobService(service.UserJobServiceOptions{
			UserJobRepo: userJobRepo,
			JobRepo:     jobRepo,
			Images:      images,
		}),
		Punishments: service.NewPunishmentService(service.PunishmentServiceOptions{
			PunishmentRepo: punishmentRepo,
			ProfileRepo:    profileRepo,
		}),
		Profiles: service.NewProfileService(service.ProfileServiceOptions{
			ProfileRepo: profileRepo,
		}),
		Statistics: service.NewStatisticsService(service.StatisticsServiceOptions{
			UserJobRepo:    userJobRepo,
			PunishmentRepo: punishmentRepo,
			ProfileRepo:    profileRepo,
		}),
		Notifier: notifier,
	}, nil
}

// initObjectStore builds the image store when credentials or an endpoint are
// configured. Image endpoints answer 500 until storage is configured.
func initObjectStore(cfg config.StorageConfig, logger *slog.Logger) (ports.ObjectStore, error) {
	if cfg.Endpoint == "" && cfg.AccessKey == "" {
		logger.Warn("object storage not configured; image uploads disabled")
		return nil, nil
	}

	store, err := s3adapter.NewStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("init object store: %w", err)
	}
	return store, nil
}

// initSSO builds the OIDC provider when discovery is configured.
func initSSO(cfg *config.AppConfig, logger *slog.Logger) (ports.SSOProvider, error) {
	oidcCfg := cfg.Auth.OIDC
	if !oidcCfg.Enabled() {
		return nil, nil
	}

	redirectURL := oidcCfg.RedirectURL
	if redirectURL == "" {
		redirectURL = strings.TrimSuffix(cfg.HTTP.BaseURL, "/") + "/api/auth/sso/callback"
	}

	provider, err := oidcadapter.NewProvider(oidcadapter.ProviderConfig{
		ClientID:     oidcCfg.ClientID,
		ClientSecret: oidcCfg.ClientSecret,
		RedirectURL:  redirectURL,
		Scope:        oidcCfg.Scope,
		DiscoveryURL: oidcCfg.DiscoveryURL,
	})
	if err != nil {
		return nil, fmt.Errorf("init sso provider: %w", err)
	}

	logger.Info("sso sign-in enabled", "discovery_url", oidcCfg.DiscoveryURL)
	return provider, nil
}
