package app

import (
	"github.com/guttosm/localization-service/config"
	"github.com/guttosm/localization-service/internal/http"
	"github.com/guttosm/localization-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(dbComponents *DatabaseComponents, cfg config.Config) *RouterComponents {
	translationService := service.NewTranslationService(
		dbComponents.KeysRepo,
		dbComponents.TranslationsRepo,
		dbComponents.ProjectsRepo,
	)
	if cfg.Cache.Size > 0 {
		localizationCache := service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, 16)
		translationService = service.NewCachedTranslationService(translationService, localizationCache)
	}

	healthHandler := http.NewHealthHandler()
	healthHandler.AddChecker("mongodb", dbComponents.DB.HealthCheck)
	if dbComponents.KeysCircuitBreaker != nil {
		healthHandler.RegisterCircuitBreaker("mongodb_translation_keys", dbComponents.KeysCircuitBreaker)
	}

	var authService service.AuthService
	if cfg.Auth.Enabled {
		authService = service.NewAuthService(
			dbComponents.UserRepo,
			dbComponents.TokenRepo,
			cfg.Auth,
		)
	}

	routerCfg := http.RouterConfig{
		RateLimit:          cfg.Server.RateLimit,
		RateWindow:         cfg.Server.RateWindow,
		CORSOrigins:        cfg.Server.CORSOrigins,
		SwaggerUser:        cfg.Server.SwaggerUser,
		SwaggerPass:        cfg.Server.SwaggerPass,
		TranslationService: translationService,
		AuthService:        authService,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
