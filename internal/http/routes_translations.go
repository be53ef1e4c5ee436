package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/localization-service/internal/service"
)

// TranslationRoutes handles localization route registration.
type TranslationRoutes struct {
	handler *Handler
}

// NewTranslationRoutes creates a new TranslationRoutes instance.
func NewTranslationRoutes(translations service.TranslationService) *TranslationRoutes {
	return &TranslationRoutes{
		handler: NewHandler(translations),
	}
}

// RegisterPublicRoutes registers localization routes without authentication.
// Used when the service runs with auth disabled.
func (r *TranslationRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	r.register(rg)
}

// RegisterProtectedRoutes registers localization routes on a group that
// already carries JWT auth middleware.
func (r *TranslationRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup, _ *RouterConfig) {
	r.register(rg)
}

func (r *TranslationRoutes) register(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.GET("", r.handler.GetProjects)
		projects.GET("/:project_id/translation-keys", r.handler.GetTranslationKeys)
		projects.GET("/:project_id/analytics", r.handler.GetAnalytics)
	}

	keys := rg.Group("/translation-keys")
	{
		keys.POST("", r.handler.CreateTranslationKey)
		keys.GET("/:key_id", r.handler.GetTranslationKey)
		keys.DELETE("/:key_id", r.handler.DeleteTranslationKey)
	}

	translations := rg.Group("/translations")
	{
		translations.POST("", r.handler.CreateTranslation)
		translations.POST("/bulk-update", r.handler.BulkUpdateTranslations)
		translations.PUT("/:key_id/:language_code", r.handler.UpdateTranslation)
	}

	rg.GET("/localizations/:project_id/:locale", r.handler.GetLocalizations)
}
