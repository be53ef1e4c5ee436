package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/localization-service/internal/domain/dto"
	"github.com/guttosm/localization-service/internal/i18n"
	"github.com/guttosm/localization-service/internal/metrics"
	"github.com/guttosm/localization-service/internal/middleware"
	"github.com/guttosm/localization-service/internal/service"
)

// APIPrincipal attributes writes made through the API without an
// authenticated user.
const APIPrincipal = "api_user"

// Handler provides HTTP handlers for localization routes.
type Handler struct {
	translations service.TranslationService
}

// NewHandler creates a new Handler instance.
func NewHandler(translations service.TranslationService) *Handler {
	return &Handler{
		translations: translations,
	}
}

// principal returns the attribution identity for a write: the authenticated
// user's email, or APIPrincipal when auth is disabled.
func principal(c *gin.Context) string {
	if email := middleware.GetUserEmail(c); email != "" {
		return email
	}
	return APIPrincipal
}

// GetProjects handles GET /api/projects requests.
//
// @Summary      List projects
// @Description  Returns all projects with their configured language sets.
// @Tags         Projects
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Projects with languages"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/projects [get]
func (h *Handler) GetProjects(c *gin.Context) {
	builder := NewResponseBuilder(c)

	projects, err := h.translations.GetProjects(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(projects)
}

// GetTranslationKeys handles GET /api/projects/:project_id/translation-keys requests.
//
// @Summary      List translation keys
// @Description  Returns one page of a project's translation keys. Supports case-insensitive key search, exact category match, and missing-translation filtering; the reported total counts the filtered set.
// @Tags         Translations
// @Produce      json
// @Param        project_id path string true "Project ID"
// @Param        page query int false "Page number (1-based)" default(1)
// @Param        limit query int false "Page size (1-100)" default(50)
// @Param        search query string false "Substring match on key name"
// @Param        category query string false "Exact category match"
// @Param        language_code query string false "Language for missing-translation filtering"
// @Param        missing_translations query bool false "Only keys lacking completed translations"
// @Success      200 {object} dto.SuccessResponse{data=dto.GetTranslationKeysResponse} "Paged keys"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid pagination"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/projects/{project_id}/translation-keys [get]
func (h *Handler) GetTranslationKeys(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var query dto.KeyListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	if err := query.Validate(); err != nil {
		metrics.RecordKeyQuery(0, "validation_error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationPagination, err)
		return
	}

	start := time.Now()
	keys, total, err := h.translations.GetTranslationKeys(c.Request.Context(), c.Param("project_id"), query)
	if err != nil {
		metrics.RecordKeyQuery(time.Since(start), "error")
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	metrics.RecordKeyQuery(time.Since(start), "success")

	builder.SuccessOK(dto.GetTranslationKeysResponse{
		Keys:  keys,
		Total: total,
		Page:  query.Page,
		Limit: query.Limit,
	})
}

// GetTranslationKey handles GET /api/translation-keys/:key_id requests.
//
// @Summary      Get translation key
// @Description  Returns a single translation key with all its translations.
// @Tags         Translations
// @Produce      json
// @Param        key_id path string true "Translation key ID"
// @Success      200 {object} dto.SuccessResponse "Translation key"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translation-keys/{key_id} [get]
func (h *Handler) GetTranslationKey(c *gin.Context) {
	builder := NewResponseBuilder(c)

	key, err := h.translations.GetTranslationKeyByID(c.Request.Context(), c.Param("key_id"))
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyTranslationKeyNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(key)
}

// CreateTranslationKey handles POST /api/translation-keys requests.
//
// @Summary      Create translation key
// @Description  Creates a translation key in a project, optionally with initial translations attributed to the system.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTranslationKeyRequest true "Key definition"
// @Success      201 {object} dto.SuccessResponse "Created key"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translation-keys [post]
func (h *Handler) CreateTranslationKey(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CreateTranslationKeyRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	key, err := h.translations.CreateTranslationKey(c.Request.Context(), *req)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	builder.SuccessCreated(key)
}

// DeleteTranslationKey handles DELETE /api/translation-keys/:key_id requests.
//
// @Summary      Delete translation key
// @Description  Removes a translation key and all translations attached to it.
// @Tags         Translations
// @Produce      json
// @Param        key_id path string true "Translation key ID"
// @Success      200 {object} dto.SuccessResponse "Deleted"
// @Failure      404 {object} dto.ErrorResponse "Not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translation-keys/{key_id} [delete]
func (h *Handler) DeleteTranslationKey(c *gin.Context) {
	builder := NewResponseBuilder(c)

	deleted, err := h.translations.DeleteTranslationKey(c.Request.Context(), c.Param("key_id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if !deleted {
		builder.Error(http.StatusNotFound, i18n.ErrKeyTranslationKeyNotFound, nil)
		return
	}

	locale := i18n.GetLocale(c)
	builder.SuccessOK(map[string]string{
		"message": i18n.GetTranslator().Translate(i18n.SuccessKeyKeyDeleted, locale),
	})
}

// UpdateTranslation handles PUT /api/translations/:key_id/:language_code requests.
//
// @Summary      Upsert translation value
// @Description  Sets the translation value for a (key, language) pair, creating the translation when none exists. A blank value is stored but leaves the translation incomplete.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        key_id path string true "Translation key ID"
// @Param        language_code path string true "Language code"
// @Param        request body dto.SetTranslationValueRequest true "New value"
// @Success      200 {object} dto.SuccessResponse "Updated"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Translation key not found"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations/{key_id}/{language_code} [put]
func (h *Handler) UpdateTranslation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetTranslationValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	err := h.translations.UpdateTranslation(c.Request.Context(), c.Param("key_id"), c.Param("language_code"), req.Value, principal(c))
	if err != nil {
		if errors.Is(err, service.ErrKeyNotFound) {
			metrics.RecordTranslationUpdate("upsert", "not_found")
			builder.Error(http.StatusNotFound, i18n.ErrKeyTranslationKeyNotFound, err)
			return
		}
		metrics.RecordTranslationUpdate("upsert", "error")
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	metrics.RecordTranslationUpdate("upsert", "success")

	locale := i18n.GetLocale(c)
	builder.SuccessOK(map[string]interface{}{
		"success": true,
		"message": i18n.GetTranslator().Translate(i18n.SuccessKeyTranslationUpdated, locale),
	})
}

// CreateTranslation handles POST /api/translations requests.
//
// @Summary      Create translation
// @Description  Creates a translation for a (key, language) pair, failing with a conflict when one already exists.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTranslationRequest true "Translation to create"
// @Success      201 {object} dto.SuccessResponse "Created"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      404 {object} dto.ErrorResponse "Translation key not found"
// @Failure      409 {object} dto.ErrorResponse "Translation already exists"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations [post]
func (h *Handler) CreateTranslation(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.CreateTranslationRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}
	if req.UpdatedBy == "" {
		req.UpdatedBy = principal(c)
	}

	err = h.translations.CreateTranslation(c.Request.Context(), *req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKeyNotFound):
			metrics.RecordTranslationUpdate("create", "not_found")
			builder.Error(http.StatusNotFound, i18n.ErrKeyTranslationKeyNotFound, err)
		case errors.Is(err, service.ErrTranslationExists):
			metrics.RecordTranslationUpdate("create", "conflict")
			builder.Error(http.StatusConflict, i18n.ErrKeyTranslationExists, err)
		default:
			metrics.RecordTranslationUpdate("create", "error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		}
		return
	}
	metrics.RecordTranslationUpdate("create", "success")

	builder.SuccessCreated(map[string]bool{"success": true})
}

// BulkUpdateTranslations handles POST /api/translations/bulk-update requests.
//
// @Summary      Bulk update translations
// @Description  Applies translation updates independently in submission order. Individual failures are counted, not raised; the response reports how many succeeded.
// @Tags         Translations
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkUpdateRequest true "Batch of updates"
// @Success      200 {object} dto.SuccessResponse{data=dto.BulkUpdateResponse} "Outcome summary"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/translations/bulk-update [post]
func (h *Handler) BulkUpdateTranslations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.BulkUpdateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	result, err := h.translations.BulkUpdateTranslations(c.Request.Context(), req.Updates, principal(c))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	metrics.RecordTranslationUpdate("bulk", "success")

	builder.SuccessOK(result)
}

// GetAnalytics handles GET /api/projects/:project_id/analytics requests.
//
// @Summary      Project analytics
// @Description  Reports per-language translation completion for a project. Blank values do not count as completed.
// @Tags         Projects
// @Produce      json
// @Param        project_id path string true "Project ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.AnalyticsResponse} "Completion analytics"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/projects/{project_id}/analytics [get]
func (h *Handler) GetAnalytics(c *gin.Context) {
	builder := NewResponseBuilder(c)

	analytics, err := h.translations.GetAnalytics(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(analytics)
}

// GetLocalizations handles GET /api/localizations/:project_id/:locale requests.
//
// @Summary      Get localizations
// @Description  Returns the flat key-to-value map for one locale. Keys without a completed translation are omitted. Kept for clients of the original flat API.
// @Tags         Localizations
// @Produce      json
// @Param        project_id path string true "Project ID"
// @Param        locale path string true "Language code"
// @Success      200 {object} dto.SuccessResponse{data=dto.LocalizationsResponse} "Flat localizations"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Security     BearerAuth
// @Router       /api/localizations/{project_id}/{locale} [get]
func (h *Handler) GetLocalizations(c *gin.Context) {
	builder := NewResponseBuilder(c)

	projectID := c.Param("project_id")
	locale := c.Param("locale")

	localizations, err := h.translations.GetLocalizations(c.Request.Context(), projectID, locale)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.LocalizationsResponse{
		ProjectID:     projectID,
		Locale:        locale,
		Localizations: localizations,
	})
}
