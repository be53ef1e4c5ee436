// Package main is the entry point for the localization-service application.
//
// @title           Localization Service API
// @version         1.0.0
// @description     API for managing translation projects, keys, and localized values.
//
//	Projects group translation keys; each key carries per-language values whose
//	completeness is tracked for analytics and missing-translation filtering.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/localization-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token, prefixed with "Bearer ". Required if authentication is enabled.
//
// @tag.name        Projects
// @tag.description Project and analytics operations
//
// @tag.name        Translations
// @tag.description Translation key and value operations
//
// @tag.name        Localizations
// @tag.description Flat per-locale localization maps
//
// @tag.name        Auth
// @tag.description Authentication endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/localization-service/config"
	"github.com/guttosm/localization-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)
	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
