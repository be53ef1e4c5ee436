package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/localization-service/config"
	"github.com/guttosm/localization-service/internal/circuitbreaker"
	"github.com/guttosm/localization-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                 *repository.MongoDB
	KeysRepo           repository.TranslationKeysRepositoryInterface
	TranslationsRepo   repository.TranslationsRepositoryInterface
	ProjectsRepo       repository.ProjectsRepositoryInterface
	UserRepo           repository.UserRepositoryInterface
	TokenRepo          repository.TokenRepositoryInterface
	KeysCircuitBreaker *circuitbreaker.CircuitBreaker
}

// defaultLanguages is the language catalog seeded on first start.
var defaultLanguages = []repository.LanguageRow{
	{Code: "en", Name: "English", Flag: "🇺🇸"},
	{Code: "pt", Name: "Portuguese", Flag: "🇧🇷"},
	{Code: "es", Name: "Spanish", Flag: "🇪🇸"},
	{Code: "fr", Name: "French", Flag: "🇫🇷"},
	{Code: "de", Name: "German", Flag: "🇩🇪"},
}

// InitializeDatabase connects to MongoDB and creates the repositories.
// Unlike an optional cache, the document store is the system of record, so a
// connection failure aborts startup.
func InitializeDatabase(cfg config.DatabaseConfig) (*DatabaseComponents, error) {
	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		return nil, err
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	keysCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-translation-keys",
	})

	keysRepo := repository.NewTranslationKeysRepository(db)
	keysRepoWithCB := repository.NewTranslationKeysRepositoryWithCircuitBreaker(keysRepo, keysCB)

	projectsRepo := repository.NewProjectsRepository(db)
	if err := seedLanguageCatalog(projectsRepo); err != nil {
		log.Warn().Err(err).Msg("Failed to seed language catalog")
	}

	return &DatabaseComponents{
		DB:                 db,
		KeysRepo:           keysRepoWithCB,
		TranslationsRepo:   repository.NewTranslationsRepository(db),
		ProjectsRepo:       projectsRepo,
		UserRepo:           repository.NewUserRepository(db),
		TokenRepo:          repository.NewTokenRepository(db),
		KeysCircuitBreaker: keysCB,
	}, nil
}

// seedLanguageCatalog inserts the default languages if they are absent.
func seedLanguageCatalog(repo *repository.ProjectsRepository) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return repo.EnsureLanguages(ctx, defaultLanguages)
}
