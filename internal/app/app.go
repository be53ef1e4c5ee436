package app

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/localization-service/config"
	"github.com/guttosm/localization-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// The returned cleanup function closes the MongoDB connection.
func InitializeApp(cfg config.Config) (*gin.Engine, func(), error) {
	InitializeLogger()

	dbComponents, err := InitializeDatabase(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	routerComponents := InitializeRouter(dbComponents, cfg)
	router := http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbComponents.DB.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}

	return router, cleanup, nil
}
