package migrate

import (
	"context"
	"fmt"

	"github.com/mibarrunto/barrunto-backend/pkg/config"
	"github.com/mibarrunto/barrunto-backend/pkg/db"
	"github.com/mibarrunto/barrunto-backend/pkg/db/models"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
)

// Run applies the schema for the persisted tables when auto-migration is
// enabled. Only catalog and promotions live in the database; order state is
// session-scoped by design.
func Run(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.DB.AutoMigrate {
		if logg != nil {
			logg.Info(ctx, "auto-migration disabled, skipping")
		}
		return nil
	}

	if err := client.DB().WithContext(ctx).AutoMigrate(
		&models.Product{},
		&models.Promotion{},
	); err != nil {
		return fmt.Errorf("auto-migrating schema: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "schema migration complete")
	}
	return nil
}
