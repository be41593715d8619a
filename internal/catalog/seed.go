package catalog

import (
	"context"
	"encoding/json"
	"os"

	"github.com/mibarrunto/barrunto-backend/pkg/db/models"
	"github.com/mibarrunto/barrunto-backend/pkg/logger"
	"go.uber.org/multierr"
)

// Seed loads the menu file into an empty catalog. A missing or malformed
// file degrades to an empty catalog with a logged warning; the storefront
// shows no products instead of failing to boot.
func Seed(ctx context.Context, repo Repository, logg *logger.Logger, menuPath string) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	raw, err := os.ReadFile(menuPath)
	if err != nil {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "menu_path", menuPath), "menu file unavailable, starting with empty catalog")
		}
		return nil
	}

	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		if logg != nil {
			logg.Warn(logg.WithField(ctx, "menu_path", menuPath), "menu file malformed, starting with empty catalog")
		}
		return nil
	}

	var seedErr error
	for i := range products {
		if err := repo.Create(ctx, &products[i]); err != nil {
			seedErr = multierr.Append(seedErr, err)
		}
	}
	if seedErr != nil {
		return seedErr
	}

	if logg != nil {
		logg.Info(logg.WithField(ctx, "products", len(products)), "catalog seeded from menu file")
	}
	return nil
}
