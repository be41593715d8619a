package promotions

import (
	"context"

	"github.com/mibarrunto/barrunto-backend/pkg/db/models"
	"gorm.io/gorm"
)

// Repository exposes promotion persistence operations.
type Repository interface {
	List(ctx context.Context) ([]models.Promotion, error)
	Get(ctx context.Context, id string) (*models.Promotion, error)
	Create(ctx context.Context, promo *models.Promotion) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]models.Promotion, error) {
	var promos []models.Promotion
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&promos).Error; err != nil {
		return nil, err
	}
	return promos, nil
}

func (r *repository) Get(ctx context.Context, id string) (*models.Promotion, error) {
	var promo models.Promotion
	if err := r.db.WithContext(ctx).First(&promo, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *repository) Create(ctx context.Context, promo *models.Promotion) error {
	return r.db.WithContext(ctx).Create(promo).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Promotion{}, "id = ?", id).Error
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Promotion{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
