package promotions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mibarrunto/barrunto-backend/pkg/db/models"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/ids"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const promoIDPrefix = "PR-"

// Service manages the active promotions shown on the storefront.
type Service interface {
	List(ctx context.Context) ([]models.Promotion, error)
	Get(ctx context.Context, id string) (*models.Promotion, error)
	Create(ctx context.Context, input PromotionInput) (*models.Promotion, error)
	Delete(ctx context.Context, id string) error
	Seed(ctx context.Context) error
}

// PromotionInput carries the editable fields of a promotion. Either a flat
// Price or a non-empty Tiers list must be present.
type PromotionInput struct {
	Title       string
	Description string
	Price       *decimal.Decimal
	OldPrice    *decimal.Decimal
	Img         string
	Duration    string
	Tiers       []models.Tier
}

type service struct {
	repo Repository
	ids  ids.Generator
}

func NewService(repo Repository, gen ids.Generator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("promotions repository required")
	}
	if gen == nil {
		return nil, fmt.Errorf("id generator required")
	}
	return &service{repo: repo, ids: gen}, nil
}

func (s *service) List(ctx context.Context) ([]models.Promotion, error) {
	promos, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list promotions")
	}
	return promos, nil
}

func (s *service) Get(ctx context.Context, id string) (*models.Promotion, error) {
	promo, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "promotion not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load promotion")
	}
	return promo, nil
}

func (s *service) Create(ctx context.Context, input PromotionInput) (*models.Promotion, error) {
	if err := validatePromotionInput(input); err != nil {
		return nil, err
	}

	promo := &models.Promotion{
		ID:          s.ids.Next(promoIDPrefix),
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		OldPrice:    input.OldPrice,
		Img:         input.Img,
		Duration:    input.Duration,
		Tiers:       input.Tiers,
	}
	if err := s.repo.Create(ctx, promo); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist promotion")
	}
	return promo, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete promotion")
	}
	return nil
}

// Seed installs the default grouped offers when the table is empty.
func (s *service) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "count promotions")
	}
	if count > 0 {
		return nil
	}
	for _, promo := range defaultPromotions() {
		p := promo
		if err := s.repo.Create(ctx, &p); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed promotion")
		}
	}
	return nil
}

func defaultPromotions() []models.Promotion {
	price := func(v string) *decimal.Decimal {
		d := decimal.RequireFromString(v)
		return &d
	}
	return []models.Promotion{
		{
			ID:          "promo-10.5",
			Title:       "👑 Bidón 10.5L - El Emperador",
			Description: "Ofertas imperiales para la máxima hidratación.",
			Img:         "assets/water_bottle_premium.png",
			Tiers: []models.Tier{
				{ID: "t1", Label: "Pack 10 + 1 Gratis", Price: decimal.RequireFromString("45.00"), OldPrice: price("66.00")},
				{ID: "t2", Label: "Pack 20 + 2 Gratis", Price: decimal.RequireFromString("90.00"), OldPrice: price("132.00")},
				{ID: "t3", Label: "Pack Mayorista (30 Und)", Price: decimal.RequireFromString("100.00"), OldPrice: price("180.00")},
			},
		},
		{
			ID:          "promo-8.5",
			Title:       "🛡️ Bidón 8.5L - El Príncipe",
			Description: "Nobleza y frescura en packs de ahorro.",
			Img:         "assets/water_bottle_premium.png",
			Tiers: []models.Tier{
				{ID: "t4", Label: "Pack 10 + 1 Gratis", Price: decimal.RequireFromString("35.00"), OldPrice: price("55.00")},
				{ID: "t5", Label: "Pack 20 + 2 Gratis", Price: decimal.RequireFromString("60.00"), OldPrice: price("110.00")},
				{ID: "t6", Label: "Pack Mayorista (30 Und)", Price: decimal.RequireFromString("80.00"), OldPrice: price("150.00")},
			},
		},
	}
}

func validatePromotionInput(input PromotionInput) error {
	if strings.TrimSpace(input.Title) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "promotion title is required")
	}
	if input.Price == nil && len(input.Tiers) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "promotion needs a price or at least one tier")
	}
	if input.Price != nil && input.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "promotion price cannot be negative")
	}
	for _, tier := range input.Tiers {
		if strings.TrimSpace(tier.Label) == "" {
			return pkgerrors.New(pkgerrors.CodeValidation, "tier label is required")
		}
		if tier.Price.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, "tier price cannot be negative")
		}
	}
	return nil
}
