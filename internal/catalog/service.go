package catalog

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

const productIDPrefix = "P-"

// Service exposes the product catalog to the storefront and the back office.
type Service interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, code string) (*models.Product, error)
	Create(ctx context.Context, input ProductInput) (*models.Product, error)
	Update(ctx context.Context, code string, input ProductInput) (*models.Product, error)
	Delete(ctx context.Context, code string) error
}

type service struct {
	repo Repository
	ids  ids.Generator
}

// ProductInput carries the editable fields of a product.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Img         string
	Tiers       []models.Tier
}

// NewService wires a catalog service with the provided stack.
func NewService(repo Repository, gen ids.Generator) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if gen == nil {
		return nil, fmt.Errorf("id generator required")
	}
	return &service{repo: repo, ids: gen}, nil
}

func (s *service) List(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list catalog")
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, code string) (*models.Product, error) {
	product, err := s.repo.Get(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	return product, nil
}

func (s *service) Create(ctx context.Context, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := &models.Product{
		Code:        s.ids.Next(productIDPrefix),
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Price:       input.Price,
		Img:         input.Img,
		Tiers:       input.Tiers,
	}
	if err := s.repo.Create(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist product")
	}
	return product, nil
}

func (s *service) Update(ctx context.Context, code string, input ProductInput) (*models.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product, err := s.Get(ctx, code)
	if err != nil {
		return nil, err
	}

	product.Name = strings.TrimSpace(input.Name)
	product.Description = strings.TrimSpace(input.Description)
	product.Price = input.Price
	if input.Img != "" {
		product.Img = input.Img
	}
	product.Tiers = input.Tiers

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist product")
	}
	return product, nil
}

func (s *service) Delete(ctx context.Context, code string) error {
	if _, err := s.Get(ctx, code); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, code); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete product")
	}
	return nil
}

func validateProductInput(input ProductInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price cannot be negative")
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
