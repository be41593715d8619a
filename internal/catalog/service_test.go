package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/mibarrunto/barrunto-backend/pkg/db/models"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/mibarrunto/barrunto-backend/pkg/ids"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	products []models.Product
	failNext error
}

func (f *fakeRepo) List(_ context.Context) ([]models.Product, error) {
	if f.failNext != nil {
		return nil, f.failNext
	}
	out := make([]models.Product, len(f.products))
	copy(out, f.products)
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, code string) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].Code == code {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Create(_ context.Context, product *models.Product) error {
	if f.failNext != nil {
		return f.failNext
	}
	f.products = append(f.products, *product)
	return nil
}

func (f *fakeRepo) Update(_ context.Context, product *models.Product) error {
	for i := range f.products {
		if f.products[i].Code == product.Code {
			f.products[i] = *product
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (f *fakeRepo) Delete(_ context.Context, code string) error {
	for i := range f.products {
		if f.products[i].Code == code {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func testService(t *testing.T) (Service, *fakeRepo) {
	t.Helper()
	repo := &fakeRepo{}
	svc, err := NewService(repo, ids.NewGeneratorAt(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}))
	require.NoError(t, err)
	return svc, repo
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(nil, nil)
	require.Error(t, err)
}

func TestCreateMintsCode(t *testing.T) {
	svc, repo := testService(t)

	product, err := svc.Create(context.Background(), ProductInput{
		Name:  "Bidón 20L",
		Price: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)
	assert.Regexp(t, `^P-\d{6}$`, product.Code)
	assert.Len(t, repo.products, 1)
}

func TestCreateRejectsBlankName(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Create(context.Background(), ProductInput{Name: "   "})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Create(context.Background(), ProductInput{
		Name:  "Bidón",
		Price: decimal.RequireFromString("-1"),
	})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestGetMapsMissingProductToNotFound(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Get(context.Background(), "P-000000")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}

func TestUpdateReplacesEditableFields(t *testing.T) {
	svc, _ := testService(t)

	created, err := svc.Create(context.Background(), ProductInput{
		Name:  "Bidón 20L",
		Price: decimal.RequireFromString("15.00"),
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.Code, ProductInput{
		Name:  "Bidón 20L Premium",
		Price: decimal.RequireFromString("18.00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bidón 20L Premium", updated.Name)
	assert.True(t, updated.Price.Equal(decimal.RequireFromString("18.00")))
	assert.Equal(t, created.Code, updated.Code, "code is immutable")
}

func TestDeleteMissingProductIsNotFound(t *testing.T) {
	svc, _ := testService(t)

	err := svc.Delete(context.Background(), "P-999999")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
