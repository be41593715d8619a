package promotions

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
	promos []models.Promotion
}

func (f *fakeRepo) List(_ context.Context) ([]models.Promotion, error) {
	out := make([]models.Promotion, len(f.promos))
	copy(out, f.promos)
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, id string) (*models.Promotion, error) {
	for i := range f.promos {
		if f.promos[i].ID == id {
			p := f.promos[i]
			return &p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) Create(_ context.Context, promo *models.Promotion) error {
	f.promos = append(f.promos, *promo)
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for i := range f.promos {
		if f.promos[i].ID == id {
			f.promos = append(f.promos[:i], f.promos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.promos)), nil
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

func TestSeedInstallsDefaultOffers(t *testing.T) {
	svc, repo := testService(t)

	require.NoError(t, svc.Seed(context.Background()))
	require.Len(t, repo.promos, 2)
	assert.Equal(t, "promo-10.5", repo.promos[0].ID)
	assert.Len(t, repo.promos[0].Tiers, 3)
	assert.True(t, repo.promos[0].Tiers[0].Price.Equal(decimal.RequireFromString("45.00")))
}

func TestSeedSkipsNonEmptyTable(t *testing.T) {
	svc, repo := testService(t)
	repo.promos = []models.Promotion{{ID: "existing", Title: "Oferta"}}

	require.NoError(t, svc.Seed(context.Background()))
	assert.Len(t, repo.promos, 1)
}

func TestCreateRequiresPriceOrTiers(t *testing.T) {
	svc, _ := testService(t)

	_, err := svc.Create(context.Background(), PromotionInput{Title: "Oferta"})
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
}

func TestCreateMintsID(t *testing.T) {
	svc, _ := testService(t)

	flat := decimal.RequireFromString("9.90")
	promo, err := svc.Create(context.Background(), PromotionInput{
		Title: "Oferta Relámpago",
		Price: &flat,
	})
	require.NoError(t, err)
	assert.Regexp(t, `^PR-\d{6}$`, promo.ID)
}

func TestDeleteMissingPromotionIsNotFound(t *testing.T) {
	svc, _ := testService(t)

	err := svc.Delete(context.Background(), "promo-nope")
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeNotFound, typed.Code())
}
