package reviews

import (
	"testing"

	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStoresNewestFirst(t *testing.T) {
	store := NewStore()

	_, err := store.Add(Input{Name: "Ana", Text: "Excelente servicio", Rating: 5})
	require.NoError(t, err)
	_, err = store.Add(Input{Name: "Luis", Text: "Muy rápido", Rating: 4})
	require.NoError(t, err)

	all := store.All()
	require.Len(t, all, 2)
	assert.Equal(t, "Luis", all[0].Name)
	assert.Equal(t, "Ana", all[1].Name)
}

func TestAddRejectsRatingOutOfRange(t *testing.T) {
	store := NewStore()

	for _, rating := range []int{0, 6, -1} {
		_, err := store.Add(Input{Name: "Ana", Text: "texto", Rating: rating})
		typed := pkgerrors.As(err)
		require.NotNil(t, typed)
		assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	}
	assert.Equal(t, 0, store.Len())
}

func TestAddRejectsBlankFields(t *testing.T) {
	store := NewStore()

	_, err := store.Add(Input{Name: " ", Text: "texto", Rating: 3})
	require.NotNil(t, pkgerrors.As(err))

	_, err = store.Add(Input{Name: "Ana", Text: "", Rating: 3})
	require.NotNil(t, pkgerrors.As(err))
}
