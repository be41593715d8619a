package reviews

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
)

// Review is a customer rating left on the storefront.
type Review struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input carries the submitted review fields.
type Input struct {
	Name   string
	Text   string
	Rating int
}

// Store keeps reviews in memory, newest first.
type Store struct {
	mu    sync.Mutex
	items []Review
	clock func() time.Time
}

func NewStore() *Store {
	return &Store{clock: time.Now}
}

func NewStoreAt(clock func() time.Time) *Store {
	return &Store{clock: clock}
}

func (s *Store) Add(input Input) (Review, error) {
	if strings.TrimSpace(input.Name) == "" {
		return Review{}, pkgerrors.New(pkgerrors.CodeValidation, "review name is required")
	}
	if strings.TrimSpace(input.Text) == "" {
		return Review{}, pkgerrors.New(pkgerrors.CodeValidation, "review text is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return Review{}, pkgerrors.New(pkgerrors.CodeValidation, "review rating must be between 1 and 5")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	review := Review{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Text:      strings.TrimSpace(input.Text),
		Rating:    input.Rating,
		CreatedAt: s.clock(),
	}
	s.items = append([]Review{review}, s.items...)
	return review, nil
}

func (s *Store) All() []Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Review, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
