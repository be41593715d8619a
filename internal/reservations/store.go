package reservations

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	pkgerrors "github.com/mibarrunto/barrunto-backend/pkg/errors"
)

// Reservation is a delivery booking placed from the storefront.
type Reservation struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	Qty       int       `json:"qty"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
	CreatedAt time.Time `json:"createdAt"`
}

// Input carries the fields a customer submits when booking.
type Input struct {
	Product string
	Qty     int
	Name    string
	Phone   string
	Address string
	Date    string
	Time    string
}

// Store keeps reservations in memory, newest first. Bookings do not survive
// a restart.
type Store struct {
	mu    sync.Mutex
	items []Reservation
	clock func() time.Time
}

func NewStore() *Store {
	return &Store{clock: time.Now}
}

func NewStoreAt(clock func() time.Time) *Store {
	return &Store{clock: clock}
}

func (s *Store) Add(input Input) (Reservation, error) {
	if err := validate(input); err != nil {
		return Reservation{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res := Reservation{
		ID:        uuid.NewString(),
		Product:   strings.TrimSpace(input.Product),
		Qty:       input.Qty,
		Name:      strings.TrimSpace(input.Name),
		Phone:     strings.TrimSpace(input.Phone),
		Address:   strings.TrimSpace(input.Address),
		Date:      input.Date,
		Time:      input.Time,
		CreatedAt: s.clock(),
	}
	s.items = append([]Reservation{res}, s.items...)
	return res, nil
}

func (s *Store) All() []Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Reservation, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func validate(input Input) error {
	switch {
	case strings.TrimSpace(input.Product) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation product is required")
	case input.Qty < 1:
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation quantity must be at least 1")
	case strings.TrimSpace(input.Name) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation name is required")
	case strings.TrimSpace(input.Phone) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation phone is required")
	case strings.TrimSpace(input.Address) == "":
		return pkgerrors.New(pkgerrors.CodeValidation, "reservation address is required")
	}
	return nil
}
