package enums

import "fmt"

// ComandaStatus tracks a kitchen ticket through its lifecycle. Transitions are
// one-directional: pending moves to ready or canceled and stays there.
type ComandaStatus string

const (
	ComandaStatusPending  ComandaStatus = "pending"
	ComandaStatusReady    ComandaStatus = "ready"
	ComandaStatusCanceled ComandaStatus = "canceled"
)

var validComandaStatuses = []ComandaStatus{
	ComandaStatusPending,
	ComandaStatusReady,
	ComandaStatusCanceled,
}

// String implements fmt.Stringer.
func (c ComandaStatus) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ComandaStatus.
func (c ComandaStatus) IsValid() bool {
	for _, candidate := range validComandaStatuses {
		if candidate == c {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the ticket can no longer change state.
func (c ComandaStatus) IsTerminal() bool {
	return c == ComandaStatusReady || c == ComandaStatusCanceled
}

// ParseComandaStatus converts raw input into a ComandaStatus.
func ParseComandaStatus(value string) (ComandaStatus, error) {
	for _, candidate := range validComandaStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid comanda status %q", value)
}
