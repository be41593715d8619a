package types

// CustomerInfo is captured once at checkout and attached immutably to the
// resulting comanda and transaction.
type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}
