package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tier is a bundled-quantity pricing option attached to a product or
// promotion ("Pack 10 + 1 Gratis").
type Tier struct {
	ID       string           `json:"id"`
	Label    string           `json:"label"`
	Price    decimal.Decimal  `json:"price"`
	OldPrice *decimal.Decimal `json:"oldPrice,omitempty"`
}

// Product is a menu entry. Code doubles as the cart merge key, so it is the
// primary key here too.
type Product struct {
	Code        string          `gorm:"column:code;primaryKey" json:"code"`
	Name        string          `gorm:"column:name;not null" json:"name"`
	Description string          `gorm:"column:description" json:"desc"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null" json:"price"`
	Img         string          `gorm:"column:img" json:"img"`
	Tiers       []Tier          `gorm:"column:tiers;serializer:json" json:"tiers,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
