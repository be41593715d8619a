package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Promotion is a limited-time offer. Grouped offers carry tiers; simple
// offers carry a flat price with an optional strike-through old price.
type Promotion struct {
	ID          string           `gorm:"column:id;primaryKey" json:"id"`
	Title       string           `gorm:"column:title;not null" json:"title"`
	Description string           `gorm:"column:description" json:"desc"`
	Price       *decimal.Decimal `gorm:"column:price;type:numeric(12,2)" json:"price,omitempty"`
	OldPrice    *decimal.Decimal `gorm:"column:old_price;type:numeric(12,2)" json:"oldPrice,omitempty"`
	Img         string           `gorm:"column:img" json:"img,omitempty"`
	Duration    string           `gorm:"column:duration" json:"duration,omitempty"`
	Tiers       []Tier           `gorm:"column:tiers;serializer:json" json:"tiers,omitempty"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}
