package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variation is one selectable size/price pair parsed out of a product's
// content text, e.g. {Size: "16oz", Price: 89}.
type Variation struct {
	Size  string          `json:"size"`
	Price decimal.Decimal `json:"price"`
}

type Product struct {
	ID           int             `json:"id"`
	Code         string          `json:"product_code"`
	Name         string          `json:"name"`
	Content      string          `json:"content"`
	Category     string          `json:"category"`
	BasePrice    decimal.Decimal `json:"price"`
	ImageURL     string          `json:"image_url"`
	Customizable bool            `json:"customizable"`
	Variations   []Variation     `json:"variations,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// CustomizationSelection holds the options picked in the customize dialog.
// Each field is drawn from a fixed set; pricing is the base variation price
// plus fixed surcharges per option.
type CustomizationSelection struct {
	Size       string   `json:"size"`
	SugarLevel string   `json:"sugar_level"`
	AddOns     []string `json:"add_ons"`
}
