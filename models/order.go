package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order keeps the legacy w_neworder wire names in JSON so existing history
// clients keep rendering. Created once at checkout; immutable afterward
// apart from staff status updates.
type Order struct {
	ID             int             `json:"Order_id"`
	OrderNo        int             `json:"Order_no"`
	Status         string          `json:"Status"`
	DiningOption   string          `json:"Dining_option"`
	ProductIDs     string          `json:"Product_id"`
	LineItems      string          `json:"list_of_orders"`
	TotalPrice     decimal.Decimal `json:"Total_Price"`
	AmountOfBill   decimal.Decimal `json:"Amount_of_bill"`
	PaymentMethod  string          `json:"Payment_method"`
	GcashReference string          `json:"Gcash_reference"`
	UserEmail      string          `json:"User_email"`
	UserPhone      string          `json:"User_phone_no"`
	UserAddress    string          `json:"User_address"`
	Receipt        string          `json:"Receipt"`
	OrderedAt      time.Time       `json:"Ordered_at"`
}
