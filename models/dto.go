package models

import "github.com/shopspring/decimal"

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// NewOrderRequest is the legacy /api/neworder body. Field names match the
// legacy wire contract exactly.
type NewOrderRequest struct {
	Status         string          `json:"Status"`
	DiningOption   string          `json:"Dining_option"`
	ProductID      string          `json:"Product_id"`
	ListOfOrders   string          `json:"list_of_orders"`
	TotalPrice     decimal.Decimal `json:"Total_Price"`
	AmountOfBill   decimal.Decimal `json:"Amount_of_bill"`
	PaymentMethod  string          `json:"Payment_method"`
	GcashReference string          `json:"Gcash_reference"`
	UserEmail      string          `json:"User_email"`
	UserPhoneNo    string          `json:"User_phone_no"`
	UserAddress    string          `json:"User_address"`
	Receipt        string          `json:"Receipt"`
}

// AddCartItemRequest covers both the plain add ("Add to Cart" on simple
// items) and the customized add, where the server resolves the final name
// and unit price from the selection.
type AddCartItemRequest struct {
	ProductCode string `json:"product_id" binding:"required"`
	// Variation picks the size/price pair ("16oz", "22oz", ...); empty
	// defaults to the first available one.
	Variation     string                  `json:"variation"`
	Customization *CustomizationSelection `json:"customization"`
}

type DecrementCartItemRequest struct {
	ProductCode string `json:"product_id" binding:"required"`
}

type CheckoutRequest struct {
	DiningOption   string `json:"dining_option"`
	PaymentMethod  string `json:"payment_method"`
	GcashReference string `json:"gcash_reference"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
}

type OrderResponse struct {
	Message string `json:"message"`
	OrderID int    `json:"orderId"`
	OrderNo int    `json:"orderNo"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type CartResponse struct {
	Items []CartLine      `json:"items"`
	Total decimal.Decimal `json:"total"`
}
