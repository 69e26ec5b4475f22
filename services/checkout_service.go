package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"waco-shop/models"
)

var (
	ErrAuthRequired = errors.New("Please login first!")
	ErrEmptyCart    = errors.New("Your cart is empty!")
)

// ValidationError reports the specific field that blocked the transition
// out of ValidatingFields. Nothing is submitted until every field passes.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

type CheckoutState string

const (
	StateIdle             CheckoutState = "Idle"
	StateReviewingCart    CheckoutState = "ReviewingCart"
	StateValidatingFields CheckoutState = "ValidatingFields"
	StateSubmitting       CheckoutState = "Submitting"
	StateSucceeded        CheckoutState = "Succeeded"
	StateFailed           CheckoutState = "Failed"
)

func (s CheckoutState) IsTerminal() bool {
	return s == StateSucceeded || s == StateFailed
}

type CheckoutFields struct {
	DiningOption   string
	PaymentMethod  string
	GcashReference string
	Email          string
	Phone          string
	Address        string
}

// Checkout is one pass through the checkout workflow for a single cart.
type Checkout struct {
	State  CheckoutState
	cart   *models.Cart
	fields CheckoutFields
}

// OrderSequencer persists the order and assigns its number. On error the
// order must not have been persisted.
type OrderSequencer interface {
	Create(ctx context.Context, o *models.Order) error
}

type CheckoutService struct {
	sequencer OrderSequencer
	timeout   time.Duration
}

func NewCheckoutService(sequencer OrderSequencer, timeout time.Duration) *CheckoutService {
	return &CheckoutService{sequencer: sequencer, timeout: timeout}
}

// Begin moves Idle -> ReviewingCart. It refuses without an authenticated
// session or with an empty cart; the cart is untouched either way.
func (s *CheckoutService) Begin(cart *models.Cart, authenticated bool) (*Checkout, error) {
	if !authenticated {
		return nil, ErrAuthRequired
	}
	if cart == nil || cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	return &Checkout{State: StateReviewingCart, cart: cart}, nil
}

// Validate moves ReviewingCart -> ValidatingFields. The first missing field
// aborts with its own message and the checkout stays in ValidatingFields so
// the caller can correct and retry.
func (co *Checkout) Validate(f CheckoutFields) error {
	co.State = StateValidatingFields

	checks := []struct {
		value   string
		field   string
		message string
	}{
		{f.DiningOption, "dining_option", "Please select a dining option."},
		{f.PaymentMethod, "payment_method", "Please select a payment method."},
		{f.Email, "email", "Email is required."},
		{f.Phone, "phone", "Phone number is required."},
		{f.Address, "address", "Address is required."},
	}
	for _, chk := range checks {
		if chk.value == "" {
			return &ValidationError{Field: chk.field, Message: chk.message}
		}
	}

	if f.PaymentMethod == "Gcash" && f.GcashReference == "" {
		return &ValidationError{Field: "gcash_reference", Message: "Please enter your Gcash reference number."}
	}

	co.fields = f
	return nil
}

// Submit serializes the cart into an order payload and hands it to the
// sequencer. Success clears the cart; any failure (including timeout)
// leaves the cart intact so the client can retry.
func (s *CheckoutService) Submit(ctx context.Context, co *Checkout) (*models.Order, error) {
	if co.State != StateValidatingFields {
		return nil, errors.New("checkout fields not validated")
	}
	co.State = StateSubmitting

	receipt, err := json.Marshal(co.cart.Items)
	if err != nil {
		co.State = StateFailed
		return nil, err
	}

	total := co.cart.Total()
	order := &models.Order{
		Status:         "Pending",
		DiningOption:   co.fields.DiningOption,
		ProductIDs:     co.cart.JoinedProductIDs(),
		LineItems:      co.cart.Summary(),
		TotalPrice:     total,
		AmountOfBill:   total,
		PaymentMethod:  co.fields.PaymentMethod,
		GcashReference: co.fields.GcashReference,
		UserEmail:      co.fields.Email,
		UserPhone:      co.fields.Phone,
		UserAddress:    co.fields.Address,
		Receipt:        string(receipt),
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.sequencer.Create(ctx, order); err != nil {
		co.State = StateFailed
		return nil, err
	}

	co.cart.Clear()
	co.State = StateSucceeded
	return order, nil
}
