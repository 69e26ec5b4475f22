package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waco-shop/models"
)

type mockSequencer struct {
	err     error
	delay   time.Duration
	created *models.Order
	calls   int
}

func (m *mockSequencer) Create(ctx context.Context, o *models.Order) error {
	m.calls++
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(m.delay):
		}
	}
	if m.err != nil {
		return m.err
	}
	o.ID = 42
	o.OrderNo = 8
	m.created = o
	return nil
}

func testCart() *models.Cart {
	cart := &models.Cart{}
	cart.AddLine("IC1", "Spanish Latte (16oz)", decimal.NewFromInt(89))
	cart.AddLine("WF1", "Classic Waffle", decimal.NewFromInt(59))
	cart.AddLine("IC1", "Spanish Latte (16oz)", decimal.NewFromInt(89))
	return cart
}

func validFields() CheckoutFields {
	return CheckoutFields{
		DiningOption:  "Pickup",
		PaymentMethod: "Cash",
		Email:         "ana@example.com",
		Phone:         "09171234567",
		Address:       "123 Mabini St",
	}
}

func TestBeginRequiresAuth(t *testing.T) {
	svc := NewCheckoutService(&mockSequencer{}, time.Second)

	co, err := svc.Begin(testCart(), false)

	assert.Nil(t, co)
	assert.ErrorIs(t, err, ErrAuthRequired)
}

func TestBeginRequiresNonEmptyCart(t *testing.T) {
	svc := NewCheckoutService(&mockSequencer{}, time.Second)

	co, err := svc.Begin(&models.Cart{}, true)
	assert.Nil(t, co)
	assert.ErrorIs(t, err, ErrEmptyCart)

	co, err = svc.Begin(nil, true)
	assert.Nil(t, co)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBeginMovesToReviewingCart(t *testing.T) {
	svc := NewCheckoutService(&mockSequencer{}, time.Second)

	co, err := svc.Begin(testCart(), true)

	require.NoError(t, err)
	assert.Equal(t, StateReviewingCart, co.State)
}

func TestValidateReportsFirstMissingField(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CheckoutFields)
		field   string
		message string
	}{
		{"dining option", func(f *CheckoutFields) { f.DiningOption = "" }, "dining_option", "Please select a dining option."},
		{"payment method", func(f *CheckoutFields) { f.PaymentMethod = "" }, "payment_method", "Please select a payment method."},
		{"email", func(f *CheckoutFields) { f.Email = "" }, "email", "Email is required."},
		{"phone", func(f *CheckoutFields) { f.Phone = "" }, "phone", "Phone number is required."},
		{"address", func(f *CheckoutFields) { f.Address = "" }, "address", "Address is required."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCheckoutService(&mockSequencer{}, time.Second)
			co, err := svc.Begin(testCart(), true)
			require.NoError(t, err)

			fields := validFields()
			tt.mutate(&fields)

			err = co.Validate(fields)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			assert.Equal(t, tt.message, vErr.Message)
			assert.Equal(t, StateValidatingFields, co.State)
		})
	}
}

func TestValidateGcashNeedsReference(t *testing.T) {
	svc := NewCheckoutService(&mockSequencer{}, time.Second)
	co, err := svc.Begin(testCart(), true)
	require.NoError(t, err)

	fields := validFields()
	fields.PaymentMethod = "Gcash"

	err = co.Validate(fields)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "gcash_reference", vErr.Field)
	assert.Equal(t, "Please enter your Gcash reference number.", vErr.Message)

	// correcting the field lets the same checkout proceed
	fields.GcashReference = "REF-001"
	assert.NoError(t, co.Validate(fields))
}

func TestSubmitRequiresValidation(t *testing.T) {
	svc := NewCheckoutService(&mockSequencer{}, time.Second)
	co, err := svc.Begin(testCart(), true)
	require.NoError(t, err)

	order, err := svc.Submit(context.Background(), co)
	assert.Nil(t, order)
	assert.Error(t, err)
}

func TestSubmitSuccessClearsCart(t *testing.T) {
	seq := &mockSequencer{}
	svc := NewCheckoutService(seq, time.Second)
	cart := testCart()

	co, err := svc.Begin(cart, true)
	require.NoError(t, err)
	require.NoError(t, co.Validate(validFields()))

	order, err := svc.Submit(context.Background(), co)

	require.NoError(t, err)
	assert.Equal(t, StateSucceeded, co.State)
	assert.True(t, co.State.IsTerminal())
	assert.True(t, cart.IsEmpty())

	assert.Equal(t, 8, order.OrderNo)
	assert.Equal(t, "Pending", order.Status)
	assert.Equal(t, "IC1, WF1", order.ProductIDs)
	assert.Equal(t, "Spanish Latte (16oz) x2, Classic Waffle x1", order.LineItems)
	assert.True(t, order.TotalPrice.Equal(decimal.NewFromInt(237)))
	assert.True(t, order.AmountOfBill.Equal(decimal.NewFromInt(237)))
	assert.Equal(t, "ana@example.com", order.UserEmail)
	assert.Contains(t, order.Receipt, "Spanish Latte (16oz)")
}

func TestSubmitFailurePreservesCart(t *testing.T) {
	seq := &mockSequencer{err: errors.New("connection refused")}
	svc := NewCheckoutService(seq, time.Second)
	cart := testCart()
	itemsBefore := len(cart.Items)

	co, err := svc.Begin(cart, true)
	require.NoError(t, err)
	require.NoError(t, co.Validate(validFields()))

	order, err := svc.Submit(context.Background(), co)

	assert.Nil(t, order)
	assert.Error(t, err)
	assert.Equal(t, StateFailed, co.State)
	assert.Len(t, cart.Items, itemsBefore)
	assert.True(t, cart.Total().Equal(decimal.NewFromInt(237)))
}

func TestSubmitTimeoutPreservesCart(t *testing.T) {
	seq := &mockSequencer{delay: 200 * time.Millisecond}
	svc := NewCheckoutService(seq, 20*time.Millisecond)
	cart := testCart()

	co, err := svc.Begin(cart, true)
	require.NoError(t, err)
	require.NoError(t, co.Validate(validFields()))

	order, err := svc.Submit(context.Background(), co)

	assert.Nil(t, order)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, StateFailed, co.State)
	assert.False(t, cart.IsEmpty())
}
