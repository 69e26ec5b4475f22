package repositories

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"waco-shop/config"
	"waco-shop/models"
)

// orderSeqLockKey serializes order-number assignment. Reading MAX(order_no)
// and inserting in separate statements would let two concurrent checkouts
// claim the same number; a transaction-scoped advisory lock around the
// read+insert keeps the dense MAX+1 numbering without that race.
const orderSeqLockKey = 815001

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Create assigns the next order number and persists the order in one
// transaction. On success o.ID, o.OrderNo and o.OrderedAt are filled in.
func (r *OrderRepository) Create(ctx context.Context, o *models.Order) error {
	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", orderSeqLockKey); err != nil {
		return err
	}

	var orderNo int
	if err := tx.QueryRow(ctx, "SELECT COALESCE(MAX(order_no), 0) + 1 FROM orders").Scan(&orderNo); err != nil {
		return err
	}

	now := time.Now()
	var id int
	err = tx.QueryRow(ctx,
		`INSERT INTO orders
		 (order_no, status, dining_option, product_ids, line_items, total_price,
		  amount_of_bill, payment_method, gcash_reference, user_email, user_phone,
		  user_address, receipt, ordered_at)
		 VALUES ($1,$2,$3,$4,$5,$6::numeric,$7::numeric,$8,$9,$10,$11,$12,$13,$14)
		 RETURNING id`,
		orderNo, o.Status, o.DiningOption, o.ProductIDs, o.LineItems,
		o.TotalPrice.String(), o.AmountOfBill.String(), o.PaymentMethod,
		o.GcashReference, o.UserEmail, o.UserPhone, o.UserAddress, o.Receipt, now,
	).Scan(&id)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	o.ID = id
	o.OrderNo = orderNo
	o.OrderedAt = now
	return nil
}

func (r *OrderRepository) ListByEmail(ctx context.Context, email string) ([]models.Order, error) {
	rows, err := config.DB.Query(ctx,
		`SELECT id, order_no, status, dining_option, product_ids, line_items,
		        total_price::text, amount_of_bill::text, payment_method,
		        gcash_reference, user_email, user_phone, user_address, receipt,
		        ordered_at
		 FROM orders WHERE user_email = $1 ORDER BY ordered_at DESC`,
		email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var total, amount string
		if err := rows.Scan(&o.ID, &o.OrderNo, &o.Status, &o.DiningOption,
			&o.ProductIDs, &o.LineItems, &total, &amount, &o.PaymentMethod,
			&o.GcashReference, &o.UserEmail, &o.UserPhone, &o.UserAddress,
			&o.Receipt, &o.OrderedAt); err != nil {
			return nil, err
		}
		if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		if o.AmountOfBill, err = decimal.NewFromString(amount); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
