package controllers

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"waco-shop/models"
)

// OrderStore is what the controller needs from the order repository.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	ListByEmail(ctx context.Context, email string) ([]models.Order, error)
}

type OrderController struct {
	Orders OrderStore
	Email  *models.EmailService
}

// CreateOrder godoc
// @Summary Submit an order
// @Description Persist an order payload and assign the next order number
// @Tags Orders
// @Accept json
// @Produce json
// @Param order body models.NewOrderRequest true "Order payload"
// @Success 200 {object} models.OrderResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /api/neworder [post]
func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req models.NewOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	if req.DiningOption == "" || req.ListOfOrders == "" || req.TotalPrice.IsZero() ||
		req.PaymentMethod == "" || req.UserEmail == "" {
		c.JSON(400, models.MessageResponse{Message: "Missing required fields"})
		return
	}
	if req.PaymentMethod == "Gcash" && req.GcashReference == "" {
		c.JSON(400, models.MessageResponse{Message: "Please enter your Gcash reference number."})
		return
	}

	status := req.Status
	if status == "" {
		status = "Pending"
	}
	amount := req.AmountOfBill
	if amount.IsZero() {
		amount = req.TotalPrice
	}

	order := &models.Order{
		Status:         status,
		DiningOption:   req.DiningOption,
		ProductIDs:     req.ProductID,
		LineItems:      req.ListOfOrders,
		TotalPrice:     req.TotalPrice,
		AmountOfBill:   amount,
		PaymentMethod:  req.PaymentMethod,
		GcashReference: req.GcashReference,
		UserEmail:      req.UserEmail,
		UserPhone:      req.UserPhoneNo,
		UserAddress:    req.UserAddress,
		Receipt:        req.Receipt,
	}

	if err := ctrl.Orders.Create(c.Request.Context(), order); err != nil {
		log.Println("Order insert failed:", err)
		c.JSON(500, models.MessageResponse{Message: "Database insert failed"})
		return
	}

	ctrl.sendConfirmation(order)

	c.JSON(200, models.OrderResponse{
		Message: "Order saved successfully!",
		OrderID: order.ID,
		OrderNo: order.OrderNo,
	})
}

// GetOrders godoc
// @Summary Order history
// @Description List orders for a customer email, newest first
// @Tags Orders
// @Produce json
// @Param email query string true "Customer email"
// @Success 200 {array} models.Order
// @Failure 400 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /api/orders [get]
func (ctrl *OrderController) GetOrders(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(400, models.MessageResponse{Message: "Email is required"})
		return
	}

	orders, err := ctrl.Orders.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Println("Failed to load orders:", err)
		c.JSON(500, models.MessageResponse{Message: "Database error"})
		return
	}
	c.JSON(200, orders)
}

func (ctrl *OrderController) sendConfirmation(order *models.Order) {
	if ctrl.Email == nil {
		return
	}
	go func(o models.Order) {
		if err := ctrl.Email.SendOrderConfirmationEmail(o.UserEmail, o.OrderNo, o.TotalPrice); err != nil {
			log.Println("Order confirmation email failed:", err)
		}
	}(*order)
}
