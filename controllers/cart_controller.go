package controllers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"waco-shop/middleware"
	"waco-shop/models"
	"waco-shop/services"
)

type CartController struct {
	Catalog  *services.CatalogService
	Checkout *services.CheckoutService
	Email    *models.EmailService
}

// GetCart godoc
// @Summary View cart
// @Description Get the session cart with its derived total
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /api/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	cart := &middleware.GetSession(c).Cart
	c.JSON(200, models.CartResponse{Items: cart.Items, Total: cart.Total()})
}

// AddItem godoc
// @Summary Add to cart
// @Description Add a product to the session cart, optionally customized (size variation, sugar level, add-ons)
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Item to add"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /api/cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	product, err := ctrl.Catalog.GetProductByCode(c.Request.Context(), req.ProductCode)
	if err != nil {
		c.JSON(404, models.MessageResponse{Message: "Product not found"})
		return
	}

	sess := middleware.GetSession(c)

	if req.Customization == nil {
		sess.Cart.AddLine(product.Code, product.Name, product.BasePrice)
	} else {
		name, price, err := ctrl.resolveCustomization(product, req.Variation, *req.Customization)
		if err != nil {
			c.JSON(400, models.MessageResponse{Message: err.Error()})
			return
		}
		sess.Cart.AddLine(product.Code, name, price)
	}

	if err := middleware.SaveSession(c); err != nil {
		log.Println("Failed to save session:", err)
		c.JSON(500, models.MessageResponse{Message: "Failed to update cart"})
		return
	}
	c.JSON(200, models.CartResponse{Items: sess.Cart.Items, Total: sess.Cart.Total()})
}

// resolveCustomization validates the selection against the product's
// parsed variations and fixed option sets, then computes the final unit
// price and display name.
func (ctrl *CartController) resolveCustomization(product *models.Product, variationSize string, sel models.CustomizationSelection) (string, decimal.Decimal, error) {
	if !services.IsCustomizable(product.Content) {
		return "", decimal.Zero, errors.New("Only drinks can be customized.")
	}

	variations := services.CustomizableVariations(product.Content)
	if len(variations) == 0 {
		return "", decimal.Zero, errors.New("No available sizes for this drink.")
	}

	variation := variations[0]
	if variationSize != "" {
		found := false
		for _, v := range variations {
			if strings.EqualFold(v.Size, variationSize) {
				variation = v
				found = true
				break
			}
		}
		if !found {
			return "", decimal.Zero, errors.New("Selected size is not available for this drink.")
		}
	}

	if !services.ValidSizeOption(sel.Size) {
		return "", decimal.Zero, errors.New("Invalid size option.")
	}
	if !services.ValidSugarLevel(sel.SugarLevel) {
		return "", decimal.Zero, errors.New("Invalid sugar level.")
	}
	for _, addOn := range sel.AddOns {
		if !services.ValidAddOn(addOn) {
			return "", decimal.Zero, errors.New("Invalid add-on: " + addOn)
		}
	}

	price := services.ResolvePrice(variation.Price, sel)
	name := services.CustomizedName(product.Name, variation.Size, sel)
	return name, price, nil
}

// RemoveItem godoc
// @Summary Remove cart line
// @Description Delete the cart line at the given position
// @Tags Cart
// @Produce json
// @Param index path int true "Line position"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/cart/items/{index} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(400, models.MessageResponse{Message: "Invalid cart index"})
		return
	}

	sess := middleware.GetSession(c)
	if err := sess.Cart.RemoveLine(index); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Invalid cart index"})
		return
	}

	if err := middleware.SaveSession(c); err != nil {
		log.Println("Failed to save session:", err)
		c.JSON(500, models.MessageResponse{Message: "Failed to update cart"})
		return
	}
	c.JSON(200, models.CartResponse{Items: sess.Cart.Items, Total: sess.Cart.Total()})
}

// DecrementItem godoc
// @Summary Decrement cart line
// @Description Lower the quantity of a product's line by one, removing the line at zero
// @Tags Cart
// @Accept json
// @Produce json
// @Param item body models.DecrementCartItemRequest true "Product to decrement"
// @Success 200 {object} models.CartResponse
// @Failure 400 {object} models.MessageResponse
// @Router /api/cart/items/decrement [post]
func (ctrl *CartController) DecrementItem(c *gin.Context) {
	var req models.DecrementCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	sess := middleware.GetSession(c)
	sess.Cart.DecrementLine(req.ProductCode)

	if err := middleware.SaveSession(c); err != nil {
		log.Println("Failed to save session:", err)
		c.JSON(500, models.MessageResponse{Message: "Failed to update cart"})
		return
	}
	c.JSON(200, models.CartResponse{Items: sess.Cart.Items, Total: sess.Cart.Total()})
}

// ClearCart godoc
// @Summary Clear cart
// @Description Remove every line from the session cart
// @Tags Cart
// @Produce json
// @Success 200 {object} models.CartResponse
// @Router /api/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	sess := middleware.GetSession(c)
	sess.Cart.Clear()

	if err := middleware.SaveSession(c); err != nil {
		log.Println("Failed to save session:", err)
		c.JSON(500, models.MessageResponse{Message: "Failed to update cart"})
		return
	}
	c.JSON(200, models.CartResponse{Items: sess.Cart.Items, Total: sess.Cart.Total()})
}

// SubmitCheckout godoc
// @Summary Checkout
// @Description Validate the shipping/payment fields and submit the session cart as an order
// @Tags Cart
// @Accept json
// @Produce json
// @Param checkout body models.CheckoutRequest true "Checkout fields"
// @Success 200 {object} models.OrderResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 401 {object} models.MessageResponse
// @Failure 500 {object} models.MessageResponse
// @Router /api/checkout [post]
func (ctrl *CartController) SubmitCheckout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, models.MessageResponse{Message: "Invalid request body"})
		return
	}

	sess := middleware.GetSession(c)

	co, err := ctrl.Checkout.Begin(&sess.Cart, sess.Authenticated())
	if errors.Is(err, services.ErrAuthRequired) {
		c.JSON(401, models.MessageResponse{Message: err.Error()})
		return
	}
	if err != nil {
		c.JSON(400, models.MessageResponse{Message: err.Error()})
		return
	}

	email := req.Email
	if email == "" {
		email = sess.Email
	}

	fields := services.CheckoutFields{
		DiningOption:   req.DiningOption,
		PaymentMethod:  req.PaymentMethod,
		GcashReference: req.GcashReference,
		Email:          email,
		Phone:          req.Phone,
		Address:        req.Address,
	}
	if err := co.Validate(fields); err != nil {
		c.JSON(400, models.MessageResponse{Message: err.Error()})
		return
	}

	order, err := ctrl.Checkout.Submit(c.Request.Context(), co)
	if err != nil {
		log.Println("Checkout submit failed:", err)
		c.JSON(500, models.MessageResponse{Message: "Order could not be saved. Please try again."})
		return
	}

	// The orchestrator cleared the cart; persist that.
	if err := middleware.SaveSession(c); err != nil {
		log.Println("Failed to save session after checkout:", err)
	}

	if ctrl.Email != nil {
		go func(o models.Order) {
			if err := ctrl.Email.SendOrderConfirmationEmail(o.UserEmail, o.OrderNo, o.TotalPrice); err != nil {
				log.Println("Order confirmation email failed:", err)
			}
		}(*order)
	}

	c.JSON(200, models.OrderResponse{
		Message: "Order saved successfully!",
		OrderID: order.ID,
		OrderNo: order.OrderNo,
	})
}
