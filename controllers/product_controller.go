package controllers

import (
	"log"

	"github.com/gin-gonic/gin"

	"waco-shop/models"
	"waco-shop/services"
)

type ProductController struct {
	Catalog *services.CatalogService
}

// GetProducts godoc
// @Summary List products
// @Description Get the product catalog with parsed size variations, optionally filtered by category
// @Tags Products
// @Produce json
// @Param category query string false "Category filter"
// @Success 200 {array} models.Product
// @Failure 500 {object} models.MessageResponse
// @Router /api/products [get]
func (ctrl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.Catalog.GetProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Println("Failed to load products:", err)
		c.JSON(500, models.MessageResponse{Message: "Database error"})
		return
	}
	c.JSON(200, products)
}

// GetCategories godoc
// @Summary List categories
// @Description Get the distinct product categories
// @Tags Products
// @Produce json
// @Success 200 {array} string
// @Failure 500 {object} models.MessageResponse
// @Router /api/categories [get]
func (ctrl *ProductController) GetCategories(c *gin.Context) {
	categories, err := ctrl.Catalog.GetCategories(c.Request.Context())
	if err != nil {
		log.Println("Failed to load categories:", err)
		c.JSON(500, models.MessageResponse{Message: "Database error"})
		return
	}
	c.JSON(200, categories)
}
